package api

import (
	"context"
	"net/http"

	"github.com/printdvor/storefront-cli/internal/client/models"
)

// SendContactForm posts the contact form. Fire-and-forget: the backend
// handles the actual mail delivery.
func (c *Client) SendContactForm(ctx context.Context, form models.ContactForm) error {
	return c.doJSON(ctx, http.MethodPost, "mail/contact", form, nil)
}
