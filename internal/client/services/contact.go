package services

import (
	"context"
	"fmt"

	"github.com/printdvor/storefront-cli/internal/client/models"
	"github.com/printdvor/storefront-cli/internal/logging"
)

// ContactService submits the contact page form.
type ContactService struct {
	api MailAPI
	log logging.Logger
}

func NewContactService(api MailAPI, log logging.Logger) *ContactService {
	return &ContactService{api: api, log: log}
}

func (s *ContactService) Send(ctx context.Context, form models.ContactForm) error {
	if err := ValidateContactForm(form); err != nil {
		return err
	}
	if err := s.api.SendContactForm(ctx, form); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}
