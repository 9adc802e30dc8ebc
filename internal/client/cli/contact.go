package cli

import (
	"context"
	"os"

	"github.com/printdvor/storefront-cli/internal/client/models"
)

// Contact prompts for the contact form and submits it.
func (a *App) Contact(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Your name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Your email", os.Stdout)
	if err != nil {
		return err
	}
	subject, err := getSimpleText(a.reader, "Subject (optional)", os.Stdout)
	if err != nil {
		return err
	}
	message, err := GetMultiline(a.reader, "Message", os.Stdout)
	if err != nil {
		return err
	}

	form := models.ContactForm{Name: name, Email: email, Subject: subject, Message: message}
	if err := a.contact.Send(ctx, form); err != nil {
		printlnFn("Could not send message:", err.Error())
		return err
	}

	printlnFn("Message sent, we will get back to you")
	return nil
}
