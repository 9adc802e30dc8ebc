package services

import (
	"context"
	"testing"

	"github.com/printdvor/storefront-cli/internal/client/models"
	"github.com/printdvor/storefront-cli/internal/common"
	"github.com/printdvor/storefront-cli/internal/logging"
	"github.com/stretchr/testify/require"
)

type fakeMailAPI struct {
	sent []models.ContactForm
}

func (f *fakeMailAPI) SendContactForm(_ context.Context, form models.ContactForm) error {
	f.sent = append(f.sent, form)
	return nil
}

func TestContactService_Send(t *testing.T) {
	remote := &fakeMailAPI{}
	svc := NewContactService(remote, logging.NewDefault())
	ctx := context.Background()

	err := svc.Send(ctx, models.ContactForm{Name: "Ivan", Email: "bad", Message: "hi"})
	require.ErrorIs(t, err, common.ErrValidation)
	require.Empty(t, remote.sent)

	err = svc.Send(ctx, models.ContactForm{Name: "Ivan", Email: "ivan@example.com", Message: "hi"})
	require.NoError(t, err)
	require.Len(t, remote.sent, 1)
}
