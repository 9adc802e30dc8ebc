package services

import (
	"testing"

	"github.com/printdvor/storefront-cli/internal/client/models"
	"github.com/printdvor/storefront-cli/internal/common"
	"github.com/stretchr/testify/require"
)

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		pass    string
		repeat  string
		phone   string
		wantErr bool
	}{
		{"valid", "user@example.com", "secret1", "secret1", "+79001234567", false},
		{"bad email", "not-an-email", "secret1", "secret1", "+79001234567", true},
		{"short password", "user@example.com", "abc", "abc", "+79001234567", true},
		{"mismatch", "user@example.com", "secret1", "secret2", "+79001234567", true},
		{"phone without +7", "user@example.com", "secret1", "secret1", "89001234567", true},
		{"phone too short", "user@example.com", "secret1", "secret1", "+7900123", true},
		{"phone with spaces rejected here", "user@example.com", "secret1", "secret1", "+7 900 123 45 67", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegistration(tt.email, tt.pass, tt.repeat, tt.phone)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrValidation)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateUserForm_AcceptsLooserPhones(t *testing.T) {
	// The admin form's phone rule is intentionally looser than registration.
	require.NoError(t, ValidateUserForm("a@b.co", "+7 (900) 123-45-67", "secret1", true))
	require.NoError(t, ValidateUserForm("a@b.co", "89001234567", "secret1", true))
	require.ErrorIs(t, ValidateUserForm("a@b.co", "12345", "secret1", true), common.ErrValidation)
}

func TestValidateUserForm_PasswordOptionalOnEdit(t *testing.T) {
	require.NoError(t, ValidateUserForm("a@b.co", "+79001234567", "", false))
	require.ErrorIs(t, ValidateUserForm("a@b.co", "+79001234567", "", true), common.ErrValidation)
	require.ErrorIs(t, ValidateUserForm("a@b.co", "+79001234567", "abc", false), common.ErrValidation)
}

func TestValidateContactForm(t *testing.T) {
	valid := models.ContactForm{Name: "Ivan", Email: "ivan@example.com", Message: "Hello"}
	require.NoError(t, ValidateContactForm(valid))

	// Subject is optional, the rest is not.
	for _, f := range []models.ContactForm{
		{Email: "ivan@example.com", Message: "Hello"},
		{Name: "Ivan", Email: "bad", Message: "Hello"},
		{Name: "Ivan", Email: "ivan@example.com", Message: "   "},
	} {
		require.ErrorIs(t, ValidateContactForm(f), common.ErrValidation)
	}
}

func TestValidateProductForm(t *testing.T) {
	require.NoError(t, ValidateProductForm("Business cards", 500, 10))
	require.ErrorIs(t, ValidateProductForm("", 500, 10), common.ErrValidation)
	require.ErrorIs(t, ValidateProductForm("Cards", -1, 10), common.ErrValidation)
	require.ErrorIs(t, ValidateProductForm("Cards", 500, -1), common.ErrValidation)
}
