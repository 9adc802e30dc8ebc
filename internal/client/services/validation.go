package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/printdvor/storefront-cli/internal/client/models"
	"github.com/printdvor/storefront-cli/internal/common"
)

// The registration form and the admin user form deliberately keep separate
// phone rules: registration expects a bare +7XXXXXXXXXX, while the admin
// form accepts looser international formatting. Do not unify them without
// confirming the backend's expectations for each surface.
var (
	emailRe             = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	registrationPhoneRe = regexp.MustCompile(`^\+7\d{10}$`)
	userFormPhoneRe     = regexp.MustCompile(`^\+?[\d\s\-()]{10,15}$`)
)

const minPasswordLen = 6

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", common.ErrValidation, msg)
}

// ValidateLogin checks the sign-in form.
func ValidateLogin(email, password string) error {
	if !emailRe.MatchString(email) {
		return validationError("invalid email format")
	}
	if len(password) < minPasswordLen {
		return validationError(fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}
	return nil
}

// ValidateRegistration checks the public registration form.
func ValidateRegistration(email, password, passwordRepeat, phone string) error {
	if !emailRe.MatchString(email) {
		return validationError("invalid email format")
	}
	if len(password) < minPasswordLen {
		return validationError(fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}
	if password != passwordRepeat {
		return validationError("passwords do not match")
	}
	if !registrationPhoneRe.MatchString(phone) {
		return validationError("phone must be in the format +7XXXXXXXXXX")
	}
	return nil
}

// ValidateUserForm checks the admin/manager user form. The password is
// required on create and optional on edit.
func ValidateUserForm(email, phone, password string, passwordRequired bool) error {
	if !emailRe.MatchString(email) {
		return validationError("invalid email format")
	}
	if !userFormPhoneRe.MatchString(phone) {
		return validationError("invalid phone number")
	}
	if password == "" && !passwordRequired {
		return nil
	}
	if len(password) < minPasswordLen {
		return validationError(fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}
	return nil
}

// ValidateContactForm checks the contact page form; subject is optional.
func ValidateContactForm(form models.ContactForm) error {
	if strings.TrimSpace(form.Name) == "" {
		return validationError("name is required")
	}
	if !emailRe.MatchString(form.Email) {
		return validationError("invalid email format")
	}
	if strings.TrimSpace(form.Message) == "" {
		return validationError("message is required")
	}
	return nil
}

// ValidateProductForm checks the back-office product form.
func ValidateProductForm(name string, price float64, quantity int) error {
	if strings.TrimSpace(name) == "" {
		return validationError("name is required")
	}
	if price < 0 {
		return validationError("price must not be negative")
	}
	if quantity < 0 {
		return validationError("quantity must not be negative")
	}
	return nil
}
