package cli

import (
	"context"
	"os"

	"github.com/printdvor/storefront-cli/internal/client/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and signs in. On success the session store
// holds the token pair and profile for subsequent requests.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	printlnFn("Signed in as " + user.Email)
	return nil
}

// Register prompts for the registration form and creates a USER account.
// Registration does not sign in; the user logs in afterwards.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone (+7XXXXXXXXXX)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	passwordRepeat, err := getPassword(os.Stdout, "Repeat password")
	if err != nil {
		return err
	}

	in := services.RegisterInput{
		Email:          email,
		Password:       password,
		PasswordRepeat: passwordRepeat,
		Phone:          phone,
	}
	if err := a.auth.Register(ctx, in); err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Account created, you can log in now")
	return nil
}

// Logout forgets the local session. Nothing is sent to the server.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	printlnFn("Signed out")
	return nil
}

// Profile prints the signed-in user's details.
func (a *App) Profile(_ context.Context) error {
	user := a.auth.CurrentUser()
	if user == nil {
		printlnFn("Not signed in")
		return nil
	}
	printlnFn("Email: " + user.Email)
	printlnFn("Phone: " + user.Phone)
	printlnFn("Role:  " + user.Role)
	return nil
}
