package services

import (
	"context"
	"fmt"

	"github.com/printdvor/storefront-cli/internal/client/api"
	"github.com/printdvor/storefront-cli/internal/client/models"
	"github.com/printdvor/storefront-cli/internal/logging"
)

// AuthService signs users in and out and owns the registration flow.
type AuthService struct {
	api      AuthAPI
	sessions SessionStore
	log      logging.Logger
}

func NewAuthService(api AuthAPI, sessions SessionStore, log logging.Logger) *AuthService {
	return &AuthService{api: api, sessions: sessions, log: log}
}

// RegisterInput is the public registration form.
type RegisterInput struct {
	Email          string
	Password       string
	PasswordRepeat string
	Phone          string
}

// Login authenticates and replaces the local session with the returned
// token pair and profile.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if err := ValidateLogin(email, password); err != nil {
		return nil, err
	}

	res, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	if err := s.sessions.SetCredentials(ctx, res.AccessToken, res.RefreshToken.Token, &res.User); err != nil {
		s.log.Warn(ctx, "session not persisted", "error", err)
	}
	return &res.User, nil
}

// Register creates a USER account. The backend signs nobody in on register;
// the caller logs in afterwards.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) error {
	if err := ValidateRegistration(in.Email, in.Password, in.PasswordRepeat, in.Phone); err != nil {
		return err
	}

	req := api.RegisterRequest{
		Email:          in.Email,
		PasswordHash:   in.Password,
		PasswordRepeat: in.PasswordRepeat,
		Role:           models.RoleUser,
		Phone:          in.Phone,
	}
	if err := s.api.Register(ctx, req); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	return nil
}

// Logout drops the local session. No server call: tokens are simply forgotten.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Logout(ctx)
}

// CurrentUser returns the signed-in user, or nil.
func (s *AuthService) CurrentUser() *models.User {
	return s.sessions.User()
}
