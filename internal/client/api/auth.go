package api

import (
	"context"
	"net/http"

	"github.com/printdvor/storefront-cli/internal/client/models"
)

// RefreshTokenInfo is the nested refresh-token object the auth endpoints
// return: the opaque token plus its expiry timestamp.
type RefreshTokenInfo struct {
	Token string `json:"token"`
	Exp   string `json:"exp"`
}

type LoginResult struct {
	AccessToken  string           `json:"accessToken"`
	RefreshToken RefreshTokenInfo `json:"refreshToken"`
	User         models.User      `json:"user"`
}

// RegisterRequest is the payload for POST auth/register. PasswordHash is the
// field name the backend uses for the password value.
type RegisterRequest struct {
	Email          string `json:"email"`
	PasswordHash   string `json:"passwordHash"`
	PasswordRepeat string `json:"passwordRepeat"`
	Role           string `json:"role"`
	Phone          string `json:"phone"`
}

// Login authenticates with email/password and returns the token pair plus
// the user profile. It does not touch the session store; that is the auth
// service's job.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	payload := map[string]string{"email": email, "password": password}

	var result LoginResult
	if err := c.doJSON(ctx, http.MethodPost, "auth/login", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Register creates a new account. The backend signs nobody in on register;
// the caller logs in afterwards.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.doJSON(ctx, http.MethodPost, "auth/register", req, nil)
}

// refreshTokens exchanges the refresh token for a new pair and stores it.
// Serialized so concurrent 401s produce a single refresh call.
func (c *Client) refreshTokens(ctx context.Context) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	refreshToken := c.tokens.RefreshToken()
	if refreshToken == "" {
		return ErrUnauthorized
	}

	payload := map[string]string{"refreshToken": refreshToken}

	var result LoginResult
	if err := c.doJSON(ctx, http.MethodPost, refreshPath, payload, &result); err != nil {
		return err
	}

	return c.tokens.SetTokens(ctx, result.AccessToken, result.RefreshToken.Token)
}
