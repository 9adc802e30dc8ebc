package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/printdvor/storefront-cli/internal/client/models"
)

// UserUpsert carries user fields for create and partial update. Zero-valued
// fields are omitted, matching the backend's PATCH semantics.
type UserUpsert struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role,omitempty"`
	Password string `json:"password,omitempty"`
}

func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.getCached(ctx, tagUsers, "user", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) UserByID(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	if err := c.getCached(ctx, tagUsers, fmt.Sprintf("user/%d", id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := c.getCached(ctx, tagUsers, "user/"+email, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) CreateUser(ctx context.Context, req UserUpsert) (*models.User, error) {
	var user models.User
	if err := c.doJSON(ctx, http.MethodPost, "user", req, &user); err != nil {
		return nil, err
	}
	c.cache.invalidate(tagUsers, tagDashboard)
	return &user, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int, req UserUpsert) (*models.User, error) {
	var user models.User
	if err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("user/%d", id), req, &user); err != nil {
		return nil, err
	}
	c.cache.invalidate(tagUsers)
	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int) error {
	if err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("user/%d", id), nil, nil); err != nil {
		return err
	}
	c.cache.invalidate(tagUsers, tagDashboard)
	return nil
}
