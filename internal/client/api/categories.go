package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/printdvor/storefront-cli/internal/client/models"
)

type CategoryUpsert struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.getCached(ctx, tagCategories, "category", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, req CategoryUpsert) (*models.Category, error) {
	var category models.Category
	if err := c.doJSON(ctx, http.MethodPost, "category", req, &category); err != nil {
		return nil, err
	}
	c.cache.invalidate(tagCategories)
	return &category, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int, req CategoryUpsert) (*models.Category, error) {
	var category models.Category
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("category/%d", id), req, &category); err != nil {
		return nil, err
	}
	// Product snapshots embed their category.
	c.cache.invalidate(tagCategories, tagProducts)
	return &category, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	if err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("category/%d", id), nil, nil); err != nil {
		return err
	}
	c.cache.invalidate(tagCategories, tagProducts)
	return nil
}
