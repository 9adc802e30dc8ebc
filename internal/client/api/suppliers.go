package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/printdvor/storefront-cli/internal/client/models"
)

type SupplierUpsert struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (c *Client) Suppliers(ctx context.Context) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := c.getCached(ctx, tagSuppliers, "supplier", &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (c *Client) CreateSupplier(ctx context.Context, req SupplierUpsert) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := c.doJSON(ctx, http.MethodPost, "supplier", req, &supplier); err != nil {
		return nil, err
	}
	c.cache.invalidate(tagSuppliers)
	return &supplier, nil
}

func (c *Client) UpdateSupplier(ctx context.Context, id int, req SupplierUpsert) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("supplier/%d", id), req, &supplier); err != nil {
		return nil, err
	}
	c.cache.invalidate(tagSuppliers, tagProducts)
	return &supplier, nil
}

func (c *Client) DeleteSupplier(ctx context.Context, id int) error {
	if err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("supplier/%d", id), nil, nil); err != nil {
		return err
	}
	c.cache.invalidate(tagSuppliers, tagProducts)
	return nil
}
