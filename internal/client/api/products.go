package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/printdvor/storefront-cli/internal/client/models"
	"github.com/printdvor/storefront-cli/internal/netx"
)

// ProductForm carries the writable product fields. Numbers are stringified
// into the multipart body the way the backend's form parser expects.
type ProductForm struct {
	Name        string
	Description string
	Price       float64
	Quantity    int
	CategoryID  int
	SupplierID  int
}

func (f ProductForm) fields() map[string]string {
	return map[string]string{
		"name":        f.Name,
		"description": f.Description,
		"price":       strconv.FormatFloat(f.Price, 'f', -1, 64),
		"quantity":    strconv.Itoa(f.Quantity),
		"categoryId":  strconv.Itoa(f.CategoryID),
		"supplierId":  strconv.Itoa(f.SupplierID),
	}
}

func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.getCached(ctx, tagProducts, "product", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) ProductByID(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	if err := c.getCached(ctx, tagProducts, fmt.Sprintf("product/%d", id), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ProductImage fetches the raw image bytes. Never cached.
func (c *Client) ProductImage(ctx context.Context, id int) ([]byte, error) {
	return c.send(ctx, http.MethodGet, fmt.Sprintf("product/%d/image", id), nil, "")
}

// CreateProduct posts a multipart form; image may be nil when the product
// has no picture yet. Multipart responses bypass doJSON and are parsed
// directly.
func (c *Client) CreateProduct(ctx context.Context, form ProductForm, image []byte, imageName string) (*models.Product, error) {
	return c.sendProductForm(ctx, http.MethodPost, "product", form, image, imageName)
}

// UpdateProduct puts a multipart form; a nil image keeps the current one.
func (c *Client) UpdateProduct(ctx context.Context, id int, form ProductForm, image []byte, imageName string) (*models.Product, error) {
	return c.sendProductForm(ctx, http.MethodPut, fmt.Sprintf("product/%d", id), form, image, imageName)
}

func (c *Client) sendProductForm(ctx context.Context, method, path string, form ProductForm, image []byte, imageName string) (*models.Product, error) {
	body, contentType, err := netx.EncodeMultipart(form.fields(), "image", imageName, image)
	if err != nil {
		return nil, err
	}

	data, err := c.send(ctx, method, path, body, contentType)
	if err != nil {
		return nil, err
	}

	var product models.Product
	if len(data) > 0 {
		if err := json.Unmarshal(data, &product); err != nil {
			return nil, fmt.Errorf("failed to parse response: %w", err)
		}
	}

	c.cache.invalidate(tagProducts, tagDashboard)
	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	if err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("product/%d", id), nil, nil); err != nil {
		return err
	}
	c.cache.invalidate(tagProducts, tagDashboard)
	return nil
}
