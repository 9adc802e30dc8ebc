package services

import (
	"context"
	"strings"

	"github.com/printdvor/storefront-cli/internal/client/models"
	"github.com/printdvor/storefront-cli/internal/logging"
)

// CatalogService exposes the public product catalog. Filtering and paging
// happen client-side over the full fetched list, the way the storefront
// renders it.
type CatalogService struct {
	api CatalogAPI
	log logging.Logger
}

func NewCatalogService(api CatalogAPI, log logging.Logger) *CatalogService {
	return &CatalogService{api: api, log: log}
}

func (s *CatalogService) Products(ctx context.Context) ([]models.Product, error) {
	return s.api.Products(ctx)
}

func (s *CatalogService) ProductByID(ctx context.Context, id int) (*models.Product, error) {
	return s.api.ProductByID(ctx, id)
}

func (s *CatalogService) ProductImage(ctx context.Context, id int) ([]byte, error) {
	return s.api.ProductImage(ctx, id)
}

func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	return s.api.Categories(ctx)
}

// FilterProducts narrows the list by a case-insensitive substring match on
// the product name and, when categoryID > 0, by category. Empty query and
// zero categoryID return the input unchanged.
func FilterProducts(products []models.Product, query string, categoryID int) []models.Product {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		if categoryID > 0 && p.CategoryID != categoryID {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Paginate returns the 1-based page of size pageSize. Pages past the end
// are empty, never an error.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// PageCount returns how many pages the list spans at pageSize.
func PageCount(total, pageSize int) int {
	if total <= 0 || pageSize < 1 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
