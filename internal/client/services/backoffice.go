package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/printdvor/storefront-cli/internal/client/api"
	"github.com/printdvor/storefront-cli/internal/client/models"
	"github.com/printdvor/storefront-cli/internal/logging"
)

// BackofficeService implements the manager/admin operations: product,
// category, supplier and user management plus the dashboard snapshot.
// It validates form input before calling out; the server remains the
// authority on authorization.
type BackofficeService struct {
	api BackofficeAPI
	log logging.Logger
}

func NewBackofficeService(api BackofficeAPI, log logging.Logger) *BackofficeService {
	return &BackofficeService{api: api, log: log}
}

func (s *BackofficeService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	return s.api.DashboardStats(ctx)
}

// CreateProduct validates the form and uploads it with the optional image.
func (s *BackofficeService) CreateProduct(ctx context.Context, form api.ProductForm, image []byte, imageName string) (*models.Product, error) {
	if err := ValidateProductForm(form.Name, form.Price, form.Quantity); err != nil {
		return nil, err
	}
	return s.api.CreateProduct(ctx, form, image, imageName)
}

// UpdateProduct validates and uploads; a nil image keeps the current picture.
func (s *BackofficeService) UpdateProduct(ctx context.Context, id int, form api.ProductForm, image []byte, imageName string) (*models.Product, error) {
	if err := ValidateProductForm(form.Name, form.Price, form.Quantity); err != nil {
		return nil, err
	}
	return s.api.UpdateProduct(ctx, id, form, image, imageName)
}

func (s *BackofficeService) DeleteProduct(ctx context.Context, id int) error {
	return s.api.DeleteProduct(ctx, id)
}

func (s *BackofficeService) Categories(ctx context.Context) ([]models.Category, error) {
	return s.api.Categories(ctx)
}

func (s *BackofficeService) CreateCategory(ctx context.Context, req api.CategoryUpsert) (*models.Category, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, validationError("category name is required")
	}
	return s.api.CreateCategory(ctx, req)
}

func (s *BackofficeService) UpdateCategory(ctx context.Context, id int, req api.CategoryUpsert) (*models.Category, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, validationError("category name is required")
	}
	return s.api.UpdateCategory(ctx, id, req)
}

func (s *BackofficeService) DeleteCategory(ctx context.Context, id int) error {
	return s.api.DeleteCategory(ctx, id)
}

func (s *BackofficeService) Suppliers(ctx context.Context) ([]models.Supplier, error) {
	return s.api.Suppliers(ctx)
}

func (s *BackofficeService) CreateSupplier(ctx context.Context, req api.SupplierUpsert) (*models.Supplier, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, validationError("supplier name is required")
	}
	return s.api.CreateSupplier(ctx, req)
}

func (s *BackofficeService) UpdateSupplier(ctx context.Context, id int, req api.SupplierUpsert) (*models.Supplier, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, validationError("supplier name is required")
	}
	return s.api.UpdateSupplier(ctx, id, req)
}

func (s *BackofficeService) DeleteSupplier(ctx context.Context, id int) error {
	return s.api.DeleteSupplier(ctx, id)
}

func (s *BackofficeService) Users(ctx context.Context) ([]models.User, error) {
	return s.api.Users(ctx)
}

// CreateUser requires a password; the admin user form's looser phone rule
// applies here, not the registration one.
func (s *BackofficeService) CreateUser(ctx context.Context, req api.UserUpsert) (*models.User, error) {
	if err := ValidateUserForm(req.Email, req.Phone, req.Password, true); err != nil {
		return nil, err
	}
	if err := validateRole(req.Role); err != nil {
		return nil, err
	}
	return s.api.CreateUser(ctx, req)
}

// UpdateUser sends only the set fields; empty fields mean "unchanged" and
// are not validated.
func (s *BackofficeService) UpdateUser(ctx context.Context, id int, req api.UserUpsert) (*models.User, error) {
	if req.Email != "" && !emailRe.MatchString(req.Email) {
		return nil, validationError("invalid email format")
	}
	if req.Phone != "" && !userFormPhoneRe.MatchString(req.Phone) {
		return nil, validationError("invalid phone number")
	}
	if req.Password != "" && len(req.Password) < minPasswordLen {
		return nil, validationError(fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}
	if req.Role != "" {
		if err := validateRole(req.Role); err != nil {
			return nil, err
		}
	}
	return s.api.UpdateUser(ctx, id, req)
}

func (s *BackofficeService) DeleteUser(ctx context.Context, id int) error {
	return s.api.DeleteUser(ctx, id)
}

func validateRole(role string) error {
	switch role {
	case models.RoleUser, models.RoleManager, models.RoleAdmin:
		return nil
	default:
		return validationError("role must be USER, MANAGER or ADMIN")
	}
}
