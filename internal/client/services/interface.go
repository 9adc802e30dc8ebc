package services

import (
	"context"

	"github.com/printdvor/storefront-cli/internal/client/api"
	"github.com/printdvor/storefront-cli/internal/client/models"
)

// SessionStore is the slice of the session store the services need.
type SessionStore interface {
	User() *models.User
	SetCredentials(ctx context.Context, token, refreshToken string, user *models.User) error
	Logout(ctx context.Context) error
}

// CartStore is the slice of the cart store the checkout service needs.
type CartStore interface {
	Lines() []models.CartLine
	TotalPrice() float64
	Clear(ctx context.Context)
}

// Notifier surfaces user-visible notifications raised by service operations.
type Notifier interface {
	Success(message, description string)
	Warning(message, description string)
	Error(message, description string)
}

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*api.LoginResult, error)
	Register(ctx context.Context, req api.RegisterRequest) error
}

type CatalogAPI interface {
	Products(ctx context.Context) ([]models.Product, error)
	ProductByID(ctx context.Context, id int) (*models.Product, error)
	ProductImage(ctx context.Context, id int) ([]byte, error)
	Categories(ctx context.Context) ([]models.Category, error)
}

type OrderAPI interface {
	Orders(ctx context.Context) ([]models.Order, error)
	UserOrders(ctx context.Context, userID int) ([]models.Order, error)
	OrderByID(ctx context.Context, id int) (*models.Order, error)
	CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id int, status string) (*models.Order, error)
	DeleteOrder(ctx context.Context, id int) error
}

type WishlistAPI interface {
	Wishlist(ctx context.Context, userID int) ([]models.WishlistItem, error)
	AddToWishlist(ctx context.Context, userID, productID int) error
	RemoveFromWishlist(ctx context.Context, userID, productID int) error
}

type MailAPI interface {
	SendContactForm(ctx context.Context, form models.ContactForm) error
}

// BackofficeAPI covers the manager/admin mutations plus the dashboard.
type BackofficeAPI interface {
	CreateProduct(ctx context.Context, form api.ProductForm, image []byte, imageName string) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int, form api.ProductForm, image []byte, imageName string) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int) error

	Categories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, req api.CategoryUpsert) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int, req api.CategoryUpsert) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int) error

	Suppliers(ctx context.Context) ([]models.Supplier, error)
	CreateSupplier(ctx context.Context, req api.SupplierUpsert) (*models.Supplier, error)
	UpdateSupplier(ctx context.Context, id int, req api.SupplierUpsert) (*models.Supplier, error)
	DeleteSupplier(ctx context.Context, id int) error

	Users(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, req api.UserUpsert) (*models.User, error)
	UpdateUser(ctx context.Context, id int, req api.UserUpsert) (*models.User, error)
	DeleteUser(ctx context.Context, id int) error

	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
}
