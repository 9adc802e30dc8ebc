package services

import (
	"context"
	"fmt"

	"github.com/printdvor/storefront-cli/internal/client/models"
	"github.com/printdvor/storefront-cli/internal/common"
	"github.com/printdvor/storefront-cli/internal/logging"
)

// OrderService covers the user's order history and the back-office order
// operations. The server enforces role checks; the client gates the surfaces.
type OrderService struct {
	api      OrderAPI
	sessions SessionStore
	log      logging.Logger
}

func NewOrderService(api OrderAPI, sessions SessionStore, log logging.Logger) *OrderService {
	return &OrderService{api: api, sessions: sessions, log: log}
}

// History returns the signed-in user's own orders.
func (s *OrderService) History(ctx context.Context) ([]models.Order, error) {
	user := s.sessions.User()
	if user == nil {
		return nil, common.ErrAuthRequired
	}
	return s.api.UserOrders(ctx, user.ID)
}

// All returns every order. Back-office surface.
func (s *OrderService) All(ctx context.Context) ([]models.Order, error) {
	return s.api.Orders(ctx)
}

func (s *OrderService) ByID(ctx context.Context, id int) (*models.Order, error) {
	return s.api.OrderByID(ctx, id)
}

// UpdateStatus moves an order along pending -> confirmed -> shipped ->
// delivered. Any known status is accepted; the server decides whether the
// transition is legal.
func (s *OrderService) UpdateStatus(ctx context.Context, id int, status string) (*models.Order, error) {
	switch status {
	case models.OrderStatusPending, models.OrderStatusConfirmed,
		models.OrderStatusShipped, models.OrderStatusDelivered:
	default:
		return nil, validationError(fmt.Sprintf("unknown order status %q", status))
	}
	return s.api.UpdateOrderStatus(ctx, id, status)
}

func (s *OrderService) Delete(ctx context.Context, id int) error {
	return s.api.DeleteOrder(ctx, id)
}
