package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/printdvor/storefront-cli/internal/client/models"
	"github.com/printdvor/storefront-cli/internal/common"
	"github.com/printdvor/storefront-cli/internal/logging"
)

// CheckoutState tracks where a checkout attempt stands.
type CheckoutState string

const (
	CheckoutIdle         CheckoutState = "idle"
	CheckoutSubmitting   CheckoutState = "submitting"
	CheckoutSuccess      CheckoutState = "success"
	CheckoutFailed       CheckoutState = "failed"
	CheckoutRequiresAuth CheckoutState = "requires_auth"
)

// CheckoutService turns the local cart into a server-side order.
//
// Submit is all-or-nothing: on success the cart is cleared, on any failure
// it is left untouched so the user can retry. Without a signed-in user no
// network call is made at all.
type CheckoutService struct {
	api      OrderAPI
	sessions SessionStore
	cart     CartStore
	notify   Notifier
	log      logging.Logger

	mu      sync.Mutex
	state   CheckoutState
	payment string
}

func NewCheckoutService(api OrderAPI, sessions SessionStore, cart CartStore, notify Notifier, log logging.Logger) *CheckoutService {
	return &CheckoutService{
		api:      api,
		sessions: sessions,
		cart:     cart,
		notify:   notify,
		log:      log,
		state:    CheckoutIdle,
		payment:  models.PaymentCard,
	}
}

// State returns the outcome of the most recent Submit, or CheckoutIdle.
func (s *CheckoutService) State() CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Payment returns the selected payment method.
func (s *CheckoutService) Payment() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.payment
}

// SetPayment selects the payment method for the next order.
func (s *CheckoutService) SetPayment(method string) error {
	switch method {
	case models.PaymentCard, models.PaymentSBP, models.PaymentCash:
	default:
		return validationError(fmt.Sprintf("unknown payment method %q", method))
	}

	s.mu.Lock()
	s.payment = method
	s.mu.Unlock()
	return nil
}

func (s *CheckoutService) setState(state CheckoutState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// Submit places an order for the current cart contents. Each call starts a
// fresh attempt regardless of the previous outcome.
func (s *CheckoutService) Submit(ctx context.Context) (*models.Order, error) {
	lines := s.cart.Lines()
	if len(lines) == 0 {
		s.setState(CheckoutIdle)
		return nil, validationError("cart is empty")
	}

	user := s.sessions.User()
	if user == nil {
		s.setState(CheckoutRequiresAuth)
		s.notify.Warning("Sign in required", "Please sign in to place an order")
		return nil, common.ErrAuthRequired
	}

	s.setState(CheckoutSubmitting)

	items := make([]models.OrderItemInput, 0, len(lines))
	for _, l := range lines {
		items = append(items, models.OrderItemInput{
			ProductID: l.ID,
			Quantity:  l.Quantity,
			Price:     l.Price,
		})
	}

	req := models.CreateOrderRequest{
		OrderItems: items,
		TotalPrice: s.cart.TotalPrice(),
		Payment:    s.Payment(),
		Status:     models.OrderStatusPending,
		UserID:     user.ID,
	}

	order, err := s.api.CreateOrder(ctx, req)
	if err != nil {
		// Cart stays intact; the user resubmits when ready.
		s.setState(CheckoutFailed)
		s.notify.Error("Order failed", "Your order could not be placed, please try again")
		return nil, fmt.Errorf("order submission failed: %w", err)
	}

	s.cart.Clear(ctx)
	s.setState(CheckoutSuccess)
	s.notify.Success("Order placed", fmt.Sprintf("Order #%d has been created", order.ID))
	return order, nil
}
