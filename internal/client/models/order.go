package models

// Payment methods accepted at checkout.
const (
	PaymentCard = "card"
	PaymentSBP  = "sbp"
	PaymentCash = "cash"
)

// Order statuses as the back office uses them.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
)

type OrderItem struct {
	ID        int     `json:"id"`
	Quantity  int     `json:"quantity"`
	Price     string  `json:"price"`
	OrderID   int     `json:"orderId"`
	ProductID int     `json:"productId"`
	Product   Product `json:"product"`
}

type Order struct {
	ID          int         `json:"id"`
	TotalPrice  string      `json:"totalPrice"`
	Status      string      `json:"status"`
	CreatedAt   string      `json:"createdAt"`
	ConfirmedAt string      `json:"confirmedAt,omitempty"`
	Payment     string      `json:"payment"`
	UserID      int         `json:"userId"`
	User        User        `json:"user"`
	OrderItems  []OrderItem `json:"orderItems"`
}

// OrderItemInput is one cart line as submitted with a new order.
type OrderItemInput struct {
	ProductID int     `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// CreateOrderRequest is the payload for POST /orders.
type CreateOrderRequest struct {
	OrderItems []OrderItemInput `json:"orderItems"`
	TotalPrice float64          `json:"totalPrice"`
	Payment    string           `json:"payment"`
	Status     string           `json:"status"`
	UserID     int              `json:"userId"`
}
