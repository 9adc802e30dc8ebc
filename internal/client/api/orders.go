package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/printdvor/storefront-cli/internal/client/models"
)

func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.getCached(ctx, tagOrders, "orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) UserOrders(ctx context.Context, userID int) ([]models.Order, error) {
	var orders []models.Order
	if err := c.getCached(ctx, tagOrders, fmt.Sprintf("orders/user/%d", userID), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) OrderByID(ctx context.Context, id int) (*models.Order, error) {
	var order models.Order
	if err := c.getCached(ctx, tagOrders, fmt.Sprintf("orders/%d", id), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	var order models.Order
	if err := c.doJSON(ctx, http.MethodPost, "orders", req, &order); err != nil {
		return nil, err
	}
	c.cache.invalidate(tagOrders, tagDashboard)
	return &order, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id int, status string) (*models.Order, error) {
	payload := map[string]string{"status": status}

	var order models.Order
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("orders/%d/status", id), payload, &order); err != nil {
		return nil, err
	}
	c.cache.invalidate(tagOrders, tagDashboard)
	return &order, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id int) error {
	if err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("orders/%d", id), nil, nil); err != nil {
		return err
	}
	c.cache.invalidate(tagOrders, tagDashboard)
	return nil
}
