package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/printdvor/storefront-cli/internal/client/models"
	"github.com/printdvor/storefront-cli/internal/common"
)

// OrderHistory prints the signed-in user's orders in the server's order.
func (a *App) OrderHistory(ctx context.Context) error {
	orders, err := a.orders.History(ctx)
	if err != nil {
		if errors.Is(err, common.ErrAuthRequired) {
			printlnFn("Sign in first: login")
		} else {
			printlnFn("Could not load orders:", err.Error())
		}
		return err
	}

	if len(orders) == 0 {
		printlnFn("No orders yet")
		return nil
	}
	for _, o := range orders {
		printOrder(o)
	}
	return nil
}

func printOrder(o models.Order) {
	printlnFn(fmt.Sprintf("Order #%d  %s  %s RUB  %s  (%s)", o.ID, o.CreatedAt, o.TotalPrice, o.Status, o.Payment))
	for _, item := range o.OrderItems {
		printlnFn(fmt.Sprintf("    %-30s x %d  %s RUB", item.Product.Name, item.Quantity, item.Price))
	}
}
