package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/printdvor/storefront-cli/internal/common"
)

// Cart prints the local cart with the derived total.
func (a *App) Cart(_ context.Context) error {
	lines := a.cart.Lines()
	if len(lines) == 0 {
		printlnFn("Your cart is empty")
		return nil
	}

	for _, l := range lines {
		printlnFn(fmt.Sprintf("#%d  %-30s %8.2f RUB x %d = %10.2f RUB",
			l.ID, l.Name, l.Price, l.Quantity, l.Price*float64(l.Quantity)))
	}
	printlnFn(fmt.Sprintf("Total: %.2f RUB (payment: %s)", a.cart.TotalPrice(), a.checkout.Payment()))
	return nil
}

// Qty sets a line's quantity.
func (a *App) Qty(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: qty <product-id> <quantity>")
		return fmt.Errorf("missing arguments")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn("Usage: qty <product-id> <quantity>")
		return err
	}
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		printlnFn("Usage: qty <product-id> <quantity>")
		return err
	}

	a.cart.UpdateQuantity(ctx, id, qty)
	return nil
}

// RemoveLine drops a product from the cart.
func (a *App) RemoveLine(ctx context.Context, args []string) error {
	id, err := argID(args, "Usage: remove <product-id>")
	if err != nil {
		return err
	}
	a.cart.Remove(ctx, id)
	return nil
}

// Pay selects the payment method for the next checkout.
func (a *App) Pay(_ context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: pay <card|sbp|cash>")
		return fmt.Errorf("missing argument")
	}
	if err := a.checkout.SetPayment(args[0]); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Payment method set to " + args[0])
	return nil
}

// Checkout submits the cart as an order.
func (a *App) Checkout(ctx context.Context) error {
	order, err := a.checkout.Submit(ctx)
	if err != nil {
		if errors.Is(err, common.ErrAuthRequired) {
			printlnFn("Sign in first: login")
		} else {
			printlnFn("Checkout failed:", err.Error())
		}
		return err
	}

	printlnFn(fmt.Sprintf("Order #%d placed, total %s RUB, status %s", order.ID, order.TotalPrice, order.Status))
	return nil
}
