package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/printdvor/storefront-cli/internal/client/models"
	"github.com/printdvor/storefront-cli/internal/common"
)

// Favorites lists the wishlist, or mutates it: "fav add <id>", "fav rm <id>".
func (a *App) Favorites(ctx context.Context, args []string) error {
	var (
		items []models.WishlistItem
		err   error
	)

	switch {
	case len(args) == 0:
		items, err = a.wishlist.List(ctx)
	case args[0] == "add" && len(args) == 2:
		items, err = wishlistMutate(ctx, a, a.wishlist.Add, args[1])
	case (args[0] == "rm" || args[0] == "remove") && len(args) == 2:
		items, err = wishlistMutate(ctx, a, a.wishlist.Remove, args[1])
	default:
		printlnFn("Usage: fav [add <product-id>|rm <product-id>]")
		return fmt.Errorf("bad arguments")
	}

	if err != nil {
		if errors.Is(err, common.ErrAuthRequired) {
			printlnFn("Sign in first: login")
		} else {
			printlnFn("Favorites unavailable:", err.Error())
		}
		return err
	}

	if len(items) == 0 {
		printlnFn("Your favorites list is empty")
		return nil
	}
	for _, it := range items {
		printlnFn(fmt.Sprintf("#%d  %-30s %10.2f RUB", it.Product.ID, it.Product.Name, it.Product.Price))
	}
	return nil
}

func wishlistMutate(ctx context.Context, a *App, op func(context.Context, int) ([]models.WishlistItem, error), rawID string) ([]models.WishlistItem, error) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		printlnFn("Usage: fav [add <product-id>|rm <product-id>]")
		return nil, err
	}
	return op(ctx, id)
}
