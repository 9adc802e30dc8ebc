package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/printdvor/storefront-cli/internal/client/models"
	"github.com/printdvor/storefront-cli/internal/client/services"
)

const catalogPageSize = 10

// Catalog lists products. Positional words form the search query; the
// special tokens "category:<id>" and "page:<n>" narrow and page the list.
func (a *App) Catalog(ctx context.Context, args []string) error {
	var (
		words      []string
		categoryID int
		page       = 1
	)
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "category:"):
			categoryID, _ = strconv.Atoi(strings.TrimPrefix(arg, "category:"))
		case strings.HasPrefix(arg, "page:"):
			page, _ = strconv.Atoi(strings.TrimPrefix(arg, "page:"))
		default:
			words = append(words, arg)
		}
	}

	products, err := a.catalog.Products(ctx)
	if err != nil {
		printlnFn("Could not load catalog:", err.Error())
		return err
	}

	filtered := services.FilterProducts(products, strings.Join(words, " "), categoryID)
	pageItems := services.Paginate(filtered, page, catalogPageSize)

	if len(pageItems) == 0 {
		printlnFn("No products found")
		return nil
	}

	for _, p := range pageItems {
		printlnFn(fmt.Sprintf("#%d  %-30s %10s RUB  (stock: %d, %s)",
			p.ID, p.Name, p.Price, p.Quantity, p.Category.Name))
	}
	printlnFn(fmt.Sprintf("page %d of %d (%d products)",
		page, services.PageCount(len(filtered), catalogPageSize), len(filtered)))
	return nil
}

// Show prints one product card.
func (a *App) Show(ctx context.Context, args []string) error {
	id, err := argID(args, "Usage: show <product-id>")
	if err != nil {
		return err
	}

	p, err := a.catalog.ProductByID(ctx, id)
	if err != nil {
		printlnFn("Could not load product:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("#%d %s", p.ID, p.Name))
	printlnFn("Price:    " + p.Price + " RUB")
	printlnFn("In stock: " + strconv.Itoa(p.Quantity))
	printlnFn("Category: " + p.Category.Name)
	printlnFn("Supplier: " + p.Supplier.Name)
	if p.Description != "" {
		printlnFn(p.Description)
	}
	return nil
}

// AddToCart fetches the product and merges it into the local cart.
func (a *App) AddToCart(ctx context.Context, args []string) error {
	id, err := argID(args, "Usage: add <product-id>")
	if err != nil {
		return err
	}

	p, err := a.catalog.ProductByID(ctx, id)
	if err != nil {
		printlnFn("Could not load product:", err.Error())
		return err
	}

	a.cart.Add(ctx, models.CartLine{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.PriceValue(),
		Image: p.ImageURL,
	})
	return nil
}

// argID parses the single numeric argument commands like show/add expect.
func argID(args []string, usage string) (int, error) {
	if len(args) == 0 {
		printlnFn(usage)
		return 0, fmt.Errorf("missing argument")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn(usage)
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}
