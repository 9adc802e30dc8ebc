package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/printdvor/storefront-cli/internal/client/models"
)

func (c *Client) Wishlist(ctx context.Context, userID int) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := c.getCached(ctx, tagWishlist, fmt.Sprintf("wishlist/%d", userID), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) AddToWishlist(ctx context.Context, userID, productID int) error {
	payload := map[string]int{"userId": userID, "productId": productID}

	if err := c.doJSON(ctx, http.MethodPost, "wishlist", payload, nil); err != nil {
		return err
	}
	c.cache.invalidate(tagWishlist)
	return nil
}

func (c *Client) RemoveFromWishlist(ctx context.Context, userID, productID int) error {
	if err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("wishlist/%d/%d", userID, productID), nil, nil); err != nil {
		return err
	}
	c.cache.invalidate(tagWishlist)
	return nil
}
