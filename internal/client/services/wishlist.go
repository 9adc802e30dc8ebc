package services

import (
	"context"

	"github.com/printdvor/storefront-cli/internal/client/models"
	"github.com/printdvor/storefront-cli/internal/common"
	"github.com/printdvor/storefront-cli/internal/logging"
)

// WishlistService manages the signed-in user's favorites. Every operation
// requires a session; the server owns the list, so mutations re-fetch it
// rather than patching a local copy.
type WishlistService struct {
	api      WishlistAPI
	sessions SessionStore
	log      logging.Logger
}

func NewWishlistService(api WishlistAPI, sessions SessionStore, log logging.Logger) *WishlistService {
	return &WishlistService{api: api, sessions: sessions, log: log}
}

func (s *WishlistService) List(ctx context.Context) ([]models.WishlistItem, error) {
	user := s.sessions.User()
	if user == nil {
		return nil, common.ErrAuthRequired
	}
	return s.api.Wishlist(ctx, user.ID)
}

func (s *WishlistService) Add(ctx context.Context, productID int) ([]models.WishlistItem, error) {
	user := s.sessions.User()
	if user == nil {
		return nil, common.ErrAuthRequired
	}
	if err := s.api.AddToWishlist(ctx, user.ID, productID); err != nil {
		return nil, err
	}
	return s.api.Wishlist(ctx, user.ID)
}

func (s *WishlistService) Remove(ctx context.Context, productID int) ([]models.WishlistItem, error) {
	user := s.sessions.User()
	if user == nil {
		return nil, common.ErrAuthRequired
	}
	if err := s.api.RemoveFromWishlist(ctx, user.ID, productID); err != nil {
		return nil, err
	}
	return s.api.Wishlist(ctx, user.ID)
}

// Contains reports whether productID is in items. Helper for toggling.
func Contains(items []models.WishlistItem, productID int) bool {
	for _, it := range items {
		if it.Product.ID == productID {
			return true
		}
	}
	return false
}
