package services

import (
	"context"
	"testing"

	"github.com/printdvor/storefront-cli/internal/client/models"
	"github.com/printdvor/storefront-cli/internal/common"
	"github.com/printdvor/storefront-cli/internal/logging"
	"github.com/stretchr/testify/require"
)

type fakeWishlistAPI struct {
	items      map[int][]models.WishlistItem
	addCalls   int
	fetchCalls int
}

func (f *fakeWishlistAPI) Wishlist(_ context.Context, userID int) ([]models.WishlistItem, error) {
	f.fetchCalls++
	return f.items[userID], nil
}

func (f *fakeWishlistAPI) AddToWishlist(_ context.Context, userID, productID int) error {
	f.addCalls++
	f.items[userID] = append(f.items[userID], models.WishlistItem{
		ID:      len(f.items[userID]) + 1,
		Product: models.WishlistProduct{ID: productID},
	})
	return nil
}

func (f *fakeWishlistAPI) RemoveFromWishlist(_ context.Context, userID, productID int) error {
	kept := f.items[userID][:0]
	for _, it := range f.items[userID] {
		if it.Product.ID != productID {
			kept = append(kept, it)
		}
	}
	f.items[userID] = kept
	return nil
}

func newWishlistFixture(user *models.User) (*WishlistService, *fakeWishlistAPI) {
	remote := &fakeWishlistAPI{items: map[int][]models.WishlistItem{}}
	return NewWishlistService(remote, &fakeSession{user: user}, logging.NewDefault()), remote
}

func TestWishlist_RequiresSession(t *testing.T) {
	svc, remote := newWishlistFixture(nil)

	_, err := svc.List(context.Background())
	require.ErrorIs(t, err, common.ErrAuthRequired)

	_, err = svc.Add(context.Background(), 1)
	require.ErrorIs(t, err, common.ErrAuthRequired)

	_, err = svc.Remove(context.Background(), 1)
	require.ErrorIs(t, err, common.ErrAuthRequired)

	require.Zero(t, remote.fetchCalls)
	require.Zero(t, remote.addCalls)
}

func TestWishlist_AddRefetchesList(t *testing.T) {
	svc, remote := newWishlistFixture(&models.User{ID: 7})
	ctx := context.Background()

	items, err := svc.Add(ctx, 3)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 3, items[0].Product.ID)
	require.Equal(t, 1, remote.addCalls)
	require.Equal(t, 1, remote.fetchCalls) // mutation always re-fetches

	items, err = svc.Remove(ctx, 3)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestWishlist_Contains(t *testing.T) {
	items := []models.WishlistItem{{ID: 1, Product: models.WishlistProduct{ID: 5}}}
	require.True(t, Contains(items, 5))
	require.False(t, Contains(items, 6))
}
