// Package cart implements the Local Cart Store: a per-client list of product
// lines persisted to the durable state store under the "cart" key. The cart
// never talks to the network; the authoritative record of a purchase is the
// order the server persists at checkout.
package cart

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/printdvor/storefront-cli/internal/client/models"
	"github.com/printdvor/storefront-cli/internal/client/state"
	"github.com/printdvor/storefront-cli/internal/logging"
)

const storeKey = "cart"

// Notifier surfaces user-visible notifications raised by cart operations.
// The CLI prints them; tests capture them.
type Notifier interface {
	Success(message, description string)
	Warning(message, description string)
	Error(message, description string)
}

// Store is the in-memory cart backed by the durable state store. Lines are
// unique by product id and keep insertion order. Quantities stay within
// [1, max]; operations that would exceed the cap clamp and raise a warning.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	log    logging.Logger
	notify Notifier
	max    int
	lines  []models.CartLine
}

// NewStore builds a Store hydrated from the durable state store. Read
// failures and malformed data degrade to an empty cart, never an error.
func NewStore(ctx context.Context, db *sql.DB, log logging.Logger, notify Notifier, maxQuantity int) *Store {
	s := &Store{db: db, log: log, notify: notify, max: maxQuantity}
	s.hydrate(ctx)
	return s
}

func (s *Store) hydrate(ctx context.Context) {
	repo := state.NewSQLiteRepository(s.db)

	data, err := repo.Get(ctx, storeKey)
	if err != nil {
		s.log.Warn(ctx, "cart hydration failed, starting empty", "error", err)
		return
	}
	if data == nil {
		return
	}

	var lines []models.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		s.log.Warn(ctx, "persisted cart is malformed, starting empty", "error", err)
		return
	}

	s.mu.Lock()
	s.lines = lines
	s.mu.Unlock()
}

// persist writes the whole cart. Caller must hold s.mu. Write failures are
// logged, not raised: in-memory state stays authoritative for this run.
func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.lines)
	if err != nil {
		s.log.Error(ctx, "failed to marshal cart", "error", err)
		return
	}

	repo := state.NewSQLiteRepository(s.db)
	if err := repo.Set(ctx, storeKey, data); err != nil {
		s.log.Warn(ctx, "failed to persist cart", "error", err)
	}
}

// Add merges a product into the cart: an existing line's quantity grows by
// one (clamped to the max), a new product gets a line with quantity 1.
func (s *Store) Add(ctx context.Context, line models.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.lines {
		if s.lines[i].ID == line.ID {
			found = true
			if s.lines[i].Quantity >= s.max {
				s.lines[i].Quantity = s.max
				s.notify.Warning("Maximum quantity",
					fmt.Sprintf("You can order at most %d units of one product", s.max))
			} else {
				s.lines[i].Quantity++
			}
			break
		}
	}

	if !found {
		line.Quantity = 1
		s.lines = append(s.lines, line)
	}

	s.persist(ctx)
	s.notify.Success("Item added to cart",
		fmt.Sprintf("%s has been added to your cart", line.Name))
}

// UpdateQuantity sets the line's quantity to max(1, min(q, max)). A request
// above the cap raises the max-quantity warning exactly once. Unknown product
// ids are ignored.
func (s *Store) UpdateQuantity(ctx context.Context, productID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity > s.max {
		s.notify.Warning("Maximum quantity",
			fmt.Sprintf("You can order at most %d units of one product", s.max))
		quantity = s.max
	}
	if quantity < 1 {
		quantity = 1
	}

	for i := range s.lines {
		if s.lines[i].ID == productID {
			s.lines[i].Quantity = quantity
			break
		}
	}

	s.persist(ctx)
}

// Remove deletes the line for productID.
func (s *Store) Remove(ctx context.Context, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.lines[:0]
	for _, l := range s.lines {
		if l.ID != productID {
			kept = append(kept, l)
		}
	}
	s.lines = kept

	s.persist(ctx)
}

// Clear empties the cart. Invoked after a successful order submission.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = []models.CartLine{}
	s.persist(ctx)
}

// Lines returns a copy of the cart lines in insertion order.
func (s *Store) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Len returns the number of lines.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// TotalPrice is the sum of price*quantity over all lines. Derived, never
// stored.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, l := range s.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}
