// Package state implements the client's durable key-value store, the local
// analogue of per-browser storage. Values are best-effort, non-authoritative
// mirrors of server state (session tokens, cached user profile, cart).
package state

import "context"

type Repository interface {
	// Get returns the value for key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
