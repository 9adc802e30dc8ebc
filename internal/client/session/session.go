// Package session implements the Local Session Store: the client's in-memory
// record of the authenticated user and tokens, mirrored to the durable state
// store under the keys "token", "refreshToken" and "user".
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/printdvor/storefront-cli/internal/client/models"
	"github.com/printdvor/storefront-cli/internal/client/state"
	"github.com/printdvor/storefront-cli/internal/dbx"
	"github.com/printdvor/storefront-cli/internal/logging"
)

const (
	keyToken        = "token"
	keyRefreshToken = "refreshToken"
	keyUser         = "user"
)

// Store holds the current session. Reads are synchronous and mutex-guarded.
// Mutations replace the session wholesale: token and user are always both
// present or both absent, never one without the other.
type Store struct {
	mu   sync.RWMutex
	db   *sql.DB
	log  logging.Logger
	sess models.Session
}

// NewStore builds a Store hydrated from the durable state store. Absent or
// malformed persisted data yields the empty session; hydration never fails.
func NewStore(ctx context.Context, db *sql.DB, log logging.Logger) *Store {
	s := &Store{db: db, log: log}
	s.hydrate(ctx)
	return s
}

func (s *Store) hydrate(ctx context.Context) {
	repo := state.NewSQLiteRepository(s.db)

	var sess models.Session

	if v, err := repo.Get(ctx, keyToken); err == nil && v != nil {
		sess.Token = string(v)
	}
	if v, err := repo.Get(ctx, keyRefreshToken); err == nil && v != nil {
		sess.RefreshToken = string(v)
	}
	if v, err := repo.Get(ctx, keyUser); err == nil && v != nil {
		var u models.User
		if err := json.Unmarshal(v, &u); err == nil {
			sess.User = &u
		}
	}

	// A partial record is discarded wholesale: no valid session has a token
	// without a user or a user without a token.
	if !sess.Valid() {
		s.log.Warn(ctx, "discarding partial persisted session")
		sess = models.Session{}
	}

	s.mu.Lock()
	s.sess = sess
	s.mu.Unlock()
}

// SetCredentials replaces the full session and persists all three fields in
// a single transaction. The in-memory session is always applied; persistence
// failures are returned so the caller can log them, but the durable store is
// a best-effort mirror, not the authority.
func (s *Store) SetCredentials(ctx context.Context, token, refreshToken string, user *models.User) error {
	if token == "" || user == nil {
		return fmt.Errorf("refusing partial session: token and user must both be set")
	}

	userData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	u := *user
	s.mu.Lock()
	s.sess = models.Session{Token: token, RefreshToken: refreshToken, User: &u}
	s.mu.Unlock()

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := state.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyToken, []byte(token)); err != nil {
			return err
		}
		if err := repo.Set(ctx, keyRefreshToken, []byte(refreshToken)); err != nil {
			return err
		}
		return repo.Set(ctx, keyUser, userData)
	})
}

// SetTokens swaps the token pair after a refresh, keeping the current user.
func (s *Store) SetTokens(ctx context.Context, token, refreshToken string) error {
	s.mu.Lock()
	if s.sess.User == nil {
		s.mu.Unlock()
		return fmt.Errorf("no active session to refresh")
	}
	s.sess.Token = token
	s.sess.RefreshToken = refreshToken
	s.mu.Unlock()

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := state.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, keyRefreshToken, []byte(refreshToken))
	})
}

// Logout clears the session from memory and from the durable store.
// Idempotent: logging out twice is a no-op the second time.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.sess = models.Session{}
	s.mu.Unlock()

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := state.NewSQLiteRepository(tx)
		for _, key := range []string{keyToken, keyRefreshToken, keyUser} {
			if err := repo.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
}

// Token returns the current access token, or "" when signed out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess.Token
}

// RefreshToken returns the current refresh token, or "".
func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess.RefreshToken
}

// User returns a copy of the signed-in user, or nil.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.sess.User == nil {
		return nil
	}
	u := *s.sess.User
	return &u
}

// Session returns a snapshot of the whole session.
func (s *Store) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess := s.sess
	if sess.User != nil {
		u := *sess.User
		sess.User = &u
	}
	return sess
}

// TokenExpired peeks at the unverified JWT exp claim of the access token so
// the transport can refresh proactively. Tokens that do not parse as JWTs
// are treated as non-expiring; the server stays the authority either way.
func (s *Store) TokenExpired() bool {
	token := s.Token()
	if token == "" {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
