package session

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/printdvor/storefront-cli/internal/client/models"
	"github.com/printdvor/storefront-cli/internal/client/state"
	"github.com/printdvor/storefront-cli/internal/logging"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+name+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS state (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM state`)
	require.NoError(t, err)
	return db
}

func testUser() *models.User {
	return &models.User{ID: 7, Email: "user@example.com", Phone: "+79001234567", Role: models.RoleUser}
}

func TestSetCredentials_PersistsAllThreeFields(t *testing.T) {
	db := setupDB(t, "sess_set")
	ctx := context.Background()
	s := NewStore(ctx, db, logging.NewDefault())

	require.NoError(t, s.SetCredentials(ctx, "tok", "ref", testUser()))

	require.Equal(t, "tok", s.Token())
	require.Equal(t, "ref", s.RefreshToken())
	require.Equal(t, 7, s.User().ID)

	repo := state.NewSQLiteRepository(db)
	for _, key := range []string{"token", "refreshToken", "user"} {
		v, err := repo.Get(ctx, key)
		require.NoError(t, err)
		require.NotNil(t, v, key)
	}
}

func TestSetCredentials_RejectsPartialSession(t *testing.T) {
	db := setupDB(t, "sess_partial")
	ctx := context.Background()
	s := NewStore(ctx, db, logging.NewDefault())

	require.Error(t, s.SetCredentials(ctx, "", "ref", testUser()))
	require.Error(t, s.SetCredentials(ctx, "tok", "ref", nil))
	require.True(t, s.Session().Empty())
}

func TestLogout_ClearsMemoryAndStore_Idempotent(t *testing.T) {
	db := setupDB(t, "sess_logout")
	ctx := context.Background()
	s := NewStore(ctx, db, logging.NewDefault())

	require.NoError(t, s.SetCredentials(ctx, "tok", "ref", testUser()))
	require.NoError(t, s.Logout(ctx))

	require.Empty(t, s.Token())
	require.Empty(t, s.RefreshToken())
	require.Nil(t, s.User())

	repo := state.NewSQLiteRepository(db)
	for _, key := range []string{"token", "refreshToken", "user"} {
		v, err := repo.Get(ctx, key)
		require.NoError(t, err)
		require.Nil(t, v, key)
	}

	// Second logout is a no-op.
	require.NoError(t, s.Logout(ctx))
}

func TestHydrate_RestoresPersistedSession(t *testing.T) {
	db := setupDB(t, "sess_hydrate")
	ctx := context.Background()

	s1 := NewStore(ctx, db, logging.NewDefault())
	require.NoError(t, s1.SetCredentials(ctx, "tok", "ref", testUser()))

	s2 := NewStore(ctx, db, logging.NewDefault())
	require.Equal(t, "tok", s2.Token())
	require.Equal(t, "user@example.com", s2.User().Email)
}

func TestHydrate_DiscardsPartialRecord(t *testing.T) {
	db := setupDB(t, "sess_broken")
	ctx := context.Background()

	// A token with no user violates the session invariant.
	repo := state.NewSQLiteRepository(db)
	require.NoError(t, repo.Set(ctx, "token", []byte("orphan")))

	s := NewStore(ctx, db, logging.NewDefault())
	require.True(t, s.Session().Empty())
}

func TestHydrate_MalformedUserYieldsEmptySession(t *testing.T) {
	db := setupDB(t, "sess_malformed")
	ctx := context.Background()

	repo := state.NewSQLiteRepository(db)
	require.NoError(t, repo.Set(ctx, "token", []byte("tok")))
	require.NoError(t, repo.Set(ctx, "user", []byte("{not json")))

	s := NewStore(ctx, db, logging.NewDefault())
	require.True(t, s.Session().Empty())
}

func TestSetTokens_KeepsUser(t *testing.T) {
	db := setupDB(t, "sess_tokens")
	ctx := context.Background()
	s := NewStore(ctx, db, logging.NewDefault())

	require.NoError(t, s.SetCredentials(ctx, "tok", "ref", testUser()))
	require.NoError(t, s.SetTokens(ctx, "tok2", "ref2"))

	require.Equal(t, "tok2", s.Token())
	require.Equal(t, "ref2", s.RefreshToken())
	require.Equal(t, 7, s.User().ID)
}

func TestSetTokens_WithoutSessionFails(t *testing.T) {
	db := setupDB(t, "sess_tokens_none")
	ctx := context.Background()
	s := NewStore(ctx, db, logging.NewDefault())

	require.Error(t, s.SetTokens(ctx, "tok", "ref"))
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestTokenExpired(t *testing.T) {
	db := setupDB(t, "sess_exp")
	ctx := context.Background()
	s := NewStore(ctx, db, logging.NewDefault())

	// No token: nothing to refresh.
	require.False(t, s.TokenExpired())

	// Opaque (non-JWT) token: treated as non-expiring.
	require.NoError(t, s.SetCredentials(ctx, "opaque-token", "ref", testUser()))
	require.False(t, s.TokenExpired())

	require.NoError(t, s.SetTokens(ctx, signedToken(t, time.Now().Add(time.Hour)), "ref"))
	require.False(t, s.TokenExpired())

	require.NoError(t, s.SetTokens(ctx, signedToken(t, time.Now().Add(-time.Minute)), "ref"))
	require.True(t, s.TokenExpired())
}
