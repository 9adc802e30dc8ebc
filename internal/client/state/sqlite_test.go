package state

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:state_tests?mode=memory&cache=shared")
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

func TestSQLiteRepository_SetGet(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "token", []byte("abc")))

	got, err := repo.Get(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), got)
}

func TestSQLiteRepository_SetOverwrites(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "cart", []byte("[]")))
	require.NoError(t, repo.Set(ctx, "cart", []byte(`[{"id":1}]`)))

	got, err := repo.Get(ctx, "cart")
	require.NoError(t, err)
	require.Equal(t, []byte(`[{"id":1}]`), got)
}

func TestSQLiteRepository_GetMissingReturnsNil(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)

	got, err := repo.Get(context.Background(), "nope")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSQLiteRepository_DeleteAndClear(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "a", []byte("1")))
	require.NoError(t, repo.Set(ctx, "b", []byte("2")))

	require.NoError(t, repo.Delete(ctx, "a"))
	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, repo.Clear(ctx))
	got, err = repo.Get(ctx, "b")
	require.NoError(t, err)
	require.Nil(t, got)

	// Delete of an absent key stays quiet.
	require.NoError(t, repo.Delete(ctx, "a"))
}
