package favorites

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:favrepo?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS favorites (
  product_id TEXT PRIMARY KEY,
  added_at   INTEGER NOT NULL DEFAULT (unixepoch())
);`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM favorites`)
	require.NoError(t, err)
	return db
}

func TestSQLiteRepository_ReplaceAndList(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	ids, err := r.List(ctx)
	require.NoError(t, err)
	require.Empty(t, ids)

	require.NoError(t, r.Replace(ctx, []string{"p1", "p2", "p3"}))
	ids, err = r.List(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"p1", "p2", "p3"}, ids)

	require.NoError(t, r.Replace(ctx, []string{"p2"}))
	ids, err = r.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"p2"}, ids)

	require.NoError(t, r.Replace(ctx, nil))
	ids, err = r.List(ctx)
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestSQLiteRepository_ReplaceIsAtomic(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Replace(ctx, []string{"p1"}))

	// A duplicate id violates the primary key; the whole rewrite must roll
	// back, keeping the previous set.
	err := r.Replace(ctx, []string{"p2", "p2"})
	require.Error(t, err)

	ids, err := r.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"p1"}, ids)
}
