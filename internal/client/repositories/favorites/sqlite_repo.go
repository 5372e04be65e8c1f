package favorites

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ekozlova/artshop/internal/dbx"
)

// SQLiteRepository stores the favorite set in the local client database.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// List returns every stored product id, oldest first.
func (r *SQLiteRepository) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT product_id FROM favorites ORDER BY added_at, product_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read favorites: %w", err)
	}
	return ids, nil
}

// Replace rewrites the whole set atomically. The registry persists the full
// set on every toggle, so this is the only write path.
func (r *SQLiteRepository) Replace(ctx context.Context, ids []string) error {
	return dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM favorites`); err != nil {
			return fmt.Errorf("failed to clear favorites: %w", err)
		}
		for _, id := range ids {
			_, err := tx.ExecContext(ctx, `INSERT INTO favorites (product_id) VALUES (?)`, id)
			if err != nil {
				return fmt.Errorf("failed to save favorite %s: %w", id, err)
			}
		}
		return nil
	})
}
