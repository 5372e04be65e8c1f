package favorites

import "context"

// Repository persists the favorite product ids.
type Repository interface {
	List(ctx context.Context) ([]string, error)
	// Replace overwrites the stored set with ids in a single transaction.
	Replace(ctx context.Context, ids []string) error
}
