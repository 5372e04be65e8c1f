// Package favorites keeps the client-persisted set of marked product ids.
// The set is independent of the cart but follows the same notification idiom:
// a toggle persists synchronously, then announces the change on a broadcaster
// so other surfaces refresh themselves instead of reloading wholesale.
package favorites

import (
	"context"
	"fmt"
	"sync"

	"github.com/ekozlova/artshop/internal/client/bus"
	"github.com/ekozlova/artshop/internal/client/models"
	"github.com/ekozlova/artshop/internal/client/repositories/favorites"
)

// Registry is the in-memory favorite set backed by the local database.
type Registry struct {
	repo    favorites.Repository
	changes *bus.Broadcaster

	mu  sync.Mutex
	set map[string]struct{}
}

// NewRegistry loads the persisted set and returns a registry over it.
func NewRegistry(ctx context.Context, repo favorites.Repository, changes *bus.Broadcaster) (*Registry, error) {
	ids, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading favorites: %w", err)
	}

	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return &Registry{repo: repo, changes: changes, set: set}, nil
}

// Toggle flips membership for productId and persists the full set before
// returning. On a persistence failure the in-memory set is left as it was
// and nothing is announced.
func (r *Registry) Toggle(ctx context.Context, productId string) error {
	r.mu.Lock()
	_, present := r.set[productId]

	next := make([]string, 0, len(r.set)+1)
	for id := range r.set {
		if id != productId {
			next = append(next, id)
		}
	}
	if !present {
		next = append(next, productId)
	}

	if err := r.repo.Replace(ctx, next); err != nil {
		r.mu.Unlock()
		return fmt.Errorf("saving favorites: %w", err)
	}

	if present {
		delete(r.set, productId)
	} else {
		r.set[productId] = struct{}{}
	}
	r.mu.Unlock()

	r.changes.Publish()
	return nil
}

// Contains reports membership.
func (r *Registry) Contains(productId string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.set[productId]
	return ok
}

// Len returns the set size.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.set)
}

// Filter returns the products whose ids are favorites, preserving the input
// order.
func (r *Registry) Filter(products []models.Product) []models.Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if _, ok := r.set[p.Id]; ok {
			out = append(out, p)
		}
	}
	return out
}
