// Package cart implements the local cart store. It caches the last snapshot
// the server reported, funnels mutations through the API, and announces every
// successful mutation on the shared broadcaster so that the badge, the cart
// page, and the checkout see the same numbers without holding references to
// each other.
package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/ekozlova/artshop/internal/client/api"
	"github.com/ekozlova/artshop/internal/client/bus"
	"github.com/ekozlova/artshop/internal/client/models"
	"github.com/ekozlova/artshop/internal/logging"
)

// API is the slice of the commerce client the store needs.
type API interface {
	GetCart(ctx context.Context) (*api.CartPayload, error)
	AddCartItem(ctx context.Context, productId string, qty int) error
	DeleteCartItem(ctx context.Context, lineId string) error
}

// Store holds the last-known cart state.
//
// Contract:
//   - Refresh replaces the whole snapshot from the server; a failed refresh
//     leaves the previous snapshot intact.
//   - AddItem/RemoveItem issue exactly one mutating call each and, only on
//     success, refresh and publish exactly one change event. A failed
//     mutation changes nothing and publishes nothing.
//   - No totals are ever computed locally.
type Store struct {
	client  API
	changes *bus.Broadcaster
	log     logging.Logger

	mu   sync.Mutex
	snap models.CartSnapshot
}

func NewStore(client API, changes *bus.Broadcaster, log logging.Logger) *Store {
	return &Store{client: client, changes: changes, log: log}
}

// Refresh fetches the cart and replaces the snapshot, bumping its revision.
// When the server omits a final total the subtotal stands in for it, so the
// invariant FinalTotal <= Subtotal holds from the first fetch.
func (s *Store) Refresh(ctx context.Context) error {
	payload, err := s.client.GetCart(ctx)
	if err != nil {
		return fmt.Errorf("cart refresh: %w", err)
	}

	final := payload.FinalTotal
	if final == 0 || final > payload.Total {
		final = payload.Total
	}

	s.mu.Lock()
	s.snap = models.CartSnapshot{
		Lines:      payload.Lines,
		Subtotal:   payload.Total,
		FinalTotal: final,
		Revision:   s.snap.Revision + 1,
	}
	s.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() models.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.snap
	snap.Lines = append([]models.CartLine(nil), s.snap.Lines...)
	return snap
}

// LineCount is the badge number: the count of cart lines, not the summed
// quantity.
func (s *Store) LineCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.LineCount()
}

// AddItem puts qty units of a product in the cart.
func (s *Store) AddItem(ctx context.Context, productId string, qty int) error {
	if qty < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", qty)
	}
	if err := s.client.AddCartItem(ctx, productId, qty); err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}
	return s.afterMutation(ctx)
}

// RemoveItem deletes one cart line by its entry id.
func (s *Store) RemoveItem(ctx context.Context, lineId string) error {
	if err := s.client.DeleteCartItem(ctx, lineId); err != nil {
		return fmt.Errorf("remove from cart: %w", err)
	}
	return s.afterMutation(ctx)
}

// afterMutation re-fetches the authoritative state and then announces the
// change. A refresh failure after an acknowledged mutation is reported to the
// caller, but the event is still published: the server state did change and
// other surfaces must get the chance to catch up on their own.
func (s *Store) afterMutation(ctx context.Context) error {
	err := s.Refresh(ctx)
	if err != nil {
		s.log.Warn(ctx, "refresh after cart mutation failed", "error", err)
	}
	s.changes.Publish()
	return err
}

// SetFinalTotal overlays a server-recomputed final total on the snapshot,
// leaving lines and subtotal untouched. Used by the coupon engine.
func (s *Store) SetFinalTotal(total float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.FinalTotal = total
}
