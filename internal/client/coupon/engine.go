// Package coupon applies discount codes to the current cart. Eligibility and
// discount math are entirely server-side; the client only forwards the code
// and overlays the recomputed final total.
package coupon

import (
	"context"
	"fmt"

	"github.com/ekozlova/artshop/internal/client/cart"
)

// API is the slice of the commerce client the engine needs.
type API interface {
	ApplyCoupon(ctx context.Context, code string) (float64, error)
}

// Engine submits coupon codes against the cart held by the store.
type Engine struct {
	client API
	store  *cart.Store
}

func NewEngine(client API, store *cart.Store) *Engine {
	return &Engine{client: client, store: store}
}

// Apply posts code against the current cart. On success the server's
// recomputed final total replaces the snapshot's, and is returned. On
// rejection (unknown, expired, or disabled code) the snapshot keeps its prior
// final total and the server's message comes back as the error.
//
// Re-applying the same valid code yields the same total: the server computes
// the discount from the subtotal, not from the previously discounted price.
func (e *Engine) Apply(ctx context.Context, code string) (float64, error) {
	if code == "" {
		return 0, fmt.Errorf("coupon code is empty")
	}

	final, err := e.client.ApplyCoupon(ctx, code)
	if err != nil {
		return 0, fmt.Errorf("apply coupon %q: %w", code, err)
	}

	e.store.SetFinalTotal(final)
	return final, nil
}
