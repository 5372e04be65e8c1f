// Package checkout drives the three-step order wizard. Steps only move
// forward (one explicit back edge aside), and the single remote side effect,
// order creation, happens exactly once per session.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ekozlova/artshop/internal/client/bus"
	"github.com/ekozlova/artshop/internal/client/cart"
	"github.com/ekozlova/artshop/internal/client/models"
	"github.com/google/uuid"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrOrderInFlight = errors.New("order creation already in progress")
	ErrInvalidBack   = errors.New("cannot go back from this step")
)

// API is the slice of the commerce client the wizard needs.
type API interface {
	CreateOrder(ctx context.Context, form models.ContactForm, idempotencyKey string) (*models.Order, error)
}

// Controller is the checkout wizard state machine.
//
// Contract:
//   - Advance from CartReview requires at least one cart line.
//   - Advance from ContactInfo requires the form to validate locally, then
//     creates the order; only a successful creation moves to Confirmation.
//   - A second Advance while creation is pending returns ErrOrderInFlight and
//     never issues a second request.
//   - OrderId is set once, on successful creation, and never changes.
//   - Advance at Confirmation is a no-op.
type Controller struct {
	client  API
	store   *cart.Store
	changes *bus.Broadcaster

	mu       sync.Mutex
	step     Step
	form     models.ContactForm
	orderId  string
	inFlight bool
	// idemKey is fixed per session so a retried creation after a transport
	// failure cannot produce a second order server-side.
	idemKey string
}

func NewController(client API, store *cart.Store, changes *bus.Broadcaster) *Controller {
	return &Controller{
		client:  client,
		store:   store,
		changes: changes,
		step:    StepCartReview,
		idemKey: uuid.NewString(),
	}
}

// Resume constructs a controller already at Confirmation, bound to an
// existing unpaid order. No creation side effect will ever run.
func Resume(client API, store *cart.Store, changes *bus.Broadcaster, orderId string) *Controller {
	c := NewController(client, store, changes)
	c.step = StepConfirmation
	c.orderId = orderId
	return c
}

// Step returns the current wizard step.
func (c *Controller) Step() Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// OrderId returns the created order's id, or "" before creation.
func (c *Controller) OrderId() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orderId
}

// SetForm stores the contact form. The form survives failed Advance attempts
// so the user can fix one field and retry.
func (c *Controller) SetForm(f models.ContactForm) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = f
}

// Form returns the stored contact form.
func (c *Controller) Form() models.ContactForm {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// Back moves from ContactInfo to CartReview, the only permitted backward
// transition.
func (c *Controller) Back() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.step != StepContactInfo {
		return fmt.Errorf("%w: %s", ErrInvalidBack, c.step)
	}
	c.step = StepCartReview
	return nil
}

// Advance attempts the current step's forward transition.
func (c *Controller) Advance(ctx context.Context) error {
	c.mu.Lock()

	switch c.step {
	case StepCartReview:
		defer c.mu.Unlock()
		if c.store.LineCount() == 0 {
			return ErrEmptyCart
		}
		c.step = StepContactInfo
		return nil

	case StepContactInfo:
		if c.inFlight {
			c.mu.Unlock()
			return ErrOrderInFlight
		}
		if err := validateForm(c.form); err != nil {
			c.mu.Unlock()
			return err
		}
		c.inFlight = true
		form := c.form
		key := c.idemKey
		c.mu.Unlock()

		return c.createOrder(ctx, form, key)

	default: // StepConfirmation is terminal.
		c.mu.Unlock()
		return nil
	}
}

// createOrder runs the one remote side effect of the wizard. The in-flight
// flag is already set; it is cleared whatever the outcome.
func (c *Controller) createOrder(ctx context.Context, form models.ContactForm, key string) error {
	order, err := c.client.CreateOrder(ctx, form, key)

	c.mu.Lock()
	c.inFlight = false
	if err != nil {
		// Stay at ContactInfo with the form intact.
		c.mu.Unlock()
		return fmt.Errorf("create order: %w", err)
	}
	c.orderId = order.Id
	c.step = StepConfirmation
	c.mu.Unlock()

	// The server empties the cart when an order is placed; let every surface
	// refetch.
	c.changes.Publish()
	return nil
}
