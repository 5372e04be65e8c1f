package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ekozlova/artshop/internal/client/checkout"
	"github.com/ekozlova/artshop/internal/client/models"
)

func (a *App) startCheckout(ctx context.Context) {
	if err := a.store.Refresh(ctx); err != nil {
		printlnFn("error:", err)
		return
	}
	if a.store.LineCount() == 0 {
		printlnFn("Cart is empty, nothing to check out.")
		return
	}
	a.wizard = checkout.NewController(a.client, a.store, a.cartChanges)
	printlnFn("Checkout started at step:", a.wizard.Step().String())
	a.showCart(ctx)
	printlnFn("Type 'next' to continue.")
}

// resumeCheckout re-enters the wizard at confirmation for an unpaid order,
// without the creation side effect.
func (a *App) resumeCheckout(ctx context.Context, args []string) {
	if len(args) == 0 {
		printlnFn("Usage: resume <order-id>")
		return
	}
	order, err := a.client.GetOrder(ctx, args[0])
	if err != nil {
		printlnFn("error:", err)
		return
	}
	if order.IsPaid {
		printlnFn("Order", order.Id, "is already paid.")
		return
	}
	a.wizard = checkout.Resume(a.client, a.store, a.cartChanges, order.Id)
	printlnFn("Resumed checkout for order", order.Id)
}

func (a *App) advanceCheckout(ctx context.Context) {
	if a.wizard == nil {
		printlnFn("No checkout in progress; type 'checkout' first.")
		return
	}

	if a.wizard.Step() == checkout.StepContactInfo && a.wizard.Form() == (models.ContactForm{}) {
		form, err := a.readContactForm()
		if err != nil {
			printlnFn("error:", err)
			return
		}
		a.wizard.SetForm(form)
	}

	if err := a.wizard.Advance(ctx); err != nil {
		printlnFn("error:", err)
		if errors.Is(err, checkout.ErrFormIncomplete) {
			// Clear the rejected form so 'next' prompts for it again.
			a.wizard.SetForm(models.ContactForm{})
			printlnFn("Type 'next' to re-enter the contact details.")
		}
		return
	}

	switch a.wizard.Step() {
	case checkout.StepContactInfo:
		printlnFn("Step:", a.wizard.Step().String())
		printlnFn("Type 'next' to enter contact details, 'back' to review the cart.")
	case checkout.StepConfirmation:
		printlnFn("Order placed, id:", a.wizard.OrderId())
	}
}

func (a *App) backCheckout() {
	if a.wizard == nil {
		printlnFn("No checkout in progress.")
		return
	}
	if err := a.wizard.Back(); err != nil {
		printlnFn("error:", err)
		return
	}
	printlnFn("Step:", a.wizard.Step().String())
}

func (a *App) readContactForm() (models.ContactForm, error) {
	var f models.ContactForm
	var err error

	if f.Name, err = promptLine(a.reader, "Full name", os.Stdout); err != nil {
		return f, fmt.Errorf("reading name: %w", err)
	}
	if f.Email, err = promptLine(a.reader, "Email", os.Stdout); err != nil {
		return f, fmt.Errorf("reading email: %w", err)
	}
	if f.Phone, err = promptLine(a.reader, "Phone", os.Stdout); err != nil {
		return f, fmt.Errorf("reading phone: %w", err)
	}
	if f.Address, err = promptLine(a.reader, "Shipping address", os.Stdout); err != nil {
		return f, fmt.Errorf("reading address: %w", err)
	}
	if f.Message, err = promptLine(a.reader, "Message (optional)", os.Stdout); err != nil {
		return f, fmt.Errorf("reading message: %w", err)
	}
	return f, nil
}
