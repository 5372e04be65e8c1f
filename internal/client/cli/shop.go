package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (a *App) listProducts(ctx context.Context) {
	products, err := a.client.GetProducts(ctx)
	if err != nil {
		printlnFn("error:", err)
		return
	}
	for _, p := range products {
		mark := " "
		if a.favs.Contains(p.Id) {
			mark = "*"
		}
		printlnFn(fmt.Sprintf("%s %-8s %-30s %8.2f  %s", mark, p.Id, p.Name, p.Price, p.Artist))
	}
}

func (a *App) showProduct(ctx context.Context, args []string) {
	if len(args) == 0 {
		printlnFn("Usage: show <product-id>")
		return
	}
	products, err := a.client.GetProducts(ctx)
	if err != nil {
		printlnFn("error:", err)
		return
	}
	for _, p := range products {
		if p.Id != args[0] {
			continue
		}
		printlnFn(fmt.Sprintf("%s by %s, %.2f", p.Name, p.Artist, p.Price))
		if p.Description != "" {
			printlnFn(p.Description)
		}
		if p.ImageURL != "" {
			printlnFn("Image:", p.ImageURL)
		}
		if a.favs.Contains(p.Id) {
			printlnFn("(in favorites)")
		}
		return
	}
	printlnFn("No product with id", args[0])
}

func (a *App) addToCart(ctx context.Context, args []string) {
	if len(args) == 0 {
		printlnFn("Usage: add <product-id> [qty]")
		return
	}
	qty := 1
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			printlnFn("qty must be a positive integer")
			return
		}
		qty = n
	}
	if err := a.store.AddItem(ctx, args[0], qty); err != nil {
		printlnFn("error:", err)
	}
}

func (a *App) removeFromCart(ctx context.Context, args []string) {
	if len(args) == 0 {
		printlnFn("Usage: remove <line-id>")
		return
	}
	if err := a.store.RemoveItem(ctx, args[0]); err != nil {
		printlnFn("error:", err)
	}
}

func (a *App) showCart(ctx context.Context) {
	if err := a.store.Refresh(ctx); err != nil {
		printlnFn("error:", err)
		return
	}
	snap := a.store.Snapshot()
	if len(snap.Lines) == 0 {
		printlnFn("Cart is empty.")
		return
	}
	for _, l := range snap.Lines {
		printlnFn(fmt.Sprintf("%-8s %-30s x%-3d %8.2f", l.Id, l.ProductName, l.Quantity, l.LineTotal))
	}
	printlnFn(fmt.Sprintf("Subtotal: %.2f", snap.Subtotal))
	if snap.FinalTotal != snap.Subtotal {
		printlnFn(fmt.Sprintf("Total after coupon: %.2f", snap.FinalTotal))
	}
}

func (a *App) applyCoupon(ctx context.Context, args []string) {
	if len(args) == 0 {
		printlnFn("Usage: coupon <code>")
		return
	}
	final, err := a.coupons.Apply(ctx, args[0])
	if err != nil {
		printlnFn("error:", err)
		return
	}
	printlnFn(fmt.Sprintf("Coupon applied, total is now %.2f", final))
}

func (a *App) toggleFavorite(ctx context.Context, args []string) {
	if len(args) == 0 {
		printlnFn("Usage: fav <product-id>")
		return
	}
	if err := a.favs.Toggle(ctx, args[0]); err != nil {
		printlnFn("error:", err)
		return
	}
	if a.favs.Contains(args[0]) {
		printlnFn("Added to favorites.")
	} else {
		printlnFn("Removed from favorites.")
	}
}

func (a *App) listFavorites(ctx context.Context) {
	products, err := a.client.GetProducts(ctx)
	if err != nil {
		printlnFn("error:", err)
		return
	}
	marked := a.favs.Filter(products)
	if len(marked) == 0 {
		printlnFn("No favorites yet.")
		return
	}
	for _, p := range marked {
		printlnFn(fmt.Sprintf("%-8s %-30s %8.2f", p.Id, p.Name, p.Price))
	}
}
