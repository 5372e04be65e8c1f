package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

func (a *App) prompt() string {
	s := fmt.Sprintf("cart:%d", a.badge.Load())
	if a.adminUser != "" {
		s += " " + a.adminUser
	}
	return s
}

func (a *App) root(ctx context.Context) {
	printlnFn("artshop (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("shop (%s)> ", a.prompt())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Store: products, show <id>, add <id> [qty], remove <line>, cart, coupon <code>, fav <id>, favs")
			printlnFn("Checkout: checkout, next, back, resume <order-id>")
			if a.isAdmin() {
				printlnFn("Admin: orders, order <id>, paid <id>, delorder <id>, addproduct, updproduct <id> <price>, delproduct <id>, addcoupon, delcoupon <code>, logout")
			} else {
				printlnFn("Admin: login")
			}

		case "products":
			a.listProducts(ctx)
		case "show":
			a.showProduct(ctx, args)
		case "add":
			a.addToCart(ctx, args)
		case "remove":
			a.removeFromCart(ctx, args)
		case "cart":
			a.showCart(ctx)
		case "coupon":
			a.applyCoupon(ctx, args)

		case "fav":
			a.toggleFavorite(ctx, args)
		case "favs":
			a.listFavorites(ctx)

		case "checkout":
			a.startCheckout(ctx)
		case "next":
			a.advanceCheckout(ctx)
		case "back":
			a.backCheckout()
		case "resume":
			a.resumeCheckout(ctx, args)

		case "login":
			a.login(ctx)
		case "logout":
			a.logout(ctx)
		case "orders":
			a.listOrders(ctx)
		case "order":
			a.showOrder(ctx, args)
		case "paid":
			a.markOrderPaid(ctx, args)
		case "delorder":
			a.deleteOrder(ctx, args)
		case "addproduct":
			a.addProduct(ctx)
		case "updproduct":
			a.updateProduct(ctx, args)
		case "delproduct":
			a.deleteProduct(ctx, args)
		case "addcoupon":
			a.addCoupon(ctx)
		case "delcoupon":
			a.deleteCoupon(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
