package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ekozlova/artshop/internal/client/models"
)

func (a *App) login(ctx context.Context) {
	username, err := promptLine(a.reader, "Admin username", os.Stdout)
	if err != nil {
		printlnFn("error:", err)
		return
	}
	password, err := promptPassword(os.Stdout)
	if err != nil {
		printlnFn("error:", err)
		return
	}

	token, err := a.client.Login(ctx, username, password)
	if err != nil {
		printlnFn("login failed:", err)
		return
	}
	a.session.SetToken(token)
	a.adminUser = username
	printlnFn("Logged in as", username)
}

func (a *App) logout(ctx context.Context) {
	if !a.isAdmin() {
		printlnFn("Not logged in.")
		return
	}
	if err := a.client.Logout(ctx); err != nil {
		a.log.Warn(ctx, "server logout failed", "error", err)
	}
	a.adminUser = ""
	a.session.Invalidate()
	printlnFn("Logged out.")
}

func (a *App) listOrders(ctx context.Context) {
	orders, err := a.client.GetOrders(ctx)
	if err != nil {
		printlnFn("error:", err)
		return
	}
	for _, o := range orders {
		status := "unpaid"
		if o.IsPaid {
			status = "paid"
		}
		created := time.Unix(o.CreatedAt, 0).Format("2006-01-02 15:04")
		printlnFn(fmt.Sprintf("%-12s %8.2f  %-6s %s", o.Id, o.Total, status, created))
	}
}

func (a *App) showOrder(ctx context.Context, args []string) {
	if len(args) == 0 {
		printlnFn("Usage: order <id>")
		return
	}
	o, err := a.client.GetOrder(ctx, args[0])
	if err != nil {
		printlnFn("error:", err)
		return
	}
	printlnFn(fmt.Sprintf("Order %s, total %.2f, paid: %v", o.Id, o.Total, o.IsPaid))
	for _, l := range o.Lines {
		printlnFn(fmt.Sprintf("  %-30s x%-3d %8.2f", l.ProductName, l.Quantity, l.LineTotal))
	}
}

func (a *App) markOrderPaid(ctx context.Context, args []string) {
	if len(args) == 0 {
		printlnFn("Usage: paid <order-id>")
		return
	}
	if err := a.client.MarkOrderPaid(ctx, args[0]); err != nil {
		printlnFn("error:", err)
		return
	}
	printlnFn("Order", args[0], "marked paid.")
}

func (a *App) deleteOrder(ctx context.Context, args []string) {
	if len(args) == 0 {
		printlnFn("Usage: delorder <order-id>")
		return
	}
	if err := a.client.DeleteOrder(ctx, args[0]); err != nil {
		printlnFn("error:", err)
		return
	}
	// Deleting an order can return its items to the cart server-side.
	a.cartChanges.Publish()
	printlnFn("Order", args[0], "deleted.")
}

func (a *App) addProduct(ctx context.Context) {
	var p models.Product
	var err error

	if p.Name, err = promptLine(a.reader, "Product name", os.Stdout); err != nil {
		printlnFn("error:", err)
		return
	}
	if p.Artist, err = promptLine(a.reader, "Artist", os.Stdout); err != nil {
		printlnFn("error:", err)
		return
	}
	priceStr, err := promptLine(a.reader, "Price", os.Stdout)
	if err != nil {
		printlnFn("error:", err)
		return
	}
	if p.Price, err = strconv.ParseFloat(priceStr, 64); err != nil {
		printlnFn("price must be a number")
		return
	}

	created, err := a.client.CreateProduct(ctx, p)
	if err != nil {
		printlnFn("error:", err)
		return
	}
	printlnFn("Created product", created.Id)
}

// updateProduct re-prices an existing catalog entry. Price is the only field
// the back office edits after creation; anything else means delete-and-recreate.
func (a *App) updateProduct(ctx context.Context, args []string) {
	if len(args) != 2 {
		printlnFn("Usage: updproduct <id> <price>")
		return
	}
	price, err := strconv.ParseFloat(args[1], 64)
	if err != nil || price <= 0 {
		printlnFn("price must be a positive number")
		return
	}
	if err := a.client.UpdateProduct(ctx, models.Product{Id: args[0], Price: price}); err != nil {
		printlnFn("error:", err)
		return
	}
	printlnFn("Product", args[0], "updated.")
}

func (a *App) deleteProduct(ctx context.Context, args []string) {
	if len(args) == 0 {
		printlnFn("Usage: delproduct <id>")
		return
	}
	if err := a.client.DeleteProduct(ctx, args[0]); err != nil {
		printlnFn("error:", err)
		return
	}
	printlnFn("Product", args[0], "deleted.")
}

func (a *App) addCoupon(ctx context.Context) {
	var c models.Coupon
	var err error

	if c.Code, err = promptLine(a.reader, "Coupon code", os.Stdout); err != nil {
		printlnFn("error:", err)
		return
	}
	pctStr, err := promptLine(a.reader, "Percent off", os.Stdout)
	if err != nil {
		printlnFn("error:", err)
		return
	}
	if c.PercentOff, err = strconv.ParseFloat(pctStr, 64); err != nil {
		printlnFn("percent must be a number")
		return
	}
	daysStr, err := promptLine(a.reader, "Valid for (days)", os.Stdout)
	if err != nil {
		printlnFn("error:", err)
		return
	}
	days, err := strconv.Atoi(daysStr)
	if err != nil || days < 1 {
		printlnFn("days must be a positive integer")
		return
	}
	c.DueDate = time.Now().AddDate(0, 0, days).Unix()
	c.IsEnabled = true

	if err := a.client.CreateCoupon(ctx, c); err != nil {
		printlnFn("error:", err)
		return
	}
	printlnFn("Coupon", c.Code, "created.")
}

func (a *App) deleteCoupon(ctx context.Context, args []string) {
	if len(args) == 0 {
		printlnFn("Usage: delcoupon <code>")
		return
	}
	if err := a.client.DeleteCoupon(ctx, args[0]); err != nil {
		printlnFn("error:", err)
		return
	}
	printlnFn("Coupon", args[0], "deleted.")
}
