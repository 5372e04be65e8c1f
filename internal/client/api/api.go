// Package api defines the commerce backend contract consumed by the client
// and its HTTP/JSON implementation. The backend is authoritative for all
// pricing and inventory; the client never recomputes totals.
package api

import (
	"context"

	"github.com/ekozlova/artshop/internal/client/models"
)

// CartPayload is the shape of a GET cart response.
type CartPayload struct {
	Lines      []models.CartLine `json:"carts"`
	Total      float64           `json:"total"`
	FinalTotal float64           `json:"final_total"`
}

// Client is the remote commerce API.
//
// Contract:
//   - Storefront calls (cart, coupon, order creation) need no token.
//   - Admin-scoped calls attach the session bearer token; server-reported
//     token invalidity surfaces as ErrUnauthorized.
//   - Business-rule rejections (bad coupon, already paid) surface as *Error
//     carrying the server's message verbatim.
//
// All methods honor context cancellation.
type Client interface {
	// Storefront.
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetCart(ctx context.Context) (*CartPayload, error)
	AddCartItem(ctx context.Context, productId string, qty int) error
	DeleteCartItem(ctx context.Context, lineId string) error
	ApplyCoupon(ctx context.Context, code string) (float64, error)
	CreateOrder(ctx context.Context, form models.ContactForm, idempotencyKey string) (*models.Order, error)
	// GetOrder backs the storefront's resume-checkout flow.
	GetOrder(ctx context.Context, id string) (*models.Order, error)

	// Admin back-office.
	GetOrders(ctx context.Context) ([]models.Order, error)
	Login(ctx context.Context, username string, password []byte) (string, error)
	Logout(ctx context.Context) error
	CreateProduct(ctx context.Context, p models.Product) (*models.Product, error)
	UpdateProduct(ctx context.Context, p models.Product) error
	DeleteProduct(ctx context.Context, id string) error
	CreateCoupon(ctx context.Context, c models.Coupon) error
	DeleteCoupon(ctx context.Context, code string) error
	MarkOrderPaid(ctx context.Context, orderId string) error
	DeleteOrder(ctx context.Context, orderId string) error
}
