package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ekozlova/artshop/internal/client/models"
)

// TokenSource supplies the bearer token for admin-scoped calls and is told
// when the server rejects it. The session package provides the usual
// implementation; keeping it behind an interface keeps redirect/expiry policy
// out of the transport layer.
type TokenSource interface {
	Token() string
	Invalidate()
}

// HTTPClient talks JSON over HTTP(S) to the commerce backend.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// errorBody is the backend's uniform error envelope.
type errorBody struct {
	Message string `json:"message"`
}

// do issues one request and decodes a 2xx body into out (when out != nil).
// Non-2xx statuses are mapped to the package sentinels or to *Error with the
// server's message preserved verbatim.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any, admin bool) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
		return nil
	}

	return c.mapError(resp, admin)
}

func (c *HTTPClient) mapError(resp *http.Response, admin bool) error {
	var eb errorBody
	_ = json.NewDecoder(resp.Body).Decode(&eb)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		if admin {
			c.tokens.Invalidate()
		}
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrUnavailable
	}
	if eb.Message == "" {
		eb.Message = resp.Status
	}
	return &Error{Status: resp.StatusCode, Message: eb.Message}
}

func (c *HTTPClient) GetProducts(ctx context.Context) ([]models.Product, error) {
	var out struct {
		Products []models.Product `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &out, false); err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}
	return out.Products, nil
}

func (c *HTTPClient) GetCart(ctx context.Context) (*CartPayload, error) {
	var out CartPayload
	if err := c.do(ctx, http.MethodGet, "/api/cart", nil, &out, false); err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return &out, nil
}

func (c *HTTPClient) AddCartItem(ctx context.Context, productId string, qty int) error {
	body := struct {
		ProductId string `json:"product_id"`
		Qty       int    `json:"qty"`
	}{ProductId: productId, Qty: qty}

	if err := c.do(ctx, http.MethodPost, "/api/cart", body, nil, false); err != nil {
		return fmt.Errorf("add cart item: %w", err)
	}
	return nil
}

func (c *HTTPClient) DeleteCartItem(ctx context.Context, lineId string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/cart/"+url.PathEscape(lineId), nil, nil, false); err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

func (c *HTTPClient) ApplyCoupon(ctx context.Context, code string) (float64, error) {
	body := struct {
		Code string `json:"code"`
	}{Code: code}

	var out struct {
		FinalTotal float64 `json:"final_total"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/coupon", body, &out, false); err != nil {
		return 0, err
	}
	return out.FinalTotal, nil
}

func (c *HTTPClient) CreateOrder(ctx context.Context, form models.ContactForm, idempotencyKey string) (*models.Order, error) {
	body := struct {
		User           models.ContactForm `json:"user"`
		Message        string             `json:"message,omitempty"`
		IdempotencyKey string             `json:"idempotency_key"`
	}{User: form, Message: form.Message, IdempotencyKey: idempotencyKey}

	var out models.Order
	if err := c.do(ctx, http.MethodPost, "/api/order", body, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetOrders(ctx context.Context) ([]models.Order, error) {
	var out struct {
		Orders []models.Order `json:"orders"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, &out, true); err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}
	return out.Orders, nil
}

func (c *HTTPClient) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	var out models.Order
	if err := c.do(ctx, http.MethodGet, "/api/order/"+url.PathEscape(id), nil, &out, false); err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &out, nil
}

func (c *HTTPClient) Login(ctx context.Context, username string, password []byte) (string, error) {
	body := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{Username: username, Password: string(password)}

	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/admin/login", body, &out, false); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/admin/logout", nil, nil, true); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (c *HTTPClient) CreateProduct(ctx context.Context, p models.Product) (*models.Product, error) {
	var out models.Product
	if err := c.do(ctx, http.MethodPost, "/api/admin/products", p, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateProduct(ctx context.Context, p models.Product) error {
	return c.do(ctx, http.MethodPut, "/api/admin/products/"+url.PathEscape(p.Id), p, nil, true)
}

func (c *HTTPClient) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/products/"+url.PathEscape(id), nil, nil, true)
}

func (c *HTTPClient) CreateCoupon(ctx context.Context, coupon models.Coupon) error {
	return c.do(ctx, http.MethodPost, "/api/admin/coupons", coupon, nil, true)
}

func (c *HTTPClient) DeleteCoupon(ctx context.Context, code string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/coupons/"+url.PathEscape(code), nil, nil, true)
}

func (c *HTTPClient) MarkOrderPaid(ctx context.Context, orderId string) error {
	return c.do(ctx, http.MethodPatch, "/api/admin/orders/"+url.PathEscape(orderId)+"/paid", nil, nil, true)
}

func (c *HTTPClient) DeleteOrder(ctx context.Context, orderId string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/orders/"+url.PathEscape(orderId), nil, nil, true)
}
