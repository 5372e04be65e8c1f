package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ekozlova/artshop/internal/client/models"
	"github.com/stretchr/testify/require"
)

// stubTokens is a TokenSource with a fixed token that records invalidation.
type stubTokens struct {
	token       string
	Invalidated int
}

func (s *stubTokens) Token() string { return s.token }
func (s *stubTokens) Invalidate()   { s.Invalidated++ }

func newClient(t *testing.T, handler http.Handler, tokens *stubTokens) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	if tokens == nil {
		tokens = &stubTokens{}
	}
	return NewHTTPClient(srv.URL, 2*time.Second, tokens)
}

func TestGetCart_DecodesPayload(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/cart", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"carts": []map[string]any{
				{"id": "l1", "product_id": "p1", "qty": 2, "unit_price": 100, "line_total": 200},
			},
			"total":       200,
			"final_total": 180,
		})
	}), nil)

	payload, err := c.GetCart(context.Background())
	require.NoError(t, err)
	require.Len(t, payload.Lines, 1)
	require.Equal(t, "l1", payload.Lines[0].Id)
	require.Equal(t, 2, payload.Lines[0].Quantity)
	require.Equal(t, float64(200), payload.Total)
	require.Equal(t, float64(180), payload.FinalTotal)
}

func TestAddCartItem_SendsBody(t *testing.T) {
	var got struct {
		ProductId string `json:"product_id"`
		Qty       int    `json:"qty"`
	}
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}), nil)

	require.NoError(t, c.AddCartItem(context.Background(), "p5", 3))
	require.Equal(t, "p5", got.ProductId)
	require.Equal(t, 3, got.Qty)
}

func TestApplyCoupon_BusinessErrorSurfacesServerMessage(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "coupon has expired"})
	}), nil)

	_, err := c.ApplyCoupon(context.Background(), "OLD10")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "coupon has expired", apiErr.Message)
	require.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
}

func TestAdminCall_AttachesBearerToken(t *testing.T) {
	tokens := &stubTokens{token: "tok-123"}
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{"orders": []any{}})
	}), tokens)

	_, err := c.GetOrders(context.Background())
	require.NoError(t, err)
}

func TestAdminCall_UnauthorizedInvalidatesSession(t *testing.T) {
	tokens := &stubTokens{token: "stale"}
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}), tokens)

	_, err := c.GetOrders(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Equal(t, 1, tokens.Invalidated)
}

func TestStorefrontCall_UnauthorizedDoesNotTouchSession(t *testing.T) {
	tokens := &stubTokens{}
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}), tokens)

	_, err := c.GetCart(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Zero(t, tokens.Invalidated)
}

func TestGetOrder_NotFound(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}), nil)

	_, err := c.GetOrder(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateOrder_SendsIdempotencyKeyAndDecodesOrder(t *testing.T) {
	var got struct {
		User           models.ContactForm `json:"user"`
		IdempotencyKey string             `json:"idempotency_key"`
	}
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"orderId": "ord-9", "total": 900, "create_at": 1770000000,
		})
	}), nil)

	form := models.ContactForm{Name: "Ann", Email: "ann@example.com", Phone: "1", Address: "x"}
	order, err := c.CreateOrder(context.Background(), form, "key-1")
	require.NoError(t, err)
	require.Equal(t, "ord-9", order.Id)
	require.Equal(t, "key-1", got.IdempotencyKey)
	require.Equal(t, "Ann", got.User.Name)
}

func TestDo_UnreachableServerIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listens anymore

	c := NewHTTPClient(srv.URL, time.Second, &stubTokens{})
	_, err := c.GetCart(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}
