package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/bellavista/storefront/internal/cart"
	"github.com/bellavista/storefront/internal/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleCreateOrder(t *testing.T) {
	store := newTestStorage(t)
	sessions := session.NewManager("test-secret")
	carts := cart.NewManager(t.TempDir())
	cartHandler := NewCartHandler(store, sessions, carts)
	orderHandler := NewOrderHandler(store, sessions, carts, "5215512345678")

	product := seedProduct(t, store, productSeed{Name: "Pulsera Luna", Slug: "pulsera-luna", PriceCents: 25000, Stock: 10, Active: true})

	addCtx, addRec := newJSONContext(t, http.MethodPost, "/api/cart/items", map[string]any{
		"product_id":      product.ID,
		"quantity":        2,
		"selectedOptions": map[string]string{"Talla": "M"},
	})
	require.NoError(t, cartHandler.HandleAddItem(addCtx))

	orderCtx, orderRec := newJSONContext(t, http.MethodPost, "/api/orders", map[string]any{})
	carryCookies(orderCtx.Request(), addRec)
	require.NoError(t, orderHandler.HandleCreateOrder(orderCtx))
	require.Equal(t, http.StatusCreated, orderRec.Code)

	var resp struct {
		OK          bool   `json:"ok"`
		OrderID     string `json:"order_id"`
		WhatsappURL string `json:"whatsapp_url"`
	}
	decodeBody(t, orderRec, &resp)

	assert.True(t, resp.OK)
	require.NotEmpty(t, resp.OrderID)
	assert.True(t, strings.HasPrefix(resp.WhatsappURL, "https://wa.me/5215512345678?text="))

	order, err := store.Queries.GetOrder(context.Background(), resp.OrderID)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), order.TotalCents)
	assert.Equal(t, "Pendiente", order.Status)
	assert.Contains(t, order.WaMessage, "Pulsera Luna")
	assert.Contains(t, order.WaMessage, "Talla: M")

	items, err := store.Queries.ListOrderItems(context.Background(), resp.OrderID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].Quantity)
	assert.Equal(t, int64(25000), items[0].UnitPriceCents)

	// The cart is consumed by checkout.
	getCtx, getRec := newJSONContext(t, http.MethodGet, "/api/cart", nil)
	carryCookies(getCtx.Request(), addRec)
	require.NoError(t, cartHandler.HandleGetCart(getCtx))
	var state CartState
	decodeBody(t, getRec, &state)
	assert.Empty(t, state.Items)
}

func TestHandleCreateOrder_EmptyCart(t *testing.T) {
	store := newTestStorage(t)
	sessions := session.NewManager("test-secret")
	handler := NewOrderHandler(store, sessions, cart.NewManager(t.TempDir()), "5215512345678")

	c, _ := newJSONContext(t, http.MethodPost, "/api/orders", map[string]any{})
	err := handler.HandleCreateOrder(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestHandleOrderQR(t *testing.T) {
	store := newTestStorage(t)
	sessions := session.NewManager("test-secret")
	carts := cart.NewManager(t.TempDir())
	cartHandler := NewCartHandler(store, sessions, carts)
	orderHandler := NewOrderHandler(store, sessions, carts, "5215512345678")

	product := seedProduct(t, store, productSeed{Name: "Collar Sol", Slug: "collar-sol", PriceCents: 18000, Stock: 5, Active: true})

	addCtx, addRec := newJSONContext(t, http.MethodPost, "/api/cart/items", map[string]any{"product_id": product.ID})
	require.NoError(t, cartHandler.HandleAddItem(addCtx))

	orderCtx, orderRec := newJSONContext(t, http.MethodPost, "/api/orders", map[string]any{})
	carryCookies(orderCtx.Request(), addRec)
	require.NoError(t, orderHandler.HandleCreateOrder(orderCtx))

	var resp struct {
		OrderID string `json:"order_id"`
	}
	decodeBody(t, orderRec, &resp)

	qrCtx, qrRec := newJSONContext(t, http.MethodGet, "/api/orders/"+resp.OrderID+"/qr.png", nil)
	qrCtx.SetParamNames("id")
	qrCtx.SetParamValues(resp.OrderID)
	require.NoError(t, orderHandler.HandleOrderQR(qrCtx))

	require.Equal(t, http.StatusOK, qrRec.Code)
	assert.Equal(t, "image/png", qrRec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, qrRec.Body.Bytes()[:4])
}
