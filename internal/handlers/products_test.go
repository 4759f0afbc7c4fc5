package handlers

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const braceletVariants = `{
	"enabled": true,
	"options": [{"id": "talla", "label": "Talla", "values": ["S", "M"]}],
	"variants": [
		{"values": {"talla": "S"}, "stock": 3},
		{"values": {"talla": "M"}, "stock": 4}
	]
}`

const soldOutVariants = `{
	"enabled": true,
	"options": [{"id": "talla", "label": "Talla", "values": ["U"]}],
	"variants": [{"values": {"talla": "U"}, "stock": 0}]
}`

func TestHandleListProducts(t *testing.T) {
	store := newTestStorage(t)
	handler := NewProductHandler(store)

	seedProduct(t, store, productSeed{Name: "Collar Sol", Slug: "collar-sol", PriceCents: 18000, Stock: 4, Active: true})
	seedProduct(t, store, productSeed{Name: "Pulsera Luna", Slug: "pulsera-luna", PriceCents: 25000, Stock: 99, VariantOptions: braceletVariants, Active: true})
	// Flat stock says 10, but every variant is sold out.
	seedProduct(t, store, productSeed{Name: "Anillo Mar", Slug: "anillo-mar", PriceCents: 12000, Stock: 10, VariantOptions: soldOutVariants, Active: true})
	seedProduct(t, store, productSeed{Name: "Borrador", Slug: "borrador", PriceCents: 5000, Stock: 3, Active: false})

	c, rec := newJSONContext(t, http.MethodGet, "/api/products", nil)
	require.NoError(t, handler.HandleListProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var products []ProductView
	decodeBody(t, rec, &products)

	require.Len(t, products, 2)
	bySlug := map[string]ProductView{}
	for _, product := range products {
		bySlug[product.Slug] = product
	}

	assert.Equal(t, int64(4), bySlug["collar-sol"].Stock)
	assert.Equal(t, 180.0, bySlug["collar-sol"].Price)
	assert.False(t, bySlug["collar-sol"].Variants.Enabled)

	// Variant totals win over the stale flat stock column.
	assert.Equal(t, int64(7), bySlug["pulsera-luna"].Stock)
	assert.True(t, bySlug["pulsera-luna"].Variants.Enabled)
	require.Len(t, bySlug["pulsera-luna"].Variants.Variants, 2)
}

func TestHandleGetProduct(t *testing.T) {
	store := newTestStorage(t)
	handler := NewProductHandler(store)

	seedProduct(t, store, productSeed{Name: "Anillo Mar", Slug: "anillo-mar", PriceCents: 12000, Stock: 10, VariantOptions: soldOutVariants, Active: true})

	c, rec := newJSONContext(t, http.MethodGet, "/api/products/anillo-mar", nil)
	c.SetParamNames("slug")
	c.SetParamValues("anillo-mar")
	require.NoError(t, handler.HandleGetProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var product ProductView
	decodeBody(t, rec, &product)

	// Sold-out products still resolve on the detail endpoint.
	assert.Equal(t, "Anillo Mar", product.Name)
	assert.Equal(t, int64(0), product.Stock)
	assert.True(t, product.Variants.Enabled)
}

func TestHandleGetProduct_NotFound(t *testing.T) {
	store := newTestStorage(t)
	handler := NewProductHandler(store)

	c, _ := newJSONContext(t, http.MethodGet, "/api/products/nada", nil)
	c.SetParamNames("slug")
	c.SetParamValues("nada")

	err := handler.HandleGetProduct(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}
