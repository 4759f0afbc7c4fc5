package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bellavista/storefront/storage"
	"github.com/bellavista/storefront/storage/db"
	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *storage.Storage {
	t.Helper()

	database, _, cleanup, err := storage.NewTestDB()
	require.NoError(t, err)
	t.Cleanup(cleanup)

	return storage.NewFromDB(database)
}

func newJSONContext(t *testing.T, method, path string, body any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

// carryCookies copies the session cookie minted by a previous response
// onto the next request, the way a browser would.
func carryCookies(req *http.Request, rec *httptest.ResponseRecorder) {
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target))
}

type productSeed struct {
	Name           string
	Slug           string
	PriceCents     int64
	Stock          int64
	VariantOptions string
	Active         bool
}

func seedProduct(t *testing.T, store *storage.Storage, seed productSeed) db.Product {
	t.Helper()

	variantOptions := sql.NullString{}
	if seed.VariantOptions != "" {
		variantOptions = sql.NullString{String: seed.VariantOptions, Valid: true}
	}

	active := int64(0)
	if seed.Active {
		active = 1
	}

	now := time.Now().UTC()
	row, err := store.Queries.CreateProduct(context.Background(), db.CreateProductParams{
		ID:             ulid.Make().String(),
		Slug:           seed.Slug,
		Sku:            seed.Slug,
		Name:           seed.Name,
		PriceCents:     seed.PriceCents,
		Stock:          seed.Stock,
		VariantOptions: variantOptions,
		Active:         active,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	require.NoError(t, err)
	return row
}
