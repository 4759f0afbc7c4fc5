package service

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bellavista/storefront/storage"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *echo.Echo) {
	t.Helper()

	database, _, cleanup, err := storage.NewTestDB()
	require.NoError(t, err)
	t.Cleanup(cleanup)

	config := &Config{Environment: "test"}
	config.Session.Secret = "test-secret"
	config.Cart.Dir = t.TempDir()
	config.Upload.Dir = t.TempDir()
	config.WhatsApp.Phone = "5215512345678"

	svc := New(storage.NewFromDB(database), config)
	e := echo.New()
	svc.RegisterRoutes(e)
	return svc, e
}

func TestHealthRoute(t *testing.T) {
	_, e := newTestService(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestCatalogRoute(t *testing.T) {
	_, e := newTestService(t)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCartRouteMintsSession(t *testing.T) {
	_, e := newTestService(t)

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Result().Cookies())
}

func TestDashboardRequiresLogin(t *testing.T) {
	_, e := newTestService(t)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/overview", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
