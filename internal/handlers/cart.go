package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bellavista/storefront/internal/cart"
	"github.com/bellavista/storefront/internal/session"
	"github.com/bellavista/storefront/storage"
	"github.com/bellavista/storefront/views/helpers"
	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	storage  *storage.Storage
	sessions *session.Manager
	carts    *cart.Manager
}

func NewCartHandler(storage *storage.Storage, sessions *session.Manager, carts *cart.Manager) *CartHandler {
	return &CartHandler{storage: storage, sessions: sessions, carts: carts}
}

// CartState is the full cart snapshot every cart endpoint responds with.
type CartState struct {
	Items []cart.Line `json:"items"`
	Count int64       `json:"count"`
	Total float64     `json:"total"`
}

func (h *CartHandler) sessionCart(c echo.Context) (*cart.Cart, error) {
	id, err := h.sessions.CartID(c)
	if err != nil {
		return nil, err
	}
	return h.carts.Get(id), nil
}

func respondCart(c echo.Context, crt *cart.Cart) error {
	return c.JSON(http.StatusOK, CartState{
		Items: crt.Items(),
		Count: crt.Count(),
		Total: crt.Total(),
	})
}

// HandleGetCart returns the session's current cart.
func (h *CartHandler) HandleGetCart(c echo.Context) error {
	crt, err := h.sessionCart(c)
	if err != nil {
		slog.Error("failed to resolve session cart", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error obteniendo el carrito")
	}
	return respondCart(c, crt)
}

type addItemRequest struct {
	ProductID       string `json:"product_id"`
	ID              string `json:"id"`
	SelectedOptions any    `json:"selectedOptions"`
	Options         any    `json:"options"`
	Quantity        int64  `json:"quantity"`
}

// HandleAddItem adds a product configuration to the cart. The product is
// always re-read from storage so the line snapshots the authoritative
// price and name, never whatever the client sent.
func (h *CartHandler) HandleAddItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	productID := strings.TrimSpace(req.ProductID)
	if productID == "" {
		productID = strings.TrimSpace(req.ID)
	}
	if productID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Faltan datos del producto para el carrito.")
	}

	row, err := h.storage.Queries.GetProduct(c.Request().Context(), productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "Producto no encontrado")
		}
		slog.Error("failed to fetch product for cart", "error", err, "product_id", productID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error agregando al carrito")
	}

	crt, err := h.sessionCart(c)
	if err != nil {
		slog.Error("failed to resolve session cart", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error agregando al carrito")
	}

	selections := req.SelectedOptions
	if selections == nil {
		selections = req.Options
	}

	if _, err := crt.Add(cart.Product{
		ID:    row.ID,
		Slug:  row.Slug,
		Name:  row.Name,
		Price: helpers.PriceFromCents(row.PriceCents),
		Image: fromNull(row.ImageUrl),
	}, selections, req.Quantity); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Faltan datos del producto para el carrito.")
	}

	return respondCart(c, crt)
}

type updateItemRequest struct {
	Delta int64 `json:"delta"`
}

// HandleUpdateItem applies a quantity delta to one line. Quantities that
// reach zero remove the line.
func (h *CartHandler) HandleUpdateItem(c echo.Context) error {
	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	crt, err := h.sessionCart(c)
	if err != nil {
		slog.Error("failed to resolve session cart", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error actualizando el carrito")
	}

	crt.ChangeQuantity(c.Param("uid"), req.Delta)
	return respondCart(c, crt)
}

// HandleRemoveItem drops one line from the cart.
func (h *CartHandler) HandleRemoveItem(c echo.Context) error {
	crt, err := h.sessionCart(c)
	if err != nil {
		slog.Error("failed to resolve session cart", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error actualizando el carrito")
	}

	crt.Remove(c.Param("uid"))
	return respondCart(c, crt)
}

// HandleClearCart empties the cart.
func (h *CartHandler) HandleClearCart(c echo.Context) error {
	crt, err := h.sessionCart(c)
	if err != nil {
		slog.Error("failed to resolve session cart", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error actualizando el carrito")
	}

	crt.Clear()
	return respondCart(c, crt)
}
