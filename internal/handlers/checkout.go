package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bellavista/storefront/internal/cart"
	"github.com/bellavista/storefront/internal/session"
	"github.com/bellavista/storefront/internal/whatsapp"
	"github.com/bellavista/storefront/storage"
	"github.com/bellavista/storefront/storage/db"
	"github.com/bellavista/storefront/views/helpers"
	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
)

// OrderHandler turns the session cart into an order record and the
// WhatsApp hand-off link the buyer completes the purchase with.
type OrderHandler struct {
	storage  *storage.Storage
	sessions *session.Manager
	carts    *cart.Manager
	phone    string
}

func NewOrderHandler(storage *storage.Storage, sessions *session.Manager, carts *cart.Manager, phone string) *OrderHandler {
	return &OrderHandler{storage: storage, sessions: sessions, carts: carts, phone: phone}
}

type createOrderRequest struct {
	Phone string `json:"phone"`
}

// HandleCreateOrder snapshots the cart into an order, builds the WhatsApp
// message and clears the cart. The response carries the wa.me link the
// client opens.
func (h *OrderHandler) HandleCreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	cartID, err := h.sessions.CartID(c)
	if err != nil {
		slog.Error("failed to resolve session cart", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error creando el pedido")
	}
	crt := h.carts.Get(cartID)

	items := crt.Items()
	if len(items) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "El carrito está vacío")
	}
	total := crt.Total()

	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		phone = h.phone
	}

	message := whatsapp.Message(items, total)

	var userID sql.NullString
	if user := h.sessions.GetUser(c); user != nil {
		userID = sql.NullString{String: user.ID, Valid: true}
	}

	ctx := c.Request().Context()
	orderID := ulid.Make().String()

	err = h.storage.InTx(ctx, func(q *db.Queries) error {
		if _, err := q.CreateOrder(ctx, db.CreateOrderParams{
			ID:            orderID,
			UserID:        userID,
			WaPhone:       phone,
			WaMessage:     message,
			TotalCents:    helpers.CentsFromPrice(total),
			Status:        "Pendiente",
			PaymentMethod: sql.NullString{String: "whatsapp", Valid: true},
			CreatedAt:     time.Now().UTC(),
		}); err != nil {
			return err
		}

		for _, item := range items {
			optionsJSON, err := json.Marshal(item.SelectedOptions)
			if err != nil {
				return err
			}
			if err := q.CreateOrderItem(ctx, db.CreateOrderItemParams{
				ID:             ulid.Make().String(),
				OrderID:        orderID,
				ProductID:      nullString(item.ID),
				ProductName:    item.Name,
				OptionsJson:    sql.NullString{String: string(optionsJSON), Valid: true},
				Quantity:       item.Quantity,
				UnitPriceCents: helpers.CentsFromPrice(item.Price),
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		slog.Error("failed to store order", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error creando el pedido")
	}

	crt.Clear()

	return c.JSON(http.StatusCreated, map[string]any{
		"ok":           true,
		"order_id":     orderID,
		"whatsapp_url": whatsapp.Link(phone, message),
	})
}

// HandleOrderQR renders the order's WhatsApp link as a PNG QR code, for
// buyers checking out on a desktop browser.
func (h *OrderHandler) HandleOrderQR(c echo.Context) error {
	order, err := h.storage.Queries.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "Pedido no encontrado")
		}
		slog.Error("failed to fetch order", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error obteniendo el pedido")
	}

	png, err := whatsapp.QR(whatsapp.Link(order.WaPhone, order.WaMessage), 512)
	if err != nil {
		slog.Error("failed to render order qr", "error", err, "order_id", order.ID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error generando el código QR")
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
