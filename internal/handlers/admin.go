package handlers

import (
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bellavista/storefront/internal/variants"
	"github.com/bellavista/storefront/storage"
	"github.com/bellavista/storefront/storage/db"
	"github.com/bellavista/storefront/views/helpers"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
)

const lowStockThreshold = 5

// AdminHandler serves the dashboard overviews and the product editor.
// Overview sections degrade independently: a failing query logs and
// yields empty metrics instead of failing the whole dashboard.
type AdminHandler struct {
	storage   *storage.Storage
	uploadDir string
}

func NewAdminHandler(storage *storage.Storage, uploadDir string) *AdminHandler {
	return &AdminHandler{storage: storage, uploadDir: uploadDir}
}

// HandleOverview returns the landing metrics: counts, revenue, the five
// most recent orders and the lowest-stock products.
func (h *AdminHandler) HandleOverview(c echo.Context) error {
	ctx := c.Request().Context()

	metrics := map[string]any{
		"total_orders":    int64(0),
		"total_customers": int64(0),
		"total_products":  int64(0),
		"revenue":         "$0.00",
	}

	if count, err := h.storage.Queries.CountOrders(ctx); err != nil {
		slog.Error("dashboard: failed to count orders", "error", err)
	} else {
		metrics["total_orders"] = count
	}
	if count, err := h.storage.Queries.CountCustomers(ctx); err != nil {
		slog.Error("dashboard: failed to count customers", "error", err)
	} else {
		metrics["total_customers"] = count
	}
	if count, err := h.storage.Queries.CountProducts(ctx); err != nil {
		slog.Error("dashboard: failed to count products", "error", err)
	} else {
		metrics["total_products"] = count
	}
	if stats, err := h.storage.Queries.GetOrderStats(ctx); err != nil {
		slog.Error("dashboard: failed to load order stats", "error", err)
	} else {
		metrics["revenue"] = helpers.FormatCurrency(toInt64(stats.RevenueCents))
	}

	recentOrders := make([]map[string]any, 0, 5)
	if rows, err := h.storage.Queries.ListRecentOrdersWithCustomer(ctx); err != nil {
		slog.Error("dashboard: failed to list recent orders", "error", err)
	} else {
		for _, row := range rows {
			recentOrders = append(recentOrders, map[string]any{
				"id":       row.ID,
				"customer": helpers.NullStringOr(row.CustomerName, "Invitado"),
				"status":   row.Status,
				"total":    helpers.FormatCurrency(row.TotalCents),
				"date":     helpers.FormatDate(row.CreatedAt),
			})
		}
	}

	lowStock := make([]map[string]any, 0, 5)
	if rows, err := h.storage.Queries.ListAllProducts(ctx); err != nil {
		slog.Error("dashboard: failed to list products", "error", err)
	} else {
		type stocked struct {
			name  string
			stock int64
		}
		low := make([]stocked, 0, len(rows))
		for _, row := range rows {
			cfg := variants.Normalize(rawVariantOptions(row))
			effective := variants.EffectiveStock(cfg, row.Stock)
			if effective <= lowStockThreshold {
				low = append(low, stocked{name: row.Name, stock: effective})
			}
		}
		sort.SliceStable(low, func(i, j int) bool { return low[i].stock < low[j].stock })
		if len(low) > 5 {
			low = low[:5]
		}
		for _, entry := range low {
			lowStock = append(lowStock, map[string]any{"name": entry.name, "stock": entry.stock})
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"metrics":       metrics,
		"recent_orders": recentOrders,
		"low_stock":     lowStock,
	})
}

// AdminProductView is the editor-facing product shape: raw stored values
// plus the effective stock the storefront will show.
type AdminProductView struct {
	ID             string  `json:"id"`
	Slug           string  `json:"slug"`
	Sku            string  `json:"sku"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Category       string  `json:"category"`
	Gender         string  `json:"gender"`
	Price          float64 `json:"price"`
	Stock          int64   `json:"stock"`
	EffectiveStock int64   `json:"effective_stock"`
	HasVariants    bool    `json:"has_variants"`
	Active         bool    `json:"active"`
	Image          string  `json:"image"`
}

// HandleProductsOverview lists every product, active or not, for the
// catalog manager.
func (h *AdminHandler) HandleProductsOverview(c echo.Context) error {
	ctx := c.Request().Context()

	products := make([]AdminProductView, 0)
	if rows, err := h.storage.Queries.ListAllProducts(ctx); err != nil {
		slog.Error("dashboard: failed to list products", "error", err)
	} else {
		for _, row := range rows {
			cfg := variants.Normalize(rawVariantOptions(row))
			products = append(products, AdminProductView{
				ID:             row.ID,
				Slug:           row.Slug,
				Sku:            row.Sku,
				Name:           row.Name,
				Description:    fromNull(row.Description),
				Category:       fromNull(row.Category),
				Gender:         fromNull(row.Gender),
				Price:          helpers.PriceFromCents(row.PriceCents),
				Stock:          row.Stock,
				EffectiveStock: variants.EffectiveStock(cfg, row.Stock),
				HasVariants:    cfg.Enabled,
				Active:         row.Active != 0,
				Image:          fromNull(row.ImageUrl),
			})
		}
	}

	categories := make([]string, 0)
	if rows, err := h.storage.Queries.ListCategories(ctx); err != nil {
		slog.Error("dashboard: failed to list categories", "error", err)
	} else {
		for _, row := range rows {
			if value := fromNull(row); value != "" {
				categories = append(categories, value)
			}
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"products":   products,
		"categories": categories,
	})
}

// HandleSaveProduct creates or updates a product. Accepts multipart form
// data (with image uploads) or a plain JSON body; variant configuration is
// normalized wholesale before storage so invalid combinations never land
// in the database.
func (h *AdminHandler) HandleSaveProduct(c echo.Context) error {
	ctx := c.Request().Context()

	payload, err := h.bindProductPayload(c)
	if err != nil {
		return err
	}

	name := strings.TrimSpace(stringField(payload, "name"))
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "El nombre del producto es obligatorio.")
	}

	slug := variants.SlugifyKey(stringField(payload, "slug"), "")
	if slug == "" {
		slug = variants.SlugifyKey(name, "")
	}
	if slug == "" {
		slug = variants.SlugifyKey(stringField(payload, "sku"), "producto")
	}
	sku := strings.TrimSpace(stringField(payload, "sku"))
	if sku == "" {
		sku = slug
	}

	variantOptions := sql.NullString{}
	cfg := variants.Normalize(payload["variant_options"])
	if len(cfg.Options) > 0 || cfg.Enabled {
		serialized, err := json.Marshal(cfg)
		if err == nil {
			variantOptions = sql.NullString{String: string(serialized), Valid: true}
		}
	}

	priceCents := helpers.CentsFromPrice(floatField(payload, "price"))
	stock := intField(payload, "stock")
	if stock < 0 {
		stock = 0
	}

	var active int64
	if boolField(payload, "active", true) {
		active = 1
	}

	now := time.Now().UTC()
	id := strings.TrimSpace(stringField(payload, "id"))

	var row db.Product
	if id == "" {
		row, err = h.storage.Queries.CreateProduct(ctx, db.CreateProductParams{
			ID:             ulid.Make().String(),
			Slug:           slug,
			Sku:            sku,
			Name:           name,
			Description:    nullString(stringField(payload, "description")),
			Category:       nullString(stringField(payload, "category")),
			Gender:         nullString(stringField(payload, "gender")),
			PriceCents:     priceCents,
			Stock:          stock,
			VariantOptions: variantOptions,
			ImageUrl:       nullString(stringField(payload, "image_url")),
			GalleryImage1:  nullString(stringField(payload, "gallery_image_1")),
			GalleryImage2:  nullString(stringField(payload, "gallery_image_2")),
			GalleryImage3:  nullString(stringField(payload, "gallery_image_3")),
			Active:         active,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	} else {
		row, err = h.storage.Queries.UpdateProduct(ctx, db.UpdateProductParams{
			Slug:           slug,
			Sku:            sku,
			Name:           name,
			Description:    nullString(stringField(payload, "description")),
			Category:       nullString(stringField(payload, "category")),
			Gender:         nullString(stringField(payload, "gender")),
			PriceCents:     priceCents,
			Stock:          stock,
			VariantOptions: variantOptions,
			ImageUrl:       nullString(stringField(payload, "image_url")),
			GalleryImage1:  nullString(stringField(payload, "gallery_image_1")),
			GalleryImage2:  nullString(stringField(payload, "gallery_image_2")),
			GalleryImage3:  nullString(stringField(payload, "gallery_image_3")),
			Active:         active,
			UpdatedAt:      now,
			ID:             id,
		})
	}
	if err != nil {
		slog.Error("failed to save product", "error", err, "slug", slug)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error guardando el producto")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Producto guardado",
		"product": buildProductView(row),
	})
}

// bindProductPayload flattens either body shape into one map: JSON fields
// arrive as-is, multipart fields as strings plus saved upload paths.
func (h *AdminHandler) bindProductPayload(c echo.Context) (map[string]any, error) {
	contentType := c.Request().Header.Get(echo.HeaderContentType)

	if !strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		payload := map[string]any{}
		if err := json.NewDecoder(c.Request().Body).Decode(&payload); err != nil && err != io.EOF {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "Cuerpo de la petición inválido")
		}
		return payload, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Formulario inválido")
	}

	payload := map[string]any{}
	for key, values := range form.Value {
		if len(values) > 0 {
			payload[key] = values[0]
		}
	}

	uploads := map[string]string{
		"mainImage":     "image_url",
		"galleryImage1": "gallery_image_1",
		"galleryImage2": "gallery_image_2",
		"galleryImage3": "gallery_image_3",
	}
	for field, target := range uploads {
		files, ok := form.File[field]
		if !ok || len(files) == 0 {
			continue
		}
		path, err := h.saveUpload(files[0])
		if err != nil {
			slog.Error("failed to store product image", "error", err, "field", field)
			return nil, echo.NewHTTPError(http.StatusInternalServerError, "Error guardando la imagen")
		}
		payload[target] = path
	}

	return payload, nil
}

// saveUpload writes an uploaded image under the public upload directory
// with a random filename and returns the public URL path.
func (h *AdminHandler) saveUpload(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	name := uuid.New().String() + ext

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(h.uploadDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/images/products/" + name, nil
}

// HandleDeleteProduct removes a product by id, taken from the query string
// or a JSON body.
func (h *AdminHandler) HandleDeleteProduct(c echo.Context) error {
	id := strings.TrimSpace(c.QueryParam("id"))
	if id == "" {
		var body struct {
			ID string `json:"id"`
		}
		if err := c.Bind(&body); err == nil {
			id = strings.TrimSpace(body.ID)
		}
	}
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Falta el identificador de producto.")
	}

	if err := h.storage.Queries.DeleteProduct(c.Request().Context(), id); err != nil {
		slog.Error("failed to delete product", "error", err, "product_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error eliminando el producto")
	}

	return c.JSON(http.StatusOK, map[string]any{"message": "Producto eliminado"})
}

// HandleOrdersOverview returns order stats and the full order list.
func (h *AdminHandler) HandleOrdersOverview(c echo.Context) error {
	ctx := c.Request().Context()

	stats := map[string]any{
		"revenue":   "$0.00",
		"completed": int64(0),
		"pending":   int64(0),
		"cancelled": int64(0),
	}
	if row, err := h.storage.Queries.GetOrderStats(ctx); err != nil {
		slog.Error("dashboard: failed to load order stats", "error", err)
	} else {
		stats["revenue"] = helpers.FormatCurrency(toInt64(row.RevenueCents))
		stats["completed"] = toInt64(row.Completed)
		stats["pending"] = toInt64(row.Pending)
		stats["cancelled"] = toInt64(row.Cancelled)
	}

	orders := make([]map[string]any, 0)
	if rows, err := h.storage.Queries.ListOrdersWithCustomer(ctx); err != nil {
		slog.Error("dashboard: failed to list orders", "error", err)
	} else {
		for _, row := range rows {
			orders = append(orders, map[string]any{
				"id":             row.ID,
				"customer":       helpers.NullStringOr(row.CustomerName, "Invitado"),
				"customer_email": fromNull(row.CustomerEmail),
				"status":         row.Status,
				"payment_method": fromNull(row.PaymentMethod),
				"total":          helpers.FormatCurrency(row.TotalCents),
				"date":           helpers.FormatDateTime(row.CreatedAt),
			})
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"stats":  stats,
		"orders": orders,
	})
}

// HandleCustomersOverview returns every customer with order count and
// lifetime spend.
func (h *AdminHandler) HandleCustomersOverview(c echo.Context) error {
	customers := make([]map[string]any, 0)
	if rows, err := h.storage.Queries.ListCustomersWithStats(c.Request().Context()); err != nil {
		slog.Error("dashboard: failed to list customers", "error", err)
	} else {
		for _, row := range rows {
			customers = append(customers, map[string]any{
				"id":          row.ID,
				"name":        row.Name,
				"email":       row.Email,
				"orders":      row.OrderCount,
				"total_spent": helpers.FormatCurrency(toInt64(row.TotalSpentCents)),
				"since":       helpers.FormatDate(row.CreatedAt),
			})
		}
	}

	return c.JSON(http.StatusOK, map[string]any{"customers": customers})
}

func stringField(payload map[string]any, key string) string {
	value, ok := payload[key]
	if !ok || value == nil {
		return ""
	}
	switch typed := value.(type) {
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(typed)
	default:
		return ""
	}
}

func floatField(payload map[string]any, key string) float64 {
	switch typed := payload[key].(type) {
	case float64:
		if math.IsNaN(typed) || math.IsInf(typed, 0) {
			return 0
		}
		return typed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func intField(payload map[string]any, key string) int64 {
	return int64(math.Floor(floatField(payload, key)))
}

func boolField(payload map[string]any, key string, fallback bool) bool {
	value, ok := payload[key]
	if !ok || value == nil {
		return fallback
	}
	switch typed := value.(type) {
	case bool:
		return typed
	case string:
		switch strings.ToLower(strings.TrimSpace(typed)) {
		case "true", "1", "on", "yes":
			return true
		case "false", "0", "off", "no", "":
			return false
		default:
			return fallback
		}
	case float64:
		return typed != 0
	default:
		return fallback
	}
}
