package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bellavista/storefront/internal/variants"
	"github.com/bellavista/storefront/storage"
	"github.com/bellavista/storefront/storage/db"
	"github.com/bellavista/storefront/views/helpers"
	"github.com/labstack/echo/v4"
)

// Display mappings for the legacy category/gender values still present in
// older product rows.
var categoryMap = map[string]string{
	"pulseras":   "joyeria",
	"collares":   "joyeria",
	"anillos":    "joyeria",
	"cadenas":    "accesorios",
	"accesorios": "accesorios",
	"ropa":       "ropa",
}

var genderMap = map[string]string{
	"unisex": "todos",
	"mujer":  "mujer",
	"hombre": "hombre",
	"niños":  "nino",
	"nina":   "nino",
}

type ProductHandler struct {
	storage *storage.Storage
}

func NewProductHandler(storage *storage.Storage) *ProductHandler {
	return &ProductHandler{storage: storage}
}

type ProductView struct {
	ID            string          `json:"id"`
	Slug          string          `json:"slug"`
	Sku           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         float64         `json:"price"`
	Category      string          `json:"category"`
	Gender        string          `json:"gender"`
	Stock         int64           `json:"stock"`
	Image         string          `json:"image"`
	GalleryImage1 string          `json:"gallery_image_1"`
	GalleryImage2 string          `json:"gallery_image_2"`
	GalleryImage3 string          `json:"gallery_image_3"`
	Gallery       []string        `json:"gallery"`
	Variants      variants.Config `json:"variants"`
}

func buildProductView(row db.Product) ProductView {
	cfg := variants.Normalize(rawVariantOptions(row))

	gallery := make([]string, 0, 3)
	galleryValues := []string{fromNull(row.GalleryImage1), fromNull(row.GalleryImage2), fromNull(row.GalleryImage3)}
	for _, value := range galleryValues {
		if value != "" {
			gallery = append(gallery, value)
		}
	}

	category := fromNull(row.Category)
	if mapped, ok := categoryMap[category]; ok {
		category = mapped
	} else if category == "" {
		category = "accesorios"
	}

	gender := fromNull(row.Gender)
	if mapped, ok := genderMap[gender]; ok {
		gender = mapped
	} else if gender == "" {
		gender = "todos"
	}

	return ProductView{
		ID:            row.ID,
		Slug:          row.Slug,
		Sku:           row.Sku,
		Name:          row.Name,
		Description:   fromNull(row.Description),
		Price:         helpers.PriceFromCents(row.PriceCents),
		Category:      category,
		Gender:        gender,
		Stock:         variants.EffectiveStock(cfg, row.Stock),
		Image:         fromNull(row.ImageUrl),
		GalleryImage1: galleryValues[0],
		GalleryImage2: galleryValues[1],
		GalleryImage3: galleryValues[2],
		Gallery:       gallery,
		Variants:      cfg,
	}
}

func rawVariantOptions(row db.Product) any {
	if !row.VariantOptions.Valid {
		return nil
	}
	return row.VariantOptions.String
}

// HandleListProducts returns the public catalog: active products with
// effective stock available.
func (h *ProductHandler) HandleListProducts(c echo.Context) error {
	rows, err := h.storage.Queries.ListActiveProducts(c.Request().Context())
	if err != nil {
		slog.Error("failed to list products", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error obteniendo productos")
	}

	products := make([]ProductView, 0, len(rows))
	for _, row := range rows {
		view := buildProductView(row)
		if view.Stock <= 0 {
			continue
		}
		products = append(products, view)
	}

	return c.JSON(http.StatusOK, products)
}

// HandleGetProduct returns one product by slug, including out-of-stock
// products so their pages keep resolving.
func (h *ProductHandler) HandleGetProduct(c echo.Context) error {
	slug := c.Param("slug")

	row, err := h.storage.Queries.GetProductBySlug(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "Producto no encontrado")
		}
		slog.Error("failed to fetch product", "error", err, "slug", slug)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error obteniendo el producto")
	}

	return c.JSON(http.StatusOK, buildProductView(row))
}
