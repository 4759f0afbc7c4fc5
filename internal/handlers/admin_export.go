package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bellavista/storefront/views/helpers"
	"github.com/jung-kurt/gofpdf"
	"github.com/labstack/echo/v4"
)

// HandleExportOrdersPDF renders the full order list as a downloadable PDF
// report.
func (h *AdminHandler) HandleExportOrdersPDF(c echo.Context) error {
	rows, err := h.storage.Queries.ListOrdersWithCustomer(c.Request().Context())
	if err != nil {
		slog.Error("failed to list orders for export", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error exportando los pedidos")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Pedidos", true)
	pdf.AddPage()

	translator := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, translator("Artesanías Bella Vista · Pedidos"))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, translator(fmt.Sprintf("Generado el %s", helpers.FormatDateTime(time.Now()))))
	pdf.Ln(12)

	widths := []float64{45, 45, 30, 30, 40}
	headers := []string{"Pedido", "Cliente", "Estado", "Total", "Fecha"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, translator(header), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		cells := []string{
			row.ID,
			helpers.NullStringOr(row.CustomerName, "Invitado"),
			row.Status,
			helpers.FormatCurrency(row.TotalCents),
			helpers.FormatDate(row.CreatedAt),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 7, translator(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		slog.Error("failed to render orders pdf", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error exportando los pedidos")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="pedidos.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", buf.Bytes())
}
