// Package whatsapp builds the checkout handoff: the order summary message
// the customer sends to the shop and the wa.me link that opens it.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bellavista/storefront/internal/cart"
	qrcode "github.com/skip2/go-qrcode"
)

// DefaultGreeting is sent when the customer opens the chat with an empty
// cart.
const DefaultGreeting = "¡Hola! Me gustaría conocer más sobre sus productos."

// Message renders the order summary for a set of cart lines. The format is
// what customers and the shop already exchange; keep it stable.
func Message(items []cart.Line, total float64) string {
	if len(items) == 0 {
		return DefaultGreeting
	}

	lines := []string{"¡Hola! Me gustaría realizar el siguiente pedido:", ""}

	for _, item := range items {
		lines = append(lines, fmt.Sprintf("- %s", item.Name))
		for _, option := range item.SelectedOptions {
			lines = append(lines, fmt.Sprintf("   * %s: %s", option.Label, option.Value))
		}
		lines = append(lines,
			fmt.Sprintf("   * Cantidad: %d", item.Quantity),
			fmt.Sprintf("   * Precio unitario: $%.2f", item.Price),
			fmt.Sprintf("   * Subtotal: $%.2f", item.Price*float64(item.Quantity)),
			"",
		)
	}

	lines = append(lines,
		fmt.Sprintf("Total: $%.2f", total),
		"",
		"¿Me ayudas con el pago y envío?",
	)

	return strings.Join(lines, "\n")
}

// Link builds the wa.me URL that opens the chat with the message prefilled.
func Link(phone, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + phone + "?text=" + encoded
}

// QR renders the link as a PNG for in-store checkout signage.
func QR(link string, size int) ([]byte, error) {
	png, err := qrcode.Encode(link, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return png, nil
}
