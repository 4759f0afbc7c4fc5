package whatsapp

import (
	"strings"
	"testing"

	"github.com/bellavista/storefront/internal/cart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_EmptyCart(t *testing.T) {
	assert.Equal(t, DefaultGreeting, Message(nil, 0))
}

func TestMessage_OrderSummary(t *testing.T) {
	items := []cart.Line{
		{
			Name:     "Pulsera Luna",
			Price:    250,
			Quantity: 2,
			SelectedOptions: []cart.SelectedOption{
				{ID: "talla", Label: "Talla", Value: "M"},
			},
		},
		{Name: "Collar Sol", Price: 180, Quantity: 1},
	}

	msg := Message(items, 680)

	assert.True(t, strings.HasPrefix(msg, "¡Hola! Me gustaría realizar el siguiente pedido:"))
	assert.Contains(t, msg, "- Pulsera Luna")
	assert.Contains(t, msg, "   * Talla: M")
	assert.Contains(t, msg, "   * Cantidad: 2")
	assert.Contains(t, msg, "   * Precio unitario: $250.00")
	assert.Contains(t, msg, "   * Subtotal: $500.00")
	assert.Contains(t, msg, "- Collar Sol")
	assert.Contains(t, msg, "Total: $680.00")
	assert.True(t, strings.HasSuffix(msg, "¿Me ayudas con el pago y envío?"))
}

func TestLink(t *testing.T) {
	link := Link("5215512345678", "¡Hola! ¿Sigue disponible?")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/5215512345678?text="))
	assert.NotContains(t, link, " ")
	assert.NotContains(t, link, "+", "spaces must encode as %20, not +")
	assert.Contains(t, link, "%20")
}

func TestQR(t *testing.T) {
	png, err := QR(Link("5215512345678", DefaultGreeting), 256)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
