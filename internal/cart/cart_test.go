package cart

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoadedCart() *Cart {
	c := New(nil)
	c.Init(nil)
	return c
}

var pulsera = Product{
	ID:    "prod-1",
	Slug:  "pulsera-luna",
	Name:  "Pulsera Luna",
	Price: 250,
	Image: "/images/products/pulsera-luna.jpg",
}

func TestAdd_MergesByConfiguration(t *testing.T) {
	c := newLoadedCart()

	_, err := c.Add(pulsera, map[string]any{"Talla": "M", "Color": "Rojo"}, 1)
	require.NoError(t, err)

	// Same configuration in the other input shape and reversed order.
	_, err = c.Add(pulsera, []any{
		map[string]any{"id": "color", "label": "Color", "value": "Rojo"},
		map[string]any{"id": "talla", "label": "Talla", "value": "M"},
	}, 1)
	require.NoError(t, err)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].Quantity)
	assert.Equal(t, int64(2), c.Count())
	assert.Equal(t, float64(500), c.Total())
}

func TestAdd_DifferentConfigurationsStaySeparate(t *testing.T) {
	c := newLoadedCart()

	_, err := c.Add(pulsera, map[string]any{"Talla": "M"}, 1)
	require.NoError(t, err)
	_, err = c.Add(pulsera, map[string]any{"Talla": "S"}, 1)
	require.NoError(t, err)
	_, err = c.Add(pulsera, nil, 1)
	require.NoError(t, err)

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "prod-1", items[2].UID, "no selections collapse to the product id")
}

func TestAdd_MissingProductID(t *testing.T) {
	c := newLoadedCart()

	_, err := c.Add(Product{Name: "Sin ID"}, nil, 1)
	assert.ErrorIs(t, err, ErrMissingProduct)
	assert.Empty(t, c.Items())
}

func TestAdd_QuantityAndPriceCoercion(t *testing.T) {
	c := newLoadedCart()

	line, err := c.Add(Product{ID: "p", Price: -10}, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), line.Quantity)
	assert.Equal(t, float64(0), line.Price)
}

func TestChangeQuantity(t *testing.T) {
	c := newLoadedCart()
	line, err := c.Add(pulsera, nil, 2)
	require.NoError(t, err)

	c.ChangeQuantity(line.UID, 3)
	assert.Equal(t, int64(5), c.Count())

	c.ChangeQuantity(line.UID, 0)
	assert.Equal(t, int64(5), c.Count(), "zero delta is a no-op")

	c.ChangeQuantity(line.UID, -5)
	assert.Empty(t, c.Items(), "quantity reaching zero removes the line")

	// The uid is gone now; a further change must be a no-op.
	c.ChangeQuantity(line.UID, -1)
	assert.Empty(t, c.Items())
}

func TestRemoveAndClear(t *testing.T) {
	c := newLoadedCart()
	line, err := c.Add(pulsera, nil, 1)
	require.NoError(t, err)

	c.Remove("no-such-uid")
	assert.Len(t, c.Items(), 1)

	c.Remove(line.UID)
	assert.Empty(t, c.Items())

	_, err = c.Add(pulsera, nil, 1)
	require.NoError(t, err)
	c.Clear()
	assert.Empty(t, c.Items())
	assert.Zero(t, c.Count())
	assert.Zero(t, c.Total())
}

func TestInit_MigratesAndDropsInvalidEntries(t *testing.T) {
	raw := []any{
		map[string]any{
			"id":       "prod-1",
			"name":     "Pulsera Luna",
			"price":    250.0,
			"quantity": 2.0,
			// Legacy entries used "options" and carried no uid.
			"options": []any{map[string]any{"label": "Talla", "value": "M"}},
		},
		map[string]any{"name": "sin id", "price": 100.0},
		"garbage",
		map[string]any{
			"id":       "prod-2",
			"uid":      "stale-uid-should-be-recomputed",
			"price":    "80",
			"quantity": -3.0,
		},
	}

	c := New(nil)
	c.Init(raw)

	items := c.Items()
	require.Len(t, items, 2)

	assert.Equal(t, "prod-1__talla:M", items[0].UID)
	assert.Equal(t, int64(2), items[0].Quantity)
	require.Len(t, items[0].SelectedOptions, 1)
	assert.Equal(t, SelectedOption{ID: "talla", Label: "Talla", Value: "M"}, items[0].SelectedOptions[0])

	assert.Equal(t, "prod-2", items[1].UID)
	assert.Equal(t, int64(1), items[1].Quantity, "negative stored quantity defaults to 1")
	assert.Equal(t, float64(80), items[1].Price)
}

func TestLineUID(t *testing.T) {
	options := []SelectedOption{
		{ID: "talla", Label: "Talla", Value: "M"},
		{ID: "color", Label: "Color", Value: "Rojo"},
	}

	uid := LineUID("prod-9", options)
	assert.Equal(t, "prod-9__color:Rojo|talla:M", uid, "option pairs are sorted")

	reversed := []SelectedOption{options[1], options[0]}
	assert.Equal(t, uid, LineUID("prod-9", reversed))

	assert.Equal(t, "prod-9", LineUID("prod-9", nil))
}

func TestNormalizeSelections_MapShape(t *testing.T) {
	options := NormalizeSelections(map[string]any{
		"Talla":  "M",
		"Color":  "Rojo",
		"Blanco": "  ",
	})

	require.Len(t, options, 2)
	// Map entries come out sorted by label for determinism.
	assert.Equal(t, SelectedOption{ID: "color", Label: "Color", Value: "Rojo"}, options[0])
	assert.Equal(t, SelectedOption{ID: "talla", Label: "Talla", Value: "M"}, options[1])
}

func TestNormalizeSelections_ListShape(t *testing.T) {
	options := NormalizeSelections([]any{
		map[string]any{"label": "Talla", "value": "M"},
		map[string]any{"name": "Color", "selected": "Rojo"},
		map[string]any{"label": "Acabado", "value": ""},
		"garbage",
	})

	require.Len(t, options, 2)
	assert.Equal(t, SelectedOption{ID: "talla", Label: "Talla", Value: "M"}, options[0])
	assert.Equal(t, SelectedOption{ID: "color", Label: "Color", Value: "Rojo"}, options[1])
}

func TestFileStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	c := New(NewFileStore(dir, "session-1"))
	c.Load()

	_, err := c.Add(pulsera, map[string]any{"Talla": "M"}, 2)
	require.NoError(t, err)
	_, err = c.Add(Product{ID: "prod-2", Name: "Collar Sol", Price: 180}, nil, 1)
	require.NoError(t, err)

	restored := New(NewFileStore(dir, "session-1"))
	restored.Load()

	want := c.Items()
	got := restored.Items()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].UID, got[i].UID)
		assert.Equal(t, want[i].Quantity, got[i].Quantity)
		assert.Equal(t, want[i].Price, got[i].Price)
		assert.Equal(t, want[i].SelectedOptions, got[i].SelectedOptions)
	}
	assert.Equal(t, c.Total(), restored.Total())
}

func TestFileStore_RoundTripWithStrayEntries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session-2.json")

	stored := []any{
		map[string]any{"id": "prod-1", "name": "Pulsera", "price": 250, "quantity": 1},
		map[string]any{"broken": true},
		42,
	}
	data, err := json.Marshal(stored)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	c := New(NewFileStore(dir, "session-2"))
	c.Load()

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "prod-1", items[0].UID)
}

func TestFileStore_CorruptFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session-3.json"), []byte("{not json"), 0o644))

	c := New(NewFileStore(dir, "session-3"))
	c.Load()

	assert.Empty(t, c.Items())

	// The cart keeps working in memory after the failed load.
	_, err := c.Add(pulsera, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.Count())
}
