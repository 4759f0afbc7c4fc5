// Package cart holds the cart line identity and merge engine. Lines are
// keyed by product id plus selected options; adding a configuration that
// matches an existing line increments its quantity instead of duplicating
// the line.
package cart

import (
	"errors"
	"log/slog"
	"strings"
	"sync"
)

// ErrMissingProduct is returned when an add is attempted without a product
// id. That is a caller bug, not a recoverable cart state.
var ErrMissingProduct = errors.New("cart: product id is required")

// Line is one cart entry for a specific product configuration.
type Line struct {
	UID             string           `json:"uid"`
	ID              string           `json:"id"`
	Slug            string           `json:"slug"`
	Name            string           `json:"name"`
	Price           float64          `json:"price"`
	Image           string           `json:"image"`
	Quantity        int64            `json:"quantity"`
	SelectedOptions []SelectedOption `json:"selectedOptions"`
}

// Product is the subset of product data a cart line snapshots at add time.
type Product struct {
	ID    string
	Slug  string
	Name  string
	Price float64
	Image string
}

// Store persists the full item list after every committed mutation and
// yields the last persisted list on startup.
type Store interface {
	Load() (any, error)
	Save(items []Line) error
}

// Cart is the mutable cart state for one session. All operations are
// serialized by the internal lock; persistence failures are logged and
// swallowed so storage trouble never breaks the in-memory cart.
type Cart struct {
	mu     sync.Mutex
	items  []Line
	loaded bool
	store  Store
}

// New returns an empty cart backed by store. A nil store keeps the cart
// purely in memory.
func New(store Store) *Cart {
	return &Cart{store: store}
}

// Load restores the cart from its store, replaying the migration pass over
// whatever was persisted. Unreadable storage starts the cart empty.
func (c *Cart) Load() {
	var raw any
	if c.store != nil {
		stored, err := c.store.Load()
		if err != nil {
			slog.Warn("failed to read stored cart, starting empty", "error", err)
		} else {
			raw = stored
		}
	}
	c.Init(raw)
}

// Init replaces the cart contents with the validated form of raw, a decoded
// JSON array of stored items. Entries missing a product id are dropped;
// kept entries get their uid recomputed and quantity/price coerced. Safe to
// call with malformed or legacy-shaped data.
func (c *Cart) Init(raw any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = migrateStoredItems(raw)
	c.loaded = true
	c.persistLocked()
}

// Add puts a product configuration in the cart, merging with an existing
// line when the uid matches. selections may be an option array or a plain
// label→value map. quantity values below 1 count as 1.
func (c *Cart) Add(product Product, selections any, quantity int64) (Line, error) {
	if strings.TrimSpace(product.ID) == "" {
		return Line{}, ErrMissingProduct
	}
	if quantity < 1 {
		quantity = 1
	}

	options := NormalizeSelections(selections)
	line := Line{
		UID:             LineUID(product.ID, options),
		ID:              product.ID,
		Slug:            product.Slug,
		Name:            product.Name,
		Price:           coercePrice(product.Price),
		Image:           product.Image,
		Quantity:        quantity,
		SelectedOptions: options,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].UID == line.UID {
			c.items[i].Quantity += quantity
			c.persistLocked()
			return c.items[i], nil
		}
	}

	c.items = append(c.items, line)
	c.persistLocked()
	return line, nil
}

// Remove drops the line with the given uid. Absent uids are a no-op.
func (c *Cart) Remove(uid string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	removed := false
	for _, item := range c.items {
		if item.UID == uid {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept
	if removed {
		c.persistLocked()
	}
}

// ChangeQuantity adds delta to the matching line's quantity. A zero delta
// or an absent uid is a no-op; a resulting quantity of zero or below
// removes the line.
func (c *Cart) ChangeQuantity(uid string, delta int64) {
	if delta == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	changed := false
	kept := c.items[:0]
	for _, item := range c.items {
		if item.UID == uid {
			changed = true
			item.Quantity += delta
			if item.Quantity <= 0 {
				continue
			}
		}
		kept = append(kept, item)
	}
	c.items = kept
	if changed {
		c.persistLocked()
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.persistLocked()
}

// Items returns a copy of the current lines in insertion order.
func (c *Cart) Items() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]Line, len(c.items))
	copy(items, c.items)
	return items
}

// Count is the total quantity across all lines.
func (c *Cart) Count() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var count int64
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Total is the cart value: Σ quantity × unit price.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, item := range c.items {
		total += float64(item.Quantity) * item.Price
	}
	return total
}

func (c *Cart) persistLocked() {
	if !c.loaded || c.store == nil {
		return
	}
	items := make([]Line, len(c.items))
	copy(items, c.items)
	if err := c.store.Save(items); err != nil {
		slog.Warn("failed to persist cart", "error", err)
	}
}

// migrateStoredItems validates each stored entry, dropping anything without
// a product id and recomputing identity for the rest.
func migrateStoredItems(raw any) []Line {
	entries, ok := raw.([]any)
	if !ok {
		if typed, isTyped := raw.([]Line); isTyped {
			entries = make([]any, 0, len(typed))
			for _, line := range typed {
				entries = append(entries, line.toStored())
			}
		} else {
			return nil
		}
	}

	items := make([]Line, 0, len(entries))
	for _, rawEntry := range entries {
		entry, isMap := rawEntry.(map[string]any)
		if !isMap {
			continue
		}

		id := strings.TrimSpace(stringify(entry["id"]))
		if id == "" {
			continue
		}

		options := NormalizeSelections(firstPresent(entry, "selectedOptions", "options"))
		items = append(items, Line{
			UID:             LineUID(id, options),
			ID:              id,
			Slug:            strings.TrimSpace(stringify(entry["slug"])),
			Name:            strings.TrimSpace(stringify(entry["name"])),
			Price:           coercePrice(entry["price"]),
			Image:           strings.TrimSpace(stringify(entry["image"])),
			Quantity:        coerceQuantity(firstPresent(entry, "quantity")),
			SelectedOptions: options,
		})
	}
	return items
}

func (l Line) toStored() map[string]any {
	options := make([]any, 0, len(l.SelectedOptions))
	for _, option := range l.SelectedOptions {
		options = append(options, map[string]any{
			"id":    option.ID,
			"label": option.Label,
			"value": option.Value,
		})
	}
	return map[string]any{
		"uid":             l.UID,
		"id":              l.ID,
		"slug":            l.Slug,
		"name":            l.Name,
		"price":           l.Price,
		"image":           l.Image,
		"quantity":        l.Quantity,
		"selectedOptions": options,
	}
}
