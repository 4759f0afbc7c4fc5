// Package variants normalizes the loosely-shaped variant_options blob
// stored on product rows into a canonical option/variant model with a
// derived total stock.
package variants

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Option is one axis of product customization with its allowed values.
type Option struct {
	ID     string   `json:"id"`
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

// Variant is one concrete value-per-option assignment carrying stock.
type Variant struct {
	Key    string            `json:"id"`
	Values map[string]string `json:"values"`
	Stock  int64             `json:"stock"`
}

// Config is the canonical variant model for a product. It is rebuilt from
// the persisted blob on every read and re-serialized wholesale on write;
// it is never mutated in place.
type Config struct {
	Enabled    bool      `json:"enabled"`
	Options    []Option  `json:"options"`
	Variants   []Variant `json:"variants"`
	TotalStock int64     `json:"totalStock"`
}

// Disabled is the fallback config used whenever the raw blob is missing,
// malformed, or declares no usable options.
func Disabled() Config {
	return Config{Options: []Option{}, Variants: []Variant{}}
}

// BuildVariantKey joins optionID:value pairs in option declaration order
// with pipes. Declaration order, not sorted: stored blobs were deduplicated
// under this exact key and it must stay reproducible.
func BuildVariantKey(options []Option, values map[string]string) string {
	if len(options) == 0 {
		return ""
	}
	parts := make([]string, 0, len(options))
	for _, option := range options {
		parts = append(parts, option.ID+":"+values[option.ID])
	}
	return strings.Join(parts, "|")
}

// Normalize parses a raw variant_options value into a Config. The input may
// be a JSON string or []byte, an already-decoded map, or the legacy bare
// array of options. Normalize is total: any unusable input yields the
// disabled fallback, never an error.
func Normalize(raw any) Config {
	parsed := decode(raw)
	if parsed == nil {
		return Disabled()
	}

	parsedMap := asMap(parsed)

	rawOptions := asSlice(parsed)
	if parsedMap != nil {
		rawOptions = asSlice(firstPresent(parsedMap, "options", "variantOptions"))
	}

	options := normalizeOptions(rawOptions)
	if len(options) == 0 {
		return Disabled()
	}

	var rawVariants []any
	if parsedMap != nil {
		rawVariants = asSlice(firstPresent(parsedMap, "variants", "variantCombinations"))
	}

	variants, totalStock := resolveCombinations(options, rawVariants)

	enabled := false
	if parsedMap != nil {
		enabled = truthy(parsedMap["enabled"]) && len(variants) > 0
	}

	return Config{
		Enabled:    enabled,
		Options:    options,
		Variants:   variants,
		TotalStock: totalStock,
	}
}

// EffectiveStock selects the stock figure to display and filter on: the
// variant-derived total when variants are enabled, the flat column
// otherwise. Every read site must apply this same rule.
func EffectiveStock(cfg Config, flatStock int64) int64 {
	if cfg.Enabled {
		return cfg.TotalStock
	}
	return flatStock
}

func decode(raw any) any {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		var parsed any
		if err := json.Unmarshal([]byte(v), &parsed); err != nil {
			return nil
		}
		return nonEmpty(parsed)
	case []byte:
		return decode(string(v))
	case json.RawMessage:
		return decode(string(v))
	default:
		return nonEmpty(raw)
	}
}

func nonEmpty(parsed any) any {
	if m := asMap(parsed); m != nil && len(m) == 0 {
		return nil
	}
	if s, ok := parsed.([]any); ok && len(s) == 0 {
		return nil
	}
	switch parsed.(type) {
	case map[string]any, []any:
		return parsed
	default:
		return nil
	}
}

func normalizeOptions(rawOptions []any) []Option {
	seen := make(map[string]bool, len(rawOptions))
	options := make([]Option, 0, len(rawOptions))

	for index, rawOption := range rawOptions {
		descriptor := asMap(rawOption)
		if descriptor == nil {
			continue
		}

		label := strings.TrimSpace(stringify(firstPresent(descriptor, "label", "name", "id")))
		if label == "" && firstPresent(descriptor, "label", "name", "id") == nil {
			label = fmt.Sprintf("Opción %d", index+1)
		}

		idSource := firstPresent(descriptor, "id", "key")
		if idSource == nil {
			idSource = label
		}
		id := SlugifyKey(strings.TrimSpace(stringify(idSource)), fmt.Sprintf("option-%d", index+1))

		values := normalizeValues(firstPresent(descriptor, "values", "options"))

		if label == "" || len(values) == 0 {
			continue
		}

		if seen[id] {
			id = fmt.Sprintf("%s-%d", id, index+1)
		}
		seen[id] = true

		options = append(options, Option{ID: id, Label: label, Values: values})
	}

	return options
}

func normalizeValues(raw any) []string {
	var entries []any
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		for _, part := range strings.Split(v, ",") {
			entries = append(entries, part)
		}
	case []any:
		entries = v
	default:
		entries = []any{v}
	}

	seen := make(map[string]bool, len(entries))
	values := make([]string, 0, len(entries))
	for _, entry := range entries {
		value := ""
		if m := asMap(entry); m != nil {
			value = strings.TrimSpace(stringify(m["value"]))
		} else {
			value = strings.TrimSpace(stringify(entry))
		}
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		values = append(values, value)
	}
	return values
}

// resolveCombinations validates each raw variant entry against the declared
// options. An entry either supplies an in-domain value for every option or
// is discarded whole; entries resolving to the same key have their stock
// summed.
func resolveCombinations(options []Option, rawVariants []any) ([]Variant, int64) {
	variants := make([]Variant, 0, len(rawVariants))
	index := make(map[string]int, len(rawVariants))

	for _, rawVariant := range rawVariants {
		entry := asMap(rawVariant)
		if entry == nil {
			continue
		}
		valuesSource := asMap(firstPresent(entry, "values", "options", "attributes"))
		if valuesSource == nil {
			continue
		}

		values := make(map[string]string, len(options))
		valid := true
		for _, option := range options {
			// Value lookup falls back from option id to option label for
			// rows written before ids were slugified.
			rawValue := firstPresent(valuesSource, option.ID, option.Label)
			value := strings.TrimSpace(stringify(rawValue))
			if value == "" || !contains(option.Values, value) {
				valid = false
				break
			}
			values[option.ID] = value
		}
		if !valid {
			continue
		}

		stock := coerceStock(firstPresent(entry, "stock", "quantity", "available"))

		key := BuildVariantKey(options, values)
		if at, ok := index[key]; ok {
			variants[at].Stock += stock
			continue
		}
		index[key] = len(variants)
		variants = append(variants, Variant{Key: key, Values: values, Stock: stock})
	}

	var totalStock int64
	for _, variant := range variants {
		totalStock += variant.Stock
	}
	return variants, totalStock
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
