package cart

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bellavista/storefront/internal/variants"
)

// SelectedOption is one chosen value on a cart line.
type SelectedOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// NormalizeSelections adapts the two selection shapes the UI sends, an
// array of option objects or a plain label-to-value map, into canonical
// {id,label,value} triples. Entries without a usable value are dropped.
func NormalizeSelections(input any) []SelectedOption {
	switch v := input.(type) {
	case nil:
		return []SelectedOption{}
	case []SelectedOption:
		return normalizeTyped(v)
	case map[string]string:
		generic := make(map[string]any, len(v))
		for key, value := range v {
			generic[key] = value
		}
		return normalizeMapped(generic)
	case map[string]any:
		return normalizeMapped(v)
	case []any:
		return normalizeListed(v)
	default:
		return []SelectedOption{}
	}
}

func normalizeTyped(input []SelectedOption) []SelectedOption {
	options := make([]SelectedOption, 0, len(input))
	for index, option := range input {
		value := strings.TrimSpace(option.Value)
		if value == "" {
			continue
		}
		label := strings.TrimSpace(option.Label)
		id := strings.TrimSpace(option.ID)
		if label == "" {
			label = firstNonEmpty(id, fmt.Sprintf("Opción %d", index+1))
		}
		if id == "" {
			id = firstNonEmpty(variants.SlugifyKey(label, ""), fmt.Sprintf("option-%d", index+1))
		}
		options = append(options, SelectedOption{ID: id, Label: label, Value: value})
	}
	return options
}

func normalizeListed(input []any) []SelectedOption {
	options := make([]SelectedOption, 0, len(input))
	for index, raw := range input {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		value := strings.TrimSpace(stringify(firstPresent(entry, "value", "selected", "optionValue")))
		if value == "" {
			continue
		}
		label := strings.TrimSpace(stringify(firstPresent(entry, "label", "name", "id", "key")))
		if label == "" {
			label = fmt.Sprintf("Opción %d", index+1)
		}
		id := strings.TrimSpace(stringify(firstPresent(entry, "id", "key")))
		if id == "" {
			id = variants.SlugifyKey(label, "")
		}
		if id == "" {
			id = fmt.Sprintf("option-%d", index+1)
		}
		options = append(options, SelectedOption{ID: id, Label: label, Value: value})
	}
	return options
}

func normalizeMapped(input map[string]any) []SelectedOption {
	labels := make([]string, 0, len(input))
	for label := range input {
		labels = append(labels, label)
	}
	// Map iteration order is random in Go; sort so the same selection
	// always produces the same option sequence.
	sort.Strings(labels)

	options := make([]SelectedOption, 0, len(input))
	for _, label := range labels {
		value := strings.TrimSpace(stringify(input[label]))
		if value == "" {
			continue
		}
		trimmedLabel := strings.TrimSpace(label)
		id := firstNonEmpty(variants.SlugifyKey(label, ""), trimmedLabel)
		options = append(options, SelectedOption{
			ID:    id,
			Label: firstNonEmpty(trimmedLabel, label),
			Value: value,
		})
	}
	return options
}

// LineUID is the stable cart-line identity: the product id plus a sorted
// id:value join of the selected options. Lines with no options collapse to
// the bare product id. Sorted, unlike the variant key, so the same
// configuration matches regardless of selection order.
func LineUID(productID string, options []SelectedOption) string {
	base := productID
	if base == "" {
		base = "producto"
	}
	if len(options) == 0 {
		return base
	}
	parts := make([]string, 0, len(options))
	for _, option := range options {
		id := option.ID
		if id == "" {
			id = variants.SlugifyKey(option.Label, "")
		}
		parts = append(parts, id+":"+option.Value)
	}
	sort.Strings(parts)
	return base + "__" + strings.Join(parts, "|")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
