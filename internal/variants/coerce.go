package variants

import (
	"math"
	"strconv"
	"strings"
)

// stringify renders a decoded JSON value the way the storefront always has:
// numbers without a trailing ".0", everything else via its natural text form.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

// coerceStock converts a raw stock value to a non-negative whole number.
// Unparseable or non-finite input counts as zero stock.
func coerceStock(value any) int64 {
	var n float64
	switch v := value.(type) {
	case float64:
		n = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		n = parsed
	default:
		return 0
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	n = math.Floor(n)
	if n < 0 {
		return 0
	}
	return int64(n)
}

// truthy mirrors loose boolean coercion for the persisted enabled flag,
// which legacy rows stored as true, 1, or "1".
func truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != ""
	default:
		return false
	}
}

func asSlice(value any) []any {
	s, _ := value.([]any)
	return s
}

func asMap(value any) map[string]any {
	m, _ := value.(map[string]any)
	return m
}

func firstPresent(m map[string]any, keys ...string) any {
	for _, key := range keys {
		if v, ok := m[key]; ok && v != nil {
			return v
		}
	}
	return nil
}
