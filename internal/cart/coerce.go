package cart

import (
	"math"
	"strconv"
	"strings"
)

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

func firstPresent(m map[string]any, keys ...string) any {
	for _, key := range keys {
		if v, ok := m[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

// coerceQuantity turns a raw quantity into a positive whole number,
// defaulting to 1.
func coerceQuantity(value any) int64 {
	n, ok := toNumber(value)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		return 1
	}
	q := int64(math.Floor(n))
	if q <= 0 {
		return 1
	}
	return q
}

// coercePrice turns a raw unit price into a non-negative number,
// defaulting to 0.
func coercePrice(value any) float64 {
	n, ok := toNumber(value)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0
	}
	return n
}

func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
