package helpers

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// FormatCurrency formats cents as Mexican pesos with thousands grouping
// (e.g. 123456 -> "$1,234.56").
func FormatCurrency(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	whole := cents / 100
	fraction := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var grouped strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(d)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%02d", sign, grouped.String(), fraction)
}

// PriceFromCents converts minor units to the major-unit price used in
// JSON payloads.
func PriceFromCents(cents int64) float64 {
	return float64(cents) / 100
}

// CentsFromPrice converts a major-unit price to cents, rounding to the
// nearest cent.
func CentsFromPrice(price float64) int64 {
	if price < 0 {
		return 0
	}
	return int64(price*100 + 0.5)
}

// FormatDate formats a time.Time as "02/01/2006" (es-MX short date)
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatDateTime formats a time.Time as "02/01/2006 15:04"
func FormatDateTime(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

// NullStringOr returns the trimmed string value, or a default when the
// value is null or blank
func NullStringOr(s sql.NullString, defaultVal string) string {
	if s.Valid {
		if value := strings.TrimSpace(s.String); value != "" {
			return value
		}
	}
	return defaultVal
}
