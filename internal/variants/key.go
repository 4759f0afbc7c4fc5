package variants

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SlugifyKey turns an arbitrary label into a lowercase identifier token:
// diacritics stripped, runs of non-alphanumerics collapsed to a single
// hyphen, leading/trailing hyphens trimmed. Returns fallback when the
// result is empty.
func SlugifyKey(value, fallback string) string {
	if value == "" {
		return fallback
	}

	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if stripped, _, err := transform.String(stripper, value); err == nil {
		value = stripped
	}

	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(value) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			pendingHyphen = true
			continue
		}
		if pendingHyphen && b.Len() > 0 {
			b.WriteByte('-')
		}
		pendingHyphen = false
		b.WriteRune(r)
	}

	if b.Len() == 0 {
		return fallback
	}
	return b.String()
}
