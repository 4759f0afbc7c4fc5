package handlers

import (
	"database/sql"
	"strings"
)

// toInt64 unwraps the interface{} values sqlite aggregates come back as.
func toInt64(v interface{}) int64 {
	switch value := v.(type) {
	case int64:
		return value
	case float64:
		return int64(value)
	case nil:
		return 0
	default:
		return 0
	}
}

func nullString(value string) sql.NullString {
	value = strings.TrimSpace(value)
	return sql.NullString{String: value, Valid: value != ""}
}

func fromNull(s sql.NullString) string {
	if s.Valid {
		return strings.TrimSpace(s.String)
	}
	return ""
}
