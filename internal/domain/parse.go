package domain

import (
	"strconv"
	"strings"
)

// CoerceInt converts a loosely typed JSON value into an integer.
// Numeric strings may carry thousands separators ("1,000"). Anything
// that cannot be parsed falls back to def; coercion never fails.
func CoerceInt(v any, def int) int {
	switch t := v.(type) {
	case nil:
		return def
	case float64:
		return int(t)
	case int:
		return t
	case int64:
		return int(t)
	case string:
		if n, err := strconv.ParseFloat(normalizeNumeric(t), 64); err == nil {
			return int(n)
		}
		return def
	default:
		return def
	}
}

// CoerceFloat converts a loosely typed JSON value into a float64,
// with the same separator handling and fallback as CoerceInt.
func CoerceFloat(v any, def float64) float64 {
	switch t := v.(type) {
	case nil:
		return def
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		if n, err := strconv.ParseFloat(normalizeNumeric(t), 64); err == nil {
			return n
		}
		return def
	default:
		return def
	}
}

// CoerceInt64Ptr converts an optional value into *int64, returning nil
// when the field is absent or unparseable. Used for the seed input.
func CoerceInt64Ptr(v any) *int64 {
	switch t := v.(type) {
	case nil:
		return nil
	case float64:
		n := int64(t)
		return &n
	case int:
		n := int64(t)
		return &n
	case int64:
		return &t
	case string:
		if n, err := strconv.ParseInt(normalizeNumeric(t), 10, 64); err == nil {
			return &n
		}
		return nil
	default:
		return nil
	}
}

func normalizeNumeric(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}
