package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// truthy reports whether v counts as provided: nil, "", 0, NaN and false do not.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case json.Number, float64, float32, int, int32, int64:
		f, ok := toNumber(t)
		return !ok || (f != 0 && !math.IsNaN(f))
	default:
		return true
	}
}

// toNumber converts scalars the way a numeric cast would: blank strings and
// nil become zero, booleans become 0 or 1. Objects and arrays fail.
func toNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case json.Number:
		f, err := strconv.ParseFloat(string(t), 64)
		return f, err == nil
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func coerceAge(v any) (int, bool) {
	f, ok := toNumber(v)
	if !ok || !finite(f) || f < 0 || f > 120 || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// strictAge accepts only numeric JSON values.
func strictAge(v any) (int, bool) {
	switch v.(type) {
	case json.Number, float64, float32, int, int32, int64:
		return coerceAge(v)
	default:
		return 0, false
	}
}

// coercePassword accepts strings as-is and stringifies numbers.
func coercePassword(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	case int, int32, int64:
		return fmt.Sprint(t), true
	default:
		return "", false
	}
}

func scalarString(v any) string {
	if s, ok := coercePassword(v); ok {
		return s
	}
	return fmt.Sprint(v)
}
