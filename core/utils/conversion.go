package utils

import (
	"fmt"
	"strconv"
)

// ToString converts a decoded YAML/JSON scalar to string.
// Nil and composite values (maps, slices) yield "" so callers can default
// missing or intrinsic-function fields without failing.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case map[string]any, []any:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Lookup walks nested string-keyed maps along keys and returns the value found,
// or nil when any step is missing or not a map.
func Lookup(val any, keys ...string) any {
	current := val
	for _, key := range keys {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = m[key]
	}
	return current
}
