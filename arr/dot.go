package arr

import (
	"strings"

	"github.com/spf13/cast"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers for map[string]any
//
// A key such as "user.address.city" addresses m["user"]["address"]["city"]
// through nested map[string]any values. Reads never panic: a missing segment
// or a non-map intermediate value simply reports the key as absent.
// ─────────────────────────────────────────────────────────────────────────────

// lookup follows the dot-separated key through m.
func lookup(m map[string]any, key string) (any, bool) {
	current := m
	for {
		seg, rest, nested := strings.Cut(key, ".")
		val, ok := current[seg]
		if !ok {
			return nil, false
		}
		if !nested {
			return val, true
		}
		next, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current, key = next, rest
	}
}

// Get retrieves a value from m using a dot-notation key.
// Returns def[0] (or nil) when the key does not exist or holds nil.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
func Get(m map[string]any, key string, def ...any) any {
	if v, ok := lookup(m, key); ok && v != nil {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// GetString is [Get] converted to a string. Values that cannot be converted
// yield def[0], or "".
func GetString(m map[string]any, key string, def ...string) string {
	if v, ok := lookup(m, key); ok && v != nil {
		if s, err := cast.ToStringE(v); err == nil {
			return s
		}
	}
	if len(def) > 0 {
		return def[0]
	}
	return ""
}

// GetInt is [Get] converted to an int. Numeric strings are parsed; values
// that cannot be converted yield def[0], or 0.
func GetInt(m map[string]any, key string, def ...int) int {
	if v, ok := lookup(m, key); ok && v != nil {
		if n, err := cast.ToIntE(v); err == nil {
			return n
		}
	}
	if len(def) > 0 {
		return def[0]
	}
	return 0
}

// GetFloat is [Get] converted to a float64. Numeric strings are parsed;
// values that cannot be converted yield def[0], or 0.
func GetFloat(m map[string]any, key string, def ...float64) float64 {
	if v, ok := lookup(m, key); ok && v != nil {
		if f, err := cast.ToFloat64E(v); err == nil {
			return f
		}
	}
	if len(def) > 0 {
		return def[0]
	}
	return 0
}

// Has reports whether the dot-notation key exists in m.
func Has(m map[string]any, key string) bool {
	_, ok := lookup(m, key)
	return ok
}

// Set writes value into m at the dot-notation key, creating intermediate
// maps as needed. A non-map value in the way is replaced.
//
//	Set(m, "user.address.postcode", "EC1")
func Set(m map[string]any, key string, value any) {
	for {
		seg, rest, nested := strings.Cut(key, ".")
		if !nested {
			m[seg] = value
			return
		}
		next, ok := m[seg].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[seg] = next
		}
		m, key = next, rest
	}
}

// Forget removes the dot-notation key from m.
// Intermediate maps are not cleaned up.
func Forget(m map[string]any, key string) {
	for {
		seg, rest, nested := strings.Cut(key, ".")
		if !nested {
			delete(m, seg)
			return
		}
		next, ok := m[seg].(map[string]any)
		if !ok {
			return
		}
		m, key = next, rest
	}
}

// Only returns a new map containing only the given top-level keys. Keys that
// are absent from m are absent from the result.
func Only[V any](m map[string]V, keys ...string) map[string]V {
	out := make(map[string]V, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}
