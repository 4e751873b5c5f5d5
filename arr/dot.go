package arr

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers for map[string]any records
//
// Schemaless records decoded from JSON arrive as map[string]any. These
// helpers read and write fields of such records with dot-separated paths:
//
//	user := map[string]any{
//	    "name":    "Sara",
//	    "profile": map[string]any{"order": 2},
//	}
//
//	Get(user, "profile.order")   → 2
//	Set(user, "isHappy", true)
//	Has(user, "profile.missing") → false
// ─────────────────────────────────────────────────────────────────────────────

// Lookup returns the value stored at the dot-notation key together with a
// presence flag.
func Lookup(m map[string]any, key string) (any, bool) {
	segments := strings.Split(key, ".")
	current := m
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return val, true
		}
		nested, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = nested
	}
	return nil, false
}

// Get retrieves a value from m using a dot-notation key.
// Returns def[0] (or nil) when the key does not exist.
//
//	Get(m, "profile.order")         // 2
//	Get(m, "profile.bio", "n/a")    // "n/a"
func Get(m map[string]any, key string, def ...any) any {
	if val, ok := Lookup(m, key); ok {
		return val
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Set writes value into m at the dot-notation key, creating intermediate
// maps as needed. A non-map value sitting on the path is replaced.
func Set(m map[string]any, key string, value any) {
	segments := strings.SplitN(key, ".", 2)
	if len(segments) == 1 {
		m[key] = value
		return
	}
	seg, rest := segments[0], segments[1]
	nested, ok := m[seg].(map[string]any)
	if !ok {
		nested = make(map[string]any)
		m[seg] = nested
	}
	Set(nested, rest, value)
}

// Has reports whether the dot-notation key exists in m.
func Has(m map[string]any, key string) bool {
	_, ok := Lookup(m, key)
	return ok
}
