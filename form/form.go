package form

import (
	"github.com/coercekit/coerce"
)

// lookup fetches m[key] as a coerce.Value. Missing keys, values the engine
// cannot model losslessly, and nullish values all count as absent.
func lookup(m map[string]any, key string) (coerce.Value, bool) {
	if m == nil {
		return coerce.Value{}, false
	}
	raw, ok := m[key]
	if !ok {
		return coerce.Value{}, false
	}
	v, err := coerce.FromAny(raw)
	if err != nil {
		return coerce.Value{}, false
	}
	if coerce.IsNullish(v) {
		return coerce.Value{}, false
	}
	return v, true
}

// LookupString extracts a strictly coerced string value.
// The second return is false when the key is absent, the value is nullish,
// or coercion fails.
func LookupString(m map[string]any, key string, opts ...coerce.Option) (string, bool) {
	v, ok := lookup(m, key)
	if !ok {
		return "", false
	}
	return coerce.ToString(v, opts...)
}

// GetString extracts a strictly coerced string value with a default
// fallback.
func GetString(m map[string]any, key, defaultVal string, opts ...coerce.Option) string {
	s, ok := LookupString(m, key, opts...)
	if !ok {
		return defaultVal
	}
	return s
}

// LookupInt extracts a strictly coerced integer value. Numeric strings and
// integer-valued floats convert; fractional values fail unless
// coerce.WithRoundFloats is supplied.
func LookupInt(m map[string]any, key string, opts ...coerce.Option) (int64, bool) {
	v, ok := lookup(m, key)
	if !ok {
		return 0, false
	}
	return coerce.ToInt(v, opts...)
}

// GetInt extracts a strictly coerced integer value with a default fallback.
func GetInt(m map[string]any, key string, defaultVal int64, opts ...coerce.Option) int64 {
	n, ok := LookupInt(m, key, opts...)
	if !ok {
		return defaultVal
	}
	return n
}

// LookupFloat extracts a strictly coerced finite float value.
func LookupFloat(m map[string]any, key string, opts ...coerce.Option) (float64, bool) {
	v, ok := lookup(m, key)
	if !ok {
		return 0, false
	}
	return coerce.ToFloat(v, opts...)
}

// GetFloat extracts a strictly coerced finite float value with a default
// fallback.
func GetFloat(m map[string]any, key string, defaultVal float64, opts ...coerce.Option) float64 {
	f, ok := LookupFloat(m, key, opts...)
	if !ok {
		return defaultVal
	}
	return f
}

// LookupBool extracts a strictly coerced boolean value using the engine's
// closed vocabulary ("yes", "off", 1, ...).
func LookupBool(m map[string]any, key string) (bool, bool) {
	v, ok := lookup(m, key)
	if !ok {
		return false, false
	}
	return coerce.ToBool(v)
}

// GetBool extracts a strictly coerced boolean value with a default
// fallback.
func GetBool(m map[string]any, key string, defaultVal bool) bool {
	b, ok := LookupBool(m, key)
	if !ok {
		return defaultVal
	}
	return b
}

// LookupArrayKey extracts a value resolved to a lookup key, integer-first.
// Useful for routing identifiers that may arrive as numbers or names.
func LookupArrayKey(m map[string]any, key string) (coerce.ArrayKey, bool) {
	v, ok := lookup(m, key)
	if !ok {
		return coerce.ArrayKey{}, false
	}
	return coerce.ToArrayKey(v)
}

// LookupStrings extracts a sequence value as a []string, strictly coercing
// each element. The whole lookup fails when the value is not a sequence or
// any element refuses string coercion; there is no partial result.
func LookupStrings(m map[string]any, key string, opts ...coerce.Option) ([]string, bool) {
	v, ok := lookup(m, key)
	if !ok || v.Kind() != coerce.KindSeq {
		return nil, false
	}
	out := make([]string, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		elem, _ := v.Index(i)
		s, ok := coerce.ToString(elem, opts...)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
