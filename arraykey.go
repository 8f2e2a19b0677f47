package coerce

import "strconv"

// ArrayKey is a lookup key resolved by ToArrayKey: either an int64 or a
// non-empty string. ArrayKey is comparable and can be used directly as a Go
// map key. The zero ArrayKey is the "no value" result of a failed
// resolution and never comes out of a successful ToArrayKey call.
type ArrayKey struct {
	s     string
	i     int64
	isInt bool
}

// IntKey returns an integer key.
func IntKey(n int64) ArrayKey {
	return ArrayKey{i: n, isInt: true}
}

// StringKey returns a string key. ToArrayKey never produces an
// empty-string key; constructing one directly yields the zero ArrayKey.
func StringKey(s string) ArrayKey {
	return ArrayKey{s: s}
}

// IsInt reports whether the key is an integer key.
func (k ArrayKey) IsInt() bool { return k.isInt }

// IsZero reports whether the key is the zero "no value" key.
func (k ArrayKey) IsZero() bool { return !k.isInt && k.s == "" }

// Int returns the integer key value, or 0 for a string or zero key.
func (k ArrayKey) Int() int64 { return k.i }

// Str returns the string key value, or "" for an integer or zero key.
func (k ArrayKey) Str() string { return k.s }

// String returns the display form of the key: the decimal integer or the
// string value.
func (k ArrayKey) String() string {
	if k.isInt {
		return strconv.FormatInt(k.i, 10)
	}
	return k.s
}
