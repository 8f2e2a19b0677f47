package coerce

import (
	"fmt"
	"math"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	// KindNull is the null value. The zero Value has this kind.
	KindNull Kind = iota

	// KindBool is a boolean.
	KindBool

	// KindInt is a 64-bit signed integer.
	KindInt

	// KindFloat is a 64-bit float, including NaN and the infinities.
	KindFloat

	// KindString is a string, including the empty string.
	KindString

	// KindSeq is an ordered sequence of values.
	KindSeq

	// KindMap is a string-keyed collection of values.
	KindMap

	// KindObject is an opaque host value. It coerces to string only when
	// its payload implements Texter.
	KindObject
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSeq:
		return "seq"
	case KindMap:
		return "map"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Texter is implemented by object payloads that define their own textual
// representation. Objects that do not implement Texter never coerce to
// string.
type Texter interface {
	Text() string
}

// Value is a dynamically typed input value: a closed tagged union over the
// kinds listed above. The zero Value is the null value. Values are immutable
// once constructed.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	seq  []Value
	m    map[string]Value
	obj  any
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer value.
func Int(n int64) Value { return Value{kind: KindInt, i: n} }

// Float returns a float value. NaN and the infinities are representable;
// they are rejected later by the numeric coercion targets.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Seq returns a sequence value holding the given elements.
func Seq(elems ...Value) Value { return Value{kind: KindSeq, seq: elems} }

// Map returns a map value holding the given entries.
func Map(entries map[string]Value) Value { return Value{kind: KindMap, m: entries} }

// Object returns an opaque object value wrapping payload.
func Object(payload any) Value { return Value{kind: KindObject, obj: payload} }

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// Get looks up an entry of a map value. It returns false for any other kind
// or when the key is absent.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	e, ok := v.m[key]
	return e, ok
}

// Index returns the i-th element of a sequence value. It returns false for
// any other kind or when i is out of range.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindSeq || i < 0 || i >= len(v.seq) {
		return Value{}, false
	}
	return v.seq[i], true
}

// Len returns the element count of a sequence or map value, and 0 for every
// other kind.
func (v Value) Len() int {
	switch v.kind {
	case KindSeq:
		return len(v.seq)
	case KindMap:
		return len(v.m)
	default:
		return 0
	}
}

// FromAny builds a Value from a dynamically typed Go value, accepting the
// shapes encoding/json and yaml produce: nil, bool, every integer and float
// width, string, []any, and map[string]any. A Value passes through
// unchanged. Anything else becomes an Object.
//
// Unsigned values above math.MaxInt64 are rejected rather than clamped;
// clamping would be a lossy conversion.
func FromAny(raw any) (Value, error) {
	switch x := raw.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		if uint64(x) > math.MaxInt64 {
			return Value{}, fmt.Errorf("coerce: uint value %d overflows int64", x)
		}
		return Int(int64(x)), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		if x > math.MaxInt64 {
			return Value{}, fmt.Errorf("coerce: uint64 value %d overflows int64", x)
		}
		return Int(int64(x)), nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case string:
		return String(x), nil
	case []any:
		elems := make([]Value, len(x))
		for i, e := range x {
			v, err := FromAny(e)
			if err != nil {
				return Value{}, err
			}
			elems[i] = v
		}
		return Seq(elems...), nil
	case map[string]any:
		entries := make(map[string]Value, len(x))
		for k, e := range x {
			v, err := FromAny(e)
			if err != nil {
				return Value{}, err
			}
			entries[k] = v
		}
		return Map(entries), nil
	default:
		return Object(x), nil
	}
}
