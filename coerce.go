package coerce

import (
	"math"
	"strconv"
	"strings"
)

// int64Bound is 2^63. A float f converts to int64 exactly when
// -int64Bound <= f < int64Bound.
const int64Bound = 1 << 63

// IsNullish reports whether v is the null value or the empty string. Many
// callers treat the two as equivalent absence markers (an empty HTML form
// field arrives as ""), so every coercion target handles them identically.
func IsNullish(v Value) bool {
	return v.kind == KindNull || (v.kind == KindString && v.s == "")
}

// ToString coerces v to its textual representation.
//
// Nullish input succeeds with "". Booleans become "true"/"false" unless
// WithRejectBool is set. Integers and floats use their canonical form;
// non-finite floats produce the literal strings "NAN", "INF", and "-INF".
// Sequences and maps always fail: there is no implicit serialization.
// Objects succeed only when their payload implements Texter.
//
// On failure the returned string is always "".
func ToString(v Value, opts ...Option) (string, bool) {
	return toString(v, NewOptions(opts...))
}

func toString(v Value, o Options) (string, bool) {
	if IsNullish(v) {
		return "", true
	}
	switch v.kind {
	case KindBool:
		if o.RejectBool {
			return "", false
		}
		return strconv.FormatBool(v.b), true
	case KindInt:
		return strconv.FormatInt(v.i, 10), true
	case KindFloat:
		return formatFloat(v.f), true
	case KindString:
		return v.s, true
	case KindObject:
		if t, ok := v.obj.(Texter); ok {
			return t.Text(), true
		}
	}
	return "", false
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NAN"
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// ToInt coerces v to an exact integer.
//
// Integers pass through unchanged. Booleans become 1/0 unless
// WithRejectBool is set. Floats must be finite and, without
// WithRoundFloats, must have no fractional part; with it they round half
// away from zero. Decimal integer strings convert exactly; other numeric
// strings are parsed as floats and then follow the float rule. Non-numeric
// strings, nullish input, sequences, maps, and objects fail.
//
// WithRejectNegative and WithRejectZero filter the computed result
// regardless of which input kind produced it.
//
// On failure the returned int64 is always 0.
func ToInt(v Value, opts ...Option) (int64, bool) {
	return toInt(v, NewOptions(opts...))
}

func toInt(v Value, o Options) (int64, bool) {
	var n int64
	switch v.kind {
	case KindInt:
		n = v.i
	case KindBool:
		if o.RejectBool {
			return 0, false
		}
		if v.b {
			n = 1
		}
	case KindFloat:
		m, ok := floatToInt(v.f, o.RoundFloats)
		if !ok {
			return 0, false
		}
		n = m
	case KindString:
		if v.s == "" {
			return 0, false
		}
		// Exact integer strings bypass the float path so every int64
		// round-trips through its decimal form without precision loss.
		if m, err := strconv.ParseInt(v.s, 10, 64); err == nil {
			n = m
			break
		}
		f, err := strconv.ParseFloat(v.s, 64)
		if err != nil {
			return 0, false
		}
		m, ok := floatToInt(f, o.RoundFloats)
		if !ok {
			return 0, false
		}
		n = m
	default:
		return 0, false
	}
	if o.RejectNegative && n < 0 {
		return 0, false
	}
	if o.RejectZero && n == 0 {
		return 0, false
	}
	return n, true
}

func floatToInt(f float64, round bool) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if round {
		f = math.Round(f)
	} else if math.Trunc(f) != f {
		return 0, false
	}
	if f >= int64Bound || f < -int64Bound {
		return 0, false
	}
	return int64(f), true
}

// ToFloat coerces v to a finite float.
//
// Finite floats pass through unchanged; NaN and the infinities fail even
// though they are already the target type, because a successful coercion
// must yield a usable number. Integers convert exactly when possible.
// Booleans become 1.0/0.0 unless WithRejectBool is set. Numeric strings are
// parsed; strings spelling a non-finite value ("NaN", "Inf") fail.
// Everything else fails.
//
// On failure the returned float64 is always 0.
func ToFloat(v Value, opts ...Option) (float64, bool) {
	return toFloat(v, NewOptions(opts...))
}

func toFloat(v Value, o Options) (float64, bool) {
	switch v.kind {
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return 0, false
		}
		return v.f, true
	case KindInt:
		return float64(v.i), true
	case KindBool:
		if o.RejectBool {
			return 0, false
		}
		if v.b {
			return 1, true
		}
		return 0, true
	case KindString:
		if v.s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(v.s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// Closed string vocabulary for ToBool, matched case-insensitively.
var (
	boolTrueWords = map[string]struct{}{
		"1": {}, "true": {}, "t": {}, "yes": {}, "y": {}, "on": {},
	}
	boolFalseWords = map[string]struct{}{
		"0": {}, "false": {}, "f": {}, "no": {}, "n": {}, "off": {},
	}
)

// ToBool coerces v to a boolean using a closed vocabulary, never a generic
// truthiness rule.
//
// Booleans pass through unchanged. Numbers succeed only when numerically
// equal to 0 or 1. Strings are matched case-insensitively against
// {"1","true","t","yes","y","on"} for true and
// {"0","false","f","no","n","off"} for false. Nullish input, any other
// string, sequences, maps, and objects fail.
//
// Supplying WithRejectBool is a contradictory request when the target is
// bool; ToBool panics with an *Error matching ErrLogic, regardless of the
// input value. On ordinary failure the returned bool is always false.
func ToBool(v Value, opts ...Option) (bool, bool) {
	if NewOptions(opts...).RejectBool {
		panic(NewLogicError("ToBool"))
	}
	return toBool(v)
}

func toBool(v Value) (bool, bool) {
	switch v.kind {
	case KindBool:
		return v.b, true
	case KindInt:
		switch v.i {
		case 0:
			return false, true
		case 1:
			return true, true
		}
	case KindFloat:
		// NaN compares unequal to everything and falls through to failure.
		switch {
		case v.f == 0:
			return false, true
		case v.f == 1:
			return true, true
		}
	case KindString:
		if v.s == "" {
			return false, false
		}
		w := strings.ToLower(v.s)
		if _, ok := boolTrueWords[w]; ok {
			return true, true
		}
		if _, ok := boolFalseWords[w]; ok {
			return false, true
		}
	}
	return false, false
}

// ToArrayKey coerces v to a lookup key: either an integer or a non-empty
// string, resolved deterministically.
//
// Nullish input fails; the empty string is excluded as a key so it cannot
// collide with the absence sentinel. Booleans always fail: representing
// true as 1 or as "true" would be an arbitrary choice this function refuses
// to make. Non-finite floats fail. Every other value is tried as an integer
// first, under the default policy, and as a string second, so float 1.0 and
// string "1" become the integer key 1 while float 2.5 and string "2.5"
// become string keys.
//
// Key resolution always uses the default policy; opts is accepted for
// signature uniformity with the other targets and has no effect.
//
// On failure the returned key is the zero ArrayKey.
func ToArrayKey(v Value, opts ...Option) (ArrayKey, bool) {
	if IsNullish(v) {
		return ArrayKey{}, false
	}
	switch v.kind {
	case KindBool:
		return ArrayKey{}, false
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return ArrayKey{}, false
		}
	}
	if n, ok := toInt(v, Options{}); ok {
		return IntKey(n), true
	}
	if s, ok := toString(v, Options{}); ok {
		return StringKey(s), true
	}
	return ArrayKey{}, false
}
