// Package coerce provides strict, unambiguous coercion of dynamically typed
// values to string, integer, float, boolean, and array-key targets.
//
// The engine never guesses intent: a coercion succeeds only when the
// conversion is exact and lossless, unless an explicit option opts into a
// looser rule. There is no generic truthiness, no implicit serialization of
// composites, and no silent rounding.
//
// # Values
//
// Inputs are modeled as a closed tagged union, Value, over the kinds Null,
// Bool, Int, Float, String, Seq, Map, and Object. Construct values directly
// (coerce.Int(42), coerce.String("on")) or from untrusted dynamic data with
// FromAny, which accepts the shapes produced by encoding/json and yaml:
//
//	v, err := coerce.FromAny(raw)
//	if err != nil {
//		return err
//	}
//	n, ok := coerce.ToInt(v)
//
// An Object value participates in ToString only when its payload implements
// the Texter capability interface; there is no reflection-based probing.
//
// # Coercion Families
//
// Each target type has three call forms:
//
//   - Boolean-returning: ToInt(v) (int64, bool). Failure returns the
//     target's zero value and false; the zero value is never a partial
//     result.
//   - OrNull: ToIntOrNull(v) (*int64, bool). Nullish input (the null value
//     or the empty string) succeeds immediately with a nil pointer.
//   - OrFail: ToIntOrFail(v) (int64, error) and
//     ToIntOrNullOrFail(v) (*int64, error). Failure returns an *Error that
//     matches ErrCoercion via errors.Is.
//
// # Options
//
// Per-call policy is set with functional options:
//
//	n, ok := coerce.ToInt(v, coerce.WithRoundFloats(), coerce.WithRejectNegative())
//
// All options default to off. WithRoundFloats rounds half away from zero.
//
// # Error Channels
//
// Ordinary coercion failure is expected and recoverable: the boolean family
// reports it with a false flag and the OrFail family with an error matching
// ErrCoercion. The one caller-misuse case, passing WithRejectBool to a
// ToBool-family function, panics with an *Error matching ErrLogic: it is a
// contradictory request, not bad data.
//
// All functions are pure and stateless; any number of goroutines may call
// them concurrently without coordination.
package coerce
