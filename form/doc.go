// Package form provides strict, coercion-backed extraction of typed values
// from map[string]any payloads such as decoded form posts, query strings,
// and JSON bodies.
//
// Unlike ad-hoc type assertions, every lookup runs the value through the
// coerce engine, so a "123" string becomes the int 123 while "12.5" does
// not, and an empty form field counts as absent rather than as a value.
//
// # Get versus Lookup
//
// The Get functions return a caller-supplied default when the key is
// missing, the value is nullish, or strict coercion fails:
//
//	page := form.GetInt(payload, "page", 1)
//
// The Lookup functions return an explicit ok flag for callers that must
// tell a defaulted result apart from a present one:
//
//	limit, ok := form.LookupInt(payload, "limit")
//
// Coercion options pass through to the engine:
//
//	page := form.GetInt(payload, "page", 1, coerce.WithRejectNegative())
//
// All functions tolerate a nil map.
package form
