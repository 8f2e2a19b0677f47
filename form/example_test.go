package form_test

import (
	"fmt"

	"github.com/coercekit/coerce"
	"github.com/coercekit/coerce/form"
)

// Example demonstrates strict extraction from a decoded request payload.
func Example() {
	payload := map[string]any{
		"page":   "2",    // numeric string
		"limit":  25.0,   // integer-valued float, e.g. from JSON
		"search": "",     // empty form field counts as absent
		"debug":  "on",
	}

	page := form.GetInt(payload, "page", 1, coerce.WithRejectNegative())
	limit := form.GetInt(payload, "limit", 10)
	search := form.GetString(payload, "search", "(none)")
	debug := form.GetBool(payload, "debug", false)

	fmt.Printf("page: %d\n", page)
	fmt.Printf("limit: %d\n", limit)
	fmt.Printf("search: %s\n", search)
	fmt.Printf("debug: %t\n", debug)

	// Output:
	// page: 2
	// limit: 25
	// search: (none)
	// debug: true
}
