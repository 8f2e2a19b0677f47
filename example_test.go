package coerce_test

import (
	"errors"
	"fmt"

	"github.com/coercekit/coerce"
)

// Example demonstrates strict coercion of untrusted dynamic values.
func Example() {
	// Simulate values arriving from a decoded form payload.
	raw := map[string]any{
		"page":    "2",
		"ratio":   "0.75",
		"active":  "YES",
		"comment": "",
	}

	page, _ := coerce.FromAny(raw["page"])
	ratio, _ := coerce.FromAny(raw["ratio"])
	active, _ := coerce.FromAny(raw["active"])
	comment, _ := coerce.FromAny(raw["comment"])

	n, ok := coerce.ToInt(page)
	fmt.Println("page:", n, ok)

	f, ok := coerce.ToFloat(ratio)
	fmt.Println("ratio:", f, ok)

	b, ok := coerce.ToBool(active)
	fmt.Println("active:", b, ok)

	// Empty strings are nullish: the OrNull form reports absence as nil.
	s, ok := coerce.ToStringOrNull(comment)
	fmt.Println("comment:", s, ok)

	// Output:
	// page: 2 true
	// ratio: 0.75 true
	// active: true true
	// comment: <nil> true
}

// ExampleToInt shows the exactness rules for float inputs.
func ExampleToInt() {
	n, ok := coerce.ToInt(coerce.Float(2.0))
	fmt.Println(n, ok)

	// Fractional floats never round silently.
	n, ok = coerce.ToInt(coerce.Float(2.5))
	fmt.Println(n, ok)

	// Rounding is an explicit opt-in, half away from zero.
	n, ok = coerce.ToInt(coerce.Float(2.5), coerce.WithRoundFloats())
	fmt.Println(n, ok)

	// Output:
	// 2 true
	// 0 false
	// 3 true
}

// ExampleToArrayKey shows deterministic int-versus-string key resolution.
func ExampleToArrayKey() {
	index := map[coerce.ArrayKey]string{}

	for _, v := range []coerce.Value{
		coerce.Float(1.0),
		coerce.String("2.5"),
		coerce.String("name"),
	} {
		k, ok := coerce.ToArrayKey(v)
		if !ok {
			continue
		}
		index[k] = k.String()
		fmt.Printf("%s key: %s\n", map[bool]string{true: "int", false: "string"}[k.IsInt()], k)
	}

	fmt.Println("entries:", len(index))

	// Output:
	// int key: 1
	// string key: 2.5
	// string key: name
	// entries: 3
}

// ExampleToIntOrFail shows the error-raising call form.
func ExampleToIntOrFail() {
	_, err := coerce.ToIntOrFail(coerce.String("not a number"))
	fmt.Println(errors.Is(err, coerce.ErrCoercion))

	// Output:
	// true
}
