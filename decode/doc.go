// Package decode builds coerce.Value trees from untrusted JSON and YAML
// documents.
//
// Both decoders preserve the int/float distinction the coerce engine cares
// about: JSON numbers are decoded through json.Number so that 1 arrives as
// an Int value and only true fractions become Float, and YAML scalars keep
// the types the yaml parser assigns them.
//
//	v, err := decode.JSON([]byte(`{"port": 8080, "ratio": 0.5}`))
//	if err != nil {
//		return err
//	}
//	port, _ := v.Get("port")
//	n, ok := coerce.ToInt(port)
//
// Decode errors wrap the underlying parser error; they are malformed-input
// errors, not coercion failures, and do not participate in the coerce error
// taxonomy.
package decode
