package decode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/coercekit/coerce"
	"gopkg.in/yaml.v3"
)

// JSON decodes a single JSON document into a coerce.Value tree. Numbers
// with no fraction or exponent become Int values; everything else numeric
// becomes Float. Trailing content after the document is an error.
func JSON(data []byte) (coerce.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return coerce.Value{}, fmt.Errorf("decode json: %w", err)
	}
	if err := dec.Decode(new(any)); err != io.EOF {
		return coerce.Value{}, fmt.Errorf("decode json: trailing content after document")
	}
	return fromJSON(raw)
}

// fromJSON converts the decoder's output, resolving json.Number before
// handing the rest to coerce.FromAny.
func fromJSON(raw any) (coerce.Value, error) {
	switch x := raw.(type) {
	case json.Number:
		if n, err := strconv.ParseInt(string(x), 10, 64); err == nil {
			return coerce.Int(n), nil
		}
		f, err := x.Float64()
		if err != nil {
			return coerce.Value{}, fmt.Errorf("decode json: number %q: %w", x, err)
		}
		return coerce.Float(f), nil
	case []any:
		elems := make([]coerce.Value, len(x))
		for i, e := range x {
			v, err := fromJSON(e)
			if err != nil {
				return coerce.Value{}, err
			}
			elems[i] = v
		}
		return coerce.Seq(elems...), nil
	case map[string]any:
		entries := make(map[string]coerce.Value, len(x))
		for k, e := range x {
			v, err := fromJSON(e)
			if err != nil {
				return coerce.Value{}, err
			}
			entries[k] = v
		}
		return coerce.Map(entries), nil
	default:
		return coerce.FromAny(x)
	}
}

// YAML decodes a YAML document into a coerce.Value tree. The yaml parser
// already types scalars, so integers, floats, booleans, and nulls arrive
// with their natural kinds.
func YAML(data []byte) (coerce.Value, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return coerce.Value{}, fmt.Errorf("decode yaml: %w", err)
	}
	v, err := coerce.FromAny(raw)
	if err != nil {
		return coerce.Value{}, fmt.Errorf("decode yaml: %w", err)
	}
	return v, nil
}
