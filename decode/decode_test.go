package decode

import (
	"testing"

	"github.com/coercekit/coerce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONScalarTyping(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want coerce.Value
	}{
		{name: "integer stays int", in: `1`, want: coerce.Int(1)},
		{name: "negative integer", in: `-42`, want: coerce.Int(-42)},
		{name: "large integer stays exact", in: `9223372036854775807`, want: coerce.Int(9223372036854775807)},
		{name: "fraction becomes float", in: `1.5`, want: coerce.Float(1.5)},
		{name: "exponent becomes float", in: `1e3`, want: coerce.Float(1000)},
		{name: "string", in: `"on"`, want: coerce.String("on")},
		{name: "bool", in: `true`, want: coerce.Bool(true)},
		{name: "null", in: `null`, want: coerce.Null()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := JSON([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJSONComposite(t *testing.T) {
	v, err := JSON([]byte(`{"port": 8080, "ratio": 0.5, "hosts": ["a", "b"], "extra": null}`))
	require.NoError(t, err)
	require.Equal(t, coerce.KindMap, v.Kind())

	port, ok := v.Get("port")
	require.True(t, ok)
	n, ok := coerce.ToInt(port)
	require.True(t, ok)
	assert.Equal(t, int64(8080), n)

	ratio, ok := v.Get("ratio")
	require.True(t, ok)
	assert.Equal(t, coerce.KindFloat, ratio.Kind())
	_, ok = coerce.ToInt(ratio)
	assert.False(t, ok, "0.5 must not silently become an int")

	hosts, ok := v.Get("hosts")
	require.True(t, ok)
	require.Equal(t, coerce.KindSeq, hosts.Kind())
	require.Equal(t, 2, hosts.Len())
	h0, _ := hosts.Index(0)
	assert.Equal(t, coerce.String("a"), h0)

	extra, ok := v.Get("extra")
	require.True(t, ok)
	assert.True(t, coerce.IsNullish(extra))
}

func TestJSONErrors(t *testing.T) {
	_, err := JSON([]byte(`{"broken":`))
	assert.Error(t, err)

	_, err = JSON([]byte(``))
	assert.Error(t, err)

	_, err = JSON([]byte(`1 2`))
	assert.Error(t, err, "trailing content is rejected")

	// Trailing whitespace is fine.
	_, err = JSON([]byte("1\n"))
	assert.NoError(t, err)
}

func TestYAMLScalarTyping(t *testing.T) {
	v, err := YAML([]byte(`
port: 8080
ratio: 0.5
name: web
active: true
missing: null
`))
	require.NoError(t, err)
	require.Equal(t, coerce.KindMap, v.Kind())

	port, ok := v.Get("port")
	require.True(t, ok)
	assert.Equal(t, coerce.Int(8080), port)

	ratio, ok := v.Get("ratio")
	require.True(t, ok)
	assert.Equal(t, coerce.KindFloat, ratio.Kind())

	name, ok := v.Get("name")
	require.True(t, ok)
	assert.Equal(t, coerce.String("web"), name)

	active, ok := v.Get("active")
	require.True(t, ok)
	assert.Equal(t, coerce.Bool(true), active)

	missing, ok := v.Get("missing")
	require.True(t, ok)
	assert.True(t, coerce.IsNullish(missing))
}

func TestYAMLSequence(t *testing.T) {
	v, err := YAML([]byte("- 1\n- 2.5\n- three\n"))
	require.NoError(t, err)
	require.Equal(t, coerce.KindSeq, v.Kind())
	require.Equal(t, 3, v.Len())

	e0, _ := v.Index(0)
	assert.Equal(t, coerce.Int(1), e0)
	e1, _ := v.Index(1)
	assert.Equal(t, coerce.Float(2.5), e1)
	e2, _ := v.Index(2)
	assert.Equal(t, coerce.String("three"), e2)
}

func TestYAMLError(t *testing.T) {
	_, err := YAML([]byte("key: [unclosed"))
	assert.Error(t, err)
}

// TestDecodeFeedsEngine exercises the decode-then-coerce round trip the
// package exists for.
func TestDecodeFeedsEngine(t *testing.T) {
	v, err := JSON([]byte(`{"id": "7", "weight": 2.5}`))
	require.NoError(t, err)

	id, ok := v.Get("id")
	require.True(t, ok)
	k, ok := coerce.ToArrayKey(id)
	require.True(t, ok)
	assert.Equal(t, coerce.IntKey(7), k)

	weight, ok := v.Get("weight")
	require.True(t, ok)
	f, err := coerce.ToFloatOrFail(weight)
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)
}
