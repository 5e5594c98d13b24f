package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mako10k/t/internal/value"
)

func TestTextAppendsTrailingNewline(t *testing.T) {
	v := value.NewArray([]value.Value{value.Text("a"), value.Text("b")}, value.Line)
	assert.Equal(t, "a\nb\n", Text(v))
}

func TestJSONRendersNestedArrays(t *testing.T) {
	v := value.NewArray([]value.Value{
		value.Text("a"),
		value.NewArray([]value.Value{value.Number(1), value.Number(2)}, value.Word),
	}, value.Line)

	out, err := JSON(v)
	require.NoError(t, err)

	var decoded []interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "a", decoded[0])
	assert.Equal(t, []interface{}{float64(1), float64(2)}, decoded[1])
}

func TestJSONNonFiniteNumberRendersAsString(t *testing.T) {
	out, err := JSON(value.Number(1.0 / zero()))
	require.NoError(t, err)
	assert.Equal(t, `"Inf"`, string(out))
}

func zero() float64 { var z float64; return z }
