package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mako10k/t/internal/value"
)

func TestCountArrayLength(t *testing.T) {
	in := value.NewArray([]value.Value{value.Text("a"), value.Text("b"), value.Text("c")}, value.Word)
	out, err := Count{}.Apply(in)
	require.NoError(t, err)
	n, _ := out.AsNumber()
	assert.Equal(t, float64(3), n)
}

func TestCountScalarPassesThrough(t *testing.T) {
	out, err := Count{}.Apply(value.Text("hi"))
	require.NoError(t, err)
	text, _ := out.AsText()
	assert.Equal(t, "hi", text)
}

func TestSumCoercesTextAndSkipsUnparsable(t *testing.T) {
	in := value.NewArray([]value.Value{value.Number(1), value.Text("2.5"), value.Text("nope")}, value.Word)
	out, err := Sum{}.Apply(in)
	require.NoError(t, err)
	n, _ := out.AsNumber()
	assert.Equal(t, 3.5, n)
}

func TestSumEmptyArrayIsZero(t *testing.T) {
	in := value.NewArray(nil, value.Word)
	out, err := Sum{}.Apply(in)
	require.NoError(t, err)
	n, _ := out.AsNumber()
	assert.Equal(t, float64(0), n)
}
