package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mako10k/t/internal/value"
)

func lineArray(lines ...string) value.Value {
	elems := make([]value.Value, len(lines))
	for i, l := range lines {
		elems[i] = value.Text(l)
	}
	return value.NewArray(elems, value.Line)
}

func TestSplitNestsPerRowWithoutChangingOuterLevel(t *testing.T) {
	in := lineArray("the quick", "fox")
	split := NewSplit("", false)
	out, err := split.Apply(in)
	require.NoError(t, err)

	arr, ok := out.AsArray()
	require.True(t, ok)
	assert.Equal(t, value.Line, arr.Level)
	require.Equal(t, 2, arr.Len())

	row0, ok := arr.Elements[0].AsArray()
	require.True(t, ok)
	assert.Equal(t, value.Word, row0.Level)
	assert.Equal(t, []string{"the", "quick"}, textsOf(t, row0.Elements))
}

func TestSplitWithExplicitDelimiter(t *testing.T) {
	in := lineArray("a,b,c,d,e")
	split := NewSplit(",", true)
	out, err := split.Apply(in)
	require.NoError(t, err)
	arr, _ := out.AsArray()
	row0, _ := arr.Elements[0].AsArray()
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, textsOf(t, row0.Elements))
}

func TestJoinFlattensNestedRows(t *testing.T) {
	// Grounded on the canonical "sjldo:20" word-frequency idiom: split
	// nests one word-array per line, join flattens them back into a
	// single flat word list.
	in := lineArray("the quick", "the fox")
	split := NewSplit("", false)
	nested, err := split.Apply(in)
	require.NoError(t, err)

	join := NewJoin("", false)
	flat, err := join.Apply(nested)
	require.NoError(t, err)

	arr, ok := flat.AsArray()
	require.True(t, ok)
	assert.Equal(t, value.Word, arr.Level)
	assert.Equal(t, []string{"the", "quick", "the", "fox"}, textsOf(t, arr.Elements))
}

func TestJoinCollapsesFlatArrayToText(t *testing.T) {
	words := value.NewArray([]value.Value{value.Text("a"), value.Text("b"), value.Text("c")}, value.Word)
	join := NewJoin("", false)
	out, err := join.Apply(words)
	require.NoError(t, err)
	text, ok := out.AsText()
	require.True(t, ok)
	assert.Equal(t, "a b c", text)
}

func TestJoinWithExplicitDelimiterCollapsesFlatArray(t *testing.T) {
	words := value.NewArray([]value.Value{value.Text("a"), value.Text("b")}, value.Word)
	join := NewJoin("-", true)
	out, err := join.Apply(words)
	require.NoError(t, err)
	text, _ := out.AsText()
	assert.Equal(t, "a-b", text)
}

func textsOf(t *testing.T, vs []value.Value) []string {
	t.Helper()
	out := make([]string, len(vs))
	for i, v := range vs {
		text, ok := v.AsText()
		require.True(t, ok)
		out[i] = text
	}
	return out
}
