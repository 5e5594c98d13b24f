package ops

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mako10k/t/internal/ast"
	"github.com/mako10k/t/internal/value"
)

func TestFilterKeepsMatchingRows(t *testing.T) {
	in := lineArray("ok", "Error: x", "err", "OK")
	f := NewFilter(regexp.MustCompile("err"), false)
	out, err := f.Apply(in)
	require.NoError(t, err)
	arr, _ := out.AsArray()
	assert.Equal(t, []string{"err"}, textsOf(t, arr.Elements))
}

func TestFilterInvertDropsMatchingRows(t *testing.T) {
	in := lineArray("ok", "Error: x", "err", "OK")
	f := NewFilter(regexp.MustCompile("(?i)err"), true)
	out, err := f.Apply(in)
	require.NoError(t, err)
	arr, _ := out.AsArray()
	assert.Equal(t, []string{"ok", "OK"}, textsOf(t, arr.Elements))
}

func TestMatchExtractsAllOccurrencesPerRow(t *testing.T) {
	in := lineArray("foo1 bar2 baz3")
	m := NewMatch(regexp.MustCompile(`[a-z]+\d`))
	out, err := m.Apply(in)
	require.NoError(t, err)
	arr, _ := out.AsArray()
	row0, _ := arr.Elements[0].AsArray()
	assert.Equal(t, value.Word, row0.Level)
	assert.Equal(t, []string{"foo1", "bar2", "baz3"}, textsOf(t, row0.Elements))
}

func TestReplaceDeepOnAllLeaves(t *testing.T) {
	in := lineArray("foo bar", "foofoo")
	r := NewReplace(regexp.MustCompile("foo"), "X", nil)
	out, err := r.Apply(in)
	require.NoError(t, err)
	arr, _ := out.AsArray()
	assert.Equal(t, []string{"X bar", "XX"}, textsOf(t, arr.Elements))
}

func TestReplaceWithSelectionOnFlatArrayTargetsOnlySelectedPositions(t *testing.T) {
	in := value.NewArray([]value.Value{value.Text("foo"), value.Text("foo")}, value.Word)
	sel := &ast.Selection{Items: []ast.SelectItem{idx(0)}}
	r := NewReplace(regexp.MustCompile("foo"), "X", sel)
	out, err := r.Apply(in)
	require.NoError(t, err)
	arr, _ := out.AsArray()
	assert.Equal(t, []string{"X", "foo"}, textsOf(t, arr.Elements))
}

// A row-structured focus (every element itself an Array, e.g. CSV-like
// rows) selects the same cell position within every row, not a subset
// of whole rows.
func TestReplaceWithSelectionAppliesWithinEachNestedRow(t *testing.T) {
	row := func(a, b string) value.Value {
		return value.NewArray([]value.Value{value.Text(a), value.Text(b)}, value.Word)
	}
	in := value.NewArray([]value.Value{row("foo", "bar"), row("baz", "foo")}, value.Line)
	sel := &ast.Selection{Items: []ast.SelectItem{idx(0)}}
	r := NewReplace(regexp.MustCompile("foo"), "X", sel)

	out, err := r.Apply(in)
	require.NoError(t, err)

	arr, _ := out.AsArray()
	row0, _ := arr.Elements[0].AsArray()
	row1, _ := arr.Elements[1].AsArray()
	assert.Equal(t, []string{"X", "bar"}, textsOf(t, row0.Elements))
	assert.Equal(t, []string{"baz", "foo"}, textsOf(t, row1.Elements))
}
