package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mako10k/t/internal/ast"
	"github.com/mako10k/t/internal/value"
)

func row(cells ...string) value.Value {
	elems := make([]value.Value, len(cells))
	for i, c := range cells {
		elems[i] = value.Text(c)
	}
	return value.NewArray(elems, value.Word)
}

func TestColumnatePadsAllButLastColumn(t *testing.T) {
	in := value.NewArray([]value.Value{
		row("name", "age"),
		row("alice", "30"),
		row("bob", "7"),
	}, value.Line)

	c := NewColumnate("", false)
	out, err := c.Apply(in)
	require.NoError(t, err)
	arr, _ := out.AsArray()
	lines := textsOf(t, arr.Elements)
	assert.Equal(t, "name  age", lines[0])
	assert.Equal(t, "alice 30", lines[1])
	assert.Equal(t, "bob   7", lines[2])
}

func TestColumnateWithExplicitDelimiter(t *testing.T) {
	in := value.NewArray([]value.Value{row("a", "bb"), row("ccc", "d")}, value.Line)
	c := NewColumnate("|", true)
	out, err := c.Apply(in)
	require.NoError(t, err)
	arr, _ := out.AsArray()
	lines := textsOf(t, arr.Elements)
	assert.Equal(t, "a  |bb", lines[0])
	assert.Equal(t, "ccc|d", lines[1])
}

func TestPartitionSplitsByTruthiness(t *testing.T) {
	rows := value.NewArray([]value.Value{
		value.NewArray([]value.Value{value.Text("x"), value.Number(1)}, value.Word),
		value.NewArray([]value.Value{value.Text("y"), value.Number(0)}, value.Word),
		value.NewArray([]value.Value{value.Text("z"), value.Number(5)}, value.Word),
	}, value.Line)
	sel := &ast.Selection{Items: []ast.SelectItem{idx(1)}}
	p := NewPartition(sel)
	out, err := p.Apply(rows)
	require.NoError(t, err)
	arr, _ := out.AsArray()
	require.Equal(t, 2, arr.Len())

	truthy, _ := arr.Elements[0].AsArray()
	falsy, _ := arr.Elements[1].AsArray()
	assert.Equal(t, 2, truthy.Len())
	assert.Equal(t, 1, falsy.Len())
}
