package ops

import (
	"github.com/mako10k/t/internal/ast"
	"github.com/mako10k/t/internal/value"
)

// Select implements a bare `<selection>` operator: it indexes directly
// into the focus array, producing a new array over the selected
// elements in selection order (level unchanged). A non-array focus
// passes through untouched, since there is nothing to index.
//
// One case needs special handling: when the focus array holds exactly
// one element and that element is itself an Array (e.g. a single line
// just refined by Split, which nests in place without growing the
// outer array), there is no second outer row to pick among — indexing
// the outer wrapper could only ever yield that whole sole row
// unchanged. There the selection instead narrows the cells of that sole
// row, which is what makes `S,o:3` over `a,b,c,d,e` select the first
// three *words*, not the first three (nonexistent) outer rows.
type Select struct {
	streaming
	Selection *ast.Selection
}

func NewSelect(sel *ast.Selection) *Select {
	return &Select{Selection: sel}
}

func (s *Select) Apply(v value.Value) (value.Value, error) {
	arr, ok := v.AsArray()
	if !ok {
		return v, nil
	}
	if arr.Len() == 1 {
		if row, ok := arr.Elements[0].AsArray(); ok {
			return value.NewArray([]value.Value{selectRow(row, s.Selection)}, arr.Level), nil
		}
	}
	indices := ResolveIndices(s.Selection, arr.Len())
	elems := make([]value.Value, len(indices))
	for i, idx := range indices {
		elems[i] = arr.Elements[idx]
	}
	return value.NewArray(elems, arr.Level), nil
}

// selectRow projects row down to the cells named by sel, dropping
// unselected positions (unlike MapSelectedCells, which preserves them —
// a bare selection narrows a row rather than transforming it in place).
func selectRow(row *value.Array, sel *ast.Selection) value.Value {
	indices := ResolveIndices(sel, row.Len())
	out := make([]value.Value, len(indices))
	for i, idx := range indices {
		out[i] = row.Elements[idx]
	}
	return value.NewArray(out, row.Level)
}
