package ops

import (
	"strings"

	"github.com/mako10k/t/internal/ast"
	"github.com/mako10k/t/internal/value"
)

// CaseOp implements the four leaf-text transforms (lower, upper, trim,
// to-number), compiled from the lowercase letters `l u t n` (whole
// focus, recursing into every leaf) and their uppercase counterparts
// `L U T N` (a Selection restricts which positions of each row are
// touched). A nil Selection means "no restriction."
type CaseOp struct {
	streaming
	Kind      ast.CaseKind
	Selection *ast.Selection
}

func NewCaseOp(kind ast.CaseKind, sel *ast.Selection) *CaseOp {
	return &CaseOp{Kind: kind, Selection: sel}
}

func (c *CaseOp) Apply(v value.Value) (value.Value, error) {
	if c.Selection == nil {
		return c.applyDeep(v), nil
	}

	// When the focus is already row-structured (every element an Array,
	// e.g. CSV-like rows or post-Split), the selection names a cell
	// position within each row individually. Otherwise the focus array
	// itself is the sole row and its elements are the cells.
	if arr, ok := v.AsArray(); ok && arr.Len() > 0 && allRows(arr.Elements) {
		out := make([]value.Value, arr.Len())
		for i, row := range arr.Elements {
			out[i] = MapSelectedCells(row, c.Selection, c.applyDeep)
		}
		return value.NewArray(out, arr.Level), nil
	}
	return MapSelectedCells(v, c.Selection, c.applyDeep), nil
}

// applyDeep recurses into arrays, applying the leaf transform to every
// Text/Number leaf it finds.
func (c *CaseOp) applyDeep(v value.Value) value.Value {
	if arr, ok := v.AsArray(); ok {
		out := make([]value.Value, arr.Len())
		for i, e := range arr.Elements {
			out[i] = c.applyDeep(e)
		}
		return value.NewArray(out, arr.Level)
	}
	return c.applyLeaf(v)
}

func (c *CaseOp) applyLeaf(v value.Value) value.Value {
	switch c.Kind {
	case ast.Lower:
		if text, ok := v.AsText(); ok {
			return value.Text(strings.ToLower(text))
		}
		return v
	case ast.Upper:
		if text, ok := v.AsText(); ok {
			return value.Text(strings.ToUpper(text))
		}
		return v
	case ast.Trim:
		if text, ok := v.AsText(); ok {
			return value.Text(strings.TrimSpace(text))
		}
		return v
	case ast.ToNumber:
		if text, ok := v.AsText(); ok {
			n, err := value.ParseNumber(text)
			if err != nil {
				// n/N leaves unparsable text unchanged; only `+` treats
				// a failed parse as 0 (see sum.go's numericValue).
				return v
			}
			return value.Number(n)
		}
		return v
	default:
		return v
	}
}
