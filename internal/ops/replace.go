package ops

import (
	"regexp"

	"github.com/mako10k/t/internal/ast"
	"github.com/mako10k/t/internal/value"
)

// Replace implements `r/pattern/repl/` (applied to every leaf) and
// `r<sel>/pattern/repl/` (applied only to the selected positions within
// each row). Matching follows Go's regexp semantics: all non-overlapping
// matches in a leaf's text are replaced, with $1-style group references
// supported in repl.
type Replace struct {
	streaming
	Pattern   *regexp.Regexp
	ReplaceBy string
	Selection *ast.Selection
}

func NewReplace(pattern *regexp.Regexp, replaceBy string, sel *ast.Selection) *Replace {
	return &Replace{Pattern: pattern, ReplaceBy: replaceBy, Selection: sel}
}

func (r *Replace) Apply(v value.Value) (value.Value, error) {
	if r.Selection == nil {
		return r.applyDeep(v), nil
	}

	// See CaseOp.Apply: a row-structured focus selects a cell position
	// within each row, otherwise the focus array itself is the sole row.
	if arr, ok := v.AsArray(); ok && arr.Len() > 0 && allRows(arr.Elements) {
		out := make([]value.Value, arr.Len())
		for i, row := range arr.Elements {
			out[i] = MapSelectedCells(row, r.Selection, r.applyDeep)
		}
		return value.NewArray(out, arr.Level), nil
	}
	return MapSelectedCells(v, r.Selection, r.applyDeep), nil
}

func (r *Replace) applyDeep(v value.Value) value.Value {
	if arr, ok := v.AsArray(); ok {
		out := make([]value.Value, arr.Len())
		for i, e := range arr.Elements {
			out[i] = r.applyDeep(e)
		}
		return value.NewArray(out, arr.Level)
	}
	return r.applyLeaf(v)
}

func (r *Replace) applyLeaf(v value.Value) value.Value {
	text, ok := v.AsText()
	if !ok {
		return v
	}
	return value.Text(r.Pattern.ReplaceAllString(text, r.ReplaceBy))
}
