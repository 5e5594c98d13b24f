package ops

import (
	"github.com/mako10k/t/internal/ast"
	"github.com/mako10k/t/internal/value"
)

// Partition implements `p<sel>`: each row is split into one of two
// buckets based on the truthiness of the value a Selection extracts
// from it (empty text, the text "0", the number zero, and empty arrays
// are falsy; everything else is truthy), producing `[[truthy rows...], [falsy rows...]]` with
// each bucket in input order. It needs the complete array before it can
// assign every row to a side.
type Partition struct {
	fullInput
	Selection *ast.Selection
}

func NewPartition(sel *ast.Selection) *Partition { return &Partition{Selection: sel} }

func (p *Partition) Apply(v value.Value) (value.Value, error) {
	arr, ok := v.AsArray()
	if !ok {
		return v, nil
	}
	var truthy, falsy []value.Value
	for _, e := range arr.Elements {
		keyed := ExtractKey(e, p.Selection)
		if isTruthyValue(keyed) {
			truthy = append(truthy, e)
		} else {
			falsy = append(falsy, e)
		}
	}
	out := []value.Value{
		value.NewArray(truthy, arr.Level),
		value.NewArray(falsy, arr.Level),
	}
	return value.NewArray(out, value.Line), nil
}

func isTruthyValue(v value.Value) bool {
	if text, ok := v.AsText(); ok {
		return text != "" && text != "0"
	}
	if n, ok := v.AsNumber(); ok {
		return n != 0
	}
	if arr, ok := v.AsArray(); ok {
		return !arr.IsEmpty()
	}
	return false
}
