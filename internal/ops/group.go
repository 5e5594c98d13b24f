package ops

import (
	"github.com/mako10k/t/internal/ast"
	"github.com/mako10k/t/internal/value"
)

// GroupBy implements `g<sel>`: rows are bucketed by the key a Selection
// extracts from each, producing `[key, [members...]]` per distinct key
// in first-seen order. Members keep the order they appeared in the
// input. It needs the complete array before it can form any bucket.
type GroupBy struct {
	fullInput
	Selection *ast.Selection
}

func NewGroupBy(sel *ast.Selection) *GroupBy { return &GroupBy{Selection: sel} }

func (g *GroupBy) Apply(v value.Value) (value.Value, error) {
	arr, ok := v.AsArray()
	if !ok {
		return v, nil
	}

	order := make([]string, 0)
	keys := make(map[string]value.Value)
	members := make(map[string][]value.Value)

	for _, e := range arr.Elements {
		keyed := ExtractKey(e, g.Selection)
		k := CanonicalKey(keyed)
		if _, exists := members[k]; !exists {
			order = append(order, k)
			keys[k] = keyed
		}
		members[k] = append(members[k], e)
	}

	out := make([]value.Value, len(order))
	for i, k := range order {
		group := value.NewArray(members[k], arr.Level)
		out[i] = value.NewArray([]value.Value{keys[k], group}, value.Word)
	}
	return value.NewArray(out, value.Line), nil
}
