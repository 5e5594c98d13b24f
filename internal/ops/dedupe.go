package ops

import (
	"sort"

	"github.com/mako10k/t/internal/ast"
	"github.com/mako10k/t/internal/value"
)

// Dedupe implements `d` (dedupe whole rows) and `D<sel>` (dedupe keyed on
// a projection of each row). Every distinct key produces one output row
// `[count, value]`, where value is the deep-copied element itself for
// plain `d` or the extracted key for `D<sel>`. Rows are ordered by count
// descending, ties broken by first-seen order. It needs the complete
// array before it can count anything.
type Dedupe struct {
	fullInput
	Selection *ast.Selection
}

func NewDedupe(sel *ast.Selection) *Dedupe {
	return &Dedupe{Selection: sel}
}

type dedupeBucket struct {
	value value.Value
	count int
	first int
}

func (d *Dedupe) Apply(v value.Value) (value.Value, error) {
	arr, ok := v.AsArray()
	if !ok {
		return v, nil
	}

	order := make([]string, 0, arr.Len())
	buckets := make(map[string]*dedupeBucket, arr.Len())

	for i, e := range arr.Elements {
		var keyed value.Value
		if d.Selection != nil {
			keyed = ExtractKey(e, d.Selection)
		} else {
			keyed = e.DeepCopy()
		}
		key := CanonicalKey(keyed)
		b, exists := buckets[key]
		if !exists {
			b = &dedupeBucket{value: keyed, first: i}
			buckets[key] = b
			order = append(order, key)
		}
		b.count++
	}

	rows := make([]*dedupeBucket, len(order))
	for i, k := range order {
		rows[i] = buckets[k]
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].first < rows[j].first
	})

	out := make([]value.Value, len(rows))
	for i, b := range rows {
		out[i] = value.NewArray([]value.Value{value.Number(float64(b.count)), b.value}, value.Word)
	}
	return value.NewArray(out, value.Line), nil
}
