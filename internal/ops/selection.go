package ops

import (
	"github.com/mako10k/t/internal/ast"
	"github.com/mako10k/t/internal/value"
)

// ResolveIndices expands a Selection against a row of length n into a
// concrete, order-preserving list of 0-based indices into that row.
// Multiple items concatenate their outputs. Out-of-range single indices
// are silently skipped; slice bounds clamp, following Python's
// slice.indices(length) normalization.
func ResolveIndices(sel *ast.Selection, n int) []int {
	var out []int
	for _, item := range sel.Items {
		if !item.IsSlice {
			idx := item.Index
			if idx < 0 {
				idx += n
			}
			if idx < 0 || idx >= n {
				continue
			}
			out = append(out, idx)
			continue
		}
		out = append(out, resolveSlice(item.Slice, n)...)
	}
	return out
}

func resolveSlice(s ast.Slice, n int) []int {
	step := 1
	if s.HasStep {
		step = s.Step
	}
	if step == 0 {
		// Guarded by the compiler (CompileError); defensively a no-op here.
		return nil
	}

	var start, end int
	if step > 0 {
		start, end = 0, n
	} else {
		start, end = n-1, -1
	}
	if s.HasStart {
		start = normalizeSliceIndex(s.Start, n, step > 0)
	}
	if s.HasEnd {
		end = normalizeSliceIndex(s.End, n, step > 0)
	}

	var out []int
	if step > 0 {
		for i := start; i < end; i += step {
			out = append(out, i)
		}
	} else {
		for i := start; i > end; i += step {
			out = append(out, i)
		}
	}
	return out
}

// normalizeSliceIndex adjusts a possibly-negative slice bound into range,
// mirroring CPython's slice.indices(): for a forward step the bound
// clamps into [0, n]; for a backward step it clamps into [-1, n-1] so the
// loop can stop one position before the start of the sequence.
func normalizeSliceIndex(i, n int, forwardStep bool) int {
	if i < 0 {
		i += n
	}
	if forwardStep {
		if i < 0 {
			i = 0
		}
		if i > n {
			i = n
		}
		return i
	}
	if i < -1 {
		i = -1
	}
	if i > n-1 {
		i = n - 1
	}
	return i
}

// HasOnlySingleIndex reports whether sel names exactly one plain index
// item (no slices, no concatenation) — the case where key-extraction and
// selection-targeted transforms unwrap to a bare scalar instead of a
// one-element array.
func HasOnlySingleIndex(sel *ast.Selection) bool {
	return len(sel.Items) == 1 && !sel.Items[0].IsSlice
}

// rowCells treats row as a sequence of positions a Selection can index
// into: an Array's own elements, or a scalar treated as its own sole
// cell.
func rowCells(row value.Value) []value.Value {
	if arr, ok := row.AsArray(); ok {
		return arr.Elements
	}
	return []value.Value{row}
}

// allRows reports whether every element is itself an Array, i.e. the
// focus is already row-structured (e.g. CSV-like rows, or post-Split)
// rather than a flat array of leaves.
func allRows(elements []value.Value) bool {
	for _, e := range elements {
		if !e.IsArray() {
			return false
		}
	}
	return true
}

// MapSelectedCells applies f to the cells of row named by sel, leaving
// every other position untouched, and reassembles row preserving its
// original shape (Array vs. scalar) and length — the "selection
// application" contract shared by the `<sel>`-bearing scalar operators
// (CaseOp, Replace) and, for row-structured input, bare Select.
func MapSelectedCells(row value.Value, sel *ast.Selection, f func(value.Value) value.Value) value.Value {
	arr, isArray := row.AsArray()
	cells := rowCells(row)
	indices := ResolveIndices(sel, len(cells))
	selected := make(map[int]bool, len(indices))
	for _, i := range indices {
		selected[i] = true
	}
	out := make([]value.Value, len(cells))
	for i, c := range cells {
		if selected[i] {
			out[i] = f(c)
		} else {
			out[i] = c
		}
	}
	if isArray {
		return value.NewArray(out, arr.Level)
	}
	return out[0]
}

// ExtractKey projects row down to the positions named by sel, used by
// group-by and selection-keyed dedupe. A selection naming exactly one
// plain index unwraps to that single Value; anything else (multiple
// items, or a slice) produces a Word-level array of the selected
// values, preserving selection order.
func ExtractKey(row value.Value, sel *ast.Selection) value.Value {
	cells := rowCells(row)
	resolved := ResolveIndices(sel, len(cells))
	selected := make([]value.Value, len(resolved))
	for i, idx := range resolved {
		selected[i] = cells[idx]
	}
	if HasOnlySingleIndex(sel) {
		if len(selected) == 1 {
			return selected[0]
		}
		return value.NewArray(nil, value.Word)
	}
	return value.NewArray(selected, value.Word)
}
