package ops

import (
	"sort"

	"github.com/mako10k/t/internal/value"
)

// Sort implements `o` (descending) and `O` (ascending). It orders the
// focus array using the heterogeneous total order in Compare, so a
// mixed array of text and numbers still sorts deterministically instead
// of erroring. It needs the complete array before it can produce an
// order.
type Sort struct {
	fullInput
	Ascending bool
}

func NewSort(ascending bool) *Sort { return &Sort{Ascending: ascending} }

func (s *Sort) Apply(v value.Value) (value.Value, error) {
	arr, ok := v.AsArray()
	if !ok {
		return v, nil
	}
	out := make([]value.Value, arr.Len())
	copy(out, arr.Elements)
	sort.SliceStable(out, func(i, j int) bool {
		c := Compare(out[i], out[j])
		if s.Ascending {
			return c < 0
		}
		return c > 0
	})
	return value.NewArray(out, arr.Level), nil
}
