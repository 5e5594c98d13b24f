package ops

import "github.com/mako10k/t/internal/value"

// Count implements `#`: an array collapses to its own length as a
// Number. A non-array value has nothing to count and passes through
// unchanged, so `#` is safe to chain after an operator that might not
// have produced an array. It needs the complete array before its length
// is known.
type Count struct {
	fullInput
}

func (Count) Apply(v value.Value) (value.Value, error) {
	arr, ok := v.AsArray()
	if !ok {
		return v, nil
	}
	return value.Number(float64(arr.Len())), nil
}
