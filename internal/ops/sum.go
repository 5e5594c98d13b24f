package ops

import "github.com/mako10k/t/internal/value"

// Sum implements `+`: it folds every element of the focus array into a
// single Number. Number elements contribute their value directly; Text
// elements are coerced with value.ParseNumber, and any element that
// can't be read as a number contributes zero rather than failing the
// whole pipeline. An empty array sums to zero. It needs the complete
// array before it can produce anything.
type Sum struct {
	fullInput
}

func (Sum) Apply(v value.Value) (value.Value, error) {
	arr, ok := v.AsArray()
	if !ok {
		return v, nil
	}
	var total float64
	for _, e := range arr.Elements {
		total += numericValue(e)
	}
	return value.Number(total), nil
}

func numericValue(v value.Value) float64 {
	if n, ok := v.AsNumber(); ok {
		return n
	}
	if text, ok := v.AsText(); ok {
		if n, err := value.ParseNumber(text); err == nil {
			return n
		}
	}
	return 0
}
