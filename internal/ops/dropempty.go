package ops

import "github.com/mako10k/t/internal/value"

// DropEmpty implements `x`: it removes elements that carry no content —
// empty text or an empty array — from the focus array. Numbers are
// never considered empty (including zero). Level and order are
// preserved.
type DropEmpty struct {
	streaming
}

func (DropEmpty) Apply(v value.Value) (value.Value, error) {
	arr, ok := v.AsArray()
	if !ok {
		return v, nil
	}
	var out []value.Value
	for _, e := range arr.Elements {
		if isEmptyValue(e) {
			continue
		}
		out = append(out, e)
	}
	return value.NewArray(out, arr.Level), nil
}

func isEmptyValue(v value.Value) bool {
	if text, ok := v.AsText(); ok {
		return text == ""
	}
	if sub, ok := v.AsArray(); ok {
		return sub.IsEmpty()
	}
	return false
}
