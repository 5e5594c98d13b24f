package ops

import (
	"regexp"

	"github.com/mako10k/t/internal/value"
)

// Filter implements `/pattern/` (keep rows whose text matches) and
// `!/pattern/` (keep rows whose text does not match). Matching is
// against the row's rendered text form, so it works uniformly whether a
// row is a scalar Text or a nested Array. The outer array's level is
// unchanged; only membership changes.
type Filter struct {
	streaming
	Pattern *regexp.Regexp
	Invert  bool
}

func NewFilter(pattern *regexp.Regexp, invert bool) *Filter {
	return &Filter{Pattern: pattern, Invert: invert}
}

func (f *Filter) Apply(v value.Value) (value.Value, error) {
	arr, ok := v.AsArray()
	if !ok {
		if f.matches(v) != f.Invert {
			return v, nil
		}
		return value.NewArray(nil, value.Line), nil
	}
	var out []value.Value
	for _, e := range arr.Elements {
		if f.matches(e) != f.Invert {
			out = append(out, e)
		}
	}
	return value.NewArray(out, arr.Level), nil
}

func (f *Filter) matches(v value.Value) bool {
	return f.Pattern.MatchString(v.String())
}
