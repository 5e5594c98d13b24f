package ops

import (
	"regexp"

	"github.com/mako10k/t/internal/value"
)

// Match implements `m/pattern/`: each row's rendered text is scanned for
// every non-overlapping occurrence of pattern, and the row is replaced
// by a Word-level array of the matched substrings (capture group 0). A
// row with no matches becomes an empty array.
type Match struct {
	streaming
	Pattern *regexp.Regexp
}

func NewMatch(pattern *regexp.Regexp) *Match {
	return &Match{Pattern: pattern}
}

func (m *Match) Apply(v value.Value) (value.Value, error) {
	arr, ok := v.AsArray()
	if !ok {
		return m.matchOne(v), nil
	}
	out := make([]value.Value, arr.Len())
	for i, e := range arr.Elements {
		out[i] = m.matchOne(e)
	}
	return value.NewArray(out, arr.Level), nil
}

func (m *Match) matchOne(v value.Value) value.Value {
	matches := m.Pattern.FindAllString(v.String(), -1)
	elems := make([]value.Value, len(matches))
	for i, s := range matches {
		elems[i] = value.Text(s)
	}
	return value.NewArray(elems, value.Word)
}
