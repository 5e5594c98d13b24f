package ops

import (
	"strings"

	"github.com/mako10k/t/internal/value"
)

// Join implements `j` and `J<delim>`. It is the structural inverse of
// Split: where Split refines a leaf into a nested per-row Array one
// level finer, Join un-nests one level, splicing each row's own
// elements into the outer array (the canonical "flatten lines into a
// single word list" idiom). Rows that are not themselves arrays pass
// through as single elements, so Join is safe to apply to an
// already-flat array.
//
// When the focus array has no nested rows at all (already flat), Join
// instead collapses it down to a single Text, joined element-by-element
// with an explicit delimiter (J<delim>) or the array's own level
// delimiter (plain j). This is what reconstitutes a line of words (or a
// file of lines) back into text, the other half of Join/Split being
// inverses of each other.
type Join struct {
	streaming
	Delimiter string
	HasDelim  bool
}

func NewJoin(delim string, hasDelim bool) *Join {
	return &Join{Delimiter: delim, HasDelim: hasDelim}
}

func (j *Join) Apply(v value.Value) (value.Value, error) {
	arr, ok := v.AsArray()
	if !ok {
		return v, nil
	}
	if arr.IsEmpty() {
		return v, nil
	}

	anyNested := false
	for _, e := range arr.Elements {
		if e.IsArray() {
			anyNested = true
			break
		}
	}

	if anyNested {
		var flat []value.Value
		level := arr.Level
		foundLevel := false
		for _, e := range arr.Elements {
			if sub, ok := e.AsArray(); ok {
				flat = append(flat, sub.Elements...)
				if !foundLevel {
					level = sub.Level
					foundLevel = true
				}
				continue
			}
			flat = append(flat, e)
		}
		return value.NewArray(flat, level), nil
	}

	delim := arr.Level.JoinDelimiter()
	if j.HasDelim {
		delim = j.Delimiter
	}
	parts := make([]string, arr.Len())
	for i, e := range arr.Elements {
		parts[i] = e.String()
	}
	return value.Text(strings.Join(parts, delim)), nil
}
