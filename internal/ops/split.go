package ops

import (
	"strings"

	"github.com/mako10k/t/internal/value"
)

// Split implements `s` and `S<delim>`. It refines each leaf Text element
// of the focus array one level finer (File text into lines, a line into
// words, a word into characters) and nests the result in place: the
// outer array's own level and length never change, only its elements,
// which become per-row Arrays one level finer. It never recurses into an
// element that is already an Array — split only ever refines a leaf.
//
// Applied to a bare Text value (outside any array) it treats the text as
// a single word, matching the convention that ungrouped text lives at
// Word granularity: `s` splits it into characters, `S<delim>` on the
// delimiter.
type Split struct {
	streaming
	Delimiter string
	HasDelim  bool
}

func NewSplit(delim string, hasDelim bool) *Split {
	return &Split{Delimiter: delim, HasDelim: hasDelim}
}

func (s *Split) Apply(v value.Value) (value.Value, error) {
	if arr, ok := v.AsArray(); ok {
		elemLevel := arr.Level
		out := make([]value.Value, arr.Len())
		for i, e := range arr.Elements {
			out[i] = s.splitElement(e, elemLevel)
		}
		return value.NewArray(out, arr.Level), nil
	}
	if text, ok := v.AsText(); ok {
		return s.splitElement(value.Text(text), value.Word), nil
	}
	return v, nil
}

// splitElement refines a single element. Non-text elements (Number,
// already-nested Array) pass through untouched.
func (s *Split) splitElement(v value.Value, level value.Level) value.Value {
	text, ok := v.AsText()
	if !ok {
		return v
	}
	return s.splitText(text, level)
}

func (s *Split) splitText(text string, level value.Level) value.Value {
	newLevel := level.SplitInto()

	var parts []string
	switch {
	case s.HasDelim:
		parts = strings.Split(text, s.Delimiter)
	case level == value.File:
		parts = strings.Split(text, "\n")
	case level == value.Line:
		parts = strings.Fields(text)
	case level == value.Word:
		parts = splitChars(text)
	default:
		parts = []string{text}
	}

	elems := make([]value.Value, len(parts))
	for i, part := range parts {
		elems[i] = value.Text(part)
	}
	return value.NewArray(elems, newLevel)
}

func splitChars(s string) []string {
	runes := []rune(s)
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}
	return out
}
