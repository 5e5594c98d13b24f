package ops

import "github.com/mako10k/t/internal/value"

// Focus implements `@` (descend) and `^` (ascend). Neither changes the
// value itself, which is why Apply always returns its input unchanged;
// the interpreter reads Descend directly and records the resulting depth
// in Context.FocusDepth. Neither the batch run nor the interactive
// preview reads that depth, so the rendered output is the same with or
// without Focus operators.
type Focus struct {
	streaming
	Descend bool
}

func NewFocus(descend bool) *Focus { return &Focus{Descend: descend} }

func (Focus) Apply(v value.Value) (value.Value, error) { return v, nil }
