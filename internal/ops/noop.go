package ops

import "github.com/mako10k/t/internal/value"

// NoOp is the identity transform compiled from `;`, the statement
// separator. It exists so a trailing or doubled `;` never needs special
// casing in the compiler.
type NoOp struct {
	streaming
}

func (NoOp) Apply(v value.Value) (value.Value, error) { return v, nil }
