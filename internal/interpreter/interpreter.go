// Package interpreter runs a compiled Transform list against a root
// Value, one transform at a time, stopping at the first error. There is
// no branching or looping at the programme level: every transform sees
// exactly the output of the one before it.
package interpreter

import (
	"github.com/pkg/errors"

	"github.com/mako10k/t/internal/errs"
	"github.com/mako10k/t/internal/ops"
	"github.com/mako10k/t/internal/value"
)

// State tracks where a Context sits in its run.
type State int

const (
	// Running means zero or more transforms have applied successfully
	// and more remain.
	Running State = iota
	// Done means every transform applied without error.
	Done
	// Failed means a transform returned an error; Err and FocusDepth as
	// of the failing step are preserved for diagnostics.
	Failed
)

// Context owns the interpreter's running state: the current value and
// how many levels of focus the interactive collaborator has descended,
// via Focus transforms that carry no value-level effect of their own.
type Context struct {
	Value      value.Value
	FocusDepth int
	State      State
	Err        error
}

// NewContext seeds a Context with the loaded root value.
func NewContext(root value.Value) *Context {
	return &Context{Value: root, State: Running}
}

// Run applies every transform in order, updating ctx after each step. It
// returns the first error encountered, wrapped as a RuntimeError unless
// it is already a structured *errs.Error.
func Run(transforms []ops.Transform, ctx *Context) error {
	for _, tr := range transforms {
		if focus, ok := tr.(*ops.Focus); ok {
			if focus.Descend {
				ctx.FocusDepth++
			} else if ctx.FocusDepth > 0 {
				ctx.FocusDepth--
			}
		}

		next, err := tr.Apply(ctx.Value)
		if err != nil {
			ctx.State = Failed
			ctx.Err = wrapRuntime(err)
			return ctx.Err
		}
		ctx.Value = next
	}
	ctx.State = Done
	return nil
}

func wrapRuntime(err error) error {
	var structured *errs.Error
	if errors.As(err, &structured) {
		return structured
	}
	return errs.Runtime(err, "%s", err.Error())
}
