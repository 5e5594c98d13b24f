// Package ops implements the operator set: roughly twenty Transforms
// compiled 1:1 from AST nodes, each a pure function from Value to Value.
package ops

import "github.com/mako10k/t/internal/value"

// Transform is the only polymorphic seam in the interpreter: apply the
// transformation, and report whether it needs the complete input before
// it can produce anything (sort, dedupe, count, sum, group, columnate,
// partition). RequiresFullInput is consumed only by the interactive
// preview loop, never by Run itself.
type Transform interface {
	Apply(v value.Value) (value.Value, error)
	RequiresFullInput() bool
}

// streaming embeds a RequiresFullInput that always answers false, for
// the majority of transforms that can operate row-by-row.
type streaming struct{}

func (streaming) RequiresFullInput() bool { return false }

// fullInput embeds a RequiresFullInput that always answers true.
type fullInput struct{}

func (fullInput) RequiresFullInput() bool { return true }
