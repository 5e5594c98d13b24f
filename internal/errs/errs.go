// Package errs defines the structured error taxonomy shared by the
// parser, compiler and interpreter: ParseError, CompileError and
// RuntimeError. IOError is a CLI/UI boundary concern and is never
// produced from in here.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies which stage of the pipeline rejected the programme.
type Kind int

const (
	KindParse Kind = iota
	KindCompile
	KindRuntime
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse error"
	case KindCompile:
		return "compile error"
	case KindRuntime:
		return "runtime error"
	default:
		return "error"
	}
}

// Error is the concrete error type carried across parser, compiler and
// interpreter boundaries. ParseError additionally carries a byte offset
// into the original programme string so the caller can render a caret
// diagnostic; Offset is -1 when not applicable.
type Error struct {
	Kind    Kind
	Offset  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Cause returns the wrapped error, if any, so callers using
// github.com/pkg/errors.Cause (or errors.Unwrap) can reach the root.
func (e *Error) Cause() error { return e.cause }
func (e *Error) Unwrap() error { return e.cause }

// Parse builds a ParseError carrying a caret offset and message.
func Parse(offset int, format string, args ...interface{}) *Error {
	return &Error{Kind: KindParse, Offset: offset, Message: fmt.Sprintf(format, args...)}
}

// ParseWrap builds a ParseError wrapping an underlying cause (e.g. an
// invalid-regexp error from the standard library), pointing at offset.
func ParseWrap(cause error, offset int, format string, args ...interface{}) *Error {
	return &Error{Kind: KindParse, Offset: offset, Message: fmt.Sprintf(format, args...), cause: errors.WithStack(cause)}
}

// Compile builds a CompileError. Compile errors have no caret offset;
// they are reported against the AST node, not the source text.
func Compile(format string, args ...interface{}) *Error {
	return &Error{Kind: KindCompile, Offset: -1, Message: fmt.Sprintf(format, args...)}
}

// Runtime builds a RuntimeError, wrapping cause if non-nil.
func Runtime(cause error, format string, args ...interface{}) *Error {
	e := &Error{Kind: KindRuntime, Offset: -1, Message: fmt.Sprintf(format, args...)}
	if cause != nil {
		e.cause = errors.WithStack(cause)
	}
	return e
}

// IsParse, IsCompile and IsRuntime classify an error returned by the
// core, for callers that branch on error kind (e.g. the interactive
// preview loop retries only on ParseError).
func IsParse(err error) bool   { return kindOf(err) == KindParse }
func IsCompile(err error) bool { return kindOf(err) == KindCompile }
func IsRuntime(err error) bool { return kindOf(err) == KindRuntime }

func kindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindRuntime
}

// Caret renders a three-line diagnostic: the error message, the original
// programme text, and a line with a caret positioned under the offending
// character. If err does not carry a usable offset, only the message is
// returned.
func Caret(programme string, err *Error) string {
	if err.Offset < 0 || err.Offset > len(programme) {
		return err.Error()
	}
	pad := make([]byte, err.Offset)
	for i := range pad {
		if i < len(programme) && programme[i] == '\t' {
			pad[i] = '\t'
		} else {
			pad[i] = ' '
		}
	}
	return fmt.Sprintf("%s\n%s\n%s^", err.Error(), programme, string(pad))
}
