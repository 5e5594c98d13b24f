// Package render turns a final Value into output bytes, in either of
// the two formats the CLI supports: plain text (the language's own
// delimiter-joining contract) or JSON (for downstream tools).
package render

import "github.com/mako10k/t/internal/value"

// Text renders v using the language's own text contract (Value.String,
// which joins arrays recursively by each level's default delimiter)
// with a single trailing newline, matching how a shell pipeline expects
// its last stage to behave.
func Text(v value.Value) string {
	return v.String() + "\n"
}
