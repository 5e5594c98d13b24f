package ops

import (
	"strings"

	"github.com/mako10k/t/internal/value"
)

// CanonicalKey encodes a Value into a string suitable for equality
// comparison in dedupe and group-by, tagging each kind so that, for
// example, the text "1" and the number 1 never collide.
func CanonicalKey(v value.Value) string {
	if text, ok := v.AsText(); ok {
		return "T:" + text
	}
	if n, ok := v.AsNumber(); ok {
		return "N:" + value.FormatNumber(n)
	}
	arr, _ := v.AsArray()
	parts := make([]string, arr.Len())
	for i, e := range arr.Elements {
		parts[i] = CanonicalKey(e)
	}
	var b strings.Builder
	b.WriteString("A:[")
	b.WriteString(strings.Join(parts, ","))
	b.WriteString("]")
	return b.String()
}
