package ops

import (
	"math"
	"strings"

	"github.com/mako10k/t/internal/value"
)

// kindOrdinal fixes a total order across kinds so that heterogeneous
// arrays still sort deterministically: numbers first, then text, then
// nested arrays.
func kindOrdinal(v value.Value) int {
	switch v.Kind() {
	case value.KindNumber:
		return 0
	case value.KindText:
		return 1
	default:
		return 2
	}
}

// Compare implements the total order used by Sort: values of the same
// kind compare naturally (text
// lexicographically, arrays lexicographically element-by-element), and
// NaN numbers compare equal to one another but greater than every
// finite number.
func Compare(a, b value.Value) int {
	if ka, kb := kindOrdinal(a), kindOrdinal(b); ka != kb {
		return ka - kb
	}
	switch a.Kind() {
	case value.KindNumber:
		na, _ := a.AsNumber()
		nb, _ := b.AsNumber()
		return compareNumbers(na, nb)
	case value.KindText:
		ta, _ := a.AsText()
		tb, _ := b.AsText()
		return strings.Compare(ta, tb)
	default:
		aa, _ := a.AsArray()
		bb, _ := b.AsArray()
		return compareArrays(aa, bb)
	}
}

func compareNumbers(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareArrays(a, b *value.Array) int {
	n := a.Len()
	if b.Len() < n {
		n = b.Len()
	}
	for i := 0; i < n; i++ {
		if c := Compare(a.Elements[i], b.Elements[i]); c != 0 {
			return c
		}
	}
	return a.Len() - b.Len()
}
