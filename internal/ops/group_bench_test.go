package ops

import (
	"fmt"
	"testing"

	"github.com/mako10k/t/internal/ast"
	"github.com/mako10k/t/internal/value"
)

func makeBenchRows(count, cardinality int) value.Value {
	elements := make([]value.Value, count)
	for i := range elements {
		key := fmt.Sprintf("key%d", i%cardinality)
		elements[i] = value.NewArray([]value.Value{
			value.Text(key),
			value.Number(float64(i)),
		}, value.Word)
	}
	return value.NewArray(elements, value.Line)
}

func benchGroupBy(b *testing.B, count, cardinality int) {
	input := makeBenchRows(count, cardinality)
	g := NewGroupBy(&ast.Selection{Items: []ast.SelectItem{{Index: 0}}})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Apply(input.DeepCopy()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGroupBy100(b *testing.B)  { benchGroupBy(b, 100, 10) }
func BenchmarkGroupBy10k(b *testing.B)  { benchGroupBy(b, 10_000, 100) }
func BenchmarkGroupBy100k(b *testing.B) { benchGroupBy(b, 100_000, 1000) }
