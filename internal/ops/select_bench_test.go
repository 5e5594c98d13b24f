package ops

import (
	"fmt"
	"testing"

	"github.com/mako10k/t/internal/ast"
	"github.com/mako10k/t/internal/value"
)

func makeBenchLines(count int) value.Value {
	elements := make([]value.Value, count)
	for i := range elements {
		elements[i] = value.Text(fmt.Sprintf("line%d", i))
	}
	return value.NewArray(elements, value.Line)
}

func BenchmarkSelectSingleIndex10k(b *testing.B) {
	input := makeBenchLines(10_000)
	sel := NewSelect(&ast.Selection{Items: []ast.SelectItem{{Index: 0}}})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sel.Apply(input.DeepCopy()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSelectSlice100From10k(b *testing.B) {
	input := makeBenchLines(10_000)
	sel := NewSelect(&ast.Selection{Items: []ast.SelectItem{
		{IsSlice: true, Slice: ast.Slice{End: 100, HasEnd: true}},
	}})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sel.Apply(input.DeepCopy()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSelectSlice100From100k(b *testing.B) {
	input := makeBenchLines(100_000)
	sel := NewSelect(&ast.Selection{Items: []ast.SelectItem{
		{IsSlice: true, Slice: ast.Slice{End: 100, HasEnd: true}},
	}})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sel.Apply(input.DeepCopy()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSelectStride10k(b *testing.B) {
	input := makeBenchLines(10_000)
	sel := NewSelect(&ast.Selection{Items: []ast.SelectItem{
		{IsSlice: true, Slice: ast.Slice{Step: 2, HasStep: true}},
	}})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sel.Apply(input.DeepCopy()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSelectReverse10k(b *testing.B) {
	input := makeBenchLines(10_000)
	sel := NewSelect(&ast.Selection{Items: []ast.SelectItem{
		{IsSlice: true, Slice: ast.Slice{Step: -1, HasStep: true}},
	}})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sel.Apply(input.DeepCopy()); err != nil {
			b.Fatal(err)
		}
	}
}
