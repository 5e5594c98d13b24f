package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	testCases := []struct {
		name     string
		n        float64
		expected string
	}{
		{name: "integer", n: 3, expected: "3"},
		{name: "negative integer", n: -12, expected: "-12"},
		{name: "zero", n: 0, expected: "0"},
		{name: "fraction", n: 1.5, expected: "1.5"},
		{name: "nan", n: math.NaN(), expected: "NaN"},
		{name: "positive infinity", n: math.Inf(1), expected: "Inf"},
		{name: "negative infinity", n: math.Inf(-1), expected: "-Inf"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatNumber(tc.n))
		})
	}
}

func TestParseNumber(t *testing.T) {
	n, err := ParseNumber("  42.5 ")
	assert.NoError(t, err)
	assert.Equal(t, 42.5, n)

	_, err = ParseNumber("not a number")
	assert.Error(t, err)
}

func TestValueEqual(t *testing.T) {
	assert.True(t, Text("a").Equal(Text("a")))
	assert.False(t, Text("a").Equal(Text("b")))
	assert.True(t, Number(1).Equal(Number(1)))
	assert.False(t, Text("1").Equal(Number(1)))
	assert.True(t, Number(math.NaN()).Equal(Number(math.NaN())))
}

// TestDeepCopyInvariant is property 1 from the spec: deep_copy(v) == v,
// and mutating the copy leaves the original untouched.
func TestDeepCopyInvariant(t *testing.T) {
	original := NewArray([]Value{Text("a"), Text("b")}, Line)
	cp := original.DeepCopy()
	assert.True(t, original.Equal(cp))

	arr, _ := cp.AsArray()
	arr.Elements[0] = Text("mutated")

	origArr, _ := original.AsArray()
	assert.Equal(t, "a", mustText(t, origArr.Elements[0]))
}

func mustText(t *testing.T, v Value) string {
	t.Helper()
	s, ok := v.AsText()
	if !ok {
		t.Fatalf("expected text value, got %v", v.Kind())
	}
	return s
}
