package value

import "strings"

// Array is an ordered sequence of Values tagged with a Level describing
// what each element represents.
type Array struct {
	Elements []Value
	Level    Level
}

// Len returns the number of elements.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Elements)
}

// IsEmpty reports whether the array has no elements.
func (a *Array) IsEmpty() bool {
	return a.Len() == 0
}

// DeepCopy recursively clones the array and every element within it.
func (a *Array) DeepCopy() *Array {
	if a == nil {
		return nil
	}
	out := &Array{
		Elements: make([]Value, len(a.Elements)),
		Level:    a.Level,
	}
	for i, e := range a.Elements {
		out.Elements[i] = e.DeepCopy()
	}
	return out
}

// TruncatedCopy returns a deep copy holding only the first n elements
// (or fewer, if the array is shorter). Level is preserved.
func (a *Array) TruncatedCopy(n int) *Array {
	if n < 0 {
		n = 0
	}
	if n > a.Len() {
		n = a.Len()
	}
	out := &Array{
		Elements: make([]Value, n),
		Level:    a.Level,
	}
	for i := 0; i < n; i++ {
		out.Elements[i] = a.Elements[i].DeepCopy()
	}
	return out
}

// Equal reports deep structural equality, including Level.
func (a *Array) Equal(other *Array) bool {
	if a == nil || other == nil {
		return a == other
	}
	if a.Level != other.Level || len(a.Elements) != len(other.Elements) {
		return false
	}
	for i := range a.Elements {
		if !a.Elements[i].Equal(other.Elements[i]) {
			return false
		}
	}
	return true
}

// String joins elements with the level's default delimiter, rendering
// each element recursively.
func (a *Array) String() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.String()
	}
	return strings.Join(parts, a.Level.JoinDelimiter())
}
