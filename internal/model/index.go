package model

import "fmt"

// Index is a grid coordinate or count that is guaranteed non-negative.
type Index int

// NewIndex validates a raw integer as an Index.
// ok is false when the value is negative.
func NewIndex(v int) (Index, bool) {
	if v < 0 {
		return 0, false
	}
	return Index(v), true
}

// MustIndex converts a value the caller has already proven non-negative.
// A negative value is a broken invariant upstream and panics.
func MustIndex(v int) Index {
	idx, ok := NewIndex(v)
	if !ok {
		panic(fmt.Sprintf("model: negative index %d", v))
	}
	return idx
}

// Int returns the index as a plain int.
func (i Index) Int() int {
	return int(i)
}

// Add returns the sum of two indices.
func (i Index) Add(other Index) Index {
	return i + other
}

// Sub returns the difference, with ok=false when it would go negative.
func (i Index) Sub(other Index) (Index, bool) {
	if other > i {
		return 0, false
	}
	return i - other, true
}

// Mul returns the product of two indices.
func (i Index) Mul(other Index) Index {
	return i * other
}

// Div returns the quotient, truncating like integer division.
func (i Index) Div(other Index) Index {
	return i / other
}
