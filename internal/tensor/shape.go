package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// Shape represents the dimensions of a tensor.
//
// An empty shape describes a scalar (one element).
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every dimension is strictly positive.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return errors.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// stride[i] is the product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// String renders the shape as "[2 3 4]".
func (s Shape) String() string {
	return fmt.Sprint([]int(s))
}

// BroadcastShapes applies NumPy-style broadcasting to two shapes.
//
// Shapes are aligned from the right. Two dimensions are compatible when they are
// equal or one of them is 1; missing leading dimensions count as 1.
//
// Returns the broadcast shape and whether any broadcasting is needed.
//
//	(3, 1) + (3, 5) → (3, 5), true
//	(5)    + (3, 5) → (3, 5), true
//	(3, 4) + (3, 5) → error
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	n := max(len(a), len(b))
	result := make(Shape, n)
	needsBroadcast := len(a) != len(b)

	for i := 0; i < n; i++ {
		aDim := dimFromRight(a, i)
		bDim := dimFromRight(b, i)

		switch {
		case aDim == bDim:
			result[n-1-i] = aDim
		case aDim == 1:
			result[n-1-i] = bDim
			needsBroadcast = true
		case bDim == 1:
			result[n-1-i] = aDim
			needsBroadcast = true
		default:
			return nil, false, errors.Errorf("shapes not compatible for broadcasting: %v vs %v (dimension %d: %d vs %d)",
				a, b, n-1-i, aDim, bDim)
		}
	}

	return result, needsBroadcast, nil
}

// dimFromRight returns the i-th dimension counted from the right, or 1 if absent.
func dimFromRight(s Shape, i int) int {
	idx := len(s) - 1 - i
	if idx < 0 {
		return 1
	}
	return s[idx]
}
