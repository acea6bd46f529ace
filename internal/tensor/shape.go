package tensor

import (
	"fmt"
	"math"
)

// Shape represents the dimensions of a tensor.
// Axis 0 is the outermost (slowest-varying) axis.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions > 0) and that
// its element count fits in an int.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be > 0)", ErrInvalidShape, i, dim)
		}
	}
	n := 1
	for _, dim := range s {
		var ok bool
		if n, ok = mulChecked(n, dim); !ok {
			return fmt.Errorf("%w: %v has too many elements", ErrInvalidShape, s)
		}
	}
	return nil
}

// mulChecked returns a*b for positive a and b, or false if it overflows int.
func mulChecked(a, b int) (int, bool) {
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
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
// Strides define memory layout: stride[i] = product of all dimensions after i.
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

// BroadcastShapes implements NumPy-style broadcasting rules.
//
// Rules:
// 1. Compare shapes element-wise from right to left
// 2. Dimensions are compatible if:
//   - They are equal, OR
//   - One of them is 1
//
// 3. Missing dimensions are treated as 1
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5)
//	(5)    + (3, 5) → (3, 5)
//	(3, 4) + (3, 5) → *BroadcastError
func BroadcastShapes(a, b Shape) (Shape, error) {
	maxLen := max(len(a), len(b))
	result := make(Shape, maxLen)

	for i := 0; i < maxLen; i++ {
		aDim := dimFromEnd(a, i)
		bDim := dimFromEnd(b, i)
		if aDim != bDim && aDim != 1 && bDim != 1 {
			return nil, &BroadcastError{A: a.Clone(), B: b.Clone(), Axis: maxLen - 1 - i, DimA: aDim, DimB: bDim}
		}
		result[maxLen-1-i] = max(aDim, bDim)
	}

	return result, nil
}

// dimFromEnd returns the extent i positions from the trailing axis,
// or 1 if the shape has fewer axes.
func dimFromEnd(s Shape, i int) int {
	idx := len(s) - 1 - i
	if idx < 0 {
		return 1
	}
	return s[idx]
}

// inferShape resolves a single placeholder axis (extent 0) against n elements.
// The input shape is not modified.
func inferShape(shape Shape, n int) (Shape, error) {
	resolved := shape.Clone()
	placeholder := -1
	known := 1
	for i, dim := range resolved {
		switch {
		case dim < 0:
			return nil, fmt.Errorf("%w: dimension %d is %d", ErrInvalidShape, i, dim)
		case dim == 0:
			if placeholder >= 0 {
				return nil, fmt.Errorf("%w: only one dimension can be inferred, got %v", ErrInvalidShape, shape)
			}
			placeholder = i
		default:
			var ok bool
			if known, ok = mulChecked(known, dim); !ok {
				return nil, fmt.Errorf("%w: %v has too many elements", ErrInvalidShape, shape)
			}
		}
	}

	if placeholder >= 0 {
		resolved[placeholder] = n / known
		if resolved[placeholder] == 0 {
			return nil, fmt.Errorf("%w: cannot infer dimension %d of %v from %d elements",
				ErrShapeMismatch, placeholder, shape, n)
		}
	}

	if err := resolved.Validate(); err != nil {
		return nil, err
	}
	if resolved.NumElements() != n {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrShapeMismatch, resolved, resolved.NumElements(), n)
	}
	return resolved, nil
}
