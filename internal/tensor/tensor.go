// Package tensor provides the core float64 N-dimensional array type.
package tensor

import "fmt"

// Tensor is an N-dimensional array of float64 stored in a flat row-major buffer.
//
// A Tensor exclusively owns its shape and data. Every operation returns a
// freshly allocated Tensor and leaves its operands untouched; the only
// sanctioned in-place path is writing through Data().
//
// Example:
//
//	x, _ := tensor.FromData(Shape{2, 0}, []float64{1, 2, 3, 4, 5, 6}) // Shape: [2, 3]
//	y, _ := tensor.New(Shape{3})
//	z, _ := x.Add(y) // Shape: [2, 3] (broadcasted)
type Tensor struct {
	shape Shape
	data  []float64
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape.Clone()
}

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return len(t.data)
}

// Strides returns the tensor's row-major strides.
func (t *Tensor) Strides() []int {
	return t.shape.ComputeStrides()
}

// Data returns the tensor's flat buffer.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor) Data() []float64 {
	return t.data
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
//
// Example:
//
//	t, _ := tensor.New(Shape{3, 4})
//	value := t.At(1, 2) // Row 1, column 2
func (t *Tensor) At(indices ...int) float64 {
	return t.data[t.offset(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor) Set(value float64, indices ...int) {
	t.data[t.offset(indices)] = value
}

func (t *Tensor) offset(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices)))
	}

	offset := 0
	strides := t.shape.ComputeStrides()
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * strides[i]
	}
	return offset
}

// Equal reports whether both tensors have the same shape and identical elements.
// NaN elements never compare equal.
func (t *Tensor) Equal(other *Tensor) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i, v := range t.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// String returns a human-readable representation of the tensor.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor%v%v", t.shape, t.data)
}

// Clone creates a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	data := make([]float64, len(t.data))
	copy(data, t.data)
	return &Tensor{
		shape: t.shape.Clone(),
		data:  data,
	}
}
