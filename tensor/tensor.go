// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/tensor"
	"gonum.org/v1/gonum/mat"
)

// Type aliases for public API

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is an N-dimensional float64 array in row-major order.
//
// Every operation allocates a new Tensor and leaves its operands untouched.
// Data() is the only way to mutate a Tensor in place.
//
// Example:
//
//	x := tensor.Must(tensor.FromData(tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6}))
//	y := tensor.Must(tensor.FromData(tensor.Shape{3}, []float64{10, 20, 30}))
//	z, err := x.Add(y) // Shape: [2, 3]
type Tensor = tensor.Tensor

// BroadcastError reports the axis on which two shapes cannot be broadcast.
type BroadcastError = tensor.BroadcastError

// ParallelConfig controls row parallelism in MatMulWith.
type ParallelConfig = parallel.Config

// Errors returned by tensor operations. Test with errors.Is.
var (
	ErrInvalidShape      = tensor.ErrInvalidShape
	ErrShapeMismatch     = tensor.ErrShapeMismatch
	ErrBroadcast         = tensor.ErrBroadcast
	ErrRank              = tensor.ErrRank
	ErrDimensionMismatch = tensor.ErrDimensionMismatch
)

// Creation functions

// New creates a tensor filled with zeros.
//
// Example:
//
//	x, err := tensor.New(tensor.Shape{2, 3})
func New(shape Shape) (*Tensor, error) {
	return tensor.New(shape)
}

// FromData creates a tensor from a Go slice, inferring at most one
// dimension given as 0.
//
// Example:
//
//	x, err := tensor.FromData(tensor.Shape{0, 2}, []float64{1, 2, 3, 4}) // Shape: [2, 2]
func FromData(shape Shape, data []float64) (*Tensor, error) {
	return tensor.FromData(shape, data)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64) (*Tensor, error) {
	return tensor.Full(shape, value)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) (*Tensor, error) {
	return tensor.Ones(shape)
}

// FromDense copies a gonum matrix into a 2D tensor.
func FromDense(m mat.Matrix) (*Tensor, error) {
	return tensor.FromDense(m)
}

// Must panics if err is non-nil and returns t otherwise.
//
// Example:
//
//	w := tensor.Must(tensor.New(tensor.Shape{2, 2}))
func Must(t *Tensor, err error) *Tensor {
	return tensor.Must(t, err)
}

// Utility functions

// BroadcastShapes computes the broadcast shape for two shapes following NumPy broadcasting rules.
//
// Example:
//
//	resultShape, err := tensor.BroadcastShapes(
//	    tensor.Shape{3, 1},
//	    tensor.Shape{3, 4},
//	)
//	// resultShape = [3, 4]
func BroadcastShapes(a, b Shape) (Shape, error) {
	return tensor.BroadcastShapes(a, b)
}

// DefaultParallelConfig returns the parallelism used by MatMul.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// SequentialConfig returns a ParallelConfig that never spawns goroutines.
func SequentialConfig() ParallelConfig {
	return parallel.Sequential()
}
