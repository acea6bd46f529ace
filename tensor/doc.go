// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides a minimal float64 N-dimensional array.
//
// # Overview
//
// Tensors are flat, row-major float64 buffers with a shape. This package provides:
//   - Shape-checked construction with single-axis inference
//   - NumPy-style broadcasting for Add, Sub, Mul and Div
//   - Strict 2D MatMul, and same-shape MatAdd/MatSub
//   - Copy in and out of gonum matrices
//
// # Basic Usage
//
//	import "github.com/born-ml/ndarray/tensor"
//
//	func main() {
//	    x := tensor.Must(tensor.FromData(tensor.Shape{2, 0}, []float64{1, 2, 3, 4, 5, 6})) // [2, 3]
//	    w := tensor.Must(tensor.FromData(tensor.Shape{3, 1}, []float64{0.5, -1, 2}))
//	    b := tensor.Must(tensor.FromData(tensor.Shape{1}, []float64{0.1}))
//
//	    z, err := x.MatMul(w) // [2, 1]
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    z, err = z.Add(b) // broadcast bias
//	}
//
// # Broadcasting
//
// Elementwise operations follow NumPy broadcasting rules. Shapes are aligned
// from the trailing axis, missing leading axes count as 1, and two extents
// are compatible when equal or when either is 1:
//
//	a := tensor.Must(tensor.New(tensor.Shape{3, 1})) // (3, 1)
//	b := tensor.Must(tensor.New(tensor.Shape{4}))    // (4)
//	c, _ := a.Add(b)                                 // (3, 4)
//
// Incompatible shapes return a *BroadcastError naming the axis and extents.
//
// # Errors
//
// Fallible operations return an error wrapping one of ErrInvalidShape,
// ErrShapeMismatch, ErrBroadcast, ErrRank or ErrDimensionMismatch and never a
// partial tensor. Use Must where a failure is a programming error.
//
// # Memory Management
//
// A Tensor owns its buffers. Operations never alias their operands, and
// Clone is a deep copy. Data returns the live buffer so callers can apply
// elementwise transforms (activations, for instance) in place.
//
// Division follows IEEE-754: dividing by zero yields ±Inf or NaN.
package tensor
