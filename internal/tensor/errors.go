package tensor

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidShape      = errors.New("invalid shape")
	ErrShapeMismatch     = errors.New("shape mismatch")
	ErrBroadcast         = errors.New("shapes not compatible for broadcasting")
	ErrRank              = errors.New("tensor is not a 2D matrix")
	ErrDimensionMismatch = errors.New("dimensions do not match for matrix multiplication")
)

// BroadcastError reports an axis on which two shapes cannot be broadcast
// together. Axes are checked trailing to leading and the first failure is
// reported; Axis is its index into the broadcast result shape.
type BroadcastError struct {
	A, B Shape // Operand shapes
	Axis int   // Axis index in the broadcast result
	DimA int   // Extent of A on that axis (1 if A has no such axis)
	DimB int   // Extent of B on that axis (1 if B has no such axis)
}

// Error implements the error interface.
func (e *BroadcastError) Error() string {
	return fmt.Sprintf("%s: %v vs %v (dimension %d: %d vs %d)", ErrBroadcast, e.A, e.B, e.Axis, e.DimA, e.DimB)
}

// Unwrap makes errors.Is(err, ErrBroadcast) hold.
func (e *BroadcastError) Unwrap() error {
	return ErrBroadcast
}
