package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToDense copies a 2D tensor into a gonum dense matrix.
// Returns ErrRank for any other rank.
func (t *Tensor) ToDense() (*mat.Dense, error) {
	if len(t.shape) != 2 {
		return nil, fmt.Errorf("to dense: %w, got %dD", ErrRank, len(t.shape))
	}

	data := make([]float64, len(t.data))
	copy(data, t.data)
	return mat.NewDense(t.shape[0], t.shape[1], data), nil
}

// FromDense copies any gonum matrix into a 2D tensor.
// Returns ErrInvalidShape for an empty matrix.
func FromDense(m mat.Matrix) (*Tensor, error) {
	rows, cols := m.Dims()
	if err := (Shape{rows, cols}).Validate(); err != nil {
		return nil, fmt.Errorf("from dense: %w", err)
	}
	data := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[i*cols+j] = m.At(i, j)
		}
	}
	return &Tensor{shape: Shape{rows, cols}, data: data}, nil
}
