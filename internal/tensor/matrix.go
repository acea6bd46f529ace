package tensor

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/parallel"
)

// MatMul performs matrix multiplication: (M, K) @ (K, N) -> (M, N).
//
// Both operands must be 2D (ErrRank) with matching inner dimensions
// (ErrDimensionMismatch). No broadcasting is applied.
//
// Example:
//
//	a := tensor.Must(tensor.FromData(Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6}))
//	b := tensor.Must(tensor.FromData(Shape{3, 2}, []float64{7, 8, 9, 10, 11, 12}))
//	c, _ := a.MatMul(b) // Shape: [2, 2], data: [58 64 139 154]
func (t *Tensor) MatMul(other *Tensor) (*Tensor, error) {
	return t.MatMulWith(other, parallel.DefaultConfig())
}

// MatMulWith is MatMul with explicit control over row parallelism.
// Every output element is accumulated in the same k order regardless of cfg,
// so results are bit-identical to a sequential run.
func (t *Tensor) MatMulWith(other *Tensor, cfg parallel.Config) (*Tensor, error) {
	if len(t.shape) != 2 {
		return nil, fmt.Errorf("matmul: first operand: %w, got %dD", ErrRank, len(t.shape))
	}
	if len(other.shape) != 2 {
		return nil, fmt.Errorf("matmul: second operand: %w, got %dD", ErrRank, len(other.shape))
	}

	m, k := t.shape[0], t.shape[1]
	kAlt, n := other.shape[0], other.shape[1]
	if k != kAlt {
		return nil, fmt.Errorf("matmul: %w: [%d,%d] @ [%d,%d]", ErrDimensionMismatch, m, k, kAlt, n)
	}

	if err := (Shape{m, n}).Validate(); err != nil {
		return nil, fmt.Errorf("matmul: %w", err)
	}

	result := &Tensor{
		shape: Shape{m, n},
		data:  make([]float64, m*n),
	}

	parallel.ForRange(m, func(start, end int) {
		matmulRows(result.data, t.data, other.data, start, end, k, n)
	}, cfg)

	return result, nil
}

// matmulRows computes rows [start, end) of C = A·B.
// C[i,j] = sum_k A[i,k] * B[k,j]
func matmulRows(c, a, b []float64, start, end, k, n int) {
	for i := start; i < end; i++ {
		for j := 0; j < n; j++ {
			sum := float64(0)
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += a[i*k+kIdx] * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}
}

// MatAdd performs element-wise addition of two tensors of identical shape.
// Unlike Add, no broadcasting is applied (ErrShapeMismatch).
func (t *Tensor) MatAdd(other *Tensor) (*Tensor, error) {
	return t.sameShape("matadd", other, func(x, y float64) float64 { return x + y })
}

// MatSub performs element-wise subtraction of two tensors of identical shape.
// Unlike Sub, no broadcasting is applied (ErrShapeMismatch).
func (t *Tensor) MatSub(other *Tensor) (*Tensor, error) {
	return t.sameShape("matsub", other, func(x, y float64) float64 { return x - y })
}

func (t *Tensor) sameShape(name string, other *Tensor, op binaryOp) (*Tensor, error) {
	if !t.shape.Equal(other.shape) {
		return nil, fmt.Errorf("%s: %w: %v vs %v", name, ErrShapeMismatch, t.shape, other.shape)
	}

	data := make([]float64, len(t.data))
	parallel.For(len(data), func(i int) {
		data[i] = op(t.data[i], other.data[i])
	}, parallel.DefaultConfig())
	return &Tensor{shape: t.shape.Clone(), data: data}, nil
}
