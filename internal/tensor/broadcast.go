package tensor

// binaryOp combines two scalars elementwise.
type binaryOp func(x, y float64) float64

// broadcastBinary applies op elementwise to a and b under NumPy broadcasting.
//
// Instead of mapping every output index back to each operand, both flat
// buffers are expanded axis by axis, trailing to leading. On an axis where
// one operand has extent 1 and the other extent d, each contiguous block of
// `stride` elements of that operand is repeated d times. stride is the
// product of the result extents already visited, i.e. the block size of the
// buffer as expanded so far, not the operand's original stride.
//
// Example:
//
//	a: (3)    [1 2 3]
//	b: (3, 1) [4 5 6]
//
//	axis 1: b tiled in blocks of 1 → [4 4 4 5 5 5 6 6 6], stride = 3
//	axis 0: a tiled in blocks of 3 → [1 2 3 1 2 3 1 2 3], stride = 9
//	a*b  → (3, 3) [4 8 12 5 10 15 6 12 18]
func broadcastBinary(a, b *Tensor, op binaryOp) (*Tensor, error) {
	// Validate every axis up front so a failure never leaves partial work behind.
	outShape, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return nil, err
	}
	if err := outShape.Validate(); err != nil {
		return nil, err
	}

	expandedA := a.data
	expandedB := b.data
	stride := 1

	for i := 0; i < len(outShape); i++ {
		dimA := dimFromEnd(a.shape, i)
		dimB := dimFromEnd(b.shape, i)

		if dimA == 1 && dimB != 1 {
			expandedA = tile(expandedA, stride, dimB)
		}
		if dimB == 1 && dimA != 1 {
			expandedB = tile(expandedB, stride, dimA)
		}

		stride *= max(dimA, dimB)
	}

	data := make([]float64, len(expandedA))
	for k := range data {
		data[k] = op(expandedA[k], expandedB[k])
	}

	return &Tensor{shape: outShape, data: data}, nil
}

// tile repeats every contiguous block of size block in src n times.
// The result is always a new slice; src is never written.
func tile(src []float64, block, n int) []float64 {
	dst := make([]float64, 0, len(src)*n)
	for start := 0; start < len(src); start += block {
		chunk := src[start : start+block]
		for r := 0; r < n; r++ {
			dst = append(dst, chunk...)
		}
	}
	return dst
}
