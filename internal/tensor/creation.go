package tensor

// New creates a tensor filled with zeros.
// Returns ErrInvalidShape if any dimension is not positive.
//
// Example:
//
//	t, err := tensor.New(Shape{3, 4})
func New(shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	// Data is already zero-initialized by make()
	return &Tensor{
		shape: shape.Clone(),
		data:  make([]float64, shape.NumElements()),
	}, nil
}

// FromData creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
//
// At most one dimension may be 0; it is inferred from len(data)
// (ErrInvalidShape if more than one is given). The resulting shape must
// hold exactly len(data) elements, else ErrShapeMismatch.
//
// Example:
//
//	t, err := tensor.FromData(Shape{2, 0}, []float64{1, 2, 3, 4, 5, 6}) // Shape: [2, 3]
func FromData(shape Shape, data []float64) (*Tensor, error) {
	resolved, err := inferShape(shape, len(data))
	if err != nil {
		return nil, err
	}

	buf := make([]float64, len(data))
	copy(buf, data)
	return &Tensor{shape: resolved, data: buf}, nil
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t, err := tensor.Full(Shape{3, 3}, 3.14)
func Full(shape Shape, value float64) (*Tensor, error) {
	t, err := New(shape)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = value
	}
	return t, nil
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) (*Tensor, error) {
	return Full(shape, 1)
}

// Must returns t, panicking if err is non-nil.
// It is intended for shapes known to be valid at the call site.
//
// Example:
//
//	w := tensor.Must(tensor.FromData(Shape{2, 2}, []float64{1, 2, 3, 4}))
func Must(t *Tensor, err error) *Tensor {
	if err != nil {
		panic(err)
	}
	return t
}
