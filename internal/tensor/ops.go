package tensor

// Add performs element-wise addition with broadcasting.
//
// Example:
//
//	a, _ := tensor.Ones(Shape{3, 1})
//	b, _ := tensor.Ones(Shape{3, 5})
//	c, _ := a.Add(b) // Shape: [3, 5] (broadcasted)
func (t *Tensor) Add(other *Tensor) (*Tensor, error) {
	return broadcastBinary(t, other, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor) Sub(other *Tensor) (*Tensor, error) {
	return broadcastBinary(t, other, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor) Mul(other *Tensor) (*Tensor, error) {
	return broadcastBinary(t, other, func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division with broadcasting.
// Division by zero follows IEEE-754 and yields ±Inf or NaN.
func (t *Tensor) Div(other *Tensor) (*Tensor, error) {
	return broadcastBinary(t, other, func(x, y float64) float64 { return x / y })
}
