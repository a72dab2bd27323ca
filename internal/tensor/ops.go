package tensor

// Add performs element-wise addition with broadcasting.
//
// Example:
//
//	a := tensor.Ones(Shape{3, 1}, backend)
//	b := tensor.Ones(Shape{3, 5}, backend)
//	c := a.Add(b) // Shape: [3, 5]
func (t *Tensor[B]) Add(other *Tensor[B]) *Tensor[B] {
	return New(t.backend.Add(t.raw, other.raw), t.backend)
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor[B]) Sub(other *Tensor[B]) *Tensor[B] {
	return New(t.backend.Sub(t.raw, other.raw), t.backend)
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[B]) Mul(other *Tensor[B]) *Tensor[B] {
	return New(t.backend.Mul(t.raw, other.raw), t.backend)
}

// Div performs element-wise division with broadcasting.
func (t *Tensor[B]) Div(other *Tensor[B]) *Tensor[B] {
	return New(t.backend.Div(t.raw, other.raw), t.backend)
}

// MulScalar multiplies every element by scalar.
func (t *Tensor[B]) MulScalar(scalar float32) *Tensor[B] {
	return New(t.backend.MulScalar(t.raw, scalar), t.backend)
}

// AddScalar adds scalar to every element.
func (t *Tensor[B]) AddScalar(scalar float32) *Tensor[B] {
	return New(t.backend.AddScalar(t.raw, scalar), t.backend)
}

// Neg returns -t.
func (t *Tensor[B]) Neg() *Tensor[B] {
	return t.MulScalar(-1)
}

// MatMul performs 2D matrix multiplication: (M, K) @ (K, N) → (M, N).
func (t *Tensor[B]) MatMul(other *Tensor[B]) *Tensor[B] {
	return New(t.backend.MatMul(t.raw, other.raw), t.backend)
}

// T transposes a 2D tensor.
func (t *Tensor[B]) T() *Tensor[B] {
	return New(t.backend.Transpose(t.raw), t.backend)
}

// Reshape returns a tensor with the same data and a new shape.
// The element count must not change.
func (t *Tensor[B]) Reshape(newShape ...int) *Tensor[B] {
	return New(t.backend.Reshape(t.raw, Shape(newShape)), t.backend)
}

// Sqrt computes the element-wise square root.
func (t *Tensor[B]) Sqrt() *Tensor[B] {
	return New(t.backend.Sqrt(t.raw), t.backend)
}

// ReLU computes max(0, x) element-wise.
func (t *Tensor[B]) ReLU() *Tensor[B] {
	return New(t.backend.ReLU(t.raw), t.backend)
}

// LeakyReLU computes x for x > 0 and slope*x otherwise.
func (t *Tensor[B]) LeakyReLU(slope float32) *Tensor[B] {
	return New(t.backend.LeakyReLU(t.raw, slope), t.backend)
}

// Tanh computes the element-wise hyperbolic tangent.
func (t *Tensor[B]) Tanh() *Tensor[B] {
	return New(t.backend.Tanh(t.raw), t.backend)
}

// Sigmoid computes 1 / (1 + exp(-x)) element-wise.
func (t *Tensor[B]) Sigmoid() *Tensor[B] {
	return New(t.backend.Sigmoid(t.raw), t.backend)
}

// Sum reduces all elements to a scalar.
func (t *Tensor[B]) Sum() *Tensor[B] {
	return New(t.backend.Sum(t.raw), t.backend)
}

// Mean reduces all elements to their scalar mean.
func (t *Tensor[B]) Mean() *Tensor[B] {
	return New(t.backend.Mean(t.raw), t.backend)
}

// SumDim sums along dim.
func (t *Tensor[B]) SumDim(dim int, keepDim bool) *Tensor[B] {
	return New(t.backend.SumDim(t.raw, dim, keepDim), t.backend)
}

// MeanDim averages along dim.
func (t *Tensor[B]) MeanDim(dim int, keepDim bool) *Tensor[B] {
	return New(t.backend.MeanDim(t.raw, dim, keepDim), t.backend)
}

// Narrow returns length entries of dim starting at start.
func (t *Tensor[B]) Narrow(dim, start, length int) *Tensor[B] {
	return New(t.backend.Narrow(t.raw, dim, start, length), t.backend)
}

// Interpolate resizes the spatial dimensions of an [N, C, H, W] tensor.
func (t *Tensor[B]) Interpolate(outH, outW int, mode InterpMode) *Tensor[B] {
	return New(t.backend.Interpolate(t.raw, outH, outW, mode), t.backend)
}

// Cat concatenates tensors along dim.
//
// Example:
//
//	x := tensor.Cat([]*tensor.Tensor[B]{a, b}, 1) // channel-wise concat
func Cat[B Backend](tensors []*Tensor[B], dim int) *Tensor[B] {
	if len(tensors) == 0 {
		panic("cat: no tensors")
	}
	raws := make([]*RawTensor, len(tensors))
	for i, t := range tensors {
		raws[i] = t.raw
	}
	b := tensors[0].backend
	return New(b.Cat(raws, dim), b)
}

// Conv2D convolves input [N, C, H, W] with kernel [O, C, K, K].
func Conv2D[B Backend](input, kernel *Tensor[B], stride, padding int) *Tensor[B] {
	return New(input.backend.Conv2D(input.raw, kernel.raw, stride, padding), input.backend)
}

// BCEWithLogits returns the mean binary cross-entropy between sigmoid(logits) and targets.
func BCEWithLogits[B Backend](logits, targets *Tensor[B]) *Tensor[B] {
	return New(logits.backend.BCEWithLogits(logits.raw, targets.raw), logits.backend)
}
