package tensor

// Backend defines the interface that compute backends implement.
//
// Forward kernels return freshly allocated results and never modify their inputs,
// so the autodiff decorator can keep references to inputs for the backward pass.
// The backward kernels at the bottom are the ones an autodiff operation cannot
// express with forward kernels alone.
type Backend interface {
	// Element-wise binary operations with NumPy broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Scalar operations.
	MulScalar(x *RawTensor, scalar float32) *RawTensor
	AddScalar(x *RawTensor, scalar float32) *RawTensor

	// Matrix and shape operations.
	MatMul(a, b *RawTensor) *RawTensor // [M, K] @ [K, N] -> [M, N]
	Transpose(x *RawTensor) *RawTensor // 2D only
	Reshape(x *RawTensor, newShape Shape) *RawTensor

	// Conv2D convolves input [N, C, H, W] with kernel [O, C, K, K].
	Conv2D(input, kernel *RawTensor, stride, padding int) *RawTensor

	// Element-wise math and activations.
	Sqrt(x *RawTensor) *RawTensor
	ReLU(x *RawTensor) *RawTensor
	LeakyReLU(x *RawTensor, slope float32) *RawTensor
	Tanh(x *RawTensor) *RawTensor
	Sigmoid(x *RawTensor) *RawTensor

	// Reductions.
	Sum(x *RawTensor) *RawTensor  // scalar
	Mean(x *RawTensor) *RawTensor // scalar
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor
	MeanDim(x *RawTensor, dim int, keepDim bool) *RawTensor

	// Manipulation.
	Cat(tensors []*RawTensor, dim int) *RawTensor
	Narrow(x *RawTensor, dim, start, length int) *RawTensor
	Interpolate(x *RawTensor, outH, outW int, mode InterpMode) *RawTensor

	// BCEWithLogits is the mean binary cross-entropy of sigmoid(logits) against targets,
	// computed without materializing the sigmoid.
	BCEWithLogits(logits, targets *RawTensor) *RawTensor

	// Backward kernels.
	Conv2DInputBackward(input, kernel, grad *RawTensor, stride, padding int) *RawTensor
	Conv2DKernelBackward(input, kernel, grad *RawTensor, stride, padding int) *RawTensor
	InterpolateBackward(grad *RawTensor, inShape Shape, mode InterpMode) *RawTensor

	// Metadata.
	Name() string
	Device() Device
}
