// Package autodiff implements automatic differentiation using the decorator pattern.
//
// AutodiffBackend wraps any Backend implementation and adds gradient tracking
// through a GradientTape.
//
// Architecture:
//   - Decorator pattern: AutodiffBackend[B] wraps any Backend implementation
//   - GradientTape: records operations during the forward pass
//   - Operation interface: each op implements its backward pass
//   - Reverse-mode AD: computes gradients using the chain rule
//
// Usage:
//
//	backend := autodiff.New(cpu.New())
//	backend.Tape().StartRecording()
//
//	x, _ := tensor.FromSlice([]float32{2.0}, tensor.Shape{1}, backend)
//	y := x.Mul(x).Sum() // y = x²
//
//	grads := autodiff.Backward(y, backend)
//	fmt.Println(grads[x.Raw()].Data()) // dy/dx = 2x = [4]
package autodiff

import (
	"github.com/born-ml/gantools/internal/autodiff/ops"
	"github.com/born-ml/gantools/internal/tensor"
)

// AutodiffBackend wraps a Backend and records every operation on a GradientTape.
//
// Forward computation is delegated to the wrapped backend unchanged.
type AutodiffBackend[B tensor.Backend] struct {
	inner B
	tape  *GradientTape
}

// New creates a new AutodiffBackend wrapping the given backend.
func New[B tensor.Backend](backend B) *AutodiffBackend[B] {
	return &AutodiffBackend[B]{
		inner: backend,
		tape:  NewGradientTape(),
	}
}

// Tape returns the gradient tape for manual control.
func (b *AutodiffBackend[B]) Tape() *GradientTape {
	return b.tape
}

// Inner returns the wrapped backend.
func (b *AutodiffBackend[B]) Inner() B {
	return b.inner
}

// Name returns the backend name.
func (b *AutodiffBackend[B]) Name() string {
	return "Autodiff(" + b.inner.Name() + ")"
}

// Device returns the compute device.
func (b *AutodiffBackend[B]) Device() tensor.Device {
	return b.inner.Device()
}

// record appends op when the tape is recording and returns result.
// The op is built lazily so nothing is allocated while recording is off.
func (b *AutodiffBackend[B]) record(result *tensor.RawTensor, op func() ops.Operation) *tensor.RawTensor {
	if b.tape.IsRecording() {
		b.tape.Record(op())
	}
	return result
}

// Add performs element-wise addition and records the operation.
func (b *AutodiffBackend[B]) Add(x, y *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Add(x, y)
	return b.record(out, func() ops.Operation { return ops.NewAddOp(x, y, out) })
}

// Sub performs element-wise subtraction and records the operation.
func (b *AutodiffBackend[B]) Sub(x, y *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Sub(x, y)
	return b.record(out, func() ops.Operation { return ops.NewSubOp(x, y, out) })
}

// Mul performs element-wise multiplication and records the operation.
func (b *AutodiffBackend[B]) Mul(x, y *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Mul(x, y)
	return b.record(out, func() ops.Operation { return ops.NewMulOp(x, y, out) })
}

// Div performs element-wise division and records the operation.
func (b *AutodiffBackend[B]) Div(x, y *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Div(x, y)
	return b.record(out, func() ops.Operation { return ops.NewDivOp(x, y, out) })
}

// MulScalar multiplies by a scalar and records the operation.
func (b *AutodiffBackend[B]) MulScalar(x *tensor.RawTensor, scalar float32) *tensor.RawTensor {
	out := b.inner.MulScalar(x, scalar)
	return b.record(out, func() ops.Operation { return ops.NewMulScalarOp(x, out, scalar) })
}

// AddScalar adds a scalar and records the operation.
func (b *AutodiffBackend[B]) AddScalar(x *tensor.RawTensor, scalar float32) *tensor.RawTensor {
	out := b.inner.AddScalar(x, scalar)
	return b.record(out, func() ops.Operation { return ops.NewAddScalarOp(x, out) })
}

// MatMul performs matrix multiplication and records the operation.
func (b *AutodiffBackend[B]) MatMul(x, y *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.MatMul(x, y)
	return b.record(out, func() ops.Operation { return ops.NewMatMulOp(x, y, out) })
}

// Transpose transposes a 2D tensor and records the operation.
//
// The backend copies data, so without the op the gradient of a transposed weight
// would never reach the weight itself.
func (b *AutodiffBackend[B]) Transpose(x *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Transpose(x)
	return b.record(out, func() ops.Operation { return ops.NewTransposeOp(x, out) })
}

// Reshape reshapes a tensor and records the operation.
func (b *AutodiffBackend[B]) Reshape(x *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	out := b.inner.Reshape(x, newShape)
	return b.record(out, func() ops.Operation { return ops.NewReshapeOp(x, out) })
}

// Conv2D performs a 2D convolution and records the operation.
func (b *AutodiffBackend[B]) Conv2D(input, kernel *tensor.RawTensor, stride, padding int) *tensor.RawTensor {
	out := b.inner.Conv2D(input, kernel, stride, padding)
	return b.record(out, func() ops.Operation { return ops.NewConv2DOp(input, kernel, out, stride, padding) })
}

// Sqrt computes the square root and records the operation.
func (b *AutodiffBackend[B]) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Sqrt(x)
	return b.record(out, func() ops.Operation { return ops.NewSqrtOp(x, out) })
}

// ReLU applies ReLU and records the operation.
func (b *AutodiffBackend[B]) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.ReLU(x)
	return b.record(out, func() ops.Operation { return ops.NewReLUOp(x, out) })
}

// LeakyReLU applies LeakyReLU and records the operation.
func (b *AutodiffBackend[B]) LeakyReLU(x *tensor.RawTensor, slope float32) *tensor.RawTensor {
	out := b.inner.LeakyReLU(x, slope)
	return b.record(out, func() ops.Operation { return ops.NewLeakyReLUOp(x, out, slope) })
}

// Tanh applies tanh and records the operation.
func (b *AutodiffBackend[B]) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Tanh(x)
	return b.record(out, func() ops.Operation { return ops.NewTanhOp(x, out) })
}

// Sigmoid applies sigmoid and records the operation.
func (b *AutodiffBackend[B]) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Sigmoid(x)
	return b.record(out, func() ops.Operation { return ops.NewSigmoidOp(x, out) })
}

// Sum reduces to a scalar and records the operation.
func (b *AutodiffBackend[B]) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Sum(x)
	return b.record(out, func() ops.Operation { return ops.NewSumOp(x, out) })
}

// Mean reduces to the scalar mean and records the operation.
func (b *AutodiffBackend[B]) Mean(x *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Mean(x)
	return b.record(out, func() ops.Operation { return ops.NewMeanOp(x, out) })
}

// SumDim sums along dim and records the operation.
func (b *AutodiffBackend[B]) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	out := b.inner.SumDim(x, dim, keepDim)
	return b.record(out, func() ops.Operation { return ops.NewSumDimOp(x, out, dim) })
}

// MeanDim averages along dim and records the operation.
func (b *AutodiffBackend[B]) MeanDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	out := b.inner.MeanDim(x, dim, keepDim)
	return b.record(out, func() ops.Operation { return ops.NewMeanDimOp(x, out, dim) })
}

// Cat concatenates along dim and records the operation.
func (b *AutodiffBackend[B]) Cat(tensors []*tensor.RawTensor, dim int) *tensor.RawTensor {
	out := b.inner.Cat(tensors, dim)
	return b.record(out, func() ops.Operation { return ops.NewCatOp(tensors, out, dim) })
}

// Narrow slices along dim and records the operation.
func (b *AutodiffBackend[B]) Narrow(x *tensor.RawTensor, dim, start, length int) *tensor.RawTensor {
	out := b.inner.Narrow(x, dim, start, length)
	return b.record(out, func() ops.Operation { return ops.NewNarrowOp(x, out, dim, start) })
}

// Interpolate resamples spatially and records the operation.
func (b *AutodiffBackend[B]) Interpolate(x *tensor.RawTensor, outH, outW int, mode tensor.InterpMode) *tensor.RawTensor {
	out := b.inner.Interpolate(x, outH, outW, mode)
	return b.record(out, func() ops.Operation { return ops.NewInterpolateOp(x, out, mode) })
}

// BCEWithLogits computes binary cross-entropy on logits and records the operation.
func (b *AutodiffBackend[B]) BCEWithLogits(logits, targets *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.BCEWithLogits(logits, targets)
	return b.record(out, func() ops.Operation { return ops.NewBCEWithLogitsOp(logits, targets, out) })
}

// Conv2DInputBackward delegates to the wrapped backend. Backward kernels are not recorded.
func (b *AutodiffBackend[B]) Conv2DInputBackward(input, kernel, grad *tensor.RawTensor, stride, padding int) *tensor.RawTensor {
	return b.inner.Conv2DInputBackward(input, kernel, grad, stride, padding)
}

// Conv2DKernelBackward delegates to the wrapped backend.
func (b *AutodiffBackend[B]) Conv2DKernelBackward(input, kernel, grad *tensor.RawTensor, stride, padding int) *tensor.RawTensor {
	return b.inner.Conv2DKernelBackward(input, kernel, grad, stride, padding)
}

// InterpolateBackward delegates to the wrapped backend.
func (b *AutodiffBackend[B]) InterpolateBackward(grad *tensor.RawTensor, inShape tensor.Shape, mode tensor.InterpMode) *tensor.RawTensor {
	return b.inner.InterpolateBackward(grad, inShape, mode)
}
