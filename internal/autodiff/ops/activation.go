package ops

import "github.com/born-ml/gantools/internal/tensor"

// ReLUOp represents output = max(0, x).
//
// Backward: d(ReLU(x))/dx = 1 if x > 0, else 0.
type ReLUOp struct{ base }

// NewReLUOp creates a new ReLUOp.
func NewReLUOp(input, output *tensor.RawTensor) *ReLUOp {
	return &ReLUOp{newBase(output, input)}
}

// Backward computes the input gradient for ReLU.
func (op *ReLUOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	mask := maskLike(op.inputs[0], func(v float32) float32 {
		if v > 0 {
			return 1
		}
		return 0
	})
	return []*tensor.RawTensor{backend.Mul(outputGrad, mask)}
}

// LeakyReLUOp represents output = x if x > 0 else slope*x.
type LeakyReLUOp struct {
	base
	slope float32
}

// NewLeakyReLUOp creates a new LeakyReLUOp.
func NewLeakyReLUOp(input, output *tensor.RawTensor, slope float32) *LeakyReLUOp {
	return &LeakyReLUOp{base: newBase(output, input), slope: slope}
}

// Backward computes the input gradient for LeakyReLU.
func (op *LeakyReLUOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	mask := maskLike(op.inputs[0], func(v float32) float32 {
		if v > 0 {
			return 1
		}
		return op.slope
	})
	return []*tensor.RawTensor{backend.Mul(outputGrad, mask)}
}

// TanhOp represents output = tanh(x).
//
// Backward: d(tanh(x))/dx = 1 - tanh²(x), computed from the saved output.
type TanhOp struct{ base }

// NewTanhOp creates a new TanhOp.
func NewTanhOp(input, output *tensor.RawTensor) *TanhOp {
	return &TanhOp{newBase(output, input)}
}

// Backward computes the input gradient for tanh.
func (op *TanhOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	deriv := maskLike(op.output, func(y float32) float32 { return 1 - y*y })
	return []*tensor.RawTensor{backend.Mul(outputGrad, deriv)}
}

// SigmoidOp represents output = σ(x).
//
// Backward: dσ/dx = σ(x)(1 - σ(x)).
type SigmoidOp struct{ base }

// NewSigmoidOp creates a new SigmoidOp.
func NewSigmoidOp(input, output *tensor.RawTensor) *SigmoidOp {
	return &SigmoidOp{newBase(output, input)}
}

// Backward computes the input gradient for sigmoid.
func (op *SigmoidOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	deriv := maskLike(op.output, func(y float32) float32 { return y * (1 - y) })
	return []*tensor.RawTensor{backend.Mul(outputGrad, deriv)}
}

// SqrtOp represents output = √x.
//
// Backward: d(√x)/dx = 1 / (2√x).
type SqrtOp struct{ base }

// NewSqrtOp creates a new SqrtOp.
func NewSqrtOp(input, output *tensor.RawTensor) *SqrtOp {
	return &SqrtOp{newBase(output, input)}
}

// Backward computes the input gradient for sqrt.
func (op *SqrtOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.MulScalar(backend.Div(outputGrad, op.output), 0.5)}
}
