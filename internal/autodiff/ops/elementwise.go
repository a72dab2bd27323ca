package ops

import "github.com/born-ml/gantools/internal/tensor"

// AddOp represents element-wise addition: output = a + b.
//
// Backward: both inputs receive the output gradient, summed over broadcast dims.
type AddOp struct{ base }

// NewAddOp creates a new AddOp.
func NewAddOp(a, b, output *tensor.RawTensor) *AddOp {
	return &AddOp{newBase(output, a, b)}
}

// Backward computes input gradients for addition.
func (op *AddOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{
		reduceBroadcast(outputGrad, op.inputs[0].Shape(), backend),
		reduceBroadcast(outputGrad, op.inputs[1].Shape(), backend),
	}
}

// SubOp represents element-wise subtraction: output = a - b.
type SubOp struct{ base }

// NewSubOp creates a new SubOp.
func NewSubOp(a, b, output *tensor.RawTensor) *SubOp {
	return &SubOp{newBase(output, a, b)}
}

// Backward computes input gradients for subtraction: (grad, -grad).
func (op *SubOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{
		reduceBroadcast(outputGrad, op.inputs[0].Shape(), backend),
		reduceBroadcast(backend.MulScalar(outputGrad, -1), op.inputs[1].Shape(), backend),
	}
}

// MulOp represents element-wise multiplication: output = a * b.
//
// Backward: d(a*b)/da = b, d(a*b)/db = a.
type MulOp struct{ base }

// NewMulOp creates a new MulOp.
func NewMulOp(a, b, output *tensor.RawTensor) *MulOp {
	return &MulOp{newBase(output, a, b)}
}

// Backward computes input gradients for multiplication.
func (op *MulOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	a, b := op.inputs[0], op.inputs[1]
	return []*tensor.RawTensor{
		reduceBroadcast(backend.Mul(outputGrad, b), a.Shape(), backend),
		reduceBroadcast(backend.Mul(outputGrad, a), b.Shape(), backend),
	}
}

// DivOp represents element-wise division: output = a / b.
//
// Backward: d(a/b)/da = 1/b, d(a/b)/db = -a/b² = -output/b.
type DivOp struct{ base }

// NewDivOp creates a new DivOp.
func NewDivOp(a, b, output *tensor.RawTensor) *DivOp {
	return &DivOp{newBase(output, a, b)}
}

// Backward computes input gradients for division.
func (op *DivOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	a, b := op.inputs[0], op.inputs[1]
	gradA := backend.Div(outputGrad, b)
	gradB := backend.MulScalar(backend.Mul(gradA, op.output), -1)
	return []*tensor.RawTensor{
		reduceBroadcast(gradA, a.Shape(), backend),
		reduceBroadcast(gradB, b.Shape(), backend),
	}
}

// MulScalarOp represents output = x * scalar.
type MulScalarOp struct {
	base
	scalar float32
}

// NewMulScalarOp creates a new MulScalarOp.
func NewMulScalarOp(x, output *tensor.RawTensor, scalar float32) *MulScalarOp {
	return &MulScalarOp{base: newBase(output, x), scalar: scalar}
}

// Backward scales the gradient by the same scalar.
func (op *MulScalarOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.MulScalar(outputGrad, op.scalar)}
}

// AddScalarOp represents output = x + scalar.
type AddScalarOp struct{ base }

// NewAddScalarOp creates a new AddScalarOp.
func NewAddScalarOp(x, output *tensor.RawTensor) *AddScalarOp {
	return &AddScalarOp{newBase(output, x)}
}

// Backward passes the gradient through unchanged.
func (op *AddScalarOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{outputGrad}
}
