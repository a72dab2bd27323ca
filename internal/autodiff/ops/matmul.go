package ops

import "github.com/born-ml/gantools/internal/tensor"

// MatMulOp represents output = A @ B.
//
// Backward:
//   - dL/dA = dL/dC @ Bᵀ
//   - dL/dB = Aᵀ @ dL/dC
type MatMulOp struct{ base }

// NewMatMulOp creates a new MatMulOp.
func NewMatMulOp(a, b, output *tensor.RawTensor) *MatMulOp {
	return &MatMulOp{newBase(output, a, b)}
}

// Backward computes input gradients for matrix multiplication.
func (op *MatMulOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	a, b := op.inputs[0], op.inputs[1]
	return []*tensor.RawTensor{
		backend.MatMul(outputGrad, backend.Transpose(b)),
		backend.MatMul(backend.Transpose(a), outputGrad),
	}
}

// TransposeOp represents output = xᵀ for a 2D tensor.
type TransposeOp struct{ base }

// NewTransposeOp creates a new TransposeOp.
func NewTransposeOp(input, output *tensor.RawTensor) *TransposeOp {
	return &TransposeOp{newBase(output, input)}
}

// Backward transposes the gradient back.
func (op *TransposeOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Transpose(outputGrad)}
}

// ReshapeOp represents a change of shape.
//
// Reshape must be recorded even though it is a view: the output is a distinct
// RawTensor, so without the op gradients would stop at the reshaped tensor
// (e.g. a conv bias reshaped to [1, C, 1, 1] for broadcasting).
type ReshapeOp struct{ base }

// NewReshapeOp creates a new ReshapeOp.
func NewReshapeOp(input, output *tensor.RawTensor) *ReshapeOp {
	return &ReshapeOp{newBase(output, input)}
}

// Backward reshapes the gradient to the input shape.
func (op *ReshapeOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Reshape(outputGrad, op.inputs[0].Shape())}
}
