package ops

import "github.com/born-ml/gantools/internal/tensor"

// SumOp represents output = Σx (scalar).
type SumOp struct{ base }

// NewSumOp creates a new SumOp.
func NewSumOp(input, output *tensor.RawTensor) *SumOp {
	return &SumOp{newBase(output, input)}
}

// Backward broadcasts the scalar gradient to the input shape.
func (op *SumOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	grad := tensor.Alloc(op.inputs[0].Shape(), backend.Device())
	grad.Fill(scalarOf(outputGrad))
	return []*tensor.RawTensor{grad}
}

// MeanOp represents output = mean(x) (scalar).
type MeanOp struct{ base }

// NewMeanOp creates a new MeanOp.
func NewMeanOp(input, output *tensor.RawTensor) *MeanOp {
	return &MeanOp{newBase(output, input)}
}

// Backward spreads the scalar gradient evenly over the input.
func (op *MeanOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	input := op.inputs[0]
	grad := tensor.Alloc(input.Shape(), backend.Device())
	grad.Fill(scalarOf(outputGrad) / float32(input.NumElements()))
	return []*tensor.RawTensor{grad}
}

// SumDimOp represents a sum along one dimension.
type SumDimOp struct {
	base
	dim  int
	mean bool
}

// NewSumDimOp creates a new SumDimOp.
func NewSumDimOp(input, output *tensor.RawTensor, dim int) *SumDimOp {
	return &SumDimOp{base: newBase(output, input), dim: dim}
}

// NewMeanDimOp creates the averaging variant of SumDimOp.
func NewMeanDimOp(input, output *tensor.RawTensor, dim int) *SumDimOp {
	return &SumDimOp{base: newBase(output, input), dim: dim, mean: true}
}

// Backward broadcasts the gradient back along the reduced dimension.
func (op *SumDimOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	inShape := op.inputs[0].Shape()
	dim := op.dim
	if dim < 0 {
		dim += len(inShape)
	}

	keep := inShape.Clone()
	keep[dim] = 1
	grad := expand(backend.Reshape(outputGrad, keep), inShape, backend)
	if op.mean {
		grad = backend.MulScalar(grad, 1/float32(inShape[dim]))
	}
	return []*tensor.RawTensor{grad}
}
