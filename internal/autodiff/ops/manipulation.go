package ops

import "github.com/born-ml/gantools/internal/tensor"

// CatOp represents concatenation along dim.
//
// Backward: each input receives the slice of the gradient it was copied to.
type CatOp struct {
	base
	dim int
}

// NewCatOp creates a new CatOp.
func NewCatOp(inputs []*tensor.RawTensor, output *tensor.RawTensor, dim int) *CatOp {
	return &CatOp{base: newBase(output, inputs...), dim: dim}
}

// Backward narrows the gradient back into per-input pieces.
func (op *CatOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	grads := make([]*tensor.RawTensor, len(op.inputs))
	start := 0
	for i, in := range op.inputs {
		size := in.Shape()[normDim(op.dim, len(in.Shape()))]
		grads[i] = backend.Narrow(outputGrad, op.dim, start, size)
		start += size
	}
	return grads
}

// NarrowOp represents a slice of length entries along dim starting at start.
type NarrowOp struct {
	base
	dim, start int
}

// NewNarrowOp creates a new NarrowOp.
func NewNarrowOp(input, output *tensor.RawTensor, dim, start int) *NarrowOp {
	return &NarrowOp{base: newBase(output, input), dim: dim, start: start}
}

// Backward pads the gradient with zeros back to the input size.
func (op *NarrowOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	inShape := op.inputs[0].Shape()
	dim := normDim(op.dim, len(inShape))
	length := outputGrad.Shape()[dim]

	pieces := make([]*tensor.RawTensor, 0, 3)
	if op.start > 0 {
		pieces = append(pieces, zerosAlong(inShape, dim, op.start, backend))
	}
	pieces = append(pieces, outputGrad)
	if rest := inShape[dim] - op.start - length; rest > 0 {
		pieces = append(pieces, zerosAlong(inShape, dim, rest, backend))
	}
	if len(pieces) == 1 {
		return []*tensor.RawTensor{outputGrad}
	}
	return []*tensor.RawTensor{backend.Cat(pieces, dim)}
}

// InterpolateOp represents spatial resampling of an [N, C, H, W] tensor.
type InterpolateOp struct {
	base
	mode tensor.InterpMode
}

// NewInterpolateOp creates a new InterpolateOp.
func NewInterpolateOp(input, output *tensor.RawTensor, mode tensor.InterpMode) *InterpolateOp {
	return &InterpolateOp{base: newBase(output, input), mode: mode}
}

// Backward scatters the gradient back onto the input grid.
func (op *InterpolateOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.InterpolateBackward(outputGrad, op.inputs[0].Shape(), op.mode)}
}

func zerosAlong(shape tensor.Shape, dim, size int, backend tensor.Backend) *tensor.RawTensor {
	s := shape.Clone()
	s[dim] = size
	return tensor.Alloc(s, backend.Device())
}

func normDim(dim, ndim int) int {
	if dim < 0 {
		return dim + ndim
	}
	return dim
}
