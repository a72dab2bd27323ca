package ops

import (
	"github.com/born-ml/gantools/internal/tensor"
)

// reduceBroadcast reduces a gradient tensor to match the target shape.
// This is necessary when broadcasting was used in the forward pass.
//
// Example:
//
//	Forward: a[3,1] + b[3,4] -> c[3,4]  (a was broadcast along dim 1)
//	Backward: grad_c[3,4] -> grad_a[3,1] (sum along dim 1)
func reduceBroadcast(grad *tensor.RawTensor, targetShape tensor.Shape, backend tensor.Backend) *tensor.RawTensor {
	if grad.Shape().Equal(targetShape) {
		return grad
	}
	if targetShape.NumElements() == 1 {
		return backend.Reshape(backend.Sum(grad), targetShape)
	}

	result := grad
	for len(result.Shape()) > len(targetShape) {
		result = backend.SumDim(result, 0, false)
	}
	for i, dim := range targetShape {
		if dim == 1 && result.Shape()[i] > 1 {
			result = backend.SumDim(result, i, true)
		}
	}
	return result
}

// expand broadcasts grad to shape.
func expand(grad *tensor.RawTensor, shape tensor.Shape, backend tensor.Backend) *tensor.RawTensor {
	return backend.Add(tensor.Alloc(shape, backend.Device()), grad)
}

// scalarOf returns the value of a single-element gradient.
func scalarOf(grad *tensor.RawTensor) float32 {
	return grad.Data()[0]
}

// maskLike returns f(x) element-wise as a new tensor.
func maskLike(x *tensor.RawTensor, f func(v float32) float32) *tensor.RawTensor {
	mask := tensor.Alloc(x.Shape(), x.Device())
	out := mask.Data()
	for i, v := range x.Data() {
		out[i] = f(v)
	}
	return mask
}
