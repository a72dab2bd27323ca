package ops

import "github.com/born-ml/gantools/internal/tensor"

// Conv2DOp represents a 2D convolution.
//
// Forward: output = Conv2D(input, kernel, stride, padding)
//
// Backward:
//   - dL/dInput: transposed convolution of the gradient with the kernel
//   - dL/dKernel: correlation of the input with the gradient
type Conv2DOp struct {
	base
	stride, padding int
}

// NewConv2DOp creates a new Conv2DOp.
func NewConv2DOp(input, kernel, output *tensor.RawTensor, stride, padding int) *Conv2DOp {
	return &Conv2DOp{base: newBase(output, input, kernel), stride: stride, padding: padding}
}

// Backward computes input and kernel gradients.
func (op *Conv2DOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	input, kernel := op.inputs[0], op.inputs[1]
	return []*tensor.RawTensor{
		backend.Conv2DInputBackward(input, kernel, outputGrad, op.stride, op.padding),
		backend.Conv2DKernelBackward(input, kernel, outputGrad, op.stride, op.padding),
	}
}
