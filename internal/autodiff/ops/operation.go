// Package ops defines differentiable operations for the gradient tape.
//
// Each operation keeps references to its inputs and output from the forward pass
// and maps an output gradient to one gradient per input. Backward kernels are run
// on the wrapped backend, so computing gradients never records new operations.
package ops

import "github.com/born-ml/gantools/internal/tensor"

// Operation represents a differentiable operation in the computation graph.
type Operation interface {
	// Backward computes gradients for inputs given the output gradient.
	// Returns one gradient per input; a nil entry means no gradient flows there.
	Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor

	// Inputs returns the input tensors for this operation.
	Inputs() []*tensor.RawTensor

	// Output returns the output tensor produced by this operation.
	Output() *tensor.RawTensor
}

// base stores the inputs and output shared by every operation.
type base struct {
	inputs []*tensor.RawTensor
	output *tensor.RawTensor
}

func newBase(output *tensor.RawTensor, inputs ...*tensor.RawTensor) base {
	return base{inputs: inputs, output: output}
}

// Inputs returns the recorded inputs.
func (b base) Inputs() []*tensor.RawTensor {
	return b.inputs
}

// Output returns the recorded output.
func (b base) Output() *tensor.RawTensor {
	return b.output
}
