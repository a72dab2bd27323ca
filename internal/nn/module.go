// Package nn implements the network building blocks used by GAN generators and
// discriminators.
//
// This package provides:
//   - Module interface and named Parameters with owned gradients
//   - Layers: Linear, Conv2D, Dropout, activations, instance and batch normalization
//   - Blocks: FC and conv modules, FC and conv chains, a U-Net encoder/decoder
//   - Initialization (Xavier uniform with activation gain) and gradient utilities
//
// Design inspired by PyTorch's nn.Module but adapted for Go generics.
package nn

import (
	"github.com/born-ml/gantools/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Modules can be composed to build complex architectures:
//
//	chain, err := nn.NewFCChain(16, nn.FCChainConfig{Width: 64, Depth: 3}, backend)
//	out := chain.Forward(x)
//
// Type parameter B must satisfy the tensor.Backend interface.
type Module[B tensor.Backend] interface {
	// Forward computes the output of the module given an input tensor.
	Forward(input *tensor.Tensor[B]) *tensor.Tensor[B]

	// Parameters returns all trainable parameters of this module, including
	// those of nested modules. Modules without weights return nil.
	Parameters() []*Parameter[B]
}

// Trainable is implemented by modules whose forward pass differs between
// training and evaluation (dropout, batch normalization) and by containers.
type Trainable interface {
	SetTraining(training bool)
}

// SetTraining switches m and every nested module between training and evaluation
// mode. Modules that behave the same in both modes are left untouched.
func SetTraining[B tensor.Backend](m Module[B], training bool) {
	if t, ok := m.(Trainable); ok {
		t.SetTraining(training)
	}
}
