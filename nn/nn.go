// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/gantools/internal/nn"
	"github.com/born-ml/gantools/internal/tensor"
)

// Module interface defines the common interface for all neural network modules.
type Module[B tensor.Backend] = nn.Module[B]

// Trainable is implemented by modules with distinct training and evaluation behaviour.
type Trainable = nn.Trainable

// Parameter represents a trainable parameter in a neural network.
type Parameter[B tensor.Backend] = nn.Parameter[B]

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[B]) *Parameter[B] {
	return nn.NewParameter(name, t)
}

// SetTraining switches m and its children between training and evaluation mode.
func SetTraining[B tensor.Backend](m Module[B], training bool) {
	nn.SetTraining(m, training)
}

// Errors returned by constructors.
var (
	ErrInvalidConfig     = nn.ErrInvalidConfig
	ErrInvalidActivation = nn.ErrInvalidActivation
	ErrInvalidNorm       = nn.ErrInvalidNorm
)

// Layers

// Linear represents a fully connected (dense) layer.
type Linear[B tensor.Backend] = nn.Linear[B]

// NewLinear creates a new linear layer.
//
// Example:
//
//	layer := nn.NewLinear(784, 128, backend)
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, backend B) *Linear[B] {
	return nn.NewLinear(inFeatures, outFeatures, backend)
}

// Conv2D represents a 2D convolutional layer with square kernels.
type Conv2D[B tensor.Backend] = nn.Conv2D[B]

// NewConv2D creates a new 2D convolutional layer.
//
// Example:
//
//	conv := nn.NewConv2D(1, 32, 3, 1, 1, true, backend)  // kernel=3x3, stride=1, padding=1, useBias=true
func NewConv2D[B tensor.Backend](inChannels, outChannels, kernelSize, stride, padding int, useBias bool, backend B) *Conv2D[B] {
	return nn.NewConv2D(inChannels, outChannels, kernelSize, stride, padding, useBias, backend)
}

// Dropout zeroes activations with probability p during training.
type Dropout[B tensor.Backend] = nn.Dropout[B]

// NewDropout creates a dropout layer. p must lie in [0, 1).
func NewDropout[B tensor.Backend](p float32) (*Dropout[B], error) {
	return nn.NewDropout[B](p)
}

// Sequential chains named modules.
type Sequential[B tensor.Backend] = nn.Sequential[B]

// NewSequential creates an empty Sequential container.
func NewSequential[B tensor.Backend]() *Sequential[B] {
	return nn.NewSequential[B]()
}

// Activations

// Activation names.
const (
	ActivationReLU      = nn.ActivationReLU
	ActivationLeakyReLU = nn.ActivationLeakyReLU
	ActivationLReLU     = nn.ActivationLReLU
)

// ReLU applies max(0, x).
type ReLU[B tensor.Backend] = nn.ReLU[B]

// LeakyReLU applies max(slope·x, x).
type LeakyReLU[B tensor.Backend] = nn.LeakyReLU[B]

// Tanh applies the hyperbolic tangent.
type Tanh[B tensor.Backend] = nn.Tanh[B]

// Sigmoid applies the logistic function.
type Sigmoid[B tensor.Backend] = nn.Sigmoid[B]

// NewActivation builds the activation registered under name. An empty name
// returns (nil, nil).
func NewActivation[B tensor.Backend](name string) (Module[B], error) {
	return nn.NewActivation[B](name)
}

// NewReLU creates a ReLU activation.
func NewReLU[B tensor.Backend]() *ReLU[B] {
	return nn.NewReLU[B]()
}

// NewLeakyReLU creates a leaky ReLU with the given negative slope.
func NewLeakyReLU[B tensor.Backend](slope float32) *LeakyReLU[B] {
	return nn.NewLeakyReLU[B](slope)
}

// NewTanh creates a Tanh activation.
func NewTanh[B tensor.Backend]() *Tanh[B] {
	return nn.NewTanh[B]()
}

// NewSigmoid creates a Sigmoid activation.
func NewSigmoid[B tensor.Backend]() *Sigmoid[B] {
	return nn.NewSigmoid[B]()
}

// Normalization

// Normalization names.
const (
	NormInstance = nn.NormInstance
	NormBatch    = nn.NormBatch
)

// InstanceNorm normalizes each sample and channel over its spatial positions.
type InstanceNorm[B tensor.Backend] = nn.InstanceNorm[B]

// BatchNorm normalizes each channel over the batch and keeps running statistics.
type BatchNorm[B tensor.Backend] = nn.BatchNorm[B]

// NewNorm builds the normalization registered under name. An empty name
// returns (nil, nil).
func NewNorm[B tensor.Backend](name string, channels int, backend B) (Module[B], error) {
	return nn.NewNorm(name, channels, backend)
}

// Initialization

// Gain returns the recommended Xavier gain for activation.
func Gain(activation string) float64 {
	return nn.Gain(activation)
}

// InitLinearOrConv applies Xavier-uniform init scaled for activation and zeroes bias.
func InitLinearOrConv[B tensor.Backend](weight, bias *tensor.Tensor[B], activation string) {
	nn.InitLinearOrConv(weight, bias, activation)
}

// AccumulateGrads adds the gradients computed by autodiff.Backward to params.
func AccumulateGrads[B tensor.Backend](params []*Parameter[B], grads map[*tensor.RawTensor]*tensor.RawTensor) {
	nn.AccumulateGrads(params, grads)
}

// ZeroGrads clears the gradients of params.
func ZeroGrads[B tensor.Backend](params []*Parameter[B]) {
	nn.ZeroGrads(params)
}
