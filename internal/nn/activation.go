package nn

import (
	"github.com/pkg/errors"

	"github.com/born-ml/gantools/internal/tensor"
)

// LeakySlope is the negative slope of the leaky ReLU built by NewActivation.
const LeakySlope = 0.01

// Activation names accepted by NewActivation and Gain.
const (
	ActivationReLU      = "relu"
	ActivationLeakyReLU = "leaky_relu"
	ActivationLReLU     = "lrelu" // Alias of leaky_relu.
)

// ValidActivations lists the accepted activation names.
var ValidActivations = []string{ActivationReLU, ActivationLeakyReLU, ActivationLReLU}

// NewActivation returns the activation module registered under name.
//
// An empty name means "no activation" and returns (nil, nil).
func NewActivation[B tensor.Backend](name string) (Module[B], error) {
	switch name {
	case "":
		return nil, nil
	case ActivationReLU:
		return NewReLU[B](), nil
	case ActivationLeakyReLU, ActivationLReLU:
		return NewLeakyReLU[B](LeakySlope), nil
	default:
		return nil, errors.Wrapf(ErrInvalidActivation, "activation should be one of %v, got %q", ValidActivations, name)
	}
}

// ReLU applies f(x) = max(0, x).
type ReLU[B tensor.Backend] struct{}

// NewReLU creates a new ReLU activation module.
func NewReLU[B tensor.Backend]() *ReLU[B] {
	return &ReLU[B]{}
}

// Forward applies ReLU.
func (r *ReLU[B]) Forward(input *tensor.Tensor[B]) *tensor.Tensor[B] {
	return input.ReLU()
}

// Parameters returns nil (ReLU has no trainable parameters).
func (r *ReLU[B]) Parameters() []*Parameter[B] {
	return nil
}

// LeakyReLU applies f(x) = x for x > 0 and slope*x otherwise.
type LeakyReLU[B tensor.Backend] struct {
	slope float32
}

// NewLeakyReLU creates a leaky ReLU with the given negative slope.
func NewLeakyReLU[B tensor.Backend](slope float32) *LeakyReLU[B] {
	return &LeakyReLU[B]{slope: slope}
}

// Forward applies leaky ReLU.
func (l *LeakyReLU[B]) Forward(input *tensor.Tensor[B]) *tensor.Tensor[B] {
	return input.LeakyReLU(l.slope)
}

// Parameters returns nil.
func (l *LeakyReLU[B]) Parameters() []*Parameter[B] {
	return nil
}

// Slope returns the negative slope.
func (l *LeakyReLU[B]) Slope() float32 {
	return l.slope
}

// Tanh applies the hyperbolic tangent. Typically the last layer of an image generator.
type Tanh[B tensor.Backend] struct{}

// NewTanh creates a new Tanh module.
func NewTanh[B tensor.Backend]() *Tanh[B] {
	return &Tanh[B]{}
}

// Forward applies tanh.
func (t *Tanh[B]) Forward(input *tensor.Tensor[B]) *tensor.Tensor[B] {
	return input.Tanh()
}

// Parameters returns nil.
func (t *Tanh[B]) Parameters() []*Parameter[B] {
	return nil
}

// Sigmoid applies 1 / (1 + exp(-x)).
type Sigmoid[B tensor.Backend] struct{}

// NewSigmoid creates a new Sigmoid module.
func NewSigmoid[B tensor.Backend]() *Sigmoid[B] {
	return &Sigmoid[B]{}
}

// Forward applies sigmoid.
func (s *Sigmoid[B]) Forward(input *tensor.Tensor[B]) *tensor.Tensor[B] {
	return input.Sigmoid()
}

// Parameters returns nil.
func (s *Sigmoid[B]) Parameters() []*Parameter[B] {
	return nil
}
