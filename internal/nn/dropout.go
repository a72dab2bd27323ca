package nn

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/born-ml/gantools/internal/tensor"
)

// Dropout zeroes each element with probability p during training and scales the
// survivors by 1/(1-p). In evaluation mode it is the identity.
type Dropout[B tensor.Backend] struct {
	p        float32
	training bool
}

// NewDropout creates a dropout layer in training mode. p must lie in [0, 1).
func NewDropout[B tensor.Backend](p float32) (*Dropout[B], error) {
	if p < 0 || p >= 1 {
		return nil, errors.Wrapf(ErrInvalidConfig, "dropout ratio should be in [0, 1), got %g", p)
	}
	return &Dropout[B]{p: p, training: true}, nil
}

// SetTraining toggles dropout on or off.
func (d *Dropout[B]) SetTraining(training bool) {
	d.training = training
}

// P returns the drop probability.
func (d *Dropout[B]) P() float32 {
	return d.p
}

// Forward applies the dropout mask.
func (d *Dropout[B]) Forward(input *tensor.Tensor[B]) *tensor.Tensor[B] {
	if !d.training || d.p == 0 {
		return input
	}

	mask := tensor.ZerosLike(input)
	scale := 1 / (1 - d.p)
	data := mask.Data()
	for i := range data {
		if rand.Float32() >= d.p { //nolint:gosec // ML sampling
			data[i] = scale
		}
	}
	return input.Mul(mask)
}

// Parameters returns nil.
func (d *Dropout[B]) Parameters() []*Parameter[B] {
	return nil
}
