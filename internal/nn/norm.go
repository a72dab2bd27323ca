package nn

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/born-ml/gantools/internal/tensor"
)

// Normalization names accepted by NewNorm.
const (
	NormInstance = "instance"
	NormBatch    = "batch"
)

// ValidNorms lists the accepted normalization names.
var ValidNorms = []string{NormInstance, NormBatch}

const (
	normEps      = 1e-5
	normMomentum = 0.1
)

// NewNorm returns an affine normalization layer over channels, with weight 1 and
// bias 0. An empty name returns (nil, nil).
func NewNorm[B tensor.Backend](name string, channels int, backend B) (Module[B], error) {
	switch name {
	case "":
		return nil, nil
	case NormInstance, NormBatch:
	default:
		return nil, errors.Wrapf(ErrInvalidNorm, "norm_layer should be one of %v, got %q", ValidNorms, name)
	}
	if err := requirePositive("norm channels", channels); err != nil {
		return nil, err
	}
	if name == NormInstance {
		return NewInstanceNorm(channels, backend), nil
	}
	return NewBatchNorm(channels, backend), nil
}

// affine holds the per-channel scale and shift shared by both norms.
type affine[B tensor.Backend] struct {
	channels int
	weight   *Parameter[B] // [C], initialized to 1
	bias     *Parameter[B] // [C], initialized to 0
}

func newAffine[B tensor.Backend](channels int, backend B) affine[B] {
	return affine[B]{
		channels: channels,
		weight:   NewParameter("weight", tensor.Ones(tensor.Shape{channels}, backend)),
		bias:     NewParameter("bias", tensor.Zeros(tensor.Shape{channels}, backend)),
	}
}

// apply scales and shifts normalized [N, C, L] activations per channel.
func (a *affine[B]) apply(xhat *tensor.Tensor[B]) *tensor.Tensor[B] {
	w := a.weight.Tensor().Reshape(1, a.channels, 1)
	b := a.bias.Tensor().Reshape(1, a.channels, 1)
	return xhat.Mul(w).Add(b)
}

func (a *affine[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{a.weight, a.bias}
}

// flatten views [N, C, ...] as [N, C, L].
func (a *affine[B]) flatten(x *tensor.Tensor[B]) *tensor.Tensor[B] {
	shape := x.Shape()
	if len(shape) < 2 || shape[1] != a.channels {
		panic(fmt.Sprintf("norm: expected input [N, %d, ...], got %v", a.channels, shape))
	}
	return x.Reshape(shape[0], a.channels, x.NumElements()/(shape[0]*a.channels))
}

// InstanceNorm normalizes each sample and channel over its spatial positions.
//
// Input shape: [batch, channels, height, width]
type InstanceNorm[B tensor.Backend] struct {
	affine[B]
}

// NewInstanceNorm creates an affine instance normalization layer.
func NewInstanceNorm[B tensor.Backend](channels int, backend B) *InstanceNorm[B] {
	return &InstanceNorm[B]{affine: newAffine(channels, backend)}
}

// Forward normalizes x with per-sample, per-channel statistics.
func (n *InstanceNorm[B]) Forward(x *tensor.Tensor[B]) *tensor.Tensor[B] {
	flat := n.flatten(x)
	mean := flat.MeanDim(2, true)
	centered := flat.Sub(mean)
	variance := centered.Mul(centered).MeanDim(2, true)
	xhat := centered.Div(variance.AddScalar(normEps).Sqrt())
	return n.apply(xhat).Reshape(x.Shape()...)
}

// BatchNorm normalizes each channel over the batch and spatial positions.
//
// In training mode the batch statistics are used and folded into running
// estimates (momentum 0.1); in evaluation mode the running estimates are used.
type BatchNorm[B tensor.Backend] struct {
	affine[B]
	runningMean []float32
	runningVar  []float32
	training    bool
	backend     B
}

// NewBatchNorm creates an affine batch normalization layer in training mode.
func NewBatchNorm[B tensor.Backend](channels int, backend B) *BatchNorm[B] {
	runningVar := make([]float32, channels)
	for i := range runningVar {
		runningVar[i] = 1
	}
	return &BatchNorm[B]{
		affine:      newAffine(channels, backend),
		runningMean: make([]float32, channels),
		runningVar:  runningVar,
		training:    true,
		backend:     backend,
	}
}

// SetTraining switches between batch and running statistics.
func (n *BatchNorm[B]) SetTraining(training bool) {
	n.training = training
}

// RunningMean returns the running mean estimate (one value per channel).
func (n *BatchNorm[B]) RunningMean() []float32 {
	return n.runningMean
}

// RunningVar returns the running variance estimate (one value per channel).
func (n *BatchNorm[B]) RunningVar() []float32 {
	return n.runningVar
}

// Forward normalizes x.
func (n *BatchNorm[B]) Forward(x *tensor.Tensor[B]) *tensor.Tensor[B] {
	flat := n.flatten(x)

	var mean, variance *tensor.Tensor[B]
	if n.training {
		mean = flat.MeanDim(2, true).MeanDim(0, true) // [1, C, 1]
		centered := flat.Sub(mean)
		variance = centered.Mul(centered).MeanDim(2, true).MeanDim(0, true)
		n.updateRunningStats(mean, variance, flat.NumElements()/n.channels)
	} else {
		mean = tensor.MustFromSlice(n.runningMean, tensor.Shape{1, n.channels, 1}, n.backend)
		variance = tensor.MustFromSlice(n.runningVar, tensor.Shape{1, n.channels, 1}, n.backend)
	}

	xhat := flat.Sub(mean).Div(variance.AddScalar(normEps).Sqrt())
	return n.apply(xhat).Reshape(x.Shape()...)
}

// updateRunningStats folds the batch statistics into the running estimates.
// The running variance uses the unbiased estimator.
func (n *BatchNorm[B]) updateRunningStats(mean, variance *tensor.Tensor[B], count int) {
	correction := float32(1)
	if count > 1 {
		correction = float32(count) / float32(count-1)
	}
	m, v := mean.Data(), variance.Data()
	for c := 0; c < n.channels; c++ {
		n.runningMean[c] = (1-normMomentum)*n.runningMean[c] + normMomentum*m[c]
		n.runningVar[c] = (1-normMomentum)*n.runningVar[c] + normMomentum*v[c]*correction
	}
}
