// Package optim implements optimization algorithms for training neural networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//   - RMSProp: Root Mean Square Propagation
//   - New: selection by name, as used by GAN controllers
//
// Optimizers read the gradients owned by each nn.Parameter, so a training step
// accumulates gradients first and steps afterwards.
//
// Example usage:
//
//	optimizer := optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: 0.001})
//
//	optimizer.ZeroGrad()
//	backend.Tape().StartRecording()
//	loss := lossFn(model.Forward(input))
//	nn.AccumulateGrads(model.Parameters(), autodiff.Backward(loss, backend))
//	optimizer.Step()
package optim

import (
	"github.com/pkg/errors"

	"github.com/born-ml/gantools/internal/nn"
	"github.com/born-ml/gantools/internal/tensor"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies the accumulated parameter gradients.
	// Parameters without a gradient are skipped.
	Step()

	// ZeroGrad clears all parameter gradients.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float32
}

// Optimizer names accepted by New.
const (
	NameSGD     = "sgd"
	NameAdam    = "adam"
	NameRMSProp = "rmsprop"
)

// Names lists the accepted optimizer names.
var Names = []string{NameSGD, NameAdam, NameRMSProp}

// ErrUnknownOptimizer is returned by New for unsupported names.
var ErrUnknownOptimizer = errors.New("unknown optimizer")

// GANAdamBetas are the Adam coefficients used by New.
var GANAdamBetas = [2]float32{0.5, 0.999}

// New creates the optimizer registered under name with learning rate lr.
//
//	sgd     -> SGD without momentum
//	adam    -> Adam with betas (0.5, 0.999)
//	rmsprop -> RMSProp with alpha 0.99
func New[B tensor.Backend](name string, params []*nn.Parameter[B], lr float32) (Optimizer, error) {
	switch name {
	case NameSGD:
		return NewSGD(params, SGDConfig{LR: lr}), nil
	case NameAdam:
		return NewAdam(params, AdamConfig{LR: lr, Betas: GANAdamBetas}), nil
	case NameRMSProp:
		return NewRMSProp(params, RMSPropConfig{LR: lr}), nil
	default:
		return nil, errors.Wrapf(ErrUnknownOptimizer, "optimizer should be one of %v, got %q", Names, name)
	}
}

// zeroGrads is shared by every optimizer's ZeroGrad.
func zeroGrads[B tensor.Backend](params []*nn.Parameter[B]) {
	for _, param := range params {
		param.ZeroGrad()
	}
}

// stateFor returns the per-parameter buffer in states, creating it on first use.
func stateFor[B tensor.Backend](states map[*nn.Parameter[B]][]float32, param *nn.Parameter[B]) []float32 {
	s, ok := states[param]
	if !ok {
		s = make([]float32, param.Tensor().NumElements())
		states[param] = s
	}
	return s
}
