package optim

import (
	"math"

	"github.com/born-ml/gantools/internal/nn"
	"github.com/born-ml/gantools/internal/tensor"
)

// RMSProp divides the gradient by a running root mean square of its recent values.
//
// Update rule:
//
//	sq = alpha * sq + (1-alpha) * gradient²
//	param = param - lr * gradient / (sqrt(sq) + eps)
//
// RMSProp is the default optimizer for both GAN players.
type RMSProp[B tensor.Backend] struct {
	params []*nn.Parameter[B]
	lr     float32
	alpha  float32
	eps    float32
	sq     map[*nn.Parameter[B]][]float32
}

// RMSPropConfig holds configuration for RMSProp optimizer.
type RMSPropConfig struct {
	LR    float32 // Learning rate (default: 0.01)
	Alpha float32 // Smoothing constant (default: 0.99)
	Eps   float32 // Term for numerical stability (default: 1e-8)
}

// NewRMSProp creates a new RMSProp optimizer.
func NewRMSProp[B tensor.Backend](params []*nn.Parameter[B], config RMSPropConfig) *RMSProp[B] {
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.Alpha == 0 {
		config.Alpha = 0.99
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	return &RMSProp[B]{
		params: params,
		lr:     config.LR,
		alpha:  config.Alpha,
		eps:    config.Eps,
		sq:     make(map[*nn.Parameter[B]][]float32),
	}
}

// Step performs a single optimization step.
func (r *RMSProp[B]) Step() {
	for _, param := range r.params {
		grad := param.Grad()
		if grad == nil {
			continue
		}

		g := grad.Data()
		p := param.Tensor().Data()
		sq := stateFor(r.sq, param)
		for i := range p {
			sq[i] = r.alpha*sq[i] + (1-r.alpha)*g[i]*g[i]
			p[i] -= r.lr * g[i] / (float32(math.Sqrt(float64(sq[i]))) + r.eps)
		}
	}
}

// ZeroGrad clears gradients for all parameters.
func (r *RMSProp[B]) ZeroGrad() {
	zeroGrads(r.params)
}

// GetLR returns the current learning rate.
func (r *RMSProp[B]) GetLR() float32 {
	return r.lr
}

// SetLR updates the learning rate.
func (r *RMSProp[B]) SetLR(lr float32) {
	r.lr = lr
}
