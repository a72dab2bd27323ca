package nn

import (
	"fmt"

	"github.com/born-ml/gantools/internal/tensor"
)

// Parameter represents a trainable parameter in a neural network.
//
// A Parameter owns its gradient: backward passes accumulate into it and the
// optimizer reads and clears it.
//
// Example:
//
//	weight := nn.NewParameter("weight", weightTensor)
//	w := weight.Tensor()
//	g := weight.Grad() // nil before the first backward pass
type Parameter[B tensor.Backend] struct {
	name   string
	tensor *tensor.Tensor[B]
	grad   *tensor.Tensor[B]
}

// NewParameter creates a new trainable parameter.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[B]) *Parameter[B] {
	return &Parameter[B]{
		name:   name,
		tensor: t,
	}
}

// Name returns the fully qualified parameter name (e.g. "fc0.fc.weight").
func (p *Parameter[B]) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter[B]) Tensor() *tensor.Tensor[B] {
	return p.tensor
}

// Grad returns the accumulated gradient, or nil if none was computed.
func (p *Parameter[B]) Grad() *tensor.Tensor[B] {
	return p.grad
}

// SetGrad replaces the gradient tensor.
func (p *Parameter[B]) SetGrad(grad *tensor.Tensor[B]) {
	p.grad = grad
}

// ZeroGrad clears the gradient.
func (p *Parameter[B]) ZeroGrad() {
	p.grad = nil
}

// AccumulateGrad adds g to the parameter's gradient.
// The first call copies g, so the gradient never aliases tape storage.
func (p *Parameter[B]) AccumulateGrad(g *tensor.RawTensor) {
	if !g.Shape().Equal(p.tensor.Shape()) {
		panic(fmt.Sprintf("parameter %s: gradient shape %v does not match %v", p.name, g.Shape(), p.tensor.Shape()))
	}
	if p.grad == nil {
		p.grad = tensor.New(g.Clone(), p.tensor.Backend())
		return
	}
	dst := p.grad.Data()
	for i, v := range g.Data() {
		dst[i] += v
	}
}

func (p *Parameter[B]) addPrefix(prefix string) {
	p.name = prefix + "." + p.name
}

// prefixParameters qualifies the names of every parameter of m with prefix.
func prefixParameters[B tensor.Backend](prefix string, m Module[B]) {
	for _, p := range m.Parameters() {
		p.addPrefix(prefix)
	}
}

// AccumulateGrads moves the gradients computed by a backward pass into params.
// Parameters that did not take part in the pass are left untouched.
//
// Example:
//
//	grads := autodiff.Backward(loss, backend)
//	nn.AccumulateGrads(model.Parameters(), grads)
//	optimizer.Step()
func AccumulateGrads[B tensor.Backend](params []*Parameter[B], grads map[*tensor.RawTensor]*tensor.RawTensor) {
	for _, p := range params {
		if g, ok := grads[p.tensor.Raw()]; ok {
			p.AccumulateGrad(g)
		}
	}
}

// ZeroGrads clears the gradients of params.
func ZeroGrads[B tensor.Backend](params []*Parameter[B]) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
