package nn

import (
	"github.com/born-ml/gantools/internal/tensor"
)

// Sequential is a container module that chains named modules together.
//
// Each module's output becomes the next module's input. Child names qualify the
// parameter names of the child, so a Linear added as "fc" exposes "fc.weight".
//
// Example:
//
//	block := nn.NewSequential[B]()
//	block.Add("fc", nn.NewLinear(16, 32, backend))
//	block.Add("activation", nn.NewReLU[B]())
//	output := block.Forward(input)
type Sequential[B tensor.Backend] struct {
	names   []string
	modules []Module[B]
}

// NewSequential creates an empty Sequential container.
func NewSequential[B tensor.Backend]() *Sequential[B] {
	return &Sequential[B]{}
}

// Add appends a module under name and prefixes its parameter names.
func (s *Sequential[B]) Add(name string, m Module[B]) *Sequential[B] {
	prefixParameters(name, m)
	s.names = append(s.names, name)
	s.modules = append(s.modules, m)
	return s
}

// Forward applies all modules in sequence.
func (s *Sequential[B]) Forward(input *tensor.Tensor[B]) *tensor.Tensor[B] {
	output := input
	for _, module := range s.modules {
		output = module.Forward(output)
	}
	return output
}

// Parameters returns all trainable parameters from all modules, in order.
func (s *Sequential[B]) Parameters() []*Parameter[B] {
	var params []*Parameter[B]
	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}
	return params
}

// SetTraining propagates the mode to every child.
func (s *Sequential[B]) SetTraining(training bool) {
	for _, module := range s.modules {
		SetTraining(module, training)
	}
}

// Len returns the number of child modules.
func (s *Sequential[B]) Len() int {
	return len(s.modules)
}

// Module returns the i-th child module.
func (s *Sequential[B]) Module(i int) Module[B] {
	return s.modules[i]
}

// Lookup returns the child registered under name.
func (s *Sequential[B]) Lookup(name string) (Module[B], bool) {
	for i, n := range s.names {
		if n == name {
			return s.modules[i], true
		}
	}
	return nil, false
}

// Names returns the child names in order.
func (s *Sequential[B]) Names() []string {
	return s.names
}
