package gan

import (
	"reflect"

	"github.com/born-ml/gantools/internal/nn"
	"github.com/born-ml/gantools/internal/tensor"
)

// Data is the named output of the generator's forward pass for one batch.
type Data[B tensor.Backend] map[string]*tensor.Tensor[B]

// Hooks are the task-specific pieces a Controller calls during a step.
type Hooks[B tensor.Backend] interface {
	// Forward runs the generator on batch. A nil result is a usage error.
	Forward(batch any) (Data[B], error)

	// DiscriminatorInput selects what the discriminator scores: generated data
	// from fwd when fake is true, real data from batch otherwise.
	DiscriminatorInput(batch any, fwd Data[B], fake bool) ([]*tensor.Tensor[B], error)

	// ExtraGeneratorLoss returns non-adversarial generator losses, or nil.
	ExtraGeneratorLoss(batch any, fwd Data[B]) ([]*tensor.Tensor[B], error)
}

// HookFuncs adapts plain functions to Hooks. A nil ExtraLoss means no extra loss.
type HookFuncs[B tensor.Backend] struct {
	ForwardFunc   func(batch any) (Data[B], error)
	InputFunc     func(batch any, fwd Data[B], fake bool) ([]*tensor.Tensor[B], error)
	ExtraLossFunc func(batch any, fwd Data[B]) ([]*tensor.Tensor[B], error)
}

// Forward calls ForwardFunc.
func (h HookFuncs[B]) Forward(batch any) (Data[B], error) {
	return h.ForwardFunc(batch)
}

// DiscriminatorInput calls InputFunc.
func (h HookFuncs[B]) DiscriminatorInput(batch any, fwd Data[B], fake bool) ([]*tensor.Tensor[B], error) {
	return h.InputFunc(batch, fwd, fake)
}

// ExtraGeneratorLoss calls ExtraLossFunc when set.
func (h HookFuncs[B]) ExtraGeneratorLoss(batch any, fwd Data[B]) ([]*tensor.Tensor[B], error) {
	if h.ExtraLossFunc == nil {
		return nil, nil
	}
	return h.ExtraLossFunc(batch, fwd)
}

// Discriminator scores one or more input tensors.
type Discriminator[B tensor.Backend] interface {
	Discriminate(inputs ...*tensor.Tensor[B]) *tensor.Tensor[B]
	Parameters() []*nn.Parameter[B]
}

// FromModule turns a single-input module into a Discriminator. Several inputs
// are concatenated along dimension 1 (channels or features) before scoring.
//
// A nil module, including a typed nil pointer, yields a nil Discriminator.
func FromModule[B tensor.Backend](m nn.Module[B]) Discriminator[B] {
	if isNil(m) {
		return nil
	}
	return moduleDiscriminator[B]{m}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

type moduleDiscriminator[B tensor.Backend] struct {
	nn.Module[B]
}

func (d moduleDiscriminator[B]) Discriminate(inputs ...*tensor.Tensor[B]) *tensor.Tensor[B] {
	if len(inputs) == 1 {
		return d.Forward(inputs[0])
	}
	return d.Forward(tensor.Cat(inputs, 1))
}
