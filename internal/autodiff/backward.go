package autodiff

import (
	"github.com/born-ml/gantools/internal/tensor"
)

// BackwardCapable is implemented by backends that own a gradient tape.
type BackwardCapable interface {
	tensor.Backend
	// GetTape returns the gradient tape for backward computation.
	GetTape() *GradientTape
}

// GetTape returns the gradient tape (implements BackwardCapable).
func (b *AutodiffBackend[B]) GetTape() *GradientTape {
	return b.tape
}

// Backward computes gradients of t with respect to every tensor recorded on the
// backend's tape, seeding t with ones.
//
// Backward kernels run on the wrapped backend, so the pass itself records nothing.
// Returns a map from RawTensor to its gradient.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	backend.Tape().StartRecording()
//	y := x.Mul(x).Sum()
//	grads := autodiff.Backward(y, backend)
//	gx := grads[x.Raw()]
func Backward[B BackwardCapable](t *tensor.Tensor[B], backend B) map[*tensor.RawTensor]*tensor.RawTensor {
	tape := backend.GetTape()
	if tape.NumOps() == 0 {
		panic("backward: no operations recorded (did you forget to call Tape().StartRecording()?)")
	}

	seed := tensor.Alloc(t.Shape(), backend.Device())
	seed.Fill(1)

	return tape.Backward(t.Raw(), seed, innerOf(backend))
}

// unwrapper is implemented by decorators that expose the backend they wrap.
type unwrapper interface {
	InnerBackend() tensor.Backend
}

// InnerBackend returns the wrapped backend as a tensor.Backend.
func (b *AutodiffBackend[B]) InnerBackend() tensor.Backend {
	return b.inner
}

func innerOf(b tensor.Backend) tensor.Backend {
	if u, ok := b.(unwrapper); ok {
		return u.InnerBackend()
	}
	return b
}
