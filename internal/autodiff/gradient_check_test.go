package autodiff_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/born-ml/gantools/internal/autodiff"
	"github.com/born-ml/gantools/internal/tensor"
)

type T = tensor.Tensor[testBackend]

// checkGradients compares tape gradients of f against central finite differences.
func checkGradients(t *testing.T, backend testBackend, inputs []*T, f func(in []*T) *T) {
	t.Helper()
	tape := backend.Tape()

	tape.Clear()
	tape.StartRecording()
	out := f(inputs)
	grads := autodiff.Backward(out, backend)
	tape.StopRecording()
	tape.Clear()

	const eps = 5e-3
	for i, in := range inputs {
		data := in.Data()
		var analytic []float32
		if g, ok := grads[in.Raw()]; ok {
			analytic = g.Data()
		}

		for j := range data {
			orig := data[j]
			data[j] = orig + eps
			plus := float64(f(inputs).Item())
			data[j] = orig - eps
			minus := float64(f(inputs).Item())
			data[j] = orig

			numeric := (plus - minus) / (2 * eps)
			var got float64
			if analytic != nil {
				got = float64(analytic[j])
			}
			tol := 2e-2 * math.Max(1, math.Abs(numeric))
			require.InDelta(t, numeric, got, tol, "input %d element %d", i, j)
		}
	}
}

func randomTensor(rng *rand.Rand, backend testBackend, lo, hi float32, shape ...int) *T {
	x := tensor.Zeros(tensor.Shape(shape), backend)
	for i := range x.Data() {
		x.Data()[i] = lo + rng.Float32()*(hi-lo)
	}
	return x
}

func TestGradientCheck(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	backend := newBackend()

	tests := []struct {
		name   string
		inputs []*T
		f      func(in []*T) *T
	}{
		{
			name: "broadcast_arithmetic",
			inputs: []*T{
				randomTensor(rng, backend, -1, 1, 3, 4),
				randomTensor(rng, backend, 0.5, 1.5, 4),
			},
			f: func(in []*T) *T {
				x, b := in[0], in[1]
				return x.Add(b).Mul(x).Div(b.Mul(b).AddScalar(1)).Sub(b).Sum()
			},
		},
		{
			name: "linear_tanh",
			inputs: []*T{
				randomTensor(rng, backend, -1, 1, 2, 3),
				randomTensor(rng, backend, -1, 1, 4, 3),
			},
			f: func(in []*T) *T {
				return in[0].MatMul(in[1].T()).Tanh().Mean()
			},
		},
		{
			name:   "activations",
			inputs: []*T{randomTensor(rng, backend, -2, 2, 5)},
			f: func(in []*T) *T {
				x := in[0]
				return x.Sigmoid().Add(x.LeakyReLU(0.2)).Add(x.MulScalar(3).ReLU()).Add(x.Mul(x).AddScalar(1).Sqrt()).Sum()
			},
		},
		{
			name:   "dim_reductions",
			inputs: []*T{randomTensor(rng, backend, -1, 1, 2, 3, 4)},
			f: func(in []*T) *T {
				x := in[0]
				mu := x.MeanDim(2, true)
				centered := x.Sub(mu)
				return centered.Mul(centered).SumDim(1, false).Reshape(8).Mul(x.Reshape(24).Narrow(0, 4, 8)).Sum()
			},
		},
		{
			name: "cat_narrow",
			inputs: []*T{
				randomTensor(rng, backend, -1, 1, 2, 1, 3),
				randomTensor(rng, backend, -1, 1, 2, 2, 3),
			},
			f: func(in []*T) *T {
				c := tensor.Cat([]*T{in[0], in[1]}, 1)
				return c.Narrow(1, 1, 2).Mul(c.Narrow(1, 0, 2)).Sum()
			},
		},
		{
			name: "conv_interpolate",
			inputs: []*T{
				randomTensor(rng, backend, -1, 1, 2, 2, 4, 4),
				randomTensor(rng, backend, -1, 1, 3, 2, 3, 3),
			},
			f: func(in []*T) *T {
				y := tensor.Conv2D(in[0], in[1], 2, 1)
				up := y.Interpolate(4, 4, tensor.Bilinear)
				return up.Mul(up).Mean()
			},
		},
		{
			name: "bce_with_logits",
			inputs: []*T{
				randomTensor(rng, backend, -3, 3, 6),
				randomTensor(rng, backend, 0, 1, 6),
			},
			f: func(in []*T) *T {
				return tensor.BCEWithLogits(in[0], in[1])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkGradients(t, backend, tt.inputs, tt.f)
		})
	}
}
