package cpu

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gantools/internal/tensor"
)

func randomRaw(rng *rand.Rand, shape ...int) *tensor.RawTensor {
	r := tensor.Alloc(tensor.Shape(shape), tensor.CPU)
	for i := range r.Data() {
		r.Data()[i] = rng.Float32()*2 - 1
	}
	return r
}

func dot(a, b []float32) float64 {
	var s float64
	for i := range a {
		s += float64(a[i]) * float64(b[i])
	}
	return s
}

func TestConv2D_Simple(t *testing.T) {
	backend := New()

	// 1x1x3x3 input, 1x1x2x2 kernel of ones -> 2x2 window sums.
	input := raw(t, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}, 1, 1, 3, 3)
	kernel := raw(t, []float32{1, 1, 1, 1}, 1, 1, 2, 2)

	out := backend.Conv2D(input, kernel, 1, 0)

	require.Equal(t, tensor.Shape{1, 1, 2, 2}, out.Shape())
	assert.Equal(t, []float32{12, 16, 24, 28}, out.Data())
}

func TestConv2D_PaddingAndStride(t *testing.T) {
	backend := New()
	input := raw(t, []float32{1, 2, 3, 4}, 1, 1, 2, 2)
	kernel := raw(t, []float32{0, 0, 0, 0, 1, 0, 0, 0, 0}, 1, 1, 3, 3) // identity

	same := backend.Conv2D(input, kernel, 1, 1)
	assert.Equal(t, tensor.Shape{1, 1, 2, 2}, same.Shape())
	assert.Equal(t, input.Data(), same.Data())

	strided := backend.Conv2D(raw(t, make([]float32, 16), 1, 1, 4, 4), kernel, 2, 1)
	assert.Equal(t, tensor.Shape{1, 1, 2, 2}, strided.Shape())

	assert.Panics(t, func() { backend.Conv2D(input, raw(t, make([]float32, 18), 1, 2, 3, 3), 1, 1) })
}

// The backward kernels are checked through the adjoint identity
// <conv(x, k), g> = <x, dX(g)> = <k, dK(g)>.
func TestConv2D_BackwardAdjoint(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	backend := New()

	cases := []struct {
		name            string
		stride, padding int
	}{
		{"stride1_pad0", 1, 0},
		{"stride1_pad1", 1, 1},
		{"stride2_pad1", 2, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x := randomRaw(rng, 2, 3, 5, 5)
			k := randomRaw(rng, 4, 3, 3, 3)
			y := backend.Conv2D(x, k, tc.stride, tc.padding)
			g := randomRaw(rng, y.Shape()...)

			dx := backend.Conv2DInputBackward(x, k, g, tc.stride, tc.padding)
			dk := backend.Conv2DKernelBackward(x, k, g, tc.stride, tc.padding)

			require.Equal(t, x.Shape(), dx.Shape())
			require.Equal(t, k.Shape(), dk.Shape())

			lhs := dot(y.Data(), g.Data())
			assert.InDelta(t, lhs, dot(x.Data(), dx.Data()), 1e-3)
			assert.InDelta(t, lhs, dot(k.Data(), dk.Data()), 1e-3)
		})
	}
}
