package cpu

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gantools/internal/tensor"
)

func TestInterpolate_Nearest(t *testing.T) {
	backend := New()
	x := raw(t, []float32{1, 2, 3, 4}, 1, 1, 2, 2)

	up := backend.Interpolate(x, 4, 4, tensor.Nearest)

	require.Equal(t, tensor.Shape{1, 1, 4, 4}, up.Shape())
	assert.Equal(t, []float32{
		1, 1, 2, 2,
		1, 1, 2, 2,
		3, 3, 4, 4,
		3, 3, 4, 4,
	}, up.Data())

	down := backend.Interpolate(up, 2, 2, tensor.Nearest)
	assert.Equal(t, x.Data(), down.Data())
}

func TestInterpolate_Bilinear(t *testing.T) {
	backend := New()
	x := raw(t, []float32{0, 4}, 1, 1, 1, 2)

	up := backend.Interpolate(x, 1, 4, tensor.Bilinear)

	// Half-pixel centers: source coords -0.25 (clamped), 0.25, 0.75, 1.25 (clamped).
	assert.InDeltaSlice(t, []float32{0, 1, 3, 4}, up.Data(), 1e-6)

	same := backend.Interpolate(x, 1, 2, tensor.Bilinear)
	assert.InDeltaSlice(t, x.Data(), same.Data(), 1e-6)
}

func TestInterpolate_BackwardAdjoint(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	backend := New()

	for _, mode := range []tensor.InterpMode{tensor.Nearest, tensor.Bilinear} {
		t.Run(mode.String(), func(t *testing.T) {
			x := randomRaw(rng, 2, 3, 4, 5)
			y := backend.Interpolate(x, 7, 3, mode)
			g := randomRaw(rng, y.Shape()...)

			dx := backend.InterpolateBackward(g, x.Shape(), mode)

			require.Equal(t, x.Shape(), dx.Shape())
			assert.InDelta(t, dot(y.Data(), g.Data()), dot(x.Data(), dx.Data()), 1e-4)
		})
	}
}
