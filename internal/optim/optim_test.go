package optim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gantools/internal/autodiff"
	"github.com/born-ml/gantools/internal/backend/cpu"
	"github.com/born-ml/gantools/internal/nn"
	"github.com/born-ml/gantools/internal/optim"
	"github.com/born-ml/gantools/internal/tensor"
)

type testBackend = *autodiff.AutodiffBackend[*cpu.CPUBackend]

func newParam(t *testing.T, backend testBackend, values ...float32) *nn.Parameter[testBackend] {
	t.Helper()
	x, err := tensor.FromSlice(values, tensor.Shape{len(values)}, backend)
	require.NoError(t, err)
	return nn.NewParameter("x", x)
}

func setGrad(param *nn.Parameter[testBackend], values ...float32) {
	param.SetGrad(tensor.MustFromSlice(values, tensor.Shape{len(values)}, param.Tensor().Backend()))
}

func TestSGD_SimpleUpdate(t *testing.T) {
	backend := autodiff.New(cpu.New())
	param := newParam(t, backend, 2.0)
	optimizer := optim.NewSGD([]*nn.Parameter[testBackend]{param}, optim.SGDConfig{LR: 0.1})

	setGrad(param, 1.0)
	optimizer.Step()

	// x_new = 2.0 - 0.1 * 1.0
	assert.InDelta(t, 1.9, param.Tensor().Data()[0], 1e-6)
}

func TestSGD_WithMomentum(t *testing.T) {
	backend := autodiff.New(cpu.New())
	param := newParam(t, backend, 1.0)
	optimizer := optim.NewSGD([]*nn.Parameter[testBackend]{param}, optim.SGDConfig{LR: 0.1, Momentum: 0.9})

	setGrad(param, 1.0)
	optimizer.Step()
	// v = 1, x = 1 - 0.1
	assert.InDelta(t, 0.9, param.Tensor().Data()[0], 1e-6)

	optimizer.Step()
	// v = 0.9 + 1 = 1.9, x = 0.9 - 0.19
	assert.InDelta(t, 0.71, param.Tensor().Data()[0], 1e-6)
}

func TestSGD_SkipsParametersWithoutGradient(t *testing.T) {
	backend := autodiff.New(cpu.New())
	param := newParam(t, backend, 3.0)
	optimizer := optim.NewSGD([]*nn.Parameter[testBackend]{param}, optim.SGDConfig{})

	optimizer.Step()
	assert.Equal(t, float32(3.0), param.Tensor().Data()[0])
	assert.Equal(t, float32(0.01), optimizer.GetLR())
}

func TestAdam_SimpleUpdate(t *testing.T) {
	backend := autodiff.New(cpu.New())
	param := newParam(t, backend, 1.0, -1.0)
	optimizer := optim.NewAdam([]*nn.Parameter[testBackend]{param}, optim.AdamConfig{LR: 0.1})

	setGrad(param, 2.0, -0.5)
	optimizer.Step()

	// First step with bias correction moves every element by lr * sign(grad).
	assert.InDeltaSlice(t, []float32{0.9, -0.9}, param.Tensor().Data(), 1e-5)
}

func TestAdam_Defaults(t *testing.T) {
	optimizer := optim.NewAdam[testBackend](nil, optim.AdamConfig{})
	beta1, beta2 := optimizer.Betas()
	assert.Equal(t, float32(0.001), optimizer.GetLR())
	assert.Equal(t, float32(0.9), beta1)
	assert.Equal(t, float32(0.999), beta2)
}

func TestRMSProp_Update(t *testing.T) {
	backend := autodiff.New(cpu.New())
	param := newParam(t, backend, 1.0)
	optimizer := optim.NewRMSProp([]*nn.Parameter[testBackend]{param}, optim.RMSPropConfig{LR: 0.01})

	setGrad(param, 2.0)
	optimizer.Step()

	// sq = 0.01 * 4, step = 0.01 * 2 / 0.2
	assert.InDelta(t, 0.9, param.Tensor().Data()[0], 1e-5)
}

func TestZeroGrad(t *testing.T) {
	backend := autodiff.New(cpu.New())

	for _, name := range optim.Names {
		t.Run(name, func(t *testing.T) {
			param := newParam(t, backend, 1.0)
			optimizer, err := optim.New(name, []*nn.Parameter[testBackend]{param}, 1e-3)
			require.NoError(t, err)

			setGrad(param, 5.0)
			optimizer.ZeroGrad()
			assert.Nil(t, param.Grad())
			assert.Equal(t, float32(1e-3), optimizer.GetLR())
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		want any
	}{
		{"sgd", &optim.SGD[testBackend]{}},
		{"adam", &optim.Adam[testBackend]{}},
		{"rmsprop", &optim.RMSProp[testBackend]{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			optimizer, err := optim.New[testBackend](tt.name, nil, 1e-4)
			require.NoError(t, err)
			assert.IsType(t, tt.want, optimizer)
		})
	}

	adam, err := optim.New[testBackend]("adam", nil, 1e-4)
	require.NoError(t, err)
	beta1, beta2 := adam.(*optim.Adam[testBackend]).Betas()
	assert.Equal(t, optim.GANAdamBetas, [2]float32{beta1, beta2})

	_, err = optim.New[testBackend]("adagrad", nil, 1e-4)
	require.ErrorIs(t, err, optim.ErrUnknownOptimizer)
	assert.Contains(t, err.Error(), "rmsprop")
}

// TestConvergence_SimpleQuadratic minimizes (x - 3)² with every optimizer.
func TestConvergence_SimpleQuadratic(t *testing.T) {
	tests := []struct {
		name  string
		lr    float32
		steps int
	}{
		{"sgd", 0.1, 100},
		{"adam", 0.1, 300},
		{"rmsprop", 0.05, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := autodiff.New(cpu.New())
			param := newParam(t, backend, 0.0)
			params := []*nn.Parameter[testBackend]{param}
			optimizer, err := optim.New(tt.name, params, tt.lr)
			require.NoError(t, err)

			tape := backend.Tape()
			for range tt.steps {
				optimizer.ZeroGrad()
				tape.Clear()
				tape.StartRecording()
				diff := param.Tensor().AddScalar(-3)
				loss := diff.Mul(diff).Sum()
				nn.AccumulateGrads(params, autodiff.Backward(loss, backend))
				tape.StopRecording()
				optimizer.Step()
			}

			x := float64(param.Tensor().Data()[0])
			assert.Less(t, math.Abs(x-3), 0.1, "x = %f", x)
		})
	}
}
