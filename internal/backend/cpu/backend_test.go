package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gantools/internal/parallel"
	"github.com/born-ml/gantools/internal/tensor"
)

func raw(t *testing.T, data []float32, shape ...int) *tensor.RawTensor {
	t.Helper()
	r, err := tensor.RawFromSlice(data, tensor.Shape(shape), tensor.CPU)
	require.NoError(t, err)
	return r
}

func TestCPUBackend_New(t *testing.T) {
	backend := New()
	assert.Equal(t, "CPU", backend.Name())
	assert.Equal(t, tensor.CPU, backend.Device())
}

func TestCPUBackend_Elementwise(t *testing.T) {
	backend := New()
	a := raw(t, []float32{1, 2, 3, 4, 5, 6}, 2, 3)
	b := raw(t, []float32{10, 11, 12, 13, 14, 15}, 2, 3)

	tests := []struct {
		name string
		got  *tensor.RawTensor
		want []float32
	}{
		{"Add", backend.Add(a, b), []float32{11, 13, 15, 17, 19, 21}},
		{"Sub", backend.Sub(b, a), []float32{9, 9, 9, 9, 9, 9}},
		{"Mul", backend.Mul(a, a), []float32{1, 4, 9, 16, 25, 36}},
		{"Div", backend.Div(b, raw(t, []float32{2, 2, 2, 2, 2, 2}, 2, 3)), []float32{5, 5.5, 6, 6.5, 7, 7.5}},
		{"MulScalar", backend.MulScalar(a, -2), []float32{-2, -4, -6, -8, -10, -12}},
		{"AddScalar", backend.AddScalar(a, 0.5), []float32{1.5, 2.5, 3.5, 4.5, 5.5, 6.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tensor.Shape{2, 3}, tt.got.Shape())
			assert.InDeltaSlice(t, tt.want, tt.got.Data(), 1e-6)
		})
	}

	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, a.Data(), "inputs must not be modified")
}

func TestCPUBackend_Broadcasting(t *testing.T) {
	backend := New()

	t.Run("3x1_plus_4", func(t *testing.T) {
		a := raw(t, []float32{1, 2, 3}, 3, 1)
		b := raw(t, []float32{10, 20, 30, 40}, 4)

		result := backend.Add(a, b)

		require.Equal(t, tensor.Shape{3, 4}, result.Shape())
		assert.Equal(t, []float32{11, 21, 31, 41, 12, 22, 32, 42, 13, 23, 33, 43}, result.Data())
	})

	t.Run("ScalarShape", func(t *testing.T) {
		a := raw(t, []float32{1, 2, 3, 4}, 2, 2)
		s := raw(t, []float32{3}) // shape []

		result := backend.Mul(a, s)

		require.Equal(t, tensor.Shape{2, 2}, result.Shape())
		assert.Equal(t, []float32{3, 6, 9, 12}, result.Data())
	})

	t.Run("PerChannel", func(t *testing.T) {
		x := raw(t, []float32{1, 1, 2, 2, 3, 3, 4, 4}, 2, 2, 2) // [N=2, C=2, L=2]
		bias := raw(t, []float32{10, 20}, 1, 2, 1)

		result := backend.Add(x, bias)

		assert.Equal(t, []float32{11, 11, 22, 22, 13, 13, 24, 24}, result.Data())
	})

	t.Run("Incompatible", func(t *testing.T) {
		assert.Panics(t, func() {
			backend.Add(raw(t, make([]float32, 12), 3, 4), raw(t, make([]float32, 15), 3, 5))
		})
	})
}

func TestCPUBackend_Activations(t *testing.T) {
	backend := New()
	x := raw(t, []float32{-2, -0.5, 0, 0.5, 2}, 5)

	assert.Equal(t, []float32{0, 0, 0, 0.5, 2}, backend.ReLU(x).Data())
	assert.InDeltaSlice(t, []float32{-0.02, -0.005, 0, 0.5, 2}, backend.LeakyReLU(x, 0.01).Data(), 1e-7)
	assert.InDeltaSlice(t, []float32{-0.9640276, -0.4621172, 0, 0.4621172, 0.9640276}, backend.Tanh(x).Data(), 1e-6)
	assert.InDeltaSlice(t, []float32{0.1192029, 0.3775407, 0.5, 0.6224593, 0.8807971}, backend.Sigmoid(x).Data(), 1e-6)

	big := raw(t, []float32{-100, 100}, 2)
	assert.InDeltaSlice(t, []float32{0, 1}, backend.Sigmoid(big).Data(), 1e-7)
}

func TestCPUBackend_MatMul(t *testing.T) {
	for _, cfg := range []parallel.Config{parallel.Serial(), {Enabled: true, NumWorkers: 4, MinChunkSize: 1}} {
		backend := NewWithConfig(cfg)
		a := raw(t, []float32{1, 2, 3, 4, 5, 6}, 2, 3)
		b := raw(t, []float32{7, 8, 9, 10, 11, 12}, 3, 2)

		result := backend.MatMul(a, b)

		require.Equal(t, tensor.Shape{2, 2}, result.Shape())
		assert.Equal(t, []float32{58, 64, 139, 154}, result.Data())
	}

	assert.Panics(t, func() {
		New().MatMul(raw(t, make([]float32, 6), 2, 3), raw(t, make([]float32, 4), 2, 2))
	})
}

func TestCPUBackend_Transpose(t *testing.T) {
	backend := New()
	result := backend.Transpose(raw(t, []float32{1, 2, 3, 4, 5, 6}, 2, 3))

	require.Equal(t, tensor.Shape{3, 2}, result.Shape())
	assert.Equal(t, []float32{1, 4, 2, 5, 3, 6}, result.Data())
}

func TestCPUBackend_Reductions(t *testing.T) {
	backend := New()
	x := raw(t, []float32{1, 2, 3, 4, 5, 6}, 2, 3)

	sum := backend.Sum(x)
	assert.Empty(t, sum.Shape())
	assert.Equal(t, float32(21), sum.Data()[0])
	assert.Equal(t, float32(3.5), backend.Mean(x).Data()[0])

	tests := []struct {
		name      string
		dim       int
		keepDim   bool
		wantShape tensor.Shape
		wantSum   []float32
		wantMean  []float32
	}{
		{"dim0", 0, false, tensor.Shape{3}, []float32{5, 7, 9}, []float32{2.5, 3.5, 4.5}},
		{"dim1_keep", 1, true, tensor.Shape{2, 1}, []float32{6, 15}, []float32{2, 5}},
		{"negative", -1, false, tensor.Shape{2}, []float32{6, 15}, []float32{2, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := backend.SumDim(x, tt.dim, tt.keepDim)
			assert.Equal(t, tt.wantShape, s.Shape())
			assert.Equal(t, tt.wantSum, s.Data())
			assert.InDeltaSlice(t, tt.wantMean, backend.MeanDim(x, tt.dim, tt.keepDim).Data(), 1e-6)
		})
	}

	assert.Panics(t, func() { backend.SumDim(x, 2, false) })
}

func TestCPUBackend_Reshape(t *testing.T) {
	backend := New()
	x := raw(t, []float32{1, 2, 3, 4, 5, 6}, 2, 3)

	y := backend.Reshape(x, tensor.Shape{3, 2})

	assert.Equal(t, tensor.Shape{3, 2}, y.Shape())
	assert.Equal(t, x.Data(), y.Data())
	assert.Equal(t, tensor.Shape{2, 3}, x.Shape())
	assert.Panics(t, func() { backend.Reshape(x, tensor.Shape{4, 2}) })
}

func TestCPUBackend_CatNarrow(t *testing.T) {
	backend := New()
	a := raw(t, []float32{1, 2, 3, 4}, 2, 1, 2)
	b := raw(t, []float32{5, 6, 7, 8, 9, 10, 11, 12}, 2, 2, 2)

	cat := backend.Cat([]*tensor.RawTensor{a, b}, 1)

	require.Equal(t, tensor.Shape{2, 3, 2}, cat.Shape())
	assert.Equal(t, []float32{1, 2, 5, 6, 7, 8, 3, 4, 9, 10, 11, 12}, cat.Data())

	back := backend.Narrow(cat, 1, 1, 2)
	assert.Equal(t, b.Shape(), back.Shape())
	assert.Equal(t, b.Data(), back.Data())

	assert.Equal(t, a.Data(), backend.Narrow(cat, 1, 0, 1).Data())
	assert.Panics(t, func() { backend.Narrow(cat, 1, 2, 2) })
	assert.Panics(t, func() { backend.Cat([]*tensor.RawTensor{a, raw(t, make([]float32, 6), 3, 1, 2)}, 1) })
}

func TestCPUBackend_BCEWithLogits(t *testing.T) {
	backend := New()
	logits := raw(t, []float32{0, 2, -2, 100}, 4)
	targets := raw(t, []float32{1, 1, 0, 1}, 4)

	// log(2), log(1+e^-2), log(1+e^-2), ~0
	want := (0.6931472 + 2*0.1269280 + 0) / 4
	assert.InDelta(t, want, backend.BCEWithLogits(logits, targets).Data()[0], 1e-6)

	assert.Panics(t, func() { backend.BCEWithLogits(logits, raw(t, []float32{1}, 1)) })
}
