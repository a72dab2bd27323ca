package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gantools/internal/tensor"
)

func TestNewFCModule(t *testing.T) {
	backend := newBackend()

	m, err := NewFCModule(4, 8, "relu", 0.25, backend)
	require.NoError(t, err)
	assert.Equal(t, []string{"fc", "activation", "dropout"}, m.Names())
	assert.Equal(t, []string{"fc.weight", "fc.bias"}, paramNames(m.Parameters()))

	m, err = NewFCModule(4, 8, "", 0, backend)
	require.NoError(t, err)
	assert.Equal(t, []string{"fc"}, m.Names())

	_, err = NewFCModule(0, 8, "relu", 0, backend)
	require.ErrorIs(t, err, ErrInvalidConfig)
	_, err = NewFCModule(4, -1, "relu", 0, backend)
	require.ErrorIs(t, err, ErrInvalidConfig)
	_, err = NewFCModule(4, 8, "selu", 0, backend)
	require.ErrorIs(t, err, ErrInvalidActivation)
}

func TestNewConvModule(t *testing.T) {
	backend := newBackend()

	m, err := NewConvModule(3, 8, ConvModuleConfig{Activation: "lrelu", Norm: "instance"}, backend)
	require.NoError(t, err)
	assert.Equal(t, []string{"conv", "norm", "activation"}, m.Names())
	assert.Equal(t, []string{"conv.weight", "norm.weight", "norm.bias"}, paramNames(m.Parameters()))

	m, err = NewConvModule(3, 8, ConvModuleConfig{KernelSize: 5}, backend)
	require.NoError(t, err)
	assert.Equal(t, []string{"conv.weight", "conv.bias"}, paramNames(m.Parameters()))
	conv, ok := m.Lookup("conv")
	require.True(t, ok)
	assert.Equal(t, 2, conv.(*Conv2D[testBackend]).Padding())

	m, err = NewConvModule(3, 8, ConvModuleConfig{KernelSize: 5, NoPad: true}, backend)
	require.NoError(t, err)
	conv, _ = m.Lookup("conv")
	assert.Equal(t, 0, conv.(*Conv2D[testBackend]).Padding())

	tests := []struct {
		name string
		nIn  int
		nOut int
		cfg  ConvModuleConfig
		want error
	}{
		{"zero input", 0, 8, ConvModuleConfig{}, ErrInvalidConfig},
		{"negative output", 3, -2, ConvModuleConfig{}, ErrInvalidConfig},
		{"negative kernel", 3, 8, ConvModuleConfig{KernelSize: -3}, ErrInvalidConfig},
		{"negative stride", 3, 8, ConvModuleConfig{Stride: -1}, ErrInvalidConfig},
		{"bad norm", 3, 8, ConvModuleConfig{Norm: "group"}, ErrInvalidNorm},
		{"bad activation", 3, 8, ConvModuleConfig{Activation: "gelu"}, ErrInvalidActivation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConvModule(tt.nIn, tt.nOut, tt.cfg, backend)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewFCChain(t *testing.T) {
	backend := newBackend()

	tests := []struct {
		name      string
		cfg       FCChainConfig
		wantLen   int
		wantWidth int
	}{
		{"defaults", FCChainConfig{}, 3, 64},
		{"scalar width", FCChainConfig{Width: 10, Depth: 2}, 2, 10},
		{"width list", FCChainConfig{Widths: []int{32, 16, 5}}, 3, 5},
		{"per-layer dropout", FCChainConfig{Widths: []int{8, 8}, Dropouts: []float32{0.1, 0}}, 2, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain, err := NewFCChain(7, tt.cfg, backend)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, chain.Len())

			out := chain.Forward(tensor.Randn(tensor.Shape{4, 7}, backend))
			assert.Equal(t, tensor.Shape{4, tt.wantWidth}, out.Shape())
			for _, v := range out.Data() {
				assert.GreaterOrEqual(t, v, float32(0), "relu follows every layer")
			}
		})
	}
}

func TestNewFCChain_ParameterNames(t *testing.T) {
	chain, err := NewFCChain(3, FCChainConfig{Widths: []int{4, 2}}, newBackend())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"fc0.fc.weight", "fc0.fc.bias",
		"fc1.fc.weight", "fc1.fc.bias",
	}, paramNames(chain.Parameters()))
}

func TestNewFCChain_NoActivation(t *testing.T) {
	chain, err := NewFCChain(3, FCChainConfig{Depth: 1, Activation: "none"}, newBackend())
	require.NoError(t, err)
	m, _ := chain.Lookup("fc0")
	assert.Equal(t, []string{"fc"}, m.(*Sequential[testBackend]).Names())
}

func TestNewFCChain_Errors(t *testing.T) {
	backend := newBackend()

	tests := []struct {
		name string
		nIn  int
		cfg  FCChainConfig
		want error
	}{
		{"zero input", 0, FCChainConfig{}, ErrInvalidConfig},
		{"negative depth", 3, FCChainConfig{Depth: -1}, ErrInvalidConfig},
		{"negative width", 3, FCChainConfig{Width: -4}, ErrInvalidConfig},
		{"width list too short", 3, FCChainConfig{Depth: 3, Widths: []int{4, 4}}, ErrInvalidConfig},
		{"zero in width list", 3, FCChainConfig{Widths: []int{4, 0}}, ErrInvalidConfig},
		{"dropout list mismatch", 3, FCChainConfig{Dropouts: []float32{0.1}}, ErrInvalidConfig},
		{"dropout out of range", 3, FCChainConfig{Dropout: 1.5}, ErrInvalidConfig},
		{"bad activation", 3, FCChainConfig{Activation: "swish"}, ErrInvalidActivation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFCChain(tt.nIn, tt.cfg, backend)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewConvChain_Shapes(t *testing.T) {
	backend := newBackend()

	tests := []struct {
		name string
		cfg  ConvChainConfig
		want tensor.Shape
	}{
		{"defaults preserve size", ConvChainConfig{Width: 6}, tensor.Shape{2, 6, 8, 8}},
		{"odd kernel list", ConvChainConfig{Widths: []int{4, 5, 7}, KernelSizes: []int{3, 5, 1}}, tensor.Shape{2, 7, 8, 8}},
		{"strided", ConvChainConfig{Width: 4, Strides: []int{1, 2, 1}}, tensor.Shape{2, 4, 4, 4}},
		{"no padding", ConvChainConfig{Width: 4, Depth: 2, NoPad: true}, tensor.Shape{2, 4, 4, 4}},
		{"batch norm", ConvChainConfig{Width: 3, Depth: 2, Norm: "batch"}, tensor.Shape{2, 3, 8, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain, err := NewConvChain(3, tt.cfg, backend)
			require.NoError(t, err)
			out := chain.Forward(tensor.Randn(tensor.Shape{2, 3, 8, 8}, backend))
			assert.Equal(t, tt.want, out.Shape())
		})
	}
}

func TestNewConvChain_ParameterNames(t *testing.T) {
	chain, err := NewConvChain(1, ConvChainConfig{Width: 2, Depth: 2, Norm: "instance"}, newBackend())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"conv0.conv.weight", "conv0.norm.weight", "conv0.norm.bias",
		"conv1.conv.weight", "conv1.norm.weight", "conv1.norm.bias",
	}, paramNames(chain.Parameters()))
}

func TestNewConvChain_Errors(t *testing.T) {
	backend := newBackend()

	tests := []struct {
		name string
		cfg  ConvChainConfig
		want error
	}{
		{"kernel list mismatch", ConvChainConfig{KernelSizes: []int{3, 3}}, ErrInvalidConfig},
		{"stride list mismatch", ConvChainConfig{Depth: 2, Strides: []int{1}}, ErrInvalidConfig},
		{"zero stride", ConvChainConfig{Depth: 1, Strides: []int{0}}, ErrInvalidConfig},
		{"width list mismatch", ConvChainConfig{Depth: 4, Widths: []int{1, 2}}, ErrInvalidConfig},
		{"bad norm", ConvChainConfig{Norm: "layer"}, ErrInvalidNorm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConvChain(3, tt.cfg, backend)
			require.ErrorIs(t, err, tt.want)
		})
	}
}
