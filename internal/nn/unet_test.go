package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gantools/internal/autodiff"
	"github.com/born-ml/gantools/internal/tensor"
)

func TestNewUNet_LevelWidths(t *testing.T) {
	u, err := NewUNet(3, 2, UNetConfig{
		Width:        4,
		MaxWidth:     12,
		GrowthFactor: 2,
		NumLevels:    3,
	}, newBackend())
	require.NoError(t, err)

	assert.Equal(t, 3, u.NumLevels())
	assert.Equal(t, 4, u.LevelWidth(0))
	assert.Equal(t, 8, u.LevelWidth(1))
	assert.Equal(t, 12, u.LevelWidth(2), "capped by MaxWidth")
	assert.Panics(t, func() { u.LevelWidth(3) })
}

func TestUNet_SkipChannels(t *testing.T) {
	u, err := NewUNet(3, 2, UNetConfig{Width: 4, NumLevels: 2, ConvsPerLevel: 1}, newBackend())
	require.NoError(t, err)

	// Outer level: own width 4 + inner level output (its width, 8).
	assert.Equal(t, 4+8, u.UpInputChannels(0))
	assert.Equal(t, 8, u.UpInputChannels(1), "innermost level has no child")

	assert.Equal(t, []string{
		"level0.down.conv0.conv.weight", "level0.down.conv0.conv.bias",
		"level0.up.conv0.conv.weight", "level0.up.conv0.conv.bias",
		"level1.down.conv0.conv.weight", "level1.down.conv0.conv.bias",
		"level1.up.conv0.conv.weight", "level1.up.conv0.conv.bias",
	}, paramNames(u.Parameters()))

	shapes := make(map[string]tensor.Shape)
	for _, p := range u.Parameters() {
		shapes[p.Name()] = p.Tensor().Shape()
	}
	assert.Equal(t, tensor.Shape{4, 3, 3, 3}, shapes["level0.down.conv0.conv.weight"])
	assert.Equal(t, tensor.Shape{2, 12, 3, 3}, shapes["level0.up.conv0.conv.weight"])
	assert.Equal(t, tensor.Shape{8, 4, 3, 3}, shapes["level1.down.conv0.conv.weight"])
	assert.Equal(t, tensor.Shape{8, 8, 3, 3}, shapes["level1.up.conv0.conv.weight"])
}

func TestUNet_Forward(t *testing.T) {
	backend := newBackend()

	tests := []struct {
		name string
		cfg  UNetConfig
		h, w int
	}{
		{"bilinear even", UNetConfig{Width: 4, NumLevels: 3}, 8, 8},
		{"nearest odd", UNetConfig{Width: 2, NumLevels: 2, Interpolation: "nearest"}, 7, 5},
		{"deeper than image", UNetConfig{Width: 2, NumLevels: 4, ConvsPerLevel: 1}, 2, 2},
		{"instance norm", UNetConfig{Width: 2, NumLevels: 2, Norm: "instance", Activation: "lrelu"}, 6, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUNet(3, 1, tt.cfg, backend)
			require.NoError(t, err)
			out := u.Forward(tensor.Randn(tensor.Shape{2, 3, tt.h, tt.w}, backend))
			assert.Equal(t, tensor.Shape{2, 1, tt.h, tt.w}, out.Shape())
		})
	}
}

func TestUNet_GradientsReachEveryLevel(t *testing.T) {
	backend := newBackend()
	u, err := NewUNet(1, 1, UNetConfig{Width: 2, NumLevels: 2, ConvsPerLevel: 1, Activation: "none"}, backend)
	require.NoError(t, err)

	tape := backend.Tape()
	tape.StartRecording()
	loss := u.Forward(tensor.Randn(tensor.Shape{1, 1, 4, 4}, backend)).Mean()
	grads := autodiff.Backward(loss, backend)
	tape.StopRecording()
	tape.Clear()

	AccumulateGrads(u.Parameters(), grads)
	for _, p := range u.Parameters() {
		assert.NotNil(t, p.Grad(), p.Name())
	}
}

func TestNewUNet_Errors(t *testing.T) {
	backend := newBackend()

	tests := []struct {
		name string
		nIn  int
		cfg  UNetConfig
		want error
	}{
		{"zero input", 0, UNetConfig{}, ErrInvalidConfig},
		{"negative levels", 1, UNetConfig{NumLevels: -1}, ErrInvalidConfig},
		{"negative growth", 1, UNetConfig{GrowthFactor: -2}, ErrInvalidConfig},
		{"bad interpolation", 1, UNetConfig{Interpolation: "bicubic"}, ErrInvalidConfig},
		{"bad norm", 1, UNetConfig{Norm: "group"}, ErrInvalidNorm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUNet(tt.nIn, 1, tt.cfg, backend)
			require.ErrorIs(t, err, tt.want)
		})
	}
}
