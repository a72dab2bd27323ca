// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gantools/backend/cpu"
	"github.com/born-ml/gantools/nn"
	"github.com/born-ml/gantools/tensor"
)

// TestModuleInterface verifies that the exported builders produce working modules.
func TestModuleInterface(t *testing.T) {
	backend := cpu.NewSerial()

	fc, err := nn.NewFCChain(4, nn.FCChainConfig{Widths: []int{8, 3}}, backend)
	require.NoError(t, err)
	conv, err := nn.NewConvChain(2, nn.ConvChainConfig{Width: 4, Depth: 2, Norm: nn.NormInstance}, backend)
	require.NoError(t, err)
	unet, err := nn.NewUNet(2, 1, nn.UNetConfig{Width: 4, NumLevels: 2}, backend)
	require.NoError(t, err)

	tests := []struct {
		name   string
		module nn.Module[*cpu.Backend]
		input  tensor.Shape
		output tensor.Shape
	}{
		{"Linear", nn.NewLinear(10, 5, backend), tensor.Shape{2, 10}, tensor.Shape{2, 5}},
		{"FCChain", fc, tensor.Shape{3, 4}, tensor.Shape{3, 3}},
		{"ConvChain", conv, tensor.Shape{1, 2, 5, 5}, tensor.Shape{1, 4, 5, 5}},
		{"UNet", unet, tensor.Shape{1, 2, 6, 6}, tensor.Shape{1, 1, 6, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.module.Forward(tensor.Randn(tt.input, backend))
			assert.Equal(t, tt.output, out.Shape())
			assert.NotEmpty(t, tt.module.Parameters())
		})
	}
}

func TestErrorsAreExported(t *testing.T) {
	backend := cpu.NewSerial()

	_, err := nn.NewFCChain(0, nn.FCChainConfig{}, backend)
	require.ErrorIs(t, err, nn.ErrInvalidConfig)

	_, err = nn.NewActivation[*cpu.Backend]("swish")
	require.ErrorIs(t, err, nn.ErrInvalidActivation)

	_, err = nn.NewNorm("group", 4, backend)
	require.ErrorIs(t, err, nn.ErrInvalidNorm)
}
