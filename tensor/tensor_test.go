// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gantools/backend/cpu"
	"github.com/born-ml/gantools/tensor"
)

// TestBackendInterface verifies that the CPU backend implements tensor.Backend.
func TestBackendInterface(_ *testing.T) {
	var _ tensor.Backend = (*cpu.Backend)(nil)
}

func TestCreation(t *testing.T) {
	backend := cpu.New()

	x := tensor.Ones(tensor.Shape{2, 3}, backend)
	assert.Equal(t, tensor.Shape{2, 3}, x.Shape())
	assert.Equal(t, []float32{2, 2, 2, 2, 2, 2}, x.Add(x).Data())

	y, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, y.Mean().Item(), 1e-6)

	_, err = tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{2, 2}, backend)
	require.Error(t, err)
}

func TestParseInterpMode(t *testing.T) {
	mode, err := tensor.ParseInterpMode("bilinear")
	require.NoError(t, err)
	assert.Equal(t, tensor.Bilinear, mode)

	_, err = tensor.ParseInterpMode("bicubic")
	require.Error(t, err)
}
