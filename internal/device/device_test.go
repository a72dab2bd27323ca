package device

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/gantools/internal/tensor"
)

func TestResolve_CPU(t *testing.T) {
	p := Resolve(false)
	assert.Equal(t, tensor.CPU, p.Requested)
	assert.Equal(t, tensor.CPU, p.Device)
	assert.False(t, p.Fallback())
	assert.False(t, p.Adapter)
}

func TestResolve_GPU(t *testing.T) {
	p := Resolve(true)
	assert.Equal(t, tensor.WebGPU, p.Requested)
	assert.Equal(t, tensor.CPU, p.Device)
	assert.True(t, p.Fallback())
	if runtime.GOOS != "windows" {
		assert.False(t, p.Adapter)
	}
	assert.Equal(t, GPUAvailable(), p.Adapter)
}
