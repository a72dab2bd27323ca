//go:build windows

package device

import (
	"github.com/go-webgpu/webgpu/wgpu"
)

// probeWebGPU loads wgpu_native, then acquires and releases the default adapter.
// A missing library panics inside the bindings and counts as unavailable.
func probeWebGPU() (available bool) {
	defer func() {
		if r := recover(); r != nil {
			available = false
		}
	}()

	if err := wgpu.Init(); err != nil {
		return false
	}
	instance, err := wgpu.CreateInstance(nil)
	if err != nil {
		return false
	}
	defer instance.Release()

	adapter, err := instance.RequestAdapter(nil)
	if err != nil {
		return false
	}
	adapter.Release()

	return true
}
