// Package device reports which compute devices are usable on this machine.
package device

import (
	"sync"

	"github.com/born-ml/gantools/internal/tensor"
)

var (
	probeOnce sync.Once
	probed    bool
)

// GPUAvailable reports whether a WebGPU adapter can be acquired.
// The probe runs once per process.
func GPUAvailable() bool {
	probeOnce.Do(func() {
		probed = probeWebGPU()
	})
	return probed
}

// Placement is the outcome of resolving a device request.
type Placement struct {
	Requested tensor.Device
	Device    tensor.Device
	Adapter   bool // a WebGPU adapter was found
}

// Fallback reports whether the request could not be honored.
func (p Placement) Fallback() bool {
	return p.Requested != p.Device
}

// Resolve maps a GPU request onto the devices the kernels support. Tensor kernels
// run on the CPU backend, so a GPU request is recorded together with whether an
// adapter exists and then placed on the CPU.
func Resolve(wantGPU bool) Placement {
	if !wantGPU {
		return Placement{Requested: tensor.CPU, Device: tensor.CPU}
	}
	return Placement{
		Requested: tensor.WebGPU,
		Device:    tensor.CPU,
		Adapter:   GPUAvailable(),
	}
}
