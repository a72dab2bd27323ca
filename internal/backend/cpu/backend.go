// Package cpu implements the float32 CPU backend.
package cpu

import (
	"fmt"

	"github.com/born-ml/gantools/internal/parallel"
	"github.com/born-ml/gantools/internal/tensor"
)

// CPUBackend implements tensor operations on the CPU.
//
// Convolution and matrix kernels are split over goroutines according to the
// parallel config; every other kernel runs on the calling goroutine.
type CPUBackend struct {
	device   tensor.Device
	parallel parallel.Config
}

// New creates a new CPU backend using all available cores.
func New() *CPUBackend {
	return NewWithConfig(parallel.DefaultConfig())
}

// NewWithConfig creates a CPU backend with an explicit parallel config.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{
		device:   tensor.CPU,
		parallel: cfg,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("add", a, b, func(x, y float32) float32 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("sub", a, b, func(x, y float32) float32 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("mul", a, b, func(x, y float32) float32 { return x * y })
}

// Div performs element-wise division with broadcasting.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("div", a, b, func(x, y float32) float32 { return x / y })
}

func (cpu *CPUBackend) binary(name string, a, b *tensor.RawTensor, op func(x, y float32) float32) *tensor.RawTensor {
	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result := tensor.Alloc(outShape, cpu.device)
	out := result.Data()
	aData, bData := a.Data(), b.Data()

	if !needsBroadcast {
		for i := range out {
			out[i] = op(aData[i], bData[i])
		}
		return result
	}

	aStrides := broadcastStrides(a.Shape(), outShape)
	bStrides := broadcastStrides(b.Shape(), outShape)
	outStrides := outShape.ComputeStrides()

	for i := range out {
		aIdx, bIdx := 0, 0
		rem := i
		for d, s := range outStrides {
			coord := rem / s
			rem -= coord * s
			aIdx += coord * aStrides[d]
			bIdx += coord * bStrides[d]
		}
		out[i] = op(aData[aIdx], bData[bIdx])
	}
	return result
}

// broadcastStrides returns strides of shape aligned to outShape, with 0 for every
// dimension that is broadcast.
func broadcastStrides(shape, outShape tensor.Shape) []int {
	strides := make([]int, len(outShape))
	own := shape.ComputeStrides()
	offset := len(outShape) - len(shape)
	for i := range shape {
		if shape[i] != 1 {
			strides[offset+i] = own[i]
		}
	}
	return strides
}

// normalizeDim resolves a possibly negative dim against ndim.
func normalizeDim(op string, dim, ndim int) int {
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("%s: dimension %d out of range for %dD tensor", op, dim, ndim))
	}
	return dim
}

// splitAt returns the products of the dimensions before and after dim.
func splitAt(shape tensor.Shape, dim int) (outer, inner int) {
	outer, inner = 1, 1
	for i := 0; i < dim; i++ {
		outer *= shape[i]
	}
	for i := dim + 1; i < len(shape); i++ {
		inner *= shape[i]
	}
	return outer, inner
}
