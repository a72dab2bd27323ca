package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// Device represents the compute device a tensor lives on.
type Device int

// Supported compute devices.
const (
	CPU Device = iota
	WebGPU
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case WebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}

// RawTensor is the low-level, untyped-by-backend tensor representation.
//
// All storage is float32 in row-major order. RawTensor pointers double as node
// identities in the autodiff tape: two RawTensors never share a backing slice unless
// one was produced by Reshape, which the tape records explicitly.
type RawTensor struct {
	data   []float32
	shape  Shape
	device Device
}

// NewRaw allocates a zero-filled RawTensor with the given shape.
func NewRaw(shape Shape, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid shape")
	}

	return &RawTensor{
		data:   make([]float32, shape.NumElements()),
		shape:  shape.Clone(),
		device: device,
	}, nil
}

// Alloc is NewRaw for callers that already validated the shape.
// Panics on an invalid shape.
func Alloc(shape Shape, device Device) *RawTensor {
	raw, err := NewRaw(shape, device)
	if err != nil {
		panic(err)
	}
	return raw
}

// RawFromSlice wraps a copy of data in a RawTensor.
func RawFromSlice(data []float32, shape Shape, device Device) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, errors.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	raw, err := NewRaw(shape, device)
	if err != nil {
		return nil, err
	}
	copy(raw.data, data)
	return raw, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns row-major strides for the tensor's shape.
func (r *RawTensor) Strides() []int {
	return r.shape.ComputeStrides()
}

// Device returns the tensor's compute device.
func (r *RawTensor) Device() Device {
	return r.device
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return len(r.data)
}

// Data returns the underlying storage.
//
// WARNING: the slice aliases the tensor; writes modify it in place.
func (r *RawTensor) Data() []float32 {
	return r.data
}

// Clone returns a deep copy with its own storage.
func (r *RawTensor) Clone() *RawTensor {
	data := make([]float32, len(r.data))
	copy(data, r.data)
	return &RawTensor{
		data:   data,
		shape:  r.shape.Clone(),
		device: r.device,
	}
}

// View returns a RawTensor sharing storage with r under a new shape.
// The element count must match.
func (r *RawTensor) View(shape Shape) *RawTensor {
	if shape.NumElements() != len(r.data) {
		panic(fmt.Sprintf("view: cannot view %v (%d elements) as %v", r.shape, len(r.data), shape))
	}
	return &RawTensor{
		data:   r.data,
		shape:  shape.Clone(),
		device: r.device,
	}
}

// Fill sets every element to value.
func (r *RawTensor) Fill(value float32) {
	for i := range r.data {
		r.data[i] = value
	}
}
