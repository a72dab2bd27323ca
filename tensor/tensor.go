// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/gantools/internal/tensor"
)

// Backend is the interface a compute backend implements.
type Backend = tensor.Backend

// Tensor is a float32 tensor bound to backend B.
type Tensor[B Backend] = tensor.Tensor[B]

// RawTensor is the backend-level storage of a tensor.
type RawTensor = tensor.RawTensor

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	WebGPU Device = tensor.WebGPU
)

// InterpMode selects the resampling rule of Tensor.Interpolate.
type InterpMode = tensor.InterpMode

// Interpolation modes.
const (
	Nearest  InterpMode = tensor.Nearest
	Bilinear InterpMode = tensor.Bilinear
)

// ParseInterpMode maps "nearest" or "bilinear" to an InterpMode.
func ParseInterpMode(name string) (InterpMode, error) {
	return tensor.ParseInterpMode(name)
}

// Creation functions

// Zeros creates a tensor filled with zeros.
func Zeros[B Backend](shape Shape, b B) *Tensor[B] {
	return tensor.Zeros(shape, b)
}

// Ones creates a tensor filled with ones.
func Ones[B Backend](shape Shape, b B) *Tensor[B] {
	return tensor.Ones(shape, b)
}

// Full creates a tensor filled with value.
func Full[B Backend](shape Shape, value float32, b B) *Tensor[B] {
	return tensor.Full(shape, value, b)
}

// Scalar creates a rank-0 tensor.
func Scalar[B Backend](value float32, b B) *Tensor[B] {
	return tensor.Scalar(value, b)
}

// Randn creates a tensor with standard normal samples.
func Randn[B Backend](shape Shape, b B) *Tensor[B] {
	return tensor.Randn(shape, b)
}

// Rand creates a tensor with samples uniform in [0, 1).
func Rand[B Backend](shape Shape, b B) *Tensor[B] {
	return tensor.Rand(shape, b)
}

// FromSlice copies data into a new tensor of the given shape.
//
// Example:
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
func FromSlice[B Backend](data []float32, shape Shape, b B) (*Tensor[B], error) {
	return tensor.FromSlice(data, shape, b)
}

// MustFromSlice is FromSlice that panics on a size mismatch.
func MustFromSlice[B Backend](data []float32, shape Shape, b B) *Tensor[B] {
	return tensor.MustFromSlice(data, shape, b)
}

// Cat concatenates tensors along dim.
func Cat[B Backend](tensors []*Tensor[B], dim int) *Tensor[B] {
	return tensor.Cat(tensors, dim)
}
