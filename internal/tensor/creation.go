package tensor

import (
	"math"
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros(Shape{3, 4}, backend)
func Zeros[B Backend](shape Shape, b B) *Tensor[B] {
	return New(Alloc(shape, b.Device()), b)
}

// Ones creates a tensor filled with ones.
func Ones[B Backend](shape Shape, b B) *Tensor[B] {
	return Full(shape, 1, b)
}

// Full creates a tensor filled with a specific value.
func Full[B Backend](shape Shape, value float32, b B) *Tensor[B] {
	t := Zeros(shape, b)
	t.raw.Fill(value)
	return t
}

// ZerosLike creates a zero tensor with the shape and backend of t.
func ZerosLike[B Backend](t *Tensor[B]) *Tensor[B] {
	return Zeros(t.Shape(), t.backend)
}

// OnesLike creates a tensor of ones with the shape and backend of t.
func OnesLike[B Backend](t *Tensor[B]) *Tensor[B] {
	return Ones(t.Shape(), t.backend)
}

// FullLike creates a tensor filled with value, shaped like t.
func FullLike[B Backend](t *Tensor[B], value float32) *Tensor[B] {
	return Full(t.Shape(), value, t.backend)
}

// Scalar creates a single-element tensor with an empty shape.
func Scalar[B Backend](value float32, b B) *Tensor[B] {
	return Full(Shape{}, value, b)
}

// Randn creates a tensor with values drawn from N(0, 1) using the Box-Muller transform.
// Uses math/rand (not crypto/rand), which is appropriate for ML sampling.
func Randn[B Backend](shape Shape, b B) *Tensor[B] {
	return RandnFrom(shape, b, rand.Float64) //nolint:gosec // G404: ML sampling
}

// RandnFrom is Randn with an explicit uniform source, for reproducible tests.
func RandnFrom[B Backend](shape Shape, b B, uniform func() float64) *Tensor[B] {
	t := Zeros(shape, b)
	data := t.Data()
	for i := 0; i < len(data); i += 2 {
		u1 := uniform()
		if u1 < 1e-12 {
			u1 = 1e-12
		}
		u2 := uniform()
		r := math.Sqrt(-2.0 * math.Log(u1))
		data[i] = float32(r * math.Cos(2.0*math.Pi*u2))
		if i+1 < len(data) {
			data[i+1] = float32(r * math.Sin(2.0*math.Pi*u2))
		}
	}
	return t
}

// Rand creates a tensor with values uniformly distributed in [0, 1).
func Rand[B Backend](shape Shape, b B) *Tensor[B] {
	t := Zeros(shape, b)
	data := t.Data()
	for i := range data {
		data[i] = rand.Float32() //nolint:gosec // G404: ML sampling
	}
	return t
}
