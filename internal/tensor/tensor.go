package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// Tensor is a float32 tensor bound to a backend B.
//
// Every operation is dispatched to the backend, so wrapping a backend with the
// autodiff decorator is enough to make the same model code differentiable.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros(Shape{3, 4}, backend)
//	result := t.Add(t)
type Tensor[B Backend] struct {
	raw     *RawTensor
	backend B
}

// New creates a Tensor from a RawTensor and backend.
func New[B Backend](raw *RawTensor, b B) *Tensor[B] {
	return &Tensor[B]{
		raw:     raw,
		backend: b,
	}
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[B Backend](data []float32, shape Shape, b B) (*Tensor[B], error) {
	raw, err := RawFromSlice(data, shape, b.Device())
	if err != nil {
		return nil, err
	}
	return New(raw, b), nil
}

// MustFromSlice is FromSlice that panics on a shape mismatch.
// Intended for literals in tests and examples.
func MustFromSlice[B Backend](data []float32, shape Shape, b B) *Tensor[B] {
	t, err := FromSlice(data, shape, b)
	if err != nil {
		panic(err)
	}
	return t
}

// Shape returns the tensor's shape.
func (t *Tensor[B]) Shape() Shape {
	return t.raw.Shape()
}

// Device returns the tensor's compute device.
func (t *Tensor[B]) Device() Device {
	return t.raw.Device()
}

// NumElements returns the total number of elements.
func (t *Tensor[B]) NumElements() int {
	return t.raw.NumElements()
}

// Raw returns the underlying RawTensor.
func (t *Tensor[B]) Raw() *RawTensor {
	return t.raw
}

// Backend returns the computation backend.
func (t *Tensor[B]) Backend() B {
	return t.backend
}

// Data returns the tensor's storage (zero-copy).
//
// WARNING: Modifications to the returned slice modify the tensor.
func (t *Tensor[B]) Data() []float32 {
	return t.raw.Data()
}

// Item returns the value of a single-element tensor.
// Panics if the tensor holds more than one element.
func (t *Tensor[B]) Item() float32 {
	if t.NumElements() != 1 {
		panic(fmt.Sprintf("Item() only works for single-element tensors, got shape %v", t.Shape()))
	}
	return t.raw.Data()[0]
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[B]) At(indices ...int) float32 {
	shape := t.Shape()
	if len(indices) != len(shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(shape), len(indices)))
	}

	offset := 0
	strides := t.raw.Strides()
	for i, idx := range indices {
		if idx < 0 || idx >= shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, shape[i]))
		}
		offset += idx * strides[i]
	}
	return t.raw.Data()[offset]
}

// Clone returns a deep copy with its own storage.
func (t *Tensor[B]) Clone() *Tensor[B] {
	return New(t.raw.Clone(), t.backend)
}

// Detach returns a copy of the tensor that is disconnected from the autodiff graph.
//
// The copy owns fresh storage, so no recorded operation refers to it and gradients
// computed downstream of the detached tensor stop here. This is the boundary used to
// score generated samples for a discriminator update without touching the generator.
func (t *Tensor[B]) Detach() *Tensor[B] {
	return t.Clone()
}

// String returns a short description of the tensor.
func (t *Tensor[B]) String() string {
	return fmt.Sprintf("Tensor%v on %s", t.Shape(), t.Device())
}

// SameShape returns an error when the two tensors differ in shape.
func SameShape[B Backend](a, b *Tensor[B]) error {
	if !a.Shape().Equal(b.Shape()) {
		return errors.Errorf("shape mismatch: %v vs %v", a.Shape(), b.Shape())
	}
	return nil
}
