package cpu

import (
	"fmt"

	"github.com/born-ml/gantools/internal/tensor"
)

// Reshape returns a view of x with a new shape. The element count must not change.
func (cpu *CPUBackend) Reshape(x *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	if err := newShape.Validate(); err != nil {
		panic(fmt.Sprintf("reshape: invalid shape: %v", err))
	}
	if x.NumElements() != newShape.NumElements() {
		panic(fmt.Sprintf("reshape: incompatible shapes: %v -> %v (different number of elements)",
			x.Shape(), newShape))
	}
	return x.View(newShape)
}

// Cat concatenates tensors along dim. All other dimensions must match.
//
// Example:
//
//	a: [2, 3, 4], b: [2, 5, 4]
//	Cat([a, b], 1) -> [2, 8, 4]
func (cpu *CPUBackend) Cat(tensors []*tensor.RawTensor, dim int) *tensor.RawTensor {
	if len(tensors) == 0 {
		panic("cat: no tensors")
	}
	first := tensors[0].Shape()
	dim = normalizeDim("cat", dim, len(first))

	total := 0
	for i, t := range tensors {
		s := t.Shape()
		if len(s) != len(first) {
			panic(fmt.Sprintf("cat: tensor %d has %d dims, expected %d", i, len(s), len(first)))
		}
		for d := range s {
			if d != dim && s[d] != first[d] {
				panic(fmt.Sprintf("cat: tensor %d has shape %v, incompatible with %v along dim %d", i, s, first, dim))
			}
		}
		total += s[dim]
	}

	outShape := first.Clone()
	outShape[dim] = total
	result := tensor.Alloc(outShape, cpu.device)
	out := result.Data()

	outer, inner := splitAt(first, dim)
	rowLen := total * inner
	offset := 0
	for _, t := range tensors {
		chunk := t.Shape()[dim] * inner
		src := t.Data()
		for o := 0; o < outer; o++ {
			copy(out[o*rowLen+offset:][:chunk], src[o*chunk:][:chunk])
		}
		offset += chunk
	}
	return result
}

// Narrow returns length entries of dim starting at start, as a new tensor.
func (cpu *CPUBackend) Narrow(x *tensor.RawTensor, dim, start, length int) *tensor.RawTensor {
	shape := x.Shape()
	dim = normalizeDim("narrow", dim, len(shape))
	if start < 0 || length <= 0 || start+length > shape[dim] {
		panic(fmt.Sprintf("narrow: range [%d, %d) out of bounds for dimension %d of size %d",
			start, start+length, dim, shape[dim]))
	}

	outShape := shape.Clone()
	outShape[dim] = length
	result := tensor.Alloc(outShape, cpu.device)
	out, src := result.Data(), x.Data()

	outer, inner := splitAt(shape, dim)
	srcRow := shape[dim] * inner
	chunk := length * inner
	for o := 0; o < outer; o++ {
		copy(out[o*chunk:][:chunk], src[o*srcRow+start*inner:][:chunk])
	}
	return result
}
