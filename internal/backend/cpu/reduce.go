package cpu

import (
	"github.com/born-ml/gantools/internal/tensor"
)

// Sum reduces all elements to a scalar (shape []).
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	var sum float64
	for _, v := range x.Data() {
		sum += float64(v)
	}
	result := tensor.Alloc(tensor.Shape{}, cpu.device)
	result.Data()[0] = float32(sum)
	return result
}

// Mean reduces all elements to their mean.
func (cpu *CPUBackend) Mean(x *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.Sum(x)
	result.Data()[0] /= float32(x.NumElements())
	return result
}

// SumDim sums tensor elements along dim.
//
// Parameters:
//   - dim: dimension to reduce (supports negative indexing: -1 = last dim)
//   - keepDim: if true, keep the reduced dimension with size 1; if false, remove it
//
// Example:
//
//	y := backend.SumDim(x, -1, true)   // [2, 3, 4] -> [2, 3, 1]
//	z := backend.SumDim(x, -1, false)  // [2, 3, 4] -> [2, 3]
func (cpu *CPUBackend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	shape := x.Shape()
	dim = normalizeDim("sumdim", dim, len(shape))

	result := tensor.Alloc(reducedShape(shape, dim, keepDim), cpu.device)
	src, out := x.Data(), result.Data()
	outer, inner := splitAt(shape, dim)
	size := shape[dim]

	for o := 0; o < outer; o++ {
		dst := out[o*inner : (o+1)*inner]
		for d := 0; d < size; d++ {
			row := src[(o*size+d)*inner:][:inner]
			for i, v := range row {
				dst[i] += v
			}
		}
	}
	return result
}

// MeanDim averages tensor elements along dim.
func (cpu *CPUBackend) MeanDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	result := cpu.SumDim(x, dim, keepDim)
	size := float32(x.Shape()[normalizeDim("meandim", dim, len(x.Shape()))])
	out := result.Data()
	for i := range out {
		out[i] /= size
	}
	return result
}

func reducedShape(shape tensor.Shape, dim int, keepDim bool) tensor.Shape {
	if keepDim {
		out := shape.Clone()
		out[dim] = 1
		return out
	}
	out := make(tensor.Shape, 0, len(shape)-1)
	for i, d := range shape {
		if i != dim {
			out = append(out, d)
		}
	}
	return out
}
