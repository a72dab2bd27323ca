package cpu

import (
	"fmt"

	"github.com/born-ml/gantools/internal/parallel"
	"github.com/born-ml/gantools/internal/tensor"
)

// MatMul performs 2D matrix multiplication: [M, K] @ [K, N] -> [M, N].
//
// Output rows are independent, so they are split across goroutines.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	aShape, bShape := a.Shape(), b.Shape()
	if len(aShape) != 2 || len(bShape) != 2 {
		panic(fmt.Sprintf("matmul: both operands must be 2D, got %v and %v", aShape, bShape))
	}
	M, K, N := aShape[0], aShape[1], bShape[1]
	if bShape[0] != K {
		panic(fmt.Sprintf("matmul: inner dimensions differ: %v @ %v", aShape, bShape))
	}

	result := tensor.Alloc(tensor.Shape{M, N}, cpu.device)
	aData, bData, out := a.Data(), b.Data(), result.Data()

	parallel.For(M, func(i int) {
		row := out[i*N : (i+1)*N]
		for k := 0; k < K; k++ {
			aik := aData[i*K+k]
			if aik == 0 {
				continue
			}
			bRow := bData[k*N : (k+1)*N]
			for j, v := range bRow {
				row[j] += aik * v
			}
		}
	}, cpu.parallel)

	return result
}

// Transpose swaps the two dimensions of a 2D tensor.
func (cpu *CPUBackend) Transpose(x *tensor.RawTensor) *tensor.RawTensor {
	shape := x.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("transpose: expected 2D tensor, got %v", shape))
	}
	rows, cols := shape[0], shape[1]

	result := tensor.Alloc(tensor.Shape{cols, rows}, cpu.device)
	src, dst := x.Data(), result.Data()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst[j*rows+i] = src[i*cols+j]
		}
	}
	return result
}
