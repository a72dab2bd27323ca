package cpu

import (
	"fmt"
	"math"

	"github.com/born-ml/gantools/internal/parallel"
	"github.com/born-ml/gantools/internal/tensor"
)

// axisTaps maps each output coordinate along one axis to two source coordinates
// and their weights. Nearest mode uses a single tap with weight 1.
type axisTaps struct {
	lo, hi []int
	wLo    []float32
	wHi    []float32
}

func newAxisTaps(in, out int, mode tensor.InterpMode) axisTaps {
	t := axisTaps{
		lo:  make([]int, out),
		hi:  make([]int, out),
		wLo: make([]float32, out),
		wHi: make([]float32, out),
	}
	scale := float64(in) / float64(out)

	for i := 0; i < out; i++ {
		switch mode {
		case tensor.Nearest:
			src := min(int(math.Floor(float64(i)*scale)), in-1)
			t.lo[i], t.hi[i] = src, src
			t.wLo[i] = 1
		case tensor.Bilinear:
			// Half-pixel centers, matching align_corners=false.
			src := max((float64(i)+0.5)*scale-0.5, 0)
			lo := min(int(src), in-1)
			hi := min(lo+1, in-1)
			frac := float32(src - float64(lo))
			if lo == hi {
				frac = 0
			}
			t.lo[i], t.hi[i] = lo, hi
			t.wLo[i], t.wHi[i] = 1-frac, frac
		default:
			panic(fmt.Sprintf("interpolate: unsupported mode %v", mode))
		}
	}
	return t
}

// Interpolate resizes the spatial dimensions of an [N, C, H, W] tensor.
func (cpu *CPUBackend) Interpolate(x *tensor.RawTensor, outH, outW int, mode tensor.InterpMode) *tensor.RawTensor {
	shape := x.Shape()
	if len(shape) != 4 {
		panic(fmt.Sprintf("interpolate: input must be 4D [N,C,H,W], got %v", shape))
	}
	if outH <= 0 || outW <= 0 {
		panic(fmt.Sprintf("interpolate: invalid output size %dx%d", outH, outW))
	}
	N, C, H, W := shape[0], shape[1], shape[2], shape[3]
	ty := newAxisTaps(H, outH, mode)
	tx := newAxisTaps(W, outW, mode)

	result := tensor.Alloc(tensor.Shape{N, C, outH, outW}, cpu.device)
	src, out := x.Data(), result.Data()

	parallel.For(N*C, func(p int) {
		in := src[p*H*W:][:H*W]
		dst := out[p*outH*outW:][:outH*outW]
		for y := 0; y < outH; y++ {
			top := in[ty.lo[y]*W:][:W]
			bot := in[ty.hi[y]*W:][:W]
			for xx := 0; xx < outW; xx++ {
				l, r := tx.lo[xx], tx.hi[xx]
				v := ty.wLo[y]*(tx.wLo[xx]*top[l]+tx.wHi[xx]*top[r]) +
					ty.wHi[y]*(tx.wLo[xx]*bot[l]+tx.wHi[xx]*bot[r])
				dst[y*outW+xx] = v
			}
		}
	}, cpu.parallel)

	return result
}

// InterpolateBackward scatters grad back onto an input of shape inShape using the
// same taps as the forward pass.
func (cpu *CPUBackend) InterpolateBackward(grad *tensor.RawTensor, inShape tensor.Shape, mode tensor.InterpMode) *tensor.RawTensor {
	gShape := grad.Shape()
	if len(gShape) != 4 || len(inShape) != 4 {
		panic(fmt.Sprintf("interpolate backward: expected 4D shapes, got grad %v and input %v", gShape, inShape))
	}
	N, C, H, W := inShape[0], inShape[1], inShape[2], inShape[3]
	outH, outW := gShape[2], gShape[3]
	ty := newAxisTaps(H, outH, mode)
	tx := newAxisTaps(W, outW, mode)

	result := tensor.Alloc(inShape, cpu.device)
	gd, out := grad.Data(), result.Data()

	parallel.For(N*C, func(p int) {
		g := gd[p*outH*outW:][:outH*outW]
		dst := out[p*H*W:][:H*W]
		for y := 0; y < outH; y++ {
			top := dst[ty.lo[y]*W:][:W]
			bot := dst[ty.hi[y]*W:][:W]
			for xx := 0; xx < outW; xx++ {
				v := g[y*outW+xx]
				l, r := tx.lo[xx], tx.hi[xx]
				top[l] += v * ty.wLo[y] * tx.wLo[xx]
				top[r] += v * ty.wLo[y] * tx.wHi[xx]
				bot[l] += v * ty.wHi[y] * tx.wLo[xx]
				bot[r] += v * ty.wHi[y] * tx.wHi[xx]
			}
		}
	}, cpu.parallel)

	return result
}
