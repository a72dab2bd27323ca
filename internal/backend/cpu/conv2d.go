package cpu

import (
	"fmt"

	"github.com/born-ml/gantools/internal/parallel"
	"github.com/born-ml/gantools/internal/tensor"
)

// convGeometry holds the dimensions shared by the forward and backward kernels.
type convGeometry struct {
	N, CIn, H, W    int
	COut, KH, KW    int
	HOut, WOut      int
	stride, padding int
}

func newConvGeometry(op string, input, kernel *tensor.RawTensor, stride, padding int) convGeometry {
	inputShape := input.Shape()
	kernelShape := kernel.Shape()

	if len(inputShape) != 4 {
		panic(fmt.Sprintf("%s: input must be 4D [N,C,H,W], got %dD", op, len(inputShape)))
	}
	if len(kernelShape) != 4 {
		panic(fmt.Sprintf("%s: kernel must be 4D [C_out,C_in,K_h,K_w], got %dD", op, len(kernelShape)))
	}
	if inputShape[1] != kernelShape[1] {
		panic(fmt.Sprintf("%s: input channels %d != kernel channels %d", op, inputShape[1], kernelShape[1]))
	}
	if stride <= 0 || padding < 0 {
		panic(fmt.Sprintf("%s: invalid stride %d or padding %d", op, stride, padding))
	}

	g := convGeometry{
		N: inputShape[0], CIn: inputShape[1], H: inputShape[2], W: inputShape[3],
		COut: kernelShape[0], KH: kernelShape[2], KW: kernelShape[3],
		stride: stride, padding: padding,
	}
	g.HOut = (g.H+2*padding-g.KH)/stride + 1
	g.WOut = (g.W+2*padding-g.KW)/stride + 1
	if g.HOut <= 0 || g.WOut <= 0 {
		panic(fmt.Sprintf("%s: invalid output dimensions: out_h=%d, out_w=%d (check stride/padding)", op, g.HOut, g.WOut))
	}
	return g
}

// Conv2D performs a zero-padded 2D cross-correlation.
//
// Input shape: [batch, in_channels, height, width]
// Kernel shape: [out_channels, in_channels, kernel_h, kernel_w]
// Output shape: [batch, out_channels, out_h, out_w]
//
// Each (batch, out_channel) plane is computed by a single goroutine.
func (cpu *CPUBackend) Conv2D(input, kernel *tensor.RawTensor, stride, padding int) *tensor.RawTensor {
	g := newConvGeometry("conv2d", input, kernel, stride, padding)

	output := tensor.Alloc(tensor.Shape{g.N, g.COut, g.HOut, g.WOut}, cpu.device)
	in, k, out := input.Data(), kernel.Data(), output.Data()

	parallel.ForBatch(g.N, g.COut, func(n, co int) {
		plane := out[(n*g.COut+co)*g.HOut*g.WOut:][:g.HOut*g.WOut]
		for ci := 0; ci < g.CIn; ci++ {
			src := in[(n*g.CIn+ci)*g.H*g.W:][:g.H*g.W]
			ker := k[(co*g.CIn+ci)*g.KH*g.KW:][:g.KH*g.KW]
			for ho := 0; ho < g.HOut; ho++ {
				for wo := 0; wo < g.WOut; wo++ {
					var acc float32
					for kh := 0; kh < g.KH; kh++ {
						h := ho*g.stride - g.padding + kh
						if h < 0 || h >= g.H {
							continue
						}
						for kw := 0; kw < g.KW; kw++ {
							w := wo*g.stride - g.padding + kw
							if w < 0 || w >= g.W {
								continue
							}
							acc += src[h*g.W+w] * ker[kh*g.KW+kw]
						}
					}
					plane[ho*g.WOut+wo] += acc
				}
			}
		}
	}, cpu.parallel)

	return output
}

// Conv2DInputBackward computes the gradient with respect to the convolution input.
//
// Every output position scatters grad * kernel back to the input positions it read.
// Goroutines own (batch, in_channel) planes of the result, so the scatter is race-free.
func (cpu *CPUBackend) Conv2DInputBackward(input, kernel, grad *tensor.RawTensor, stride, padding int) *tensor.RawTensor {
	g := newConvGeometry("conv2d_input_backward", input, kernel, stride, padding)
	checkConvGrad(g, grad)

	inputGrad := tensor.Alloc(tensor.Shape{g.N, g.CIn, g.H, g.W}, cpu.device)
	k, gd, out := kernel.Data(), grad.Data(), inputGrad.Data()

	parallel.ForBatch(g.N, g.CIn, func(n, ci int) {
		plane := out[(n*g.CIn+ci)*g.H*g.W:][:g.H*g.W]
		for co := 0; co < g.COut; co++ {
			gplane := gd[(n*g.COut+co)*g.HOut*g.WOut:][:g.HOut*g.WOut]
			ker := k[(co*g.CIn+ci)*g.KH*g.KW:][:g.KH*g.KW]
			for ho := 0; ho < g.HOut; ho++ {
				for wo := 0; wo < g.WOut; wo++ {
					gv := gplane[ho*g.WOut+wo]
					if gv == 0 {
						continue
					}
					for kh := 0; kh < g.KH; kh++ {
						h := ho*g.stride - g.padding + kh
						if h < 0 || h >= g.H {
							continue
						}
						for kw := 0; kw < g.KW; kw++ {
							w := wo*g.stride - g.padding + kw
							if w < 0 || w >= g.W {
								continue
							}
							plane[h*g.W+w] += gv * ker[kh*g.KW+kw]
						}
					}
				}
			}
		}
	}, cpu.parallel)

	return inputGrad
}

// Conv2DKernelBackward computes the gradient with respect to the kernel:
// the correlation of the input with the output gradient, summed over the batch.
func (cpu *CPUBackend) Conv2DKernelBackward(input, kernel, grad *tensor.RawTensor, stride, padding int) *tensor.RawTensor {
	g := newConvGeometry("conv2d_kernel_backward", input, kernel, stride, padding)
	checkConvGrad(g, grad)

	kernelGrad := tensor.Alloc(kernel.Shape(), cpu.device)
	in, gd, out := input.Data(), grad.Data(), kernelGrad.Data()

	parallel.ForBatch(g.COut, g.CIn, func(co, ci int) {
		ker := out[(co*g.CIn+ci)*g.KH*g.KW:][:g.KH*g.KW]
		for n := 0; n < g.N; n++ {
			src := in[(n*g.CIn+ci)*g.H*g.W:][:g.H*g.W]
			gplane := gd[(n*g.COut+co)*g.HOut*g.WOut:][:g.HOut*g.WOut]
			for kh := 0; kh < g.KH; kh++ {
				for kw := 0; kw < g.KW; kw++ {
					var acc float32
					for ho := 0; ho < g.HOut; ho++ {
						h := ho*g.stride - g.padding + kh
						if h < 0 || h >= g.H {
							continue
						}
						for wo := 0; wo < g.WOut; wo++ {
							w := wo*g.stride - g.padding + kw
							if w < 0 || w >= g.W {
								continue
							}
							acc += src[h*g.W+w] * gplane[ho*g.WOut+wo]
						}
					}
					ker[kh*g.KW+kw] += acc
				}
			}
		}
	}, cpu.parallel)

	return kernelGrad
}

func checkConvGrad(g convGeometry, grad *tensor.RawTensor) {
	want := tensor.Shape{g.N, g.COut, g.HOut, g.WOut}
	if !grad.Shape().Equal(want) {
		panic(fmt.Sprintf("conv2d backward: gradient shape %v, expected %v", grad.Shape(), want))
	}
}
