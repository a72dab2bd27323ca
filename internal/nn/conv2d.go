package nn

import (
	"fmt"

	"github.com/born-ml/gantools/internal/tensor"
)

// Conv2D is a 2D convolutional layer with square kernels.
//
// Performs convolution: output = Conv2D(input, weight) + bias
//
// Input shape:  [batch, in_channels, height, width]
// Weight shape: [out_channels, in_channels, kernel, kernel]
// Bias shape:   [out_channels]
// Output shape: [batch, out_channels, out_h, out_w]
//
// Where:
//
//	out_h = (height + 2*padding - kernel) / stride + 1
//	out_w = (width + 2*padding - kernel) / stride + 1
type Conv2D[B tensor.Backend] struct {
	inChannels  int
	outChannels int
	kernelSize  int
	stride      int
	padding     int

	weight *Parameter[B]
	bias   *Parameter[B] // nil when the layer is followed by a normalization
}

// NewConv2D creates a new 2D convolutional layer.
// Panics on non-positive sizes; block constructors validate before calling it.
func NewConv2D[B tensor.Backend](inChannels, outChannels, kernelSize, stride, padding int, useBias bool, backend B) *Conv2D[B] {
	if inChannels <= 0 || outChannels <= 0 || kernelSize <= 0 || stride <= 0 || padding < 0 {
		panic(fmt.Sprintf("conv2d: invalid configuration in=%d out=%d k=%d stride=%d pad=%d",
			inChannels, outChannels, kernelSize, stride, padding))
	}

	weight := tensor.Zeros(tensor.Shape{outChannels, inChannels, kernelSize, kernelSize}, backend)
	var bias *tensor.Tensor[B]
	if useBias {
		bias = tensor.Zeros(tensor.Shape{outChannels}, backend)
	}
	InitLinearOrConv(weight, bias, "")

	c := &Conv2D[B]{
		inChannels:  inChannels,
		outChannels: outChannels,
		kernelSize:  kernelSize,
		stride:      stride,
		padding:     padding,
		weight:      NewParameter("weight", weight),
	}
	if useBias {
		c.bias = NewParameter("bias", bias)
	}
	return c
}

// Forward applies the convolution.
func (c *Conv2D[B]) Forward(input *tensor.Tensor[B]) *tensor.Tensor[B] {
	shape := input.Shape()
	if len(shape) != 4 || shape[1] != c.inChannels {
		panic(fmt.Sprintf("Conv2D.Forward: expected input [N, %d, H, W], got %v", c.inChannels, shape))
	}

	output := tensor.Conv2D(input, c.weight.Tensor(), c.stride, c.padding)
	if c.bias != nil {
		output = output.Add(c.bias.Tensor().Reshape(1, c.outChannels, 1, 1))
	}
	return output
}

// Parameters returns [weight] or [weight, bias].
func (c *Conv2D[B]) Parameters() []*Parameter[B] {
	if c.bias != nil {
		return []*Parameter[B]{c.weight, c.bias}
	}
	return []*Parameter[B]{c.weight}
}

// Weight returns the kernel parameter.
func (c *Conv2D[B]) Weight() *Parameter[B] {
	return c.weight
}

// Bias returns the bias parameter, or nil.
func (c *Conv2D[B]) Bias() *Parameter[B] {
	return c.bias
}

// OutChannels returns the number of output channels.
func (c *Conv2D[B]) OutChannels() int {
	return c.outChannels
}

// Padding returns the zero padding applied on each side.
func (c *Conv2D[B]) Padding() int {
	return c.padding
}
