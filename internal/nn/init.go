package nn

import (
	"math"
	"math/rand"

	"github.com/born-ml/gantools/internal/tensor"
)

// Gain returns the recommended Xavier gain for an activation name.
//
//	""                  -> 1
//	relu                -> √2
//	leaky_relu / lrelu  -> √(2 / (1 + 0.01²))
//
// Unknown names get gain 1; NewActivation is the place that rejects them.
func Gain(activation string) float64 {
	switch activation {
	case ActivationReLU:
		return math.Sqrt2
	case ActivationLeakyReLU, ActivationLReLU:
		return math.Sqrt(2.0 / (1 + LeakySlope*LeakySlope))
	default:
		return 1
	}
}

// XavierUniform fills weight in place with values drawn from
// U(-a, a), a = gain * sqrt(6 / (fan_in + fan_out)).
func XavierUniform[B tensor.Backend](weight *tensor.Tensor[B], fanIn, fanOut int, gain float64) {
	bound := gain * math.Sqrt(6.0/float64(fanIn+fanOut))
	data := weight.Data()
	for i := range data {
		data[i] = float32((rand.Float64()*2.0 - 1.0) * bound) //nolint:gosec // weight init
	}
}

// InitLinearOrConv initializes a dense or convolution weight for the activation
// that follows it, and zeroes the bias when there is one.
//
// The fans are computed PyTorch-style from the weight shape: [out, in, k...]
// gives fan_in = in*k... and fan_out = out*k....
func InitLinearOrConv[B tensor.Backend](weight, bias *tensor.Tensor[B], activation string) {
	shape := weight.Shape()
	receptive := 1
	for _, d := range shape[2:] {
		receptive *= d
	}
	fanIn := shape[1] * receptive
	fanOut := shape[0] * receptive

	XavierUniform(weight, fanIn, fanOut, Gain(activation))
	if bias != nil {
		bias.Raw().Fill(0)
	}
}
