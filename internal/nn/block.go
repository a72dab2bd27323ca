package nn

import (
	"github.com/born-ml/gantools/internal/tensor"
)

// NewFCModule builds Linear -> activation -> dropout.
//
// An empty activation skips the nonlinearity and a zero dropout skips the dropout
// layer. The linear weight is initialized for the chosen activation.
//
// Parameter names: "fc.weight", "fc.bias".
func NewFCModule[B tensor.Backend](nIn, nOut int, activation string, dropout float32, backend B) (*Sequential[B], error) {
	if err := requirePositive("input channels", nIn); err != nil {
		return nil, err
	}
	if err := requirePositive("output channels", nOut); err != nil {
		return nil, err
	}

	act, err := NewActivation[B](activation)
	if err != nil {
		return nil, err
	}

	fc := NewLinear(nIn, nOut, backend)
	InitLinearOrConv(fc.Weight().Tensor(), fc.Bias().Tensor(), activation)

	block := NewSequential[B]().Add("fc", fc)
	if act != nil {
		block.Add("activation", act)
	}
	if dropout != 0 {
		d, err := NewDropout[B](dropout)
		if err != nil {
			return nil, err
		}
		block.Add("dropout", d)
	}
	return block, nil
}

// ConvModuleConfig configures NewConvModule. Zero values select the defaults.
type ConvModuleConfig struct {
	KernelSize int    // Square kernel size (default: 3)
	Stride     int    // Convolution stride (default: 1)
	NoPad      bool   // Disable the (k-1)/2 zero padding that preserves spatial size
	Activation string // Nonlinearity after the norm (default: none)
	Norm       string // "instance", "batch" or "" (default: none)
}

// NewConvModule builds conv -> norm -> activation.
//
// The convolution carries a bias only when there is no norm layer, since the
// norm's shift makes it redundant.
//
// Parameter names: "conv.weight", "conv.bias" or "norm.weight", "norm.bias".
func NewConvModule[B tensor.Backend](nIn, nOut int, cfg ConvModuleConfig, backend B) (*Sequential[B], error) {
	if cfg.KernelSize == 0 {
		cfg.KernelSize = 3
	}
	if cfg.Stride == 0 {
		cfg.Stride = 1
	}
	if err := requirePositive("input channels", nIn); err != nil {
		return nil, err
	}
	if err := requirePositive("output channels", nOut); err != nil {
		return nil, err
	}
	if err := requirePositive("kernel size", cfg.KernelSize); err != nil {
		return nil, err
	}
	if err := requirePositive("stride", cfg.Stride); err != nil {
		return nil, err
	}

	act, err := NewActivation[B](cfg.Activation)
	if err != nil {
		return nil, err
	}
	norm, err := NewNorm(cfg.Norm, nOut, backend)
	if err != nil {
		return nil, err
	}

	padding := 0
	if !cfg.NoPad {
		padding = (cfg.KernelSize - 1) / 2
	}

	conv := NewConv2D(nIn, nOut, cfg.KernelSize, cfg.Stride, padding, norm == nil, backend)
	var bias *tensor.Tensor[B]
	if conv.Bias() != nil {
		bias = conv.Bias().Tensor()
	}
	InitLinearOrConv(conv.Weight().Tensor(), bias, cfg.Activation)

	block := NewSequential[B]().Add("conv", conv)
	if norm != nil {
		block.Add("norm", norm)
	}
	if act != nil {
		block.Add("activation", act)
	}
	return block, nil
}
