package nn

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/born-ml/gantools/internal/tensor"
)

// Chain defaults shared by FC and conv chains.
const (
	DefaultChainDepth  = 3
	DefaultChainWidth  = 64
	DefaultKernelSize  = 3
	DefaultActivation  = ActivationReLU
	noActivationMarker = "none"
)

// FCChainConfig configures NewFCChain. Zero values select the defaults.
//
// Width and Widths are alternatives: Widths gives one output width per layer and
// must have Depth entries; the same holds for Dropout and Dropouts.
type FCChainConfig struct {
	Width      int       // Width of every layer (default: 64)
	Widths     []int     // Per-layer widths, overrides Width
	Depth      int       // Number of layers (default: 3, or len(Widths))
	Activation string    // Nonlinearity after every layer (default: relu; "none" disables)
	Dropout    float32   // Dropout after every layer (default: none)
	Dropouts   []float32 // Per-layer dropout, overrides Dropout
}

// NewFCChain builds a chain of FC modules named fc0, fc1, ...
//
// Layer i maps widths[i-1] to widths[i], starting from nIn. Every layer, including
// the last, is followed by the activation.
func NewFCChain[B tensor.Backend](nIn int, cfg FCChainConfig, backend B) (*Sequential[B], error) {
	if err := requirePositive("input channels", nIn); err != nil {
		return nil, err
	}
	depth, err := chainDepth(cfg.Depth, len(cfg.Widths))
	if err != nil {
		return nil, err
	}
	widths, err := perLayerInts("width", cfg.Width, DefaultChainWidth, cfg.Widths, depth)
	if err != nil {
		return nil, err
	}

	dropouts := cfg.Dropouts
	if dropouts == nil {
		dropouts = make([]float32, depth)
		for i := range dropouts {
			dropouts[i] = cfg.Dropout
		}
	} else if err := requireLength("dropout list", len(dropouts), depth); err != nil {
		return nil, err
	}

	activation := chainActivation(cfg.Activation)
	chain := NewSequential[B]()
	in := nIn
	for lvl := 0; lvl < depth; lvl++ {
		m, err := NewFCModule(in, widths[lvl], activation, dropouts[lvl], backend)
		if err != nil {
			return nil, errors.WithMessagef(err, "fc%d", lvl)
		}
		chain.Add(fmt.Sprintf("fc%d", lvl), m)
		in = widths[lvl]
	}
	return chain, nil
}

// ConvChainConfig configures NewConvChain. Zero values select the defaults.
type ConvChainConfig struct {
	KernelSize  int    // Kernel size of every layer (default: 3)
	KernelSizes []int  // Per-layer kernel sizes, overrides KernelSize
	Width       int    // Width of every layer (default: 64)
	Widths      []int  // Per-layer widths, overrides Width
	Depth       int    // Number of layers (default: 3, or len(Widths))
	Strides     []int  // Per-layer strides (default: all 1)
	NoPad       bool   // Disable size-preserving zero padding
	Activation  string // Nonlinearity after every layer (default: relu; "none" disables)
	Norm        string // "instance", "batch" or "" (default: none)
}

// NewConvChain builds a chain of conv modules named conv0, conv1, ...
//
// With padding enabled and odd kernel sizes, stride-1 layers preserve the spatial
// size; the output channel count is the last width.
func NewConvChain[B tensor.Backend](nIn int, cfg ConvChainConfig, backend B) (*Sequential[B], error) {
	if err := requirePositive("input channels", nIn); err != nil {
		return nil, err
	}
	depth, err := chainDepth(cfg.Depth, len(cfg.Widths))
	if err != nil {
		return nil, err
	}
	widths, err := perLayerInts("width", cfg.Width, DefaultChainWidth, cfg.Widths, depth)
	if err != nil {
		return nil, err
	}
	ksizes, err := perLayerInts("kernel size", cfg.KernelSize, DefaultKernelSize, cfg.KernelSizes, depth)
	if err != nil {
		return nil, err
	}
	strides, err := perLayerInts("stride", 0, 1, cfg.Strides, depth)
	if err != nil {
		return nil, err
	}

	activation := chainActivation(cfg.Activation)
	chain := NewSequential[B]()
	in := nIn
	for lvl := 0; lvl < depth; lvl++ {
		m, err := NewConvModule(in, widths[lvl], ConvModuleConfig{
			KernelSize: ksizes[lvl],
			Stride:     strides[lvl],
			NoPad:      cfg.NoPad,
			Activation: activation,
			Norm:       cfg.Norm,
		}, backend)
		if err != nil {
			return nil, errors.WithMessagef(err, "conv%d", lvl)
		}
		chain.Add(fmt.Sprintf("conv%d", lvl), m)
		in = widths[lvl]
	}
	return chain, nil
}

func chainDepth(depth, listLen int) (int, error) {
	switch {
	case depth == 0 && listLen > 0:
		return listLen, nil
	case depth == 0:
		return DefaultChainDepth, nil
	case depth < 0:
		return 0, errors.Wrapf(ErrInvalidConfig, "depth should be a positive integer, got %d", depth)
	}
	return depth, nil
}

// perLayerInts expands a scalar-or-list option into depth positive values.
func perLayerInts(what string, scalar, def int, list []int, depth int) ([]int, error) {
	if list != nil {
		if err := requireLength(what+" list", len(list), depth); err != nil {
			return nil, err
		}
		for _, v := range list {
			if err := requirePositive(what, v); err != nil {
				return nil, err
			}
		}
		return list, nil
	}

	if scalar == 0 {
		scalar = def
	}
	if err := requirePositive(what, scalar); err != nil {
		return nil, err
	}
	out := make([]int, depth)
	for i := range out {
		out[i] = scalar
	}
	return out, nil
}

func chainActivation(name string) string {
	switch name {
	case "":
		return DefaultActivation
	case noActivationMarker:
		return ""
	}
	return name
}
