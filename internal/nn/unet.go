package nn

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/born-ml/gantools/internal/tensor"
)

// UNetConfig configures NewUNet. Zero values select the defaults.
type UNetConfig struct {
	KernelSize    int     // Kernel size of every convolution (default: 3)
	Width         int     // Width of the outermost level (default: 64)
	MaxWidth      int     // Cap on any level's width (default: 512)
	GrowthFactor  float64 // Width multiplier per level (default: 2)
	ConvsPerLevel int     // Convolutions in each down and up chain (default: 2)
	NumLevels     int     // Number of levels, outermost included (default: 4)
	Activation    string  // Nonlinearity (default: relu; "none" disables)
	Norm          string  // "instance", "batch" or "" (default: none)
	Interpolation string  // "nearest" or "bilinear" (default: bilinear)
}

func (c *UNetConfig) setDefaults() {
	if c.KernelSize == 0 {
		c.KernelSize = DefaultKernelSize
	}
	if c.Width == 0 {
		c.Width = DefaultChainWidth
	}
	if c.MaxWidth == 0 {
		c.MaxWidth = 512
	}
	if c.GrowthFactor == 0 {
		c.GrowthFactor = 2
	}
	if c.ConvsPerLevel == 0 {
		c.ConvsPerLevel = 2
	}
	if c.NumLevels == 0 {
		c.NumLevels = 4
	}
	if c.Interpolation == "" {
		c.Interpolation = "bilinear"
	}
}

// unetLevel is one encoder/decoder stage. Levels live in UNet.levels and refer to
// their child by index.
type unetLevel[B tensor.Backend] struct {
	depth    int // 0 is the outermost level
	width    int
	upIn     int // width + child output channels
	outChans int
	child    int // index into UNet.levels, -1 for the innermost level
	down     *Sequential[B]
	up       *Sequential[B]
}

// UNet is an encoder/decoder with skip connections between matching levels.
//
// Each level runs a down chain, hands a half-resolution copy of the result to its
// child level, upsamples the child's output back to the exact spatial size,
// concatenates both along channels and runs an up chain on the concatenation.
//
// Input shape:  [batch, n_in, height, width]
// Output shape: [batch, n_out, height, width]
type UNet[B tensor.Backend] struct {
	levels []unetLevel[B] // innermost first; the last entry is the entry point
	mode   tensor.InterpMode
}

// NewUNet builds a U-Net with cfg.NumLevels levels, innermost level first.
//
// Level l has width min(Width·GrowthFactor^l, MaxWidth). The outermost level maps
// nIn input channels to nOut output channels.
//
// Parameter names: "level0.down.conv0.conv.weight", "level1.up.conv1.norm.bias", ...
func NewUNet[B tensor.Backend](nIn, nOut int, cfg UNetConfig, backend B) (*UNet[B], error) {
	cfg.setDefaults()
	if err := requirePositive("input channels", nIn); err != nil {
		return nil, err
	}
	if err := requirePositive("output channels", nOut); err != nil {
		return nil, err
	}
	for _, check := range []struct {
		what string
		v    int
	}{
		{"kernel size", cfg.KernelSize},
		{"width", cfg.Width},
		{"max width", cfg.MaxWidth},
		{"convolutions per level", cfg.ConvsPerLevel},
		{"number of levels", cfg.NumLevels},
	} {
		if err := requirePositive(check.what, check.v); err != nil {
			return nil, err
		}
	}
	if cfg.GrowthFactor <= 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "growth factor should be positive, got %g", cfg.GrowthFactor)
	}
	mode, err := tensor.ParseInterpMode(cfg.Interpolation)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidConfig, err.Error())
	}

	widths := make([]int, cfg.NumLevels)
	for l := range widths {
		w := float64(cfg.Width) * math.Pow(cfg.GrowthFactor, float64(l))
		widths[l] = int(math.Min(w, float64(cfg.MaxWidth)))
		if widths[l] < 1 {
			widths[l] = 1
		}
	}

	u := &UNet[B]{mode: mode}
	child := -1
	for l := cfg.NumLevels - 1; l >= 0; l-- {
		in := nIn
		if l > 0 {
			in = widths[l-1]
		}
		out := widths[l]
		if l == 0 {
			out = nOut
		}
		upIn := widths[l]
		if child >= 0 {
			upIn += u.levels[child].outChans
		}

		chainCfg := ConvChainConfig{
			KernelSize: cfg.KernelSize,
			Depth:      cfg.ConvsPerLevel,
			Activation: cfg.Activation,
			Norm:       cfg.Norm,
		}
		chainCfg.Width = widths[l]
		down, err := NewConvChain(in, chainCfg, backend)
		if err != nil {
			return nil, errors.WithMessagef(err, "level%d down", l)
		}
		chainCfg.Width = out
		up, err := NewConvChain(upIn, chainCfg, backend)
		if err != nil {
			return nil, errors.WithMessagef(err, "level%d up", l)
		}
		prefixParameters[B](fmt.Sprintf("level%d.down", l), down)
		prefixParameters[B](fmt.Sprintf("level%d.up", l), up)

		u.levels = append(u.levels, unetLevel[B]{
			depth:    l,
			width:    widths[l],
			upIn:     upIn,
			outChans: out,
			child:    child,
			down:     down,
			up:       up,
		})
		child = len(u.levels) - 1
	}
	return u, nil
}

// Forward runs the outermost level.
func (u *UNet[B]) Forward(input *tensor.Tensor[B]) *tensor.Tensor[B] {
	return u.forward(len(u.levels)-1, input)
}

func (u *UNet[B]) forward(idx int, x *tensor.Tensor[B]) *tensor.Tensor[B] {
	lvl := &u.levels[idx]
	left := lvl.down.Forward(x)
	if lvl.child < 0 {
		return lvl.up.Forward(left)
	}

	shape := left.Shape()
	h, w := shape[2], shape[3]
	small := left.Interpolate(max(1, h/2), max(1, w/2), u.mode)
	right := u.forward(lvl.child, small).Interpolate(h, w, u.mode)
	return lvl.up.Forward(tensor.Cat([]*tensor.Tensor[B]{left, right}, 1))
}

// Parameters returns all parameters, outermost level first.
func (u *UNet[B]) Parameters() []*Parameter[B] {
	var params []*Parameter[B]
	for i := len(u.levels) - 1; i >= 0; i-- {
		params = append(params, u.levels[i].down.Parameters()...)
		params = append(params, u.levels[i].up.Parameters()...)
	}
	return params
}

// SetTraining propagates the mode to every level.
func (u *UNet[B]) SetTraining(training bool) {
	for i := range u.levels {
		u.levels[i].down.SetTraining(training)
		u.levels[i].up.SetTraining(training)
	}
}

// NumLevels returns the number of levels.
func (u *UNet[B]) NumLevels() int {
	return len(u.levels)
}

// LevelWidth returns the feature width of level (0 is outermost).
func (u *UNet[B]) LevelWidth(level int) int {
	return u.level(level).width
}

// UpInputChannels returns the channel count entering the up chain of level: the
// level's width plus the output channels of its child, if any.
func (u *UNet[B]) UpInputChannels(level int) int {
	return u.level(level).upIn
}

func (u *UNet[B]) level(depth int) *unetLevel[B] {
	if depth < 0 || depth >= len(u.levels) {
		panic(fmt.Sprintf("unet: level %d out of range [0, %d)", depth, len(u.levels)))
	}
	return &u.levels[len(u.levels)-1-depth]
}
