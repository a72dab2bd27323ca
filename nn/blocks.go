// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/gantools/internal/nn"
	"github.com/born-ml/gantools/internal/tensor"
)

// Chain defaults.
const (
	DefaultChainDepth = nn.DefaultChainDepth
	DefaultChainWidth = nn.DefaultChainWidth
	DefaultKernelSize = nn.DefaultKernelSize
	DefaultActivation = nn.DefaultActivation
)

// ConvModuleConfig configures NewConvModule.
type ConvModuleConfig = nn.ConvModuleConfig

// FCChainConfig configures NewFCChain.
type FCChainConfig = nn.FCChainConfig

// ConvChainConfig configures NewConvChain.
type ConvChainConfig = nn.ConvChainConfig

// UNetConfig configures NewUNet.
type UNetConfig = nn.UNetConfig

// UNet is an encoder/decoder with skip connections.
type UNet[B tensor.Backend] = nn.UNet[B]

// NewFCModule builds Linear -> activation -> dropout.
func NewFCModule[B tensor.Backend](nIn, nOut int, activation string, dropout float32, backend B) (*Sequential[B], error) {
	return nn.NewFCModule(nIn, nOut, activation, dropout, backend)
}

// NewConvModule builds conv -> norm -> activation.
func NewConvModule[B tensor.Backend](nIn, nOut int, cfg ConvModuleConfig, backend B) (*Sequential[B], error) {
	return nn.NewConvModule(nIn, nOut, cfg, backend)
}

// NewFCChain builds a chain of FC modules.
//
// Example:
//
//	mlp, err := nn.NewFCChain(2, nn.FCChainConfig{Widths: []int{32, 32, 2}, Activation: "lrelu"}, backend)
func NewFCChain[B tensor.Backend](nIn int, cfg FCChainConfig, backend B) (*Sequential[B], error) {
	return nn.NewFCChain(nIn, cfg, backend)
}

// NewConvChain builds a chain of conv modules.
func NewConvChain[B tensor.Backend](nIn int, cfg ConvChainConfig, backend B) (*Sequential[B], error) {
	return nn.NewConvChain(nIn, cfg, backend)
}

// NewUNet builds a U-Net mapping nIn to nOut channels at unchanged spatial size.
//
// Example:
//
//	unet, err := nn.NewUNet(1, 1, nn.UNetConfig{Width: 16, NumLevels: 3}, backend)
func NewUNet[B tensor.Backend](nIn, nOut int, cfg UNetConfig, backend B) (*UNet[B], error) {
	return nn.NewUNet(nIn, nOut, cfg, backend)
}

// Losses and gradient utilities

// MSE returns the mean squared error between pred and target.
func MSE[B tensor.Backend](pred, target *tensor.Tensor[B]) *tensor.Tensor[B] {
	return nn.MSE(pred, target)
}

// MSEConst returns the mean squared error between pred and a constant target.
func MSEConst[B tensor.Backend](pred *tensor.Tensor[B], target float32) *tensor.Tensor[B] {
	return nn.MSEConst(pred, target)
}

// BCEWithLogits returns the mean binary cross-entropy of sigmoid(logits) against targets.
func BCEWithLogits[B tensor.Backend](logits, targets *tensor.Tensor[B]) *tensor.Tensor[B] {
	return nn.BCEWithLogits(logits, targets)
}

// BCEWithLogitsConst is BCEWithLogits against a constant label.
func BCEWithLogitsConst[B tensor.Backend](logits *tensor.Tensor[B], label float32) *tensor.Tensor[B] {
	return nn.BCEWithLogitsConst(logits, label)
}

// GradNorm returns the global L2 norm of the gradients of params.
func GradNorm[B tensor.Backend](params []*Parameter[B]) float64 {
	return nn.GradNorm(params)
}

// ClipGradNorm rescales gradients to a global norm of at most maxNorm and
// returns the norm before clipping.
func ClipGradNorm[B tensor.Backend](params []*Parameter[B], maxNorm float64) float64 {
	return nn.ClipGradNorm(params, maxNorm)
}

// ClampParameters clamps every parameter value into [lo, hi].
func ClampParameters[B tensor.Backend](params []*Parameter[B], lo, hi float32) {
	nn.ClampParameters(params, lo, hi)
}
