// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides network building blocks for adversarial training.
//
// # Overview
//
// The package contains:
//   - Layers: Linear, Conv2D, Dropout and the relu/leaky relu activations
//   - Normalization: InstanceNorm and BatchNorm, selected by name with NewNorm
//   - Blocks: FC modules (linear, activation, dropout) and conv modules (conv, norm, activation)
//   - Chains: NewFCChain and NewConvChain stack blocks with per-layer settings
//   - UNet: an encoder/decoder with skip connections between matching levels
//   - Losses and gradient utilities: MSE, BCEWithLogits, ClipGradNorm, ClampParameters
//
// # Basic Usage
//
//	backend := autodiff.New(cpu.New())
//
//	gen, err := nn.NewUNet(3, 3, nn.UNetConfig{Width: 32, NumLevels: 3, Norm: nn.NormInstance}, backend)
//	if err != nil {
//	    return err
//	}
//	critic, err := nn.NewConvChain(6, nn.ConvChainConfig{
//	    Widths:     []int{32, 64, 1},
//	    Activation: nn.ActivationLeakyReLU,
//	}, backend)
//
// Constructors validate their configuration and return errors wrapping
// ErrInvalidConfig, ErrInvalidActivation or ErrInvalidNorm.
package nn
