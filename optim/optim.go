// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/gantools/internal/nn"
	"github.com/born-ml/gantools/internal/optim"
	"github.com/born-ml/gantools/internal/tensor"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Optimizer names accepted by New.
const (
	NameSGD     = optim.NameSGD
	NameAdam    = optim.NameAdam
	NameRMSProp = optim.NameRMSProp
)

// ErrUnknownOptimizer is returned by New for an unsupported name.
var ErrUnknownOptimizer = optim.ErrUnknownOptimizer

// New creates the optimizer registered under name with learning rate lr.
func New[B tensor.Backend](name string, params []*nn.Parameter[B], lr float32) (Optimizer, error) {
	return optim.New(name, params, lr)
}

// SGD (Stochastic Gradient Descent)

// SGD represents the SGD optimizer with optional momentum.
type SGD[B tensor.Backend] = optim.SGD[B]

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.01, Momentum: 0.9})
func NewSGD[B tensor.Backend](params []*nn.Parameter[B], config SGDConfig) *SGD[B] {
	return optim.NewSGD(params, config)
}

// Adam (Adaptive Moment Estimation)

// Adam represents the Adam optimizer.
type Adam[B tensor.Backend] = optim.Adam[B]

// AdamConfig contains configuration for Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer with bias correction.
func NewAdam[B tensor.Backend](params []*nn.Parameter[B], config AdamConfig) *Adam[B] {
	return optim.NewAdam(params, config)
}

// RMSProp

// RMSProp represents the RMSProp optimizer.
type RMSProp[B tensor.Backend] = optim.RMSProp[B]

// RMSPropConfig contains configuration for RMSProp optimizer.
type RMSPropConfig = optim.RMSPropConfig

// NewRMSProp creates a new RMSProp optimizer.
func NewRMSProp[B tensor.Backend](params []*nn.Parameter[B], config RMSPropConfig) *RMSProp[B] {
	return optim.NewRMSProp(params, config)
}
