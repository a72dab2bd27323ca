// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training neural networks.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - RMSProp: Root-mean-square propagation, the default for GAN players
//   - New: construction by name ("sgd", "adam", "rmsprop")
//
// # Basic Usage
//
//	backend := autodiff.New(cpu.New())
//	model := nn.NewLinear(784, 10, backend)
//	optimizer, err := optim.New("rmsprop", model.Parameters(), 1e-4)
//
//	// Training loop
//	for epoch := 0; epoch < numEpochs; epoch++ {
//	    backend.Tape().Clear()
//	    backend.Tape().StartRecording()
//	    loss := nn.MSE(model.Forward(x), y)
//	    optimizer.ZeroGrad()
//	    nn.AccumulateGrads(model.Parameters(), autodiff.Backward(loss, backend))
//	    optimizer.Step()
//	}
package optim
