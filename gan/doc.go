// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gan provides the adversarial training controller and GAN losses.
//
// # Overview
//
// A Controller owns a generator, an optional discriminator and one optimizer per
// player. Each call to TrainingStep updates exactly one player: the
// discriminator NCritic times in a row, then the generator once. Supported
// losses are sgan, rgan, ragan, lsgan, ralsgan and wgan.
//
// # Basic Usage
//
//	backend := autodiff.New(cpu.New())
//	gen, _ := nn.NewFCChain(8, nn.FCChainConfig{Widths: []int{64, 64, 2}}, backend)
//	critic, _ := nn.NewFCChain(2, nn.FCChainConfig{Widths: []int{64, 64, 1}, Activation: "lrelu"}, backend)
//
//	hooks := gan.HookFuncs[B]{
//	    ForwardFunc: func(batch any) (gan.Data[B], error) {
//	        return gan.Data[B]{"fake": gen.Forward(noise(batch))}, nil
//	    },
//	    InputFunc: func(batch any, fwd gan.Data[B], fake bool) ([]*tensor.Tensor[B], error) {
//	        if fake {
//	            return []*tensor.Tensor[B]{fwd["fake"]}, nil
//	        }
//	        return []*tensor.Tensor[B]{realSamples(batch)}, nil
//	    },
//	}
//
//	loss, _ := gan.NewLoss[B](gan.LossLeastSquares, 0)
//	ctrl, err := gan.New(backend, gen, gan.FromModule(critic), hooks, loss,
//	    gan.Config{LR: 1e-4, NCritic: 2},
//	    gan.WithLogger[B](gan.NewStdLogger(log.Default())))
//
//	for _, batch := range batches {
//	    res, err := ctrl.TrainingStep(ctx, batch)
//	    ...
//	}
package gan
