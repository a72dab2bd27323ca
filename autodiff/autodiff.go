// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides automatic differentiation capabilities.
//
// This package implements reverse-mode automatic differentiation (backpropagation)
// using a gradient tape. It wraps any backend to add autodiff capabilities.
//
// Example:
//
//	import (
//	    "github.com/born-ml/gantools/autodiff"
//	    "github.com/born-ml/gantools/backend/cpu"
//	    "github.com/born-ml/gantools/tensor"
//	)
//
//	func main() {
//	    backend := autodiff.New(cpu.New())
//	    backend.Tape().StartRecording()
//
//	    x := tensor.Randn(tensor.Shape{2, 3}, backend)
//	    y := x.Mul(x).Sum()
//
//	    grads := autodiff.Backward(y, backend)
//	    _ = grads[x.Raw()]
//	}
package autodiff

import (
	"github.com/born-ml/gantools/internal/autodiff"
	"github.com/born-ml/gantools/internal/tensor"
)

// Backend is the autodiff-enabled backend.
type Backend[B tensor.Backend] = autodiff.AutodiffBackend[B]

// GradientTape records operations for the backward pass.
type GradientTape = autodiff.GradientTape

// BackwardCapable is implemented by backends that own a gradient tape.
type BackwardCapable = autodiff.BackwardCapable

// New creates a new autodiff backend wrapping the given backend.
func New[B tensor.Backend](backend B) *Backend[B] {
	return autodiff.New(backend)
}

// Backward computes the gradient of t with respect to every recorded tensor.
// It panics if nothing was recorded on the backend's tape.
func Backward[B BackwardCapable](t *tensor.Tensor[B], backend B) map[*tensor.RawTensor]*tensor.RawTensor {
	return autodiff.Backward(t, backend)
}
