// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/gantools/internal/backend/cpu"
	"github.com/born-ml/gantools/internal/parallel"
	"github.com/born-ml/gantools/tensor"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a CPU backend that spreads large kernels over GOMAXPROCS workers.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros(tensor.Shape{2, 3}, backend)
func New() *Backend {
	return internalcpu.New()
}

// NewSerial creates a CPU backend that runs every kernel on the calling goroutine.
// Results are bit-identical to New; only scheduling differs.
func NewSerial() *Backend {
	return internalcpu.NewWithConfig(parallel.Serial())
}
