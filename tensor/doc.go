// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for float32 tensors in gantools.
//
// The package defines core interfaces and types for tensor operations:
//   - Tensor[B]: High-level tensor bound to a compute backend
//   - RawTensor: Low-level row-major storage used by backends and the tape
//   - Backend: Interface for device-specific compute implementations
//   - Shape, Device, InterpMode: Core type definitions
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros(tensor.Shape{2, 3}, backend)
//	y := tensor.Ones(tensor.Shape{2, 3}, backend)
//	z := x.Add(y)  // Element-wise addition
package tensor
