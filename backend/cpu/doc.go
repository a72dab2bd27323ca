// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - NumPy-compatible broadcasting
//   - Direct 2D convolution fanned out over batch and channels
//   - Bilinear and nearest-neighbour resampling
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/gantools/autodiff"
//	    "github.com/born-ml/gantools/backend/cpu"
//	)
//
//	func main() {
//	    backend := autodiff.New(cpu.New())
//	    // build modules and a gan.Controller on backend
//	}
package cpu
