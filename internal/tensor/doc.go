// Package tensor provides the core tensor types for gantools.
//
// Architecture:
//   - RawTensor: float32 row-major storage plus shape and device
//   - Tensor[B]: backend-bound wrapper that dispatches every operation to B
//   - Backend: the kernel contract implemented by backend/cpu and decorated by autodiff
//
// Tensors are always float32; both networks of a GAN train in single precision.
package tensor
