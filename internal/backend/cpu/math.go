package cpu

import (
	"math"

	"github.com/born-ml/gantools/internal/tensor"
)

func (cpu *CPUBackend) unary(x *tensor.RawTensor, op func(v float32) float32) *tensor.RawTensor {
	result := tensor.Alloc(x.Shape(), cpu.device)
	out := result.Data()
	for i, v := range x.Data() {
		out[i] = op(v)
	}
	return result
}

// MulScalar multiplies every element by scalar.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar float32) *tensor.RawTensor {
	return cpu.unary(x, func(v float32) float32 { return v * scalar })
}

// AddScalar adds scalar to every element.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar float32) *tensor.RawTensor {
	return cpu.unary(x, func(v float32) float32 { return v + scalar })
}

// Sqrt computes the element-wise square root.
func (cpu *CPUBackend) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary(x, func(v float32) float32 { return float32(math.Sqrt(float64(v))) })
}

// ReLU computes max(0, x).
func (cpu *CPUBackend) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary(x, func(v float32) float32 {
		if v > 0 {
			return v
		}
		return 0
	})
}

// LeakyReLU computes x for x > 0 and slope*x otherwise.
func (cpu *CPUBackend) LeakyReLU(x *tensor.RawTensor, slope float32) *tensor.RawTensor {
	return cpu.unary(x, func(v float32) float32 {
		if v > 0 {
			return v
		}
		return slope * v
	})
}

// Tanh computes the hyperbolic tangent.
func (cpu *CPUBackend) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary(x, func(v float32) float32 { return float32(math.Tanh(float64(v))) })
}

// Sigmoid computes 1 / (1 + exp(-x)).
func (cpu *CPUBackend) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary(x, sigmoid)
}

// sigmoid is evaluated on the side that cannot overflow exp.
func sigmoid(v float32) float32 {
	if v >= 0 {
		return float32(1 / (1 + math.Exp(-float64(v))))
	}
	e := math.Exp(float64(v))
	return float32(e / (1 + e))
}

// BCEWithLogits computes mean(max(x, 0) - x*t + log(1 + exp(-|x|))).
func (cpu *CPUBackend) BCEWithLogits(logits, targets *tensor.RawTensor) *tensor.RawTensor {
	if !logits.Shape().Equal(targets.Shape()) {
		panic("bce_with_logits: logits " + logits.Shape().String() + " and targets " +
			targets.Shape().String() + " must have the same shape")
	}

	var sum float64
	t := targets.Data()
	for i, v := range logits.Data() {
		x := float64(v)
		sum += math.Max(x, 0) - x*float64(t[i]) + math.Log1p(math.Exp(-math.Abs(x)))
	}

	result := tensor.Alloc(tensor.Shape{}, cpu.device)
	result.Data()[0] = float32(sum / float64(logits.NumElements()))
	return result
}
