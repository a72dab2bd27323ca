package nn

import (
	"math"

	"github.com/born-ml/gantools/internal/tensor"
)

// clipEps keeps the clip coefficient finite when the norm is tiny.
const clipEps = 1e-6

// GradNorm returns the global L2 norm of all gradients in params.
// Parameters without a gradient are skipped.
func GradNorm[B tensor.Backend](params []*Parameter[B]) float64 {
	var sq float64
	for _, p := range params {
		if p.grad == nil {
			continue
		}
		for _, g := range p.grad.Data() {
			sq += float64(g) * float64(g)
		}
	}
	return math.Sqrt(sq)
}

// ClipGradNorm rescales the gradients of params in place so that their global L2
// norm does not exceed maxNorm, and returns the norm measured before clipping.
//
// Gradients are multiplied by maxNorm / (norm + 1e-6) only when that coefficient
// is below 1.
func ClipGradNorm[B tensor.Backend](params []*Parameter[B], maxNorm float64) float64 {
	norm := GradNorm(params)
	coef := maxNorm / (norm + clipEps)
	if coef >= 1 {
		return norm
	}

	c := float32(coef)
	for _, p := range params {
		if p.grad == nil {
			continue
		}
		data := p.grad.Data()
		for i := range data {
			data[i] *= c
		}
	}
	return norm
}

// ClampParameters clamps every parameter element into [lo, hi] in place.
func ClampParameters[B tensor.Backend](params []*Parameter[B], lo, hi float32) {
	for _, p := range params {
		data := p.tensor.Data()
		for i, v := range data {
			data[i] = min(max(v, lo), hi)
		}
	}
}
