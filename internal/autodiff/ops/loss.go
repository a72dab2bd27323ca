package ops

import "github.com/born-ml/gantools/internal/tensor"

// BCEWithLogitsOp represents the mean binary cross-entropy on logits.
//
// Backward (n = number of elements):
//   - dL/dlogits = (σ(x) - t) / n
//   - dL/dtargets = -x / n
type BCEWithLogitsOp struct{ base }

// NewBCEWithLogitsOp creates a new BCEWithLogitsOp.
func NewBCEWithLogitsOp(logits, targets, output *tensor.RawTensor) *BCEWithLogitsOp {
	return &BCEWithLogitsOp{newBase(output, logits, targets)}
}

// Backward computes logits and targets gradients.
func (op *BCEWithLogitsOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	logits, targets := op.inputs[0], op.inputs[1]
	scale := scalarOf(outputGrad) / float32(logits.NumElements())

	gradLogits := backend.MulScalar(backend.Sub(backend.Sigmoid(logits), targets), scale)
	gradTargets := backend.MulScalar(logits, -scale)
	return []*tensor.RawTensor{gradLogits, gradTargets}
}
