package nn

import (
	"github.com/born-ml/gantools/internal/tensor"
)

// MSE returns mean((pred - target)²) as a scalar tensor.
// target broadcasts against pred, so a [1] tensor works as a constant target.
func MSE[B tensor.Backend](pred, target *tensor.Tensor[B]) *tensor.Tensor[B] {
	diff := pred.Sub(target)
	return diff.Mul(diff).Mean()
}

// MSEConst is MSE against a constant target.
func MSEConst[B tensor.Backend](pred *tensor.Tensor[B], target float32) *tensor.Tensor[B] {
	diff := pred.AddScalar(-target)
	return diff.Mul(diff).Mean()
}

// BCEWithLogits returns the mean binary cross-entropy between sigmoid(logits) and
// targets, computed in the numerically stable fused form.
func BCEWithLogits[B tensor.Backend](logits, targets *tensor.Tensor[B]) *tensor.Tensor[B] {
	return tensor.BCEWithLogits(logits, targets)
}

// BCEWithLogitsConst is BCEWithLogits against a constant 0/1 label.
func BCEWithLogitsConst[B tensor.Backend](logits *tensor.Tensor[B], label float32) *tensor.Tensor[B] {
	return tensor.BCEWithLogits(logits, tensor.FullLike(logits, label))
}
