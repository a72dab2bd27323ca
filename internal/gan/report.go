package gan

import (
	"maps"

	"github.com/born-ml/gantools/internal/tensor"
)

// Report keys of StepResult.Merged.
const (
	KeyLossG       = "loss_g"
	KeyLossD       = "loss_d"
	KeyLoss        = "loss"
	KeyExtraLosses = "extra_losses"
)

// Report holds the losses of one training step. Nil fields were not computed.
//
// With a discriminator, exactly one of LossG and LossD is set. Loss carries the
// summed extra generator loss whenever extra losses were computed, and is the
// only loss set when there is no discriminator. LossG and LossD are the
// unweighted adversarial losses.
type Report struct {
	LossG       *float32
	LossD       *float32
	Loss        *float32
	ExtraLosses []float32
}

// Map returns the report under the loss_g, loss_d, loss and extra_losses keys.
// Missing losses map to a nil value.
func (r Report) Map() map[string]any {
	return map[string]any{
		KeyLossG:       optional(r.LossG),
		KeyLossD:       optional(r.LossD),
		KeyLoss:        optional(r.Loss),
		KeyExtraLosses: r.ExtraLosses,
	}
}

func optional(v *float32) any {
	if v == nil {
		return nil
	}
	return *v
}

func ptr(v float32) *float32 {
	return &v
}

// StepResult is the outcome of Controller.TrainingStep.
type StepResult[B tensor.Backend] struct {
	Forward Data[B]
	Report  Report
}

// Merged returns the forward data and the report in one map. Report keys win if
// the forward data uses the same names.
func (s *StepResult[B]) Merged() map[string]any {
	out := make(map[string]any, len(s.Forward)+4)
	for k, v := range s.Forward {
		out[k] = v
	}
	maps.Copy(out, s.Report.Map())
	return out
}
