package gan

import (
	"github.com/pkg/errors"

	"github.com/born-ml/gantools/internal/nn"
	"github.com/born-ml/gantools/internal/tensor"
)

// Loss is one GAN objective. fake and real are the discriminator scores of a
// generated and a real sample.
type Loss[B tensor.Backend] interface {
	// Name returns the registry name, e.g. "lsgan".
	Name() string
	// DiscriminatorLoss is minimized by the discriminator.
	DiscriminatorLoss(fake, real *tensor.Tensor[B]) *tensor.Tensor[B]
	// GeneratorLoss is minimized by the generator.
	GeneratorLoss(fake, real *tensor.Tensor[B]) *tensor.Tensor[B]
	// AfterDiscriminatorUpdate runs after every discriminator optimizer step.
	AfterDiscriminatorUpdate(params []*nn.Parameter[B])
}

// Loss names accepted by NewLoss.
const (
	LossStandard              = "sgan"
	LossRelativistic          = "rgan"
	LossRelativisticAverage   = "ragan"
	LossLeastSquares          = "lsgan"
	LossRelativisticAverageLS = "ralsgan"
	LossWasserstein           = "wgan"
)

// LossNames lists the accepted loss names.
var LossNames = []string{
	LossStandard, LossRelativistic, LossRelativisticAverage,
	LossLeastSquares, LossRelativisticAverageLS, LossWasserstein,
}

// DefaultWGANClip is the Wasserstein weight clipping bound used when none is given.
const DefaultWGANClip = 0.1

// NewLoss returns the loss registered under name. clip is the Wasserstein
// clipping bound (0 selects DefaultWGANClip) and is ignored by the other losses.
func NewLoss[B tensor.Backend](name string, clip float32) (Loss[B], error) {
	switch name {
	case LossStandard:
		return Standard[B]{}, nil
	case LossRelativistic:
		return Relativistic[B]{}, nil
	case LossRelativisticAverage:
		return RelativisticAverage[B]{}, nil
	case LossLeastSquares:
		return LeastSquares[B]{}, nil
	case LossRelativisticAverageLS:
		return RelativisticAverageLS[B]{}, nil
	case LossWasserstein:
		if clip == 0 {
			clip = DefaultWGANClip
		}
		w, err := NewWasserstein[B](clip)
		if err != nil {
			return nil, err
		}
		return w, nil
	default:
		return nil, errors.Wrapf(ErrInvalidLoss, "loss should be one of %v, got %q", LossNames, name)
	}
}

// Standard is the original minimax GAN objective with the non-saturating
// generator loss.
//
//	D: ½·(BCE(fake, 0) + BCE(real, 1))
//	G: BCE(fake, 1)
type Standard[B tensor.Backend] struct{}

// Name returns "sgan".
func (Standard[B]) Name() string { return LossStandard }

// DiscriminatorLoss implements Loss.
func (Standard[B]) DiscriminatorLoss(fake, real *tensor.Tensor[B]) *tensor.Tensor[B] {
	fakeLoss := nn.BCEWithLogitsConst(fake, 0)
	realLoss := nn.BCEWithLogitsConst(real, 1)
	return fakeLoss.Add(realLoss).MulScalar(0.5)
}

// GeneratorLoss implements Loss.
func (Standard[B]) GeneratorLoss(fake, _ *tensor.Tensor[B]) *tensor.Tensor[B] {
	return nn.BCEWithLogitsConst(fake, 1)
}

// AfterDiscriminatorUpdate does nothing.
func (Standard[B]) AfterDiscriminatorUpdate([]*nn.Parameter[B]) {}

// Relativistic scores how much more realistic real data is than generated data.
//
//	D: BCE(real - fake, 1)
//	G: BCE(fake - real, 1)
type Relativistic[B tensor.Backend] struct{}

// Name returns "rgan".
func (Relativistic[B]) Name() string { return LossRelativistic }

// DiscriminatorLoss implements Loss.
func (Relativistic[B]) DiscriminatorLoss(fake, real *tensor.Tensor[B]) *tensor.Tensor[B] {
	return nn.BCEWithLogitsConst(real.Sub(fake), 1)
}

// GeneratorLoss implements Loss.
func (Relativistic[B]) GeneratorLoss(fake, real *tensor.Tensor[B]) *tensor.Tensor[B] {
	return nn.BCEWithLogitsConst(fake.Sub(real), 1)
}

// AfterDiscriminatorUpdate does nothing.
func (Relativistic[B]) AfterDiscriminatorUpdate([]*nn.Parameter[B]) {}

// RelativisticAverage compares each score against the mean score of the other
// side of the batch.
//
//	D: ½·(BCE(real - mean(fake), 1) + BCE(fake - mean(real), 0))
//	G: ½·(BCE(real - mean(fake), 0) + BCE(fake - mean(real), 1))
type RelativisticAverage[B tensor.Backend] struct{}

// Name returns "ragan".
func (RelativisticAverage[B]) Name() string { return LossRelativisticAverage }

// DiscriminatorLoss implements Loss.
func (RelativisticAverage[B]) DiscriminatorLoss(fake, real *tensor.Tensor[B]) *tensor.Tensor[B] {
	realRel, fakeRel := averageRelative(fake, real)
	return nn.BCEWithLogitsConst(realRel, 1).Add(nn.BCEWithLogitsConst(fakeRel, 0)).MulScalar(0.5)
}

// GeneratorLoss implements Loss.
func (RelativisticAverage[B]) GeneratorLoss(fake, real *tensor.Tensor[B]) *tensor.Tensor[B] {
	realRel, fakeRel := averageRelative(fake, real)
	return nn.BCEWithLogitsConst(realRel, 0).Add(nn.BCEWithLogitsConst(fakeRel, 1)).MulScalar(0.5)
}

// AfterDiscriminatorUpdate does nothing.
func (RelativisticAverage[B]) AfterDiscriminatorUpdate([]*nn.Parameter[B]) {}

// LeastSquares replaces the cross-entropy with a squared error on the scores.
//
//	D: ½·(MSE(fake, 0) + MSE(real, 1))
//	G: MSE(fake, 1)
type LeastSquares[B tensor.Backend] struct{}

// Name returns "lsgan".
func (LeastSquares[B]) Name() string { return LossLeastSquares }

// DiscriminatorLoss implements Loss.
func (LeastSquares[B]) DiscriminatorLoss(fake, real *tensor.Tensor[B]) *tensor.Tensor[B] {
	return nn.MSEConst(fake, 0).Add(nn.MSEConst(real, 1)).MulScalar(0.5)
}

// GeneratorLoss implements Loss.
func (LeastSquares[B]) GeneratorLoss(fake, _ *tensor.Tensor[B]) *tensor.Tensor[B] {
	return nn.MSEConst(fake, 1)
}

// AfterDiscriminatorUpdate does nothing.
func (LeastSquares[B]) AfterDiscriminatorUpdate([]*nn.Parameter[B]) {}

// RelativisticAverageLS is RelativisticAverage with squared errors against
// ±1 targets.
//
//	D: ½·(MSE(real - mean(fake), 1) + MSE(fake - mean(real), -1))
//	G: ½·(MSE(real - mean(fake), -1) + MSE(fake - mean(real), 1))
type RelativisticAverageLS[B tensor.Backend] struct{}

// Name returns "ralsgan".
func (RelativisticAverageLS[B]) Name() string { return LossRelativisticAverageLS }

// DiscriminatorLoss implements Loss.
func (RelativisticAverageLS[B]) DiscriminatorLoss(fake, real *tensor.Tensor[B]) *tensor.Tensor[B] {
	realRel, fakeRel := averageRelative(fake, real)
	return nn.MSEConst(realRel, 1).Add(nn.MSEConst(fakeRel, -1)).MulScalar(0.5)
}

// GeneratorLoss implements Loss.
func (RelativisticAverageLS[B]) GeneratorLoss(fake, real *tensor.Tensor[B]) *tensor.Tensor[B] {
	realRel, fakeRel := averageRelative(fake, real)
	return nn.MSEConst(realRel, -1).Add(nn.MSEConst(fakeRel, 1)).MulScalar(0.5)
}

// AfterDiscriminatorUpdate does nothing.
func (RelativisticAverageLS[B]) AfterDiscriminatorUpdate([]*nn.Parameter[B]) {}

// averageRelative returns real - mean(fake) and fake - mean(real).
func averageRelative[B tensor.Backend](fake, real *tensor.Tensor[B]) (realRel, fakeRel *tensor.Tensor[B]) {
	return real.Sub(fake.Mean()), fake.Sub(real.Mean())
}

// Wasserstein is the WGAN critic objective. Every discriminator parameter is
// clamped into [-Clip, Clip] after each update to bound its Lipschitz constant.
//
//	D: -(mean(real) - mean(fake))
//	G: -mean(fake)
type Wasserstein[B tensor.Backend] struct {
	clip float32
}

// NewWasserstein returns a Wasserstein loss clipping weights to [-clip, clip].
func NewWasserstein[B tensor.Backend](clip float32) (*Wasserstein[B], error) {
	if clip <= 0 {
		return nil, errors.Wrapf(ErrInvalidClip, "got %g", clip)
	}
	return &Wasserstein[B]{clip: clip}, nil
}

// Name returns "wgan".
func (w *Wasserstein[B]) Name() string { return LossWasserstein }

// Clip returns the clamping bound.
func (w *Wasserstein[B]) Clip() float32 { return w.clip }

// DiscriminatorLoss implements Loss.
func (w *Wasserstein[B]) DiscriminatorLoss(fake, real *tensor.Tensor[B]) *tensor.Tensor[B] {
	return fake.Mean().Sub(real.Mean())
}

// GeneratorLoss implements Loss.
func (w *Wasserstein[B]) GeneratorLoss(fake, _ *tensor.Tensor[B]) *tensor.Tensor[B] {
	return fake.Mean().Neg()
}

// AfterDiscriminatorUpdate clamps every parameter into [-clip, clip].
func (w *Wasserstein[B]) AfterDiscriminatorUpdate(params []*nn.Parameter[B]) {
	nn.ClampParameters(params, -w.clip, w.clip)
}
