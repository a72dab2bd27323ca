// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package gan

import (
	"github.com/born-ml/gantools/internal/gan"
	"github.com/born-ml/gantools/internal/tensor"
)

// Loss computes both players' adversarial losses from discriminator scores.
type Loss[B tensor.Backend] = gan.Loss[B]

// Loss names accepted by NewLoss.
const (
	LossStandard              = gan.LossStandard
	LossRelativistic          = gan.LossRelativistic
	LossRelativisticAverage   = gan.LossRelativisticAverage
	LossLeastSquares          = gan.LossLeastSquares
	LossRelativisticAverageLS = gan.LossRelativisticAverageLS
	LossWasserstein           = gan.LossWasserstein
)

// DefaultWGANClip is the weight-clipping bound used by NewLoss for wgan.
const DefaultWGANClip = gan.DefaultWGANClip

// LossNames lists the names accepted by NewLoss.
var LossNames = gan.LossNames

// NewLoss returns the loss registered under name. clip only affects wgan; zero
// selects DefaultWGANClip.
func NewLoss[B tensor.Backend](name string, clip float32) (Loss[B], error) {
	return gan.NewLoss[B](name, clip)
}

// Standard is the non-saturating binary cross-entropy GAN loss.
type Standard[B tensor.Backend] = gan.Standard[B]

// Relativistic scores real samples against paired fake samples.
type Relativistic[B tensor.Backend] = gan.Relativistic[B]

// RelativisticAverage scores each sample against the other side's mean.
type RelativisticAverage[B tensor.Backend] = gan.RelativisticAverage[B]

// LeastSquares is the least-squares GAN loss.
type LeastSquares[B tensor.Backend] = gan.LeastSquares[B]

// RelativisticAverageLS is the relativistic-average least-squares loss.
type RelativisticAverageLS[B tensor.Backend] = gan.RelativisticAverageLS[B]

// Wasserstein is the WGAN critic loss with weight clipping.
type Wasserstein[B tensor.Backend] = gan.Wasserstein[B]

// NewWasserstein creates a Wasserstein loss clamping critic weights to [-clip, clip].
func NewWasserstein[B tensor.Backend](clip float32) (*Wasserstein[B], error) {
	return gan.NewWasserstein[B](clip)
}
