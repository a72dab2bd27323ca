package gan

import (
	"github.com/pkg/errors"

	"github.com/born-ml/gantools/internal/optim"
)

// Config holds the controller settings. Zero values select the defaults.
type Config struct {
	LR            float32 // Learning rate of both players (default: 1e-4)
	NCritic       int     // Discriminator updates per generator update (default: 1)
	GenOptimizer  string  // "sgd", "adam" or "rmsprop" (default: rmsprop)
	DiscOptimizer string  // "sgd", "adam" or "rmsprop" (default: rmsprop)
	GPU           bool    // Request GPU placement

	// GANWeight scales the adversarial loss of both players. Zero selects the
	// default of 1; it does not disable the discriminator. Set DisableGAN to
	// force a weight of 0, which drops the discriminator and trains on the
	// extra losses only.
	GANWeight  float32
	DisableGAN bool

	// MaxGradNorm clips the global gradient norm of the updated player.
	// Zero disables clipping.
	MaxGradNorm float64

	// GradDiagnostics logs per-parameter gradient statistics at debug level
	// after every backward pass.
	GradDiagnostics bool
}

// Defaults.
const (
	DefaultLR        = 1e-4
	DefaultNCritic   = 1
	DefaultOptimizer = optim.NameRMSProp
)

func (c *Config) setDefaults() {
	if c.LR == 0 {
		c.LR = DefaultLR
	}
	if c.NCritic == 0 {
		c.NCritic = DefaultNCritic
	}
	if c.GenOptimizer == "" {
		c.GenOptimizer = DefaultOptimizer
	}
	if c.DiscOptimizer == "" {
		c.DiscOptimizer = DefaultOptimizer
	}
	if c.GANWeight == 0 && !c.DisableGAN {
		c.GANWeight = 1
	}
	if c.DisableGAN {
		c.GANWeight = 0
	}
}

func (c *Config) validate() error {
	if c.LR < 0 {
		return errors.Wrapf(ErrInvalidConfig, "learning rate should be positive, got %g", c.LR)
	}
	if c.NCritic < 1 {
		return errors.Wrapf(ErrInvalidConfig, "ncritic should be at least 1, got %d", c.NCritic)
	}
	if c.MaxGradNorm < 0 {
		return errors.Wrapf(ErrInvalidConfig, "max gradient norm should be positive, got %g", c.MaxGradNorm)
	}
	return nil
}
