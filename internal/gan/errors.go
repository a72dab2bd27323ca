package gan

import "github.com/pkg/errors"

// Errors returned by New and TrainingStep. Match them with errors.Is.
var (
	ErrInvalidConfig    = errors.New("invalid GAN configuration")
	ErrInvalidOptimizer = errors.New("invalid optimizer")
	ErrInvalidLoss      = errors.New("invalid GAN loss")
	ErrInvalidClip      = errors.New("clipping param should be positive")
	ErrNotMapping       = errors.New("forward hook should return a mapping")
	ErrNoObjective      = errors.New("nothing to optimize")
)

const msgNoObjective = "Training a GAN with no discriminator and no extra loss: nothing to optimize!"
