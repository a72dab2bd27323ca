package gan

import (
	"context"

	"github.com/pkg/errors"

	"github.com/born-ml/gantools/internal/autodiff"
	"github.com/born-ml/gantools/internal/device"
	"github.com/born-ml/gantools/internal/diag"
	"github.com/born-ml/gantools/internal/nn"
	"github.com/born-ml/gantools/internal/optim"
	"github.com/born-ml/gantools/internal/tensor"
)

// OptimizerFactory builds the optimizer of one player.
type OptimizerFactory[B tensor.Backend] func(name string, params []*nn.Parameter[B], lr float32) (optim.Optimizer, error)

// Option customizes a Controller.
type Option[B autodiff.BackwardCapable] func(*Controller[B])

// WithLogger sets the diagnostics sink (default: diag.Nop()). A nil logger
// discards everything.
func WithLogger[B autodiff.BackwardCapable](logger diag.Logger) Option[B] {
	return func(c *Controller[B]) {
		if isNil(logger) {
			logger = diag.Nop()
		}
		c.log = logger
	}
}

// WithOptimizerFactory replaces optim.New as the optimizer constructor.
func WithOptimizerFactory[B autodiff.BackwardCapable](f OptimizerFactory[B]) Option[B] {
	return func(c *Controller[B]) {
		c.newOptimizer = f
	}
}

// Controller alternates discriminator and generator updates.
//
// The critic counter iter stays in [0, ncritic]: a step with iter < ncritic
// updates the discriminator and increments iter, the next step resets it to 0
// and updates the generator.
//
// A Controller is not safe for concurrent use: gradient buffers and the counter
// are shared between steps.
type Controller[B autodiff.BackwardCapable] struct {
	backend B
	gen     nn.Module[B]
	disc    Discriminator[B] // nil when training on extra losses only
	hooks   Hooks[B]
	loss    Loss[B]
	cfg     Config

	optG optim.Optimizer
	optD optim.Optimizer // nil iff disc is nil

	iter      int
	placement device.Placement

	log          diag.Logger
	newOptimizer OptimizerFactory[B]
}

// New creates a controller for gen and the optional disc.
//
// A nil disc, or a config with DisableGAN, trains the generator on the extra
// losses returned by hooks only; loss may then be nil.
func New[B autodiff.BackwardCapable](
	backend B,
	gen nn.Module[B],
	disc Discriminator[B],
	hooks Hooks[B],
	loss Loss[B],
	cfg Config,
	opts ...Option[B],
) (*Controller[B], error) {
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if isNil(gen) {
		return nil, errors.Wrap(ErrInvalidConfig, "generator is required")
	}
	if isNil(disc) {
		disc = nil
	}
	if isNil(hooks) {
		return nil, errors.Wrap(ErrInvalidConfig, "hooks are required")
	}

	c := &Controller[B]{
		backend:      backend,
		gen:          gen,
		disc:         disc,
		hooks:        hooks,
		loss:         loss,
		cfg:          cfg,
		log:          diag.Nop(),
		newOptimizer: optim.New[B],
	}
	for _, opt := range opts {
		opt(c)
	}

	if cfg.GANWeight == 0 {
		c.log.Warnf("GAN controller has gan_weight==0, the discriminator is ignored")
		c.disc = nil
	}
	if c.disc == nil {
		c.log.Warnf("Using a GAN controller with no discriminator")
	} else {
		if loss == nil {
			return nil, errors.Wrap(ErrInvalidLoss, "a loss is required when training with a discriminator")
		}
		c.log.Infof("Using GAN (%s) loss with weight %.5f", loss.Name(), cfg.GANWeight)
	}

	c.placement = device.Resolve(cfg.GPU)
	if c.placement.Fallback() {
		if c.placement.Adapter {
			c.log.Warnf("WebGPU adapter found but GAN kernels run on %s", c.placement.Device)
		} else {
			c.log.Warnf("GPU requested but no WebGPU adapter is available, training on %s", c.placement.Device)
		}
	}

	var err error
	c.optG, err = c.makeOptimizer(cfg.GenOptimizer, gen.Parameters(), false)
	if err != nil {
		return nil, errors.WithMessage(err, "generator")
	}
	if c.disc != nil {
		c.optD, err = c.makeOptimizer(cfg.DiscOptimizer, c.disc.Parameters(), true)
		if err != nil {
			return nil, errors.WithMessage(err, "discriminator")
		}
	}
	return c, nil
}

func (c *Controller[B]) makeOptimizer(name string, params []*nn.Parameter[B], forDisc bool) (optim.Optimizer, error) {
	if name == optim.NameAdam && forDisc {
		c.log.Warnf("Using a momentum-based optimizer in the discriminator, this can be problematic.")
	}
	opt, err := c.newOptimizer(name, params, c.cfg.LR)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidOptimizer, "%v", err)
	}
	return opt, nil
}

// TrainingStep runs the generator on batch and updates one player.
//
// The gradient tape is cleared and recorded for the duration of the step. A
// cancelled ctx fails the step before anything is computed; once started, a
// step runs to completion. After an error, gradients and optimizer state may be
// inconsistent and the controller should be discarded.
func (c *Controller[B]) TrainingStep(ctx context.Context, batch any) (*StepResult[B], error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "training step")
	}

	tape := c.backend.GetTape()
	tape.Clear()
	tape.StartRecording()
	defer func() {
		tape.StopRecording()
		tape.Clear()
	}()

	fwd, err := c.hooks.Forward(batch)
	if err != nil {
		return nil, errors.WithMessage(err, "forward")
	}
	if fwd == nil {
		return nil, errors.WithStack(ErrNotMapping)
	}

	report, err := c.update(batch, fwd)
	if err != nil {
		return nil, err
	}
	return &StepResult[B]{Forward: fwd, Report: report}, nil
}

// update computes the losses for this step and applies one optimizer step.
func (c *Controller[B]) update(batch any, fwd Data[B]) (Report, error) {
	losses, err := c.hooks.ExtraGeneratorLoss(batch, fwd)
	if err != nil {
		return Report{}, errors.WithMessage(err, "extra generator loss")
	}
	extraLosses := make([]float32, 0, len(losses))
	var extra *tensor.Tensor[B]
	for _, l := range losses {
		extraLosses = append(extraLosses, l.Item())
		if extra == nil {
			extra = l
		} else {
			extra = extra.Add(l)
		}
	}

	if c.disc == nil {
		if extra == nil {
			c.log.Errorf(msgNoObjective)
			return Report{}, errors.Wrap(ErrNoObjective, msgNoObjective)
		}
		c.step(c.optG, extra, c.gen.Parameters(), "generator")
		return Report{Loss: ptr(extra.Item()), ExtraLosses: extraLosses}, nil
	}

	var report Report
	if c.iter < c.cfg.NCritic {
		lossD, err := c.updateDiscriminator(batch, fwd)
		if err != nil {
			return Report{}, err
		}
		c.iter++
		report.LossD = ptr(lossD)
	} else {
		c.iter = 0
		lossG, err := c.updateGenerator(batch, fwd, extra)
		if err != nil {
			return Report{}, err
		}
		report.LossG = ptr(lossG)
	}

	if extra != nil {
		report.Loss = ptr(extra.Item())
	}
	report.ExtraLosses = extraLosses
	return report, nil
}

// updateDiscriminator scores a detached fake sample and a real sample, then
// steps the discriminator and applies the loss constraint.
func (c *Controller[B]) updateDiscriminator(batch any, fwd Data[B]) (float32, error) {
	fakeIn, err := c.discriminatorInput(batch, fwd, true)
	if err != nil {
		return 0, err
	}
	for i, t := range fakeIn {
		fakeIn[i] = t.Detach()
	}
	realIn, err := c.discriminatorInput(batch, fwd, false)
	if err != nil {
		return 0, err
	}

	fakePred := c.disc.Discriminate(fakeIn...)
	realPred := c.disc.Discriminate(realIn...)
	lossD := c.loss.DiscriminatorLoss(fakePred, realPred)

	params := c.disc.Parameters()
	c.step(c.optD, lossD.MulScalar(c.cfg.GANWeight), params, "discriminator")
	c.loss.AfterDiscriminatorUpdate(params)
	return lossD.Item(), nil
}

// updateGenerator scores both samples with gradients flowing back to the
// generator and steps it on the weighted GAN loss plus the extra loss.
func (c *Controller[B]) updateGenerator(batch any, fwd Data[B], extra *tensor.Tensor[B]) (float32, error) {
	fakeIn, err := c.discriminatorInput(batch, fwd, true)
	if err != nil {
		return 0, err
	}
	realIn, err := c.discriminatorInput(batch, fwd, false)
	if err != nil {
		return 0, err
	}

	fakePred := c.disc.Discriminate(fakeIn...)
	realPred := c.disc.Discriminate(realIn...)
	lossG := c.loss.GeneratorLoss(fakePred, realPred)

	total := lossG.MulScalar(c.cfg.GANWeight)
	if extra != nil {
		total = total.Add(extra)
	}
	c.step(c.optG, total, c.gen.Parameters(), "generator")
	return lossG.Item(), nil
}

func (c *Controller[B]) discriminatorInput(batch any, fwd Data[B], fake bool) ([]*tensor.Tensor[B], error) {
	in, err := c.hooks.DiscriminatorInput(batch, fwd, fake)
	if err != nil {
		return nil, errors.WithMessagef(err, "discriminator input (fake=%t)", fake)
	}
	if len(in) == 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "discriminator input (fake=%t) is empty", fake)
	}
	return in, nil
}

// step zeroes the player's gradients, backpropagates loss into params, clips
// and applies the optimizer.
func (c *Controller[B]) step(opt optim.Optimizer, loss *tensor.Tensor[B], params []*nn.Parameter[B], player string) {
	opt.ZeroGrad()
	grads := autodiff.Backward(loss, c.backend)
	nn.AccumulateGrads(params, grads)

	if c.cfg.GradDiagnostics {
		logGradFlow(c.log, player, params)
	}
	if c.cfg.MaxGradNorm > 0 {
		norm := nn.ClipGradNorm(params, c.cfg.MaxGradNorm)
		if norm > c.cfg.MaxGradNorm {
			c.log.Warnf("Clipping %s gradients. norm = %.3f > %.3f", player, norm, c.cfg.MaxGradNorm)
		}
	}
	opt.Step()
}

// Iter returns the number of discriminator updates since the last generator update.
func (c *Controller[B]) Iter() int {
	return c.iter
}

// NCritic returns the number of discriminator updates per generator update.
func (c *Controller[B]) NCritic() int {
	return c.cfg.NCritic
}

// HasDiscriminator reports whether adversarial updates are performed.
func (c *Controller[B]) HasDiscriminator() bool {
	return c.disc != nil
}

// GANWeight returns the weight of the adversarial loss.
func (c *Controller[B]) GANWeight() float32 {
	return c.cfg.GANWeight
}

// Placement returns the resolved device placement.
func (c *Controller[B]) Placement() device.Placement {
	return c.placement
}

// GeneratorOptimizer returns the generator's optimizer.
func (c *Controller[B]) GeneratorOptimizer() optim.Optimizer {
	return c.optG
}

// DiscriminatorOptimizer returns the discriminator's optimizer, or nil.
func (c *Controller[B]) DiscriminatorOptimizer() optim.Optimizer {
	return c.optD
}
