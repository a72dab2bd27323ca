// Package gan implements adversarial training of a generator against an optional
// discriminator.
//
// A Controller owns both players and their optimizers and exposes a single
// TrainingStep entry point. Each step updates exactly one player: the
// discriminator ncritic times in a row, then the generator once. Loss formulas
// are pluggable through the Loss interface:
//
//	sgan    Standard GAN (Goodfellow et al. 2014)
//	rgan    Relativistic GAN (Jolicoeur-Martineau 2018)
//	ragan   Relativistic average GAN
//	lsgan   Least-squares GAN (Mao et al. 2017)
//	ralsgan Relativistic average least-squares GAN
//	wgan    Wasserstein GAN with weight clipping
//
// When no discriminator is given (or the GAN weight is zero) the controller
// optimizes the generator on the extra losses returned by the hooks alone.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	loss, _ := gan.NewLoss[B]("lsgan", 0)
//	ctrl, err := gan.New(backend, generator, gan.FromModule(critic), hooks, loss, gan.Config{
//	    LR:      2e-4,
//	    NCritic: 2,
//	})
//	for batch := range batches {
//	    res, err := ctrl.TrainingStep(ctx, batch)
//	    ...
//	}
package gan
