// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package gan

import (
	"log"

	"github.com/born-ml/gantools/internal/autodiff"
	"github.com/born-ml/gantools/internal/diag"
	"github.com/born-ml/gantools/internal/gan"
	"github.com/born-ml/gantools/internal/nn"
	"github.com/born-ml/gantools/internal/tensor"
)

// Controller

// Controller alternates discriminator and generator updates.
type Controller[B autodiff.BackwardCapable] = gan.Controller[B]

// Config holds the controller settings.
type Config = gan.Config

// Controller defaults.
const (
	DefaultLR        = gan.DefaultLR
	DefaultNCritic   = gan.DefaultNCritic
	DefaultOptimizer = gan.DefaultOptimizer
)

// Option customizes a Controller.
type Option[B autodiff.BackwardCapable] = gan.Option[B]

// OptimizerFactory builds the optimizer of one player.
type OptimizerFactory[B tensor.Backend] = gan.OptimizerFactory[B]

// New creates a controller. disc may be nil to train on extra losses only.
func New[B autodiff.BackwardCapable](
	backend B,
	gen nn.Module[B],
	disc Discriminator[B],
	hooks Hooks[B],
	loss Loss[B],
	cfg Config,
	opts ...Option[B],
) (*Controller[B], error) {
	return gan.New(backend, gen, disc, hooks, loss, cfg, opts...)
}

// WithLogger sets the diagnostics sink.
func WithLogger[B autodiff.BackwardCapable](logger Logger) Option[B] {
	return gan.WithLogger[B](logger)
}

// WithOptimizerFactory replaces the by-name optimizer constructor.
func WithOptimizerFactory[B autodiff.BackwardCapable](f OptimizerFactory[B]) Option[B] {
	return gan.WithOptimizerFactory(f)
}

// Hooks

// Data is the named output of the generator's forward pass.
type Data[B tensor.Backend] = gan.Data[B]

// Hooks are the task-specific pieces a Controller calls during a step.
type Hooks[B tensor.Backend] = gan.Hooks[B]

// HookFuncs adapts plain functions to Hooks.
type HookFuncs[B tensor.Backend] = gan.HookFuncs[B]

// Discriminator scores one or more input tensors.
type Discriminator[B tensor.Backend] = gan.Discriminator[B]

// FromModule turns a module into a Discriminator.
func FromModule[B tensor.Backend](m nn.Module[B]) Discriminator[B] {
	return gan.FromModule(m)
}

// Results

// Report holds the losses of one training step.
type Report = gan.Report

// StepResult is the outcome of Controller.TrainingStep.
type StepResult[B tensor.Backend] = gan.StepResult[B]

// Keys of StepResult.Merged.
const (
	KeyLossG       = gan.KeyLossG
	KeyLossD       = gan.KeyLossD
	KeyLoss        = gan.KeyLoss
	KeyExtraLosses = gan.KeyExtraLosses
)

// GradStats summarizes the gradient of one parameter.
type GradStats = gan.GradStats

// GradFlow returns gradient statistics for every parameter that has a gradient.
func GradFlow[B tensor.Backend](params []*nn.Parameter[B]) []GradStats {
	return gan.GradFlow(params)
}

// Logging

// Logger receives controller diagnostics.
type Logger = diag.Logger

// NewStdLogger returns a Logger writing "[LEVEL] message" lines to out.
// Debug output is off until EnableDebug is called.
func NewStdLogger(out *log.Logger) *diag.Std {
	return diag.NewStd(out)
}

// NopLogger returns a Logger that discards everything.
func NopLogger() Logger {
	return diag.Nop()
}

// Errors

// Errors returned by the controller and loss constructors.
var (
	ErrInvalidConfig    = gan.ErrInvalidConfig
	ErrInvalidOptimizer = gan.ErrInvalidOptimizer
	ErrInvalidLoss      = gan.ErrInvalidLoss
	ErrInvalidClip      = gan.ErrInvalidClip
	ErrNotMapping       = gan.ErrNotMapping
	ErrNoObjective      = gan.ErrNoObjective
)
