// Package resolver orchestrates publishing configuration resolution:
// explicit input, environment/property lookup, auto-detection, and
// smart defaults are combined in documented precedence and the result is
// validated. Resolution itself never aborts; the consumer inspects the
// validation verdict.
package resolver

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/MyCarrier-DevOps/go-pubresolve/internal/defaults"
	"github.com/MyCarrier-DevOps/go-pubresolve/internal/detect"
	"github.com/MyCarrier-DevOps/go-pubresolve/internal/project"
	"github.com/MyCarrier-DevOps/go-pubresolve/internal/pubconfig"
	"github.com/MyCarrier-DevOps/go-pubresolve/internal/validation"
)

// SourceExplicit labels values supplied directly by the caller, the
// highest-precedence source.
const SourceExplicit = "explicit"

// Result is the outcome of one resolution pass. All values are built
// fresh per call and are safe to retain.
type Result struct {
	Config     pubconfig.Config
	Detection  detect.Summary
	Validation validation.Result
}

// Resolver combines the subsystems. Construct with New; the zero value
// is not usable.
type Resolver struct {
	runner    *detect.Runner
	providers []defaults.Provider
	engine    *validation.Engine
	logger    zerolog.Logger
	now       func() time.Time
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithDetectors replaces the detector list.
func WithDetectors(detectors ...detect.Detector) Option {
	return func(r *Resolver) { r.runner = detect.NewRunner(r.logger, detectors...) }
}

// WithProviders replaces the default-provider list.
func WithProviders(providers ...defaults.Provider) Option {
	return func(r *Resolver) { r.providers = providers }
}

// WithValidators replaces the validator list.
func WithValidators(validators ...validation.Validator) Option {
	return func(r *Resolver) { r.engine = validation.NewEngine(validators...) }
}

// WithClock replaces the timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) { r.now = now }
}

// New creates a Resolver with the built-in detectors, providers, and
// validators unless options replace them.
func New(logger zerolog.Logger, opts ...Option) *Resolver {
	r := &Resolver{
		providers: defaults.DefaultProviders(),
		engine:    validation.NewEngine(validation.DefaultValidators()...),
		logger:    logger,
		now:       time.Now,
	}
	r.runner = detect.NewRunner(logger, detect.DefaultDetectors()...)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Engine exposes the validation engine so callers can extend the rule
// set at runtime.
func (r *Resolver) Engine() *validation.Engine {
	return r.engine
}

// Resolve produces the final configuration for the given context.
// Precedence, lowest first: detected values, then environment/property
// lookup, then explicit input; defaults fill whatever is still empty.
// Detection options are honored from the explicit input only — detected
// or defaulted values cannot reconfigure detection mid-pass.
func (r *Resolver) Resolve(ctx project.Context, explicit pubconfig.Config) Result {
	summary := r.runner.Run(ctx, explicit.Detection)

	acc := summary.Config

	// Merge takes incoming booleans unconditionally, so empty layers are
	// skipped rather than merged; otherwise they would lower flags set by
	// an earlier source.
	if envCfg := environmentConfig(ctx); !envCfg.IsEmpty() {
		acc = pubconfig.Merge(acc, envCfg)
	}
	if !explicit.IsEmpty() {
		acc = pubconfig.Merge(acc, explicit.WithSource(SourceExplicit))
	}

	acc = defaults.Apply(ctx, acc, r.providers)
	acc = acc.Stamp(r.now())

	verdict := r.engine.Validate(acc)

	r.logger.Info().
		Bool("valid", verdict.IsValid).
		Int("violations", len(verdict.Violations)).
		Int("detectors", len(summary.Ran)).
		Strs("sources", acc.Metadata.Sources).
		Msg("configuration resolved")

	return Result{
		Config:     acc,
		Detection:  summary,
		Validation: verdict,
	}
}
