package detect

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/MyCarrier-DevOps/go-pubresolve/internal/project"
	"github.com/MyCarrier-DevOps/go-pubresolve/internal/pubconfig"
)

// Summary is the outcome of a full detection pass.
//
// Config and Values are deliberately decoupled: the folded configuration
// follows detector list order only (a later detector overwrites earlier
// non-empty fields), while Values keeps the best confidence seen per
// field for diagnostics. When two detectors disagree on a field, the
// value that flows downstream is not guaranteed to be the one the table
// ranks highest. This is current, intended behavior; do not unify the
// two tracks without product sign-off.
type Summary struct {
	Config   pubconfig.Config
	Values   map[string]DetectedValue
	Warnings []string
	Ran      []string
}

// Runner executes a fixed, constructor-injected list of detectors.
type Runner struct {
	detectors []Detector
	logger    zerolog.Logger
}

// NewRunner creates a Runner over the given detector list. List order is
// part of the observable contract.
func NewRunner(logger zerolog.Logger, detectors ...Detector) *Runner {
	return &Runner{detectors: detectors, logger: logger}
}

// Run executes every enabled detector in list order. A failing detector
// is downgraded to a warning and never aborts the pass.
func (r *Runner) Run(ctx project.Context, opts pubconfig.DetectionOptions) Summary {
	summary := Summary{Values: map[string]DetectedValue{}}
	if opts.Disabled {
		return summary
	}

	skip := map[string]bool{}
	for _, name := range opts.SkipDetectors {
		skip[name] = true
	}

	for _, d := range r.detectors {
		if skip[d.Name()] {
			continue
		}
		if nd, ok := d.(networkDetector); ok && nd.RequiresNetwork() && !opts.AllowNetwork {
			continue
		}

		summary.Ran = append(summary.Ran, d.Name())
		outcome := safeDetect(d, ctx)

		if outcome.Err != nil {
			r.logger.Debug().Str("detector", d.Name()).Err(outcome.Err).Msg("detector failed")
			summary.Warnings = append(summary.Warnings,
				fmt.Sprintf("Detector '%s' failed: %s", d.Name(), outcome.Err))
			continue
		}
		if outcome.Result == nil {
			r.logger.Debug().Str("detector", d.Name()).Msg("no signal")
			continue
		}

		res := outcome.Result
		r.logger.Debug().Str("detector", d.Name()).Int("values", len(res.Values)).Msg("detected")

		// Track 1: best confidence per field, earliest wins on ties.
		for _, path := range sortedPaths(res.Values) {
			dv := res.Values[path]
			if existing, ok := summary.Values[path]; ok && existing.Confidence >= dv.Confidence {
				continue
			}
			summary.Values[path] = dv
		}

		// Track 2: fold the emitted configuration in list order.
		summary.Config = pubconfig.Merge(summary.Config, res.Config)

		summary.Warnings = append(summary.Warnings, res.Warnings...)
	}

	return summary
}

// safeDetect contains the fault isolation: a panicking detector is
// converted into a failed Outcome instead of tearing down the pass.
func safeDetect(d Detector, ctx project.Context) (out Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			out = Failed(fmt.Errorf("panic: %v", rec))
		}
	}()
	return d.Detect(ctx)
}

func sortedPaths(values map[string]DetectedValue) []string {
	paths := make([]string, 0, len(values))
	for p := range values {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
