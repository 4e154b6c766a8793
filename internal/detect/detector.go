// Package detect implements pluggable auto-detection of publishing
// configuration values from the project context. Detectors produce
// partial configurations with per-field confidence; the Runner folds them
// in list order and keeps a best-confidence table for diagnostics.
package detect

import (
	"fmt"

	"github.com/MyCarrier-DevOps/go-pubresolve/internal/project"
	"github.com/MyCarrier-DevOps/go-pubresolve/internal/pubconfig"
)

// Confidence ranks how much a detected value should be trusted.
// Ordering: High > Medium > Low.
type Confidence int

const (
	Low Confidence = iota
	Medium
	High
)

func (c Confidence) String() string {
	switch c {
	case High:
		return "HIGH"
	case Medium:
		return "MEDIUM"
	case Low:
		return "LOW"
	default:
		return "UNKNOWN"
	}
}

// Field paths used in the confidence table.
const (
	PathProjectName            = "project.name"
	PathProjectDescription     = "project.description"
	PathProjectURL             = "project.url"
	PathSCMURL                 = "project.scm.url"
	PathSCMConnection          = "project.scm.connection"
	PathSCMDeveloperConnection = "project.scm.developer-connection"
	PathLicenseName            = "project.license.name"
	PathLicenseURL             = "project.license.url"
	PathIssueTrackerSystem     = "project.issue-tracker.system"
	PathIssueTrackerURL        = "project.issue-tracker.url"
)

// DetectedValue is one discovered configuration value with provenance.
type DetectedValue struct {
	Path       string
	Value      string
	Source     string
	Confidence Confidence
}

// Result is a single detector's contribution: a partial configuration,
// the per-field detected values, and any non-fatal warnings.
type Result struct {
	Config   pubconfig.Config
	Values   map[string]DetectedValue
	Warnings []string
}

// Outcome makes the three detector exits explicit: a result, no signal,
// or a captured failure. Detectors never panic through to the Runner;
// probe errors are carried in Err and downgraded to warnings there.
type Outcome struct {
	Result *Result
	Err    error
}

// Found wraps a successful detection.
func Found(r Result) Outcome { return Outcome{Result: &r} }

// NoSignal reports that the detector had nothing useful to contribute.
func NoSignal() Outcome { return Outcome{} }

// Failed captures a probe failure.
func Failed(err error) Outcome { return Outcome{Err: err} }

// Detector is a pluggable probe over the project context.
type Detector interface {
	Name() string
	Detect(ctx project.Context) Outcome
}

// networkDetector marks detectors that call remote services; the Runner
// skips them unless detection options allow network access.
type networkDetector interface {
	RequiresNetwork() bool
}

// resultBuilder accumulates a Result for a single detector.
type resultBuilder struct {
	source string
	result Result
}

func newResultBuilder(source string) *resultBuilder {
	return &resultBuilder{
		source: source,
		result: Result{Values: map[string]DetectedValue{}},
	}
}

func (b *resultBuilder) set(path, value string, confidence Confidence) {
	if value == "" {
		return
	}
	b.result.Values[path] = DetectedValue{
		Path:       path,
		Value:      value,
		Source:     b.source,
		Confidence: confidence,
	}
}

func (b *resultBuilder) warnf(format string, args ...any) {
	b.result.Warnings = append(b.result.Warnings, fmt.Sprintf(format, args...))
}

// outcome finalizes the builder: no recorded values means no signal.
func (b *resultBuilder) outcome(cfg pubconfig.Config) Outcome {
	if len(b.result.Values) == 0 && len(b.result.Warnings) == 0 {
		return NoSignal()
	}
	b.result.Config = cfg.WithSource(b.source)
	return Found(b.result)
}
