package validation

import "github.com/MyCarrier-DevOps/go-pubresolve/internal/pubconfig"

// Validator is one pluggable rule. Check inspects the full configuration
// and returns zero or more violations.
type Validator interface {
	Name() string
	Check(cfg pubconfig.Config) []Violation
}

// Result is the outcome of a validation pass. IsValid is true iff no
// violation carries ERROR severity.
type Result struct {
	Violations []Violation
	IsValid    bool
}

// Errors returns only the blocking violations.
func (r Result) Errors() []Violation {
	return r.bySeverity(Error)
}

// Warnings returns the advisory WARNING violations.
func (r Result) Warnings() []Violation {
	return r.bySeverity(Warning)
}

func (r Result) bySeverity(s Severity) []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Severity == s {
			out = append(out, v)
		}
	}
	return out
}

// Engine runs a registered list of validators. The rule set is open:
// validators can be added and removed at runtime, and registration order
// is preserved in the report.
type Engine struct {
	validators []Validator
}

// NewEngine creates an engine with the given validators.
func NewEngine(validators ...Validator) *Engine {
	return &Engine{validators: append([]Validator(nil), validators...)}
}

// Register appends a validator.
func (e *Engine) Register(v Validator) {
	e.validators = append(e.validators, v)
}

// Unregister removes the validator with the given name, if present.
func (e *Engine) Unregister(name string) {
	out := e.validators[:0]
	for _, v := range e.validators {
		if v.Name() != name {
			out = append(out, v)
		}
	}
	e.validators = out
}

// Validators returns the registered validator names in order.
func (e *Engine) Validators() []string {
	names := make([]string, 0, len(e.validators))
	for _, v := range e.validators {
		names = append(names, v.Name())
	}
	return names
}

// Validate runs every validator and concatenates the results. Violations
// whose codes are listed in the configuration's skip list are dropped
// before the verdict is computed.
func (e *Engine) Validate(cfg pubconfig.Config) Result {
	skip := map[string]bool{}
	for _, code := range cfg.Validation.SkipCodes {
		skip[code] = true
	}

	result := Result{IsValid: true}
	for _, v := range e.validators {
		for _, violation := range v.Check(cfg) {
			if skip[violation.Code] {
				continue
			}
			result.Violations = append(result.Violations, violation)
			if violation.Severity == Error {
				result.IsValid = false
			}
		}
	}
	return result
}

// DefaultValidators returns the built-in rule set.
func DefaultValidators() []Validator {
	return []Validator{
		RequiredFields{},
		ProjectMetadata{},
		SigningCompleteness{},
	}
}
