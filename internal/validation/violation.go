// Package validation checks a resolved publishing configuration for
// completeness. Rules are pluggable; each produces severity-classified
// violations, and only ERROR severity blocks publishing.
package validation

// Severity classifies a violation. Only Error blocks; Warning and Info
// are advisory.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	case Info:
		return "INFO"
	default:
		return "UNKNOWN"
	}
}

// Violation is a structured finding about the configuration. Code is a
// stable machine-readable identifier; Suggestion, FixCommand and DocURL
// are optional remediation hints.
type Violation struct {
	Field      string
	Message    string
	Severity   Severity
	Code       string
	Suggestion string
	FixCommand string
	DocURL     string
}

// Stable violation codes emitted by the built-in validators.
const (
	CodeUsernameMissing    = "credentials.username.missing"
	CodePasswordMissing    = "credentials.password.missing"
	CodeProjectNameMissing = "project.name.missing"
	CodeProjectURLInvalid  = "project.url.invalid"

	CodeDescriptionMissing = "project.description.missing"
	CodeLicenseMissing     = "project.license.missing"
	CodeDevelopersMissing  = "project.developers.missing"
	CodeSCMMissing         = "project.scm.missing"

	CodeSigningPasswordMissing = "signing.password.missing"
	CodeSigningKeyRingMissing  = "signing.key-ring-file.missing"
	CodeSigningNotConfigured   = "signing.not-configured"
)
