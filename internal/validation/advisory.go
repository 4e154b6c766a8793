package validation

import "github.com/MyCarrier-DevOps/go-pubresolve/internal/pubconfig"

// ProjectMetadata flags incomplete descriptive metadata. Repositories
// such as Maven Central require these sections; missing ones surface as
// warnings well before an upload is rejected.
type ProjectMetadata struct{}

func (ProjectMetadata) Name() string { return "project-metadata" }

func (ProjectMetadata) Check(cfg pubconfig.Config) []Violation {
	var out []Violation

	if cfg.Project.Description == "" {
		out = append(out, Violation{
			Field:      "project.description",
			Message:    "project description is empty",
			Severity:   Warning,
			Code:       CodeDescriptionMissing,
			Suggestion: "set project.description in publishing.yml",
		})
	}

	if cfg.Project.License.IsEmpty() {
		out = append(out, Violation{
			Field:      "project.license",
			Message:    "no license declared",
			Severity:   Warning,
			Code:       CodeLicenseMissing,
			Suggestion: "declare project.license.name and project.license.url",
		})
	}

	if len(cfg.Project.Developers) == 0 {
		out = append(out, Violation{
			Field:      "project.developers",
			Message:    "developer list is empty",
			Severity:   Warning,
			Code:       CodeDevelopersMissing,
			Suggestion: "add at least one entry under project.developers",
		})
	}

	if cfg.Project.SCM.Connection == "" {
		out = append(out, Violation{
			Field:    "project.scm.connection",
			Message:  "source-control connection is empty",
			Severity: Info,
			Code:     CodeSCMMissing,
		})
	}

	return out
}

// SigningCompleteness checks that signing settings form a usable set
// when any of them is present.
type SigningCompleteness struct{}

func (SigningCompleteness) Name() string { return "signing" }

func (SigningCompleteness) Check(cfg pubconfig.Config) []Violation {
	s := cfg.Signing

	if s.KeyID == "" && s.Password == "" {
		return []Violation{{
			Field:    "signing",
			Message:  "artifact signing is not configured",
			Severity: Info,
			Code:     CodeSigningNotConfigured,
		}}
	}

	var out []Violation
	if s.KeyID != "" && s.Password == "" {
		out = append(out, Violation{
			Field:      "signing.password",
			Message:    "signing key is configured but its password is not set",
			Severity:   Warning,
			Code:       CodeSigningPasswordMissing,
			FixCommand: "export SIGNING_PASSWORD=<passphrase>",
		})
	}
	if s.KeyID != "" && s.KeyRingFile == "" {
		out = append(out, Violation{
			Field:      "signing.key-ring-file",
			Message:    "signing key is configured but no key-ring file is set",
			Severity:   Warning,
			Code:       CodeSigningKeyRingMissing,
			Suggestion: "set signing.key-ring-file to the exported secret key ring",
		})
	}
	return out
}
