package validation

import (
	"fmt"
	"net/url"

	"github.com/MyCarrier-DevOps/go-pubresolve/internal/pubconfig"
)

const docBaseURL = "https://github.com/MyCarrier-DevOps/go-pubresolve/blob/main/docs"

// RequiredFields is the built-in blocking rule: repository credentials
// and a project name must be present, and the project URL, when present,
// must carry an http or https scheme.
type RequiredFields struct{}

func (RequiredFields) Name() string { return "required-fields" }

func (RequiredFields) Check(cfg pubconfig.Config) []Violation {
	var out []Violation

	if cfg.Credentials.Username == "" {
		out = append(out, Violation{
			Field:      "credentials.username",
			Message:    "repository username is not set",
			Severity:   Error,
			Code:       CodeUsernameMissing,
			Suggestion: "set credentials.username in publishing.yml or export PUBLISH_USERNAME",
			FixCommand: "export PUBLISH_USERNAME=<username>",
			DocURL:     docBaseURL + "/credentials.md",
		})
	}

	if cfg.Credentials.Password == "" {
		out = append(out, Violation{
			Field:      "credentials.password",
			Message:    "repository password is not set",
			Severity:   Error,
			Code:       CodePasswordMissing,
			Suggestion: "export PUBLISH_PASSWORD rather than committing it to a file",
			FixCommand: "export PUBLISH_PASSWORD=<password>",
			DocURL:     docBaseURL + "/credentials.md",
		})
	}

	if cfg.Project.Name == "" {
		out = append(out, Violation{
			Field:      "project.name",
			Message:    "project name is not set",
			Severity:   Error,
			Code:       CodeProjectNameMissing,
			Suggestion: "set project.name in publishing.yml",
		})
	}

	if cfg.Project.URL != "" && !isHTTPURL(cfg.Project.URL) {
		out = append(out, Violation{
			Field:      "project.url",
			Message:    fmt.Sprintf("project URL %q is not a valid http(s) URL", cfg.Project.URL),
			Severity:   Error,
			Code:       CodeProjectURLInvalid,
			Suggestion: "use a fully qualified URL starting with https://",
		})
	}

	return out
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
