package defaults

import (
	"path/filepath"

	"github.com/MyCarrier-DevOps/go-pubresolve/internal/project"
	"github.com/MyCarrier-DevOps/go-pubresolve/internal/pubconfig"
)

// placeholderNames are declared project names that carry no identity and
// are ignored by name inference.
var placeholderNames = map[string]bool{
	"root":        true,
	"unnamed":     true,
	"unspecified": true,
}

// PlaceholderDescription is the generic description supplied when no
// source produced one.
const PlaceholderDescription = "No description provided."

// Fallback returns the always-applicable, lowest-priority provider. It
// supplies an inferred project name, a placeholder description, a
// conservative open-source license, a deterministic key-ring path, and
// conservative publishing flags (manual publish, aggregation enabled).
// Credentials and signing secrets are never defaulted.
func Fallback() Provider {
	return Provider{
		Name:     "fallback",
		Priority: 0,
		Provide: func(ctx project.Context, _ pubconfig.Config) pubconfig.Config {
			cfg := pubconfig.Config{}
			cfg.Project.Name = inferProjectName(ctx)
			cfg.Project.Description = PlaceholderDescription
			cfg.Project.License = pubconfig.License{
				Name:         "Apache-2.0",
				URL:          "https://www.apache.org/licenses/LICENSE-2.0.txt",
				Distribution: "repo",
			}
			cfg.Signing.KeyRingFile = filepath.Join(ctx.RootDir(), ".gnupg", "secring.gpg")
			cfg.Publishing.AutoPublish = false
			cfg.Publishing.Aggregate = true
			return cfg
		},
	}
}

// inferProjectName picks the explicit identifier when it carries
// identity, falls back to a root-leaf composite for multi-module builds,
// and finally to the bare directory name.
func inferProjectName(ctx project.Context) string {
	if name := ctx.DisplayName(); name != "" && !placeholderNames[name] {
		return name
	}

	if mp := ctx.ModulePath(); len(mp) > 0 {
		if len(mp) == 1 {
			if !placeholderNames[mp[0]] {
				return mp[0]
			}
		} else {
			return mp[0] + "-" + mp[len(mp)-1]
		}
	}

	return filepath.Base(ctx.RootDir())
}

// DefaultProviders returns the built-in provider list.
func DefaultProviders() []Provider {
	return []Provider{Fallback()}
}
