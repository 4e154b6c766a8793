package resolver

import (
	"github.com/MyCarrier-DevOps/go-pubresolve/internal/project"
	"github.com/MyCarrier-DevOps/go-pubresolve/internal/pubconfig"
)

// SourceEnvironment labels configuration values read from environment
// variables or declared build properties.
const SourceEnvironment = "environment"

// envBinding ties one configuration field to its property and
// environment variable names. The property wins when both are declared.
type envBinding struct {
	property string
	env      string
	assign   func(cfg *pubconfig.Config, value string)
}

var envBindings = []envBinding{
	{"publish.username", "PUBLISH_USERNAME", func(c *pubconfig.Config, v string) { c.Credentials.Username = v }},
	{"publish.password", "PUBLISH_PASSWORD", func(c *pubconfig.Config, v string) { c.Credentials.Password = v }},
	{"signing.keyId", "SIGNING_KEY_ID", func(c *pubconfig.Config, v string) { c.Signing.KeyID = v }},
	{"signing.password", "SIGNING_PASSWORD", func(c *pubconfig.Config, v string) { c.Signing.Password = v }},
	{"signing.secretKeyRingFile", "SIGNING_KEY_RING_FILE", func(c *pubconfig.Config, v string) { c.Signing.KeyRingFile = v }},
}

// environmentConfig builds the environment/property layer of the
// precedence order. It covers credentials and signing values only; all
// descriptive metadata comes from files, detection, or defaults.
func environmentConfig(ctx project.Context) pubconfig.Config {
	cfg := pubconfig.Config{}
	found := false

	for _, b := range envBindings {
		if v, ok := ctx.Property(b.property); ok && v != "" {
			b.assign(&cfg, v)
			found = true
			continue
		}
		if v, ok := ctx.Env(b.env); ok && v != "" {
			b.assign(&cfg, v)
			found = true
		}
	}

	if !found {
		return pubconfig.Config{}
	}
	return cfg.WithSource(SourceEnvironment)
}
