// Package output renders resolved publishing configuration for the CLI:
// full YAML or JSON documents, flattened key=value pairs, and a
// human-readable detection summary.
package output

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/MyCarrier-DevOps/go-pubresolve/internal/pubconfig"
)

// Variables flattens a configuration into dotted-path keys. Secrets are
// redacted and empty fields are omitted; list-valued fields are joined
// with commas.
func Variables(cfg pubconfig.Config) map[string]string {
	vars := map[string]string{}
	set := func(key, value string) {
		if value != "" {
			vars[key] = value
		}
	}

	set("credentials.username", cfg.Credentials.Username)
	set("credentials.password", redact(cfg.Credentials.Password))

	set("project.name", cfg.Project.Name)
	set("project.description", cfg.Project.Description)
	set("project.url", cfg.Project.URL)
	set("project.scm.url", cfg.Project.SCM.URL)
	set("project.scm.connection", cfg.Project.SCM.Connection)
	set("project.scm.developer-connection", cfg.Project.SCM.DeveloperConnection)
	set("project.license.name", cfg.Project.License.Name)
	set("project.license.url", cfg.Project.License.URL)
	set("project.license.distribution", cfg.Project.License.Distribution)
	set("project.issue-tracker.system", cfg.Project.IssueTracker.System)
	set("project.issue-tracker.url", cfg.Project.IssueTracker.URL)

	devs := make([]string, 0, len(cfg.Project.Developers))
	for _, d := range cfg.Project.Developers {
		devs = append(devs, d.ID)
	}
	set("project.developers", strings.Join(devs, ","))

	set("signing.key-id", cfg.Signing.KeyID)
	set("signing.password", redact(cfg.Signing.Password))
	set("signing.key-ring-file", cfg.Signing.KeyRingFile)

	vars["publishing.auto-publish"] = strconv.FormatBool(cfg.Publishing.AutoPublish)
	vars["publishing.dry-run"] = strconv.FormatBool(cfg.Publishing.DryRun)
	vars["publishing.aggregate"] = strconv.FormatBool(cfg.Publishing.Aggregate)
	set("publishing.publications", strings.Join(cfg.Publishing.Publications, ","))
	set("publishing.exclusions", strings.Join(cfg.Publishing.Exclusions, ","))

	set("metadata.schema-version", cfg.Metadata.SchemaVersion)
	set("metadata.sources", strings.Join(cfg.Metadata.Sources, ","))

	return vars
}

func redact(secret string) string {
	if secret == "" {
		return ""
	}
	return "********"
}

// WriteVariable writes a single variable value to the writer.
func WriteVariable(w io.Writer, variables map[string]string, name string) error {
	val, ok := variables[name]
	if !ok {
		return fmt.Errorf("unknown variable %q", name)
	}
	_, err := fmt.Fprintln(w, val)
	return err
}

// WriteAll writes all variables as key=value pairs, sorted by key.
func WriteAll(w io.Writer, variables map[string]string) error {
	keys := make([]string, 0, len(variables))
	for k := range variables {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%s=%s\n", k, variables[k]); err != nil {
			return err
		}
	}
	return nil
}
