// Package pubconfig defines the publishing configuration model: an
// immutable value tree combined with a right-biased merge algebra and a
// gap-filling operation for default resolution. All operations return
// fresh values; nothing in this package mutates its inputs.
package pubconfig

import "time"

// SchemaVersion is the current configuration schema version, recorded in
// Metadata on every resolved configuration.
const SchemaVersion = "1"

// Config is the root of the publishing configuration tree.
type Config struct {
	Credentials Credentials       `yaml:"credentials"`
	Project     ProjectInfo       `yaml:"project"`
	Signing     Signing           `yaml:"signing"`
	Publishing  Publishing        `yaml:"publishing"`
	Validation  ValidationOptions `yaml:"validation"`
	Detection   DetectionOptions  `yaml:"detection"`
	Metadata    Metadata          `yaml:"metadata"`
}

// Credentials holds repository credentials. Never populated by defaults;
// only explicit input, environment lookup, or detection may supply them.
type Credentials struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// ProjectInfo describes the published artifact.
type ProjectInfo struct {
	Name         string       `yaml:"name"`
	Description  string       `yaml:"description"`
	URL          string       `yaml:"url"`
	SCM          SCMInfo      `yaml:"scm"`
	License      License      `yaml:"license"`
	Developers   []Developer  `yaml:"developers"`
	IssueTracker IssueTracker `yaml:"issue-tracker"`
}

// SCMInfo holds source-control coordinates in scm:<provider>:<url> form.
type SCMInfo struct {
	URL                 string `yaml:"url"`
	Connection          string `yaml:"connection"`
	DeveloperConnection string `yaml:"developer-connection"`
}

// License identifies the distribution license of the artifact.
type License struct {
	Name         string `yaml:"name"`
	URL          string `yaml:"url"`
	Distribution string `yaml:"distribution"`
}

// Developer is one entry of the project developer list.
type Developer struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// IssueTracker points at the project's issue tracker.
type IssueTracker struct {
	System string `yaml:"system"`
	URL    string `yaml:"url"`
}

// Signing holds artifact signing settings. The password is a secret and
// is never populated by defaults.
type Signing struct {
	KeyID       string `yaml:"key-id"`
	Password    string `yaml:"password"`
	KeyRingFile string `yaml:"key-ring-file"`
}

// Publishing holds release workflow options.
//
// Boolean fields have no representable unset state: a merge always takes
// the incoming side, and the defaults gap-fill treats false as empty.
type Publishing struct {
	AutoPublish  bool     `yaml:"auto-publish"`
	DryRun       bool     `yaml:"dry-run"`
	Aggregate    bool     `yaml:"aggregate"`
	Publications []string `yaml:"publications"`
	Exclusions   []string `yaml:"exclusions"`
}

// ValidationOptions tunes the validation engine.
type ValidationOptions struct {
	// Strict promotes WARNING violations to blocking for the consumer.
	Strict bool `yaml:"strict"`
	// SkipCodes lists violation codes the consumer chooses to ignore.
	SkipCodes []string `yaml:"skip-codes"`
}

// DetectionOptions tunes the auto-detection subsystem.
type DetectionOptions struct {
	// Disabled turns off all detectors.
	Disabled bool `yaml:"disabled"`
	// AllowNetwork permits detectors that call remote APIs.
	AllowNetwork bool `yaml:"allow-network"`
	// SkipDetectors lists detector names to exclude from the run.
	SkipDetectors []string `yaml:"skip-detectors"`
}

// Metadata records provenance about a configuration value. Sources is the
// one field group with union merge semantics: it accumulates the labels of
// every source that contributed, rather than being overwritten.
type Metadata struct {
	SchemaVersion string    `yaml:"schema-version"`
	Sources       []string  `yaml:"sources"`
	UpdatedAt     time.Time `yaml:"updated-at"`
}

// IsEmpty reports whether the configuration expresses no opinion at all.
// Metadata is excluded: provenance alone does not make a configuration
// non-empty.
func (c Config) IsEmpty() bool {
	return c.Credentials.IsEmpty() &&
		c.Project.IsEmpty() &&
		c.Signing.IsEmpty() &&
		c.Publishing.IsEmpty() &&
		c.Validation.IsEmpty() &&
		c.Detection.IsEmpty()
}

func (c Credentials) IsEmpty() bool {
	return c.Username == "" && c.Password == ""
}

func (p ProjectInfo) IsEmpty() bool {
	return p.Name == "" && p.Description == "" && p.URL == "" &&
		p.SCM.IsEmpty() && p.License.IsEmpty() &&
		len(p.Developers) == 0 && p.IssueTracker.IsEmpty()
}

func (s SCMInfo) IsEmpty() bool {
	return s.URL == "" && s.Connection == "" && s.DeveloperConnection == ""
}

func (l License) IsEmpty() bool {
	return l.Name == "" && l.URL == "" && l.Distribution == ""
}

func (t IssueTracker) IsEmpty() bool {
	return t.System == "" && t.URL == ""
}

func (s Signing) IsEmpty() bool {
	return s.KeyID == "" && s.Password == "" && s.KeyRingFile == ""
}

func (p Publishing) IsEmpty() bool {
	return !p.AutoPublish && !p.DryRun && !p.Aggregate &&
		len(p.Publications) == 0 && len(p.Exclusions) == 0
}

func (v ValidationOptions) IsEmpty() bool {
	return !v.Strict && len(v.SkipCodes) == 0
}

func (d DetectionOptions) IsEmpty() bool {
	return !d.Disabled && !d.AllowNetwork && len(d.SkipDetectors) == 0
}

// WithSource returns a copy of the configuration with the given
// provenance label added to Metadata.Sources.
func (c Config) WithSource(label string) Config {
	out := c
	out.Metadata.Sources = unionStrings(c.Metadata.Sources, []string{label})
	return out
}

// Stamp returns a copy with the schema version and last-modified
// timestamp set.
func (c Config) Stamp(now time.Time) Config {
	out := c
	out.Metadata.SchemaVersion = SchemaVersion
	out.Metadata.UpdatedAt = now
	return out
}
