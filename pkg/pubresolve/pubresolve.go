// Package pubresolve provides a public Go API for resolving publishing
// configuration from a project directory. Explicit YAML configuration,
// environment variables, auto-detected project facts, and fallback
// defaults are combined into a complete, validated configuration.
//
// Basic usage:
//
//	result, err := pubresolve.Resolve(pubresolve.Options{
//	    Path: "/path/to/project",
//	})
//	fmt.Println(result.Variables["project.name"]) // "my-lib"
//	fmt.Println(result.Valid)                     // true
package pubresolve

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/MyCarrier-DevOps/go-pubresolve/internal/output"
	"github.com/MyCarrier-DevOps/go-pubresolve/internal/project"
	"github.com/MyCarrier-DevOps/go-pubresolve/internal/pubconfig"
	"github.com/MyCarrier-DevOps/go-pubresolve/internal/resolver"
	"github.com/MyCarrier-DevOps/go-pubresolve/internal/validation"
)

// Options configures a resolution pass.
type Options struct {
	// Path to the project directory. Defaults to "." if empty.
	Path string

	// Name is the declared project name. Defaults to the directory name.
	Name string

	// ModulePath lists module names from the build root to this project,
	// empty for a single-module build.
	ModulePath []string

	// Properties are declared build properties consulted before
	// environment variables.
	Properties map[string]string

	// ConfigPath is the path to a publishing YAML config file. If empty,
	// publishing.yml, .publishing.yml, and .github/publishing.yml are
	// tried in the project directory.
	ConfigPath string

	// DisableDetection turns off all detectors.
	DisableDetection bool

	// AllowNetwork permits detectors that call remote APIs.
	AllowNetwork bool
}

// Result holds the resolved configuration in consumer-friendly forms.
type Result struct {
	// Variables contains the resolved configuration flattened to dotted
	// keys, e.g. "project.name", "project.scm.connection". Secrets are
	// redacted.
	Variables map[string]string

	// YAML is the full resolved configuration document, secrets included.
	YAML []byte

	// Valid reports whether the configuration passed validation without
	// blocking errors.
	Valid bool

	// Report is the human-readable validation report.
	Report string

	// DetectionWarnings lists non-fatal detector problems.
	DetectionWarnings []string
}

// configFileNames lists the files searched for configuration in order.
var configFileNames = []string{
	"publishing.yml",
	".publishing.yml",
	".github/publishing.yml",
}

// Resolve produces the publishing configuration for a project directory.
func Resolve(opts Options) (*Result, error) {
	path := opts.Path
	if path == "" {
		path = "."
	}
	root, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving project path: %w", err)
	}

	explicit, err := loadConfig(opts.ConfigPath, root)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if opts.DisableDetection {
		explicit.Detection.Disabled = true
	}
	if opts.AllowNetwork {
		explicit.Detection.AllowNetwork = true
	}

	var ctxOpts []project.Option
	if opts.Name != "" {
		ctxOpts = append(ctxOpts, project.WithDisplayName(opts.Name))
	}
	if len(opts.ModulePath) > 0 {
		ctxOpts = append(ctxOpts, project.WithModulePath(opts.ModulePath...))
	}
	if opts.Properties != nil {
		ctxOpts = append(ctxOpts, project.WithProperties(opts.Properties))
	}
	ctx := project.NewDirContext(root, ctxOpts...)

	r := resolver.New(zerolog.Nop())
	res := r.Resolve(ctx, explicit)

	doc, err := pubconfig.Marshal(res.Config)
	if err != nil {
		return nil, fmt.Errorf("marshaling configuration: %w", err)
	}

	return &Result{
		Variables:         output.Variables(res.Config),
		YAML:              doc,
		Valid:             res.Validation.IsValid,
		Report:            validation.FormatReport(res.Validation),
		DetectionWarnings: res.Detection.Warnings,
	}, nil
}

// loadConfig loads configuration from a file path or auto-detects it.
func loadConfig(configPath, root string) (pubconfig.Config, error) {
	if configPath == "" {
		configPath = findConfigFile(root)
	}
	if configPath == "" {
		return pubconfig.Config{}, nil
	}
	return pubconfig.LoadFromFile(configPath)
}

// findConfigFile searches for a config file in the given directory.
func findConfigFile(dir string) string {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
