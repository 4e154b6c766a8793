package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MyCarrier-DevOps/go-pubresolve/internal/logging"
	"github.com/MyCarrier-DevOps/go-pubresolve/internal/output"
	"github.com/MyCarrier-DevOps/go-pubresolve/internal/project"
	"github.com/MyCarrier-DevOps/go-pubresolve/internal/pubconfig"
	"github.com/MyCarrier-DevOps/go-pubresolve/internal/resolver"
	"github.com/MyCarrier-DevOps/go-pubresolve/internal/validation"
)

// configFileNames lists the files searched for configuration in order.
// Checks the project root first, then .github/.
var configFileNames = []string{
	"publishing.yml",
	".publishing.yml",
	".github/publishing.yml",
}

func resolveRunE(_ *cobra.Command, _ []string) error {
	result, err := runResolution()
	if err != nil {
		return err
	}

	if flagShowDetection {
		if err := output.WriteDetection(os.Stderr, result.Detection); err != nil {
			return fmt.Errorf("writing detection summary: %w", err)
		}
	}

	fmt.Fprint(os.Stderr, validation.FormatReport(result.Validation))

	return writeOutput(result.Config)
}

// runResolution performs the shared resolve flow for the resolve and
// check commands.
func runResolution() (resolver.Result, error) {
	logger, err := logging.Setup(flagVerbosity)
	if err != nil {
		return resolver.Result{}, err
	}

	root, err := filepath.Abs(flagPath)
	if err != nil {
		return resolver.Result{}, fmt.Errorf("resolving project path: %w", err)
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return resolver.Result{}, fmt.Errorf("project directory %q not found", flagPath)
	}

	explicit, err := loadExplicitConfig(root)
	if err != nil {
		return resolver.Result{}, fmt.Errorf("loading configuration: %w", err)
	}

	if flagNoDetect {
		explicit.Detection.Disabled = true
	}
	if flagAllowNetwork {
		explicit.Detection.AllowNetwork = true
	}
	if flagStrict {
		explicit.Validation.Strict = true
	}

	var opts []project.Option
	if flagName != "" {
		opts = append(opts, project.WithDisplayName(flagName))
	}
	ctx := project.NewDirContext(root, opts...)

	r := resolver.New(logger)
	return r.Resolve(ctx, explicit), nil
}

// loadExplicitConfig loads the explicit configuration layer from a file,
// or returns an empty configuration when none is declared or found.
func loadExplicitConfig(root string) (pubconfig.Config, error) {
	path := flagConfig
	if path == "" {
		path = findConfigFile(root)
	}
	if path == "" {
		return pubconfig.Config{}, nil
	}
	return pubconfig.LoadFromFile(path)
}

// findConfigFile searches for a config file in the project directory.
func findConfigFile(dir string) string {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// writeOutput writes the resolved configuration in the requested format.
func writeOutput(cfg pubconfig.Config) error {
	w := os.Stdout

	if flagShowVariable != "" {
		return output.WriteVariable(w, output.Variables(cfg), flagShowVariable)
	}

	switch flagOutput {
	case "yaml", "":
		return output.WriteYAML(w, cfg)
	case "json":
		return output.WriteJSON(w, cfg)
	case "variables":
		return output.WriteAll(w, output.Variables(cfg))
	default:
		return fmt.Errorf("unknown output format %q", flagOutput)
	}
}
