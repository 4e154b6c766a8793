// Package cmd wires the pubresolve CLI: resolution of the publishing
// configuration for a project directory, a CI validation gate, and the
// usual version command.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Global flags shared across commands.
var (
	flagPath          string
	flagName          string
	flagConfig        string
	flagOutput        string
	flagShowVariable  string
	flagShowDetection bool
	flagNoDetect      bool
	flagAllowNetwork  bool
	flagStrict        bool
	flagVerbosity     string
)

// rootCmd is the top-level command for pubresolve.
var rootCmd = &cobra.Command{
	Use:   "pubresolve",
	Short: "Resolve publishing configuration for a project",
	Long: "pubresolve combines explicit configuration, environment variables, " +
		"auto-detected project facts, and fallback defaults into a complete, " +
		"validated publishing configuration.",
	// Default action is resolve.
	RunE: resolveRunE,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagPath, "path", "p", ".", "path to the project directory")
	rootCmd.PersistentFlags().StringVar(&flagName, "name", "", "declared project name (default: directory name)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default: auto-detect)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "output format: yaml, json, variables, or empty for yaml")
	rootCmd.PersistentFlags().StringVar(&flagShowVariable, "show-variable", "", "output a single variable (e.g. project.name)")
	rootCmd.PersistentFlags().BoolVar(&flagShowDetection, "show-detection", false, "show the detection summary on stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoDetect, "no-detect", false, "disable auto-detection")
	rootCmd.PersistentFlags().BoolVar(&flagAllowNetwork, "allow-network", false, "allow detectors that call remote APIs")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "treat warnings as blocking in check mode")
	rootCmd.PersistentFlags().StringVarP(&flagVerbosity, "verbosity", "v", "info", "log verbosity: quiet, info, debug")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
