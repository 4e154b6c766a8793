package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MyCarrier-DevOps/go-pubresolve/internal/output"
	"github.com/MyCarrier-DevOps/go-pubresolve/internal/validation"
)

// errCheckFailed signals a failed validation gate without an extra error
// line; the report already went to stderr.
var errCheckFailed = errors.New("publishing configuration check failed")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the resolved publishing configuration",
	Long: "check resolves the publishing configuration and exits non-zero " +
		"when it is invalid. With --strict, warnings also fail the check.",
	RunE: checkRunE,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func checkRunE(cmd *cobra.Command, _ []string) error {
	result, err := runResolution()
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), validation.FormatReport(result.Validation))

	if flagShowDetection {
		if err := output.WriteDetection(os.Stderr, result.Detection); err != nil {
			return fmt.Errorf("writing detection summary: %w", err)
		}
	}

	if !result.Validation.IsValid {
		return errCheckFailed
	}
	if result.Config.Validation.Strict && len(result.Validation.Warnings()) > 0 {
		return errCheckFailed
	}
	return nil
}
