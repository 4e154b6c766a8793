package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MyCarrier-DevOps/go-pubresolve/internal/detect"
)

// WriteDetection writes a human-readable summary of a detection pass:
// the detectors that ran, the best-confidence value table, and any
// warnings. Intended for stderr alongside machine output on stdout.
func WriteDetection(w io.Writer, summary detect.Summary) error {
	fmt.Fprintln(w, "Detectors run:")
	if len(summary.Ran) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, name := range summary.Ran {
		fmt.Fprintf(w, "  %s\n", name)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Detected values:")
	if len(summary.Values) == 0 {
		fmt.Fprintln(w, "  (none)")
	}

	paths := make([]string, 0, len(summary.Values))
	for p := range summary.Values {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, path := range paths {
		dv := summary.Values[path]
		fmt.Fprintf(w, "  %-34s %s (source: %s, confidence: %s)\n",
			path+":", dv.Value, dv.Source, dv.Confidence)
	}

	if len(summary.Warnings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Warnings:")
		for _, warning := range summary.Warnings {
			fmt.Fprintf(w, "  %s\n", warning)
		}
	}

	return nil
}

// FormatDetection returns the detection summary as a string.
func FormatDetection(summary detect.Summary) string {
	var sb strings.Builder
	_ = WriteDetection(&sb, summary)
	return sb.String()
}
