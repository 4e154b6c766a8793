package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MyCarrier-DevOps/go-pubresolve/internal/detect"
)

func TestWriteDetection(t *testing.T) {
	summary := detect.Summary{
		Ran: []string{"manifest", "git-remote"},
		Values: map[string]detect.DetectedValue{
			detect.PathProjectURL: {
				Path:       detect.PathProjectURL,
				Value:      "https://github.com/org/repo",
				Source:     "git-remote",
				Confidence: detect.High,
			},
			detect.PathProjectName: {
				Path:       detect.PathProjectName,
				Value:      "repo",
				Source:     "manifest",
				Confidence: detect.Medium,
			},
		},
		Warnings: []string{"Detector 'readme' failed: boom"},
	}

	out := FormatDetection(summary)

	require.Contains(t, out, "Detectors run:")
	require.Contains(t, out, "  manifest")
	require.Contains(t, out, "  git-remote")
	require.Contains(t, out, "https://github.com/org/repo (source: git-remote, confidence: HIGH)")
	require.Contains(t, out, "repo (source: manifest, confidence: MEDIUM)")
	require.Contains(t, out, "Warnings:")
	require.Contains(t, out, "Detector 'readme' failed: boom")

	// Table is sorted by path.
	require.Less(t,
		strings.Index(out, "project.name"),
		strings.Index(out, "project.url"))
}

func TestWriteDetection_Empty(t *testing.T) {
	out := FormatDetection(detect.Summary{})
	require.Contains(t, out, "Detectors run:\n  (none)")
	require.Contains(t, out, "Detected values:\n  (none)")
	require.NotContains(t, out, "Warnings:")
}
