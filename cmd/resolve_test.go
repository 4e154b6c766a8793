package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func resetFlags(t *testing.T) {
	t.Helper()
	origPath, origConfig := flagPath, flagConfig
	origNoDetect, origVerbosity := flagNoDetect, flagVerbosity
	t.Cleanup(func() {
		flagPath, flagConfig = origPath, origConfig
		flagNoDetect, flagVerbosity = origNoDetect, origVerbosity
	})
}

func TestFindConfigFile_SearchOrder(t *testing.T) {
	dir := t.TempDir()
	require.Empty(t, findConfigFile(dir))

	writeFile(t, dir, ".github/publishing.yml", "project:\n  name: from-github\n")
	require.Equal(t, filepath.Join(dir, ".github", "publishing.yml"), findConfigFile(dir))

	// A root-level file takes precedence over .github/.
	writeFile(t, dir, "publishing.yml", "project:\n  name: from-root\n")
	require.Equal(t, filepath.Join(dir, "publishing.yml"), findConfigFile(dir))
}

func TestLoadExplicitConfig(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()

	// No file anywhere yields an empty configuration, not an error.
	flagConfig = ""
	cfg, err := loadExplicitConfig(dir)
	require.NoError(t, err)
	require.True(t, cfg.IsEmpty())

	writeFile(t, dir, "publishing.yml", "project:\n  name: my-lib\n")
	cfg, err = loadExplicitConfig(dir)
	require.NoError(t, err)
	require.Equal(t, "my-lib", cfg.Project.Name)

	// Malformed input fails fast.
	writeFile(t, dir, "broken.yml", "project: [not a mapping\n")
	flagConfig = filepath.Join(dir, "broken.yml")
	_, err = loadExplicitConfig(dir)
	require.Error(t, err)
}

func TestRunResolution_EndToEnd(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	writeFile(t, dir, "publishing.yml",
		"credentials:\n  username: deploy\n  password: secret\nproject:\n  name: my-lib\n")

	flagPath = dir
	flagConfig = ""
	flagNoDetect = true
	flagVerbosity = "quiet"

	result, err := runResolution()
	require.NoError(t, err)

	require.Equal(t, "my-lib", result.Config.Project.Name)
	require.True(t, result.Validation.IsValid)
	require.Empty(t, result.Detection.Ran)
	require.Contains(t, result.Config.Metadata.Sources, "explicit")
	require.Contains(t, result.Config.Metadata.Sources, "default:fallback")
}

func TestRunResolution_MissingDirectory(t *testing.T) {
	resetFlags(t)
	flagPath = filepath.Join(t.TempDir(), "does-not-exist")
	flagVerbosity = "quiet"

	_, err := runResolution()
	require.Error(t, err)
}
