package pubresolve

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

func TestResolve_CompleteProject(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "publishing.yml",
		"credentials:\n  username: deploy\n  password: secret\n")
	writeFile(t, dir, "README.md", "# my-lib\n\nA small publishing helper.\n")
	writeFile(t, dir, "package.json", `{"name": "my-lib", "description": "A small publishing helper"}`)

	result, err := Resolve(Options{Path: dir})
	require.NoError(t, err)

	require.True(t, result.Valid)
	require.Equal(t, "my-lib", result.Variables["project.name"])
	require.Equal(t, "deploy", result.Variables["credentials.username"])
	require.Equal(t, "********", result.Variables["credentials.password"])
	require.Contains(t, string(result.YAML), "username: deploy")
	require.Contains(t, result.Report, "Publishing configuration is valid")
}

func TestResolve_EmptyProjectIsInvalidButComplete(t *testing.T) {
	dir := t.TempDir()

	result, err := Resolve(Options{Path: dir, DisableDetection: true})
	require.NoError(t, err)

	require.False(t, result.Valid)
	require.Contains(t, result.Report, "Publishing configuration is invalid")
	// Defaults still filled the descriptive gaps.
	require.Equal(t, filepath.Base(dir), result.Variables["project.name"])
	require.Equal(t, "Apache-2.0", result.Variables["project.license.name"])
}

func TestResolve_DeclaredNameAndProperties(t *testing.T) {
	dir := t.TempDir()

	result, err := Resolve(Options{
		Path:             dir,
		Name:             "platform",
		ModulePath:       []string{"platform", "core"},
		Properties:       map[string]string{"publish.username": "ci-bot"},
		DisableDetection: true,
	})
	require.NoError(t, err)

	require.Equal(t, "platform", result.Variables["project.name"])
	require.Equal(t, "ci-bot", result.Variables["credentials.username"])
}

func TestResolve_ExplicitConfigPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "custom.yml", "project:\n  name: custom-name\n")

	result, err := Resolve(Options{
		Path:             dir,
		ConfigPath:       filepath.Join(dir, "custom.yml"),
		DisableDetection: true,
	})
	require.NoError(t, err)
	require.Equal(t, "custom-name", result.Variables["project.name"])
}

func TestResolve_MalformedConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "publishing.yml", "project: [broken\n")

	_, err := Resolve(Options{Path: dir})
	require.Error(t, err)
}
