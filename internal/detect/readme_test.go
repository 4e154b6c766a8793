package detect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MyCarrier-DevOps/go-pubresolve/internal/project"
)

func writeProjectFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestReadmeDetector_TitleAndParagraph(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "README.md", `# my-lib

[![CI](https://example.com/badge.svg)](https://example.com)

A small library for doing one thing
well, with no dependencies.

## Installation

Run the installer.
`)

	out := ReadmeDetector{}.Detect(project.NewDirContext(dir))
	require.NoError(t, out.Err)
	require.NotNil(t, out.Result)

	cfg := out.Result.Config
	require.Equal(t, "my-lib", cfg.Project.Name)
	require.Equal(t, "A small library for doing one thing well, with no dependencies.", cfg.Project.Description)

	require.Equal(t, Medium, out.Result.Values[PathProjectName].Confidence)
	require.Equal(t, Medium, out.Result.Values[PathProjectDescription].Confidence)
	require.Equal(t, "readme", out.Result.Values[PathProjectName].Source)
}

func TestReadmeDetector_SetextHeading(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "README", "my-tool\n=======\n\nDoes tool things.\n")

	out := ReadmeDetector{}.Detect(project.NewDirContext(dir))
	require.NoError(t, out.Err)
	require.NotNil(t, out.Result)
	require.Equal(t, "my-tool", out.Result.Config.Project.Name)
	require.Equal(t, "Does tool things.", out.Result.Config.Project.Description)
}

func TestReadmeDetector_NoReadme(t *testing.T) {
	out := ReadmeDetector{}.Detect(project.NewDirContext(t.TempDir()))
	require.NoError(t, out.Err)
	require.Nil(t, out.Result)
}

func TestReadmeDetector_OnlyBadges(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "README.md", "[![CI](https://x)](https://y)\n\n![logo](logo.png)\n")

	out := ReadmeDetector{}.Detect(project.NewDirContext(dir))
	require.NoError(t, out.Err)
	require.Nil(t, out.Result)
}

func TestScanReadme_ParagraphStopsAtBlankLine(t *testing.T) {
	title, desc := scanReadme("# lib\n\nFirst paragraph.\n\nSecond paragraph.\n")
	require.Equal(t, "lib", title)
	require.Equal(t, "First paragraph.", desc)
}
