package defaults

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MyCarrier-DevOps/go-pubresolve/internal/project"
	"github.com/MyCarrier-DevOps/go-pubresolve/internal/pubconfig"
)

func TestFallback_InfersDirectoryNameForPlaceholder(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-lib")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	ctx := project.NewDirContext(dir, project.WithDisplayName("root"))

	out := Apply(ctx, pubconfig.Config{}, DefaultProviders())

	require.Equal(t, "my-lib", out.Project.Name)

	// Credentials and signing secrets stay empty.
	require.Empty(t, out.Credentials.Username)
	require.Empty(t, out.Credentials.Password)
	require.Empty(t, out.Signing.KeyID)
	require.Empty(t, out.Signing.Password)
}

func TestFallback_UsesDeclaredName(t *testing.T) {
	ctx := project.NewDirContext(t.TempDir(), project.WithDisplayName("declared-lib"))
	out := Apply(ctx, pubconfig.Config{}, DefaultProviders())
	require.Equal(t, "declared-lib", out.Project.Name)
}

func TestFallback_MultiModuleComposite(t *testing.T) {
	ctx := project.NewDirContext(t.TempDir(),
		project.WithDisplayName("root"),
		project.WithModulePath("platform", "api", "core"),
	)
	out := Apply(ctx, pubconfig.Config{}, DefaultProviders())
	require.Equal(t, "platform-core", out.Project.Name)
}

func TestFallback_ConservativeDefaults(t *testing.T) {
	dir := t.TempDir()
	ctx := project.NewDirContext(dir)

	out := Apply(ctx, pubconfig.Config{}, DefaultProviders())

	require.Equal(t, PlaceholderDescription, out.Project.Description)
	require.Equal(t, "Apache-2.0", out.Project.License.Name)
	require.Equal(t, "repo", out.Project.License.Distribution)
	require.Equal(t, filepath.Join(dir, ".gnupg", "secring.gpg"), out.Signing.KeyRingFile)
	require.False(t, out.Publishing.AutoPublish)
	require.True(t, out.Publishing.Aggregate)
}
