package defaults

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MyCarrier-DevOps/go-pubresolve/internal/project"
	"github.com/MyCarrier-DevOps/go-pubresolve/internal/pubconfig"
)

func nameProvider(name string, priority int, value string) Provider {
	return Provider{
		Name:     name,
		Priority: priority,
		Provide: func(project.Context, pubconfig.Config) pubconfig.Config {
			cfg := pubconfig.Config{}
			cfg.Project.Name = value
			return cfg
		},
	}
}

func TestApply_HigherPriorityClaimsFieldFirst(t *testing.T) {
	ctx := project.NewDirContext(t.TempDir())
	providers := []Provider{
		nameProvider("low", 10, "low-name"),
		nameProvider("high", 100, "high-name"),
	}

	out := Apply(ctx, pubconfig.Config{}, providers)
	require.Equal(t, "high-name", out.Project.Name)
}

func TestApply_NonEmptyInputNeverOverwritten(t *testing.T) {
	ctx := project.NewDirContext(t.TempDir())
	input := pubconfig.Config{}
	input.Project.Name = "explicit-name"

	out := Apply(ctx, input, []Provider{nameProvider("any", 1000, "default-name")})
	require.Equal(t, "explicit-name", out.Project.Name)
}

func TestApply_ApplicabilityPredicate(t *testing.T) {
	ctx := project.NewDirContext(t.TempDir())
	skipped := nameProvider("skipped", 100, "skipped-name")
	skipped.AppliesTo = func(project.Context) bool { return false }

	out := Apply(ctx, pubconfig.Config{}, []Provider{skipped, nameProvider("kept", 10, "kept-name")})
	require.Equal(t, "kept-name", out.Project.Name)
}

func TestApply_TiesKeepListOrder(t *testing.T) {
	ctx := project.NewDirContext(t.TempDir())
	providers := []Provider{
		nameProvider("first", 50, "first-name"),
		nameProvider("second", 50, "second-name"),
	}

	out := Apply(ctx, pubconfig.Config{}, providers)
	require.Equal(t, "first-name", out.Project.Name)
}

func TestApply_ProviderSeesAccumulator(t *testing.T) {
	ctx := project.NewDirContext(t.TempDir())
	var seen string
	echo := Provider{
		Name:     "echo",
		Priority: 10,
		Provide: func(_ project.Context, acc pubconfig.Config) pubconfig.Config {
			seen = acc.Project.Name
			cfg := pubconfig.Config{}
			cfg.Project.Description = "derived from " + acc.Project.Name
			return cfg
		},
	}

	out := Apply(ctx, pubconfig.Config{}, []Provider{nameProvider("high", 100, "base-name"), echo})
	require.Equal(t, "base-name", seen)
	require.Equal(t, "derived from base-name", out.Project.Description)
}

func TestApply_RecordsProvenance(t *testing.T) {
	ctx := project.NewDirContext(t.TempDir())
	out := Apply(ctx, pubconfig.Config{}, []Provider{nameProvider("fallback", 0, "x")})
	require.Contains(t, out.Metadata.Sources, "default:fallback")
}

func TestApply_EmptyCandidateContributesNothing(t *testing.T) {
	ctx := project.NewDirContext(t.TempDir())
	silent := Provider{
		Name:     "silent",
		Priority: 10,
		Provide: func(project.Context, pubconfig.Config) pubconfig.Config {
			return pubconfig.Config{}
		},
	}

	out := Apply(ctx, pubconfig.Config{}, []Provider{silent})
	require.True(t, out.IsEmpty())
	require.Empty(t, out.Metadata.Sources)
}
