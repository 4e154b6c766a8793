package detect

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MyCarrier-DevOps/go-pubresolve/internal/project"
	"github.com/MyCarrier-DevOps/go-pubresolve/internal/testutil"
)

func TestGitRemoteDetector_SSHRemote(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.WriteFile("file.txt", "x")
	repo.Commit("initial")
	repo.SetRemote("origin", "git@github.com:org/repo.git")

	out := GitRemoteDetector{}.Detect(project.NewDirContext(repo.Path()))
	require.NoError(t, out.Err)
	require.NotNil(t, out.Result)

	cfg := out.Result.Config
	require.Equal(t, "https://github.com/org/repo", cfg.Project.URL)
	require.Equal(t, "https://github.com/org/repo", cfg.Project.SCM.URL)
	require.Equal(t, "scm:git:https://github.com/org/repo.git", cfg.Project.SCM.Connection)
	require.Equal(t, "scm:git:git@github.com:org/repo.git", cfg.Project.SCM.DeveloperConnection)

	for _, path := range []string{PathProjectURL, PathSCMURL, PathSCMConnection, PathSCMDeveloperConnection} {
		dv, ok := out.Result.Values[path]
		require.True(t, ok, path)
		require.Equal(t, High, dv.Confidence, path)
		require.Equal(t, "git-remote", dv.Source)
	}

	// GitHub host also yields an issue tracker at MEDIUM.
	require.Equal(t, "GitHub", cfg.Project.IssueTracker.System)
	require.Equal(t, "https://github.com/org/repo/issues", cfg.Project.IssueTracker.URL)
	require.Equal(t, Medium, out.Result.Values[PathIssueTrackerURL].Confidence)
}

func TestGitRemoteDetector_HTTPSRemote(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.WriteFile("file.txt", "x")
	repo.Commit("initial")
	repo.SetRemote("origin", "https://gitlab.example.com/group/tool.git")

	out := GitRemoteDetector{}.Detect(project.NewDirContext(repo.Path()))
	require.NoError(t, out.Err)
	require.NotNil(t, out.Result)

	cfg := out.Result.Config
	require.Equal(t, "https://gitlab.example.com/group/tool", cfg.Project.URL)
	require.Equal(t, "scm:git:https://gitlab.example.com/group/tool.git", cfg.Project.SCM.Connection)
	require.Equal(t, "scm:git:https://gitlab.example.com/group/tool.git", cfg.Project.SCM.DeveloperConnection)

	// Non-GitHub host: no issue tracker guess.
	require.True(t, cfg.Project.IssueTracker.IsEmpty())
}

func TestGitRemoteDetector_NoRepository(t *testing.T) {
	out := GitRemoteDetector{}.Detect(project.NewDirContext(t.TempDir()))
	require.NoError(t, out.Err)
	require.Nil(t, out.Result)
}

func TestGitRemoteDetector_NoRemote(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.WriteFile("file.txt", "x")
	repo.Commit("initial")

	out := GitRemoteDetector{}.Detect(project.NewDirContext(repo.Path()))
	require.NoError(t, out.Err)
	require.Nil(t, out.Result)
}

func TestGitRemoteDetector_NonOriginFallback(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.WriteFile("file.txt", "x")
	repo.Commit("initial")
	repo.SetRemote("upstream", "git@github.com:up/stream.git")

	out := GitRemoteDetector{}.Detect(project.NewDirContext(repo.Path()))
	require.NoError(t, out.Err)
	require.NotNil(t, out.Result)
	require.Equal(t, "https://github.com/up/stream", out.Result.Config.Project.URL)
}

func TestParseRemoteURL(t *testing.T) {
	tests := []struct {
		raw  string
		host string
		path string
		ok   bool
	}{
		{"git@github.com:org/repo.git", "github.com", "org/repo", true},
		{"git@github.com:org/repo", "github.com", "org/repo", true},
		{"https://github.com/org/repo.git", "github.com", "org/repo", true},
		{"http://git.example.com/deep/group/repo.git", "git.example.com", "deep/group/repo", true},
		{"ssh://git@github.com/org/repo.git", "github.com", "org/repo", true},
		{"ssh://git@bitbucket.org:7999/org/repo.git", "bitbucket.org", "org/repo", true},
		{"git://host.example/org/repo.git", "host.example", "org/repo", true},
		{"/local/path/repo", "", "", false},
		{"", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			info, ok := parseRemoteURL(tc.raw)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				require.Equal(t, tc.host, info.host)
				require.Equal(t, tc.path, info.path)
			}
		})
	}
}

func TestRemoteInfo_OwnerRepo(t *testing.T) {
	info, ok := parseRemoteURL("git@github.com:org/repo.git")
	require.True(t, ok)
	owner, repo, ok := info.ownerRepo()
	require.True(t, ok)
	require.Equal(t, "org", owner)
	require.Equal(t, "repo", repo)

	info, ok = parseRemoteURL("https://host.example/a/b/c.git")
	require.True(t, ok)
	_, _, ok = info.ownerRepo()
	require.False(t, ok)
}
