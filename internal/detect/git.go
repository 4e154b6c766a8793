package detect

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"

	"github.com/MyCarrier-DevOps/go-pubresolve/internal/project"
	"github.com/MyCarrier-DevOps/go-pubresolve/internal/pubconfig"
)

// GitRemoteDetector derives the project URL and SCM coordinates from the
// primary git remote of the repository at the project root.
type GitRemoteDetector struct{}

func (GitRemoteDetector) Name() string { return "git-remote" }

func (GitRemoteDetector) Detect(ctx project.Context) Outcome {
	repo, err := gogit.PlainOpenWithOptions(ctx.RootDir(), &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return NoSignal()
		}
		return Failed(fmt.Errorf("opening git repository: %w", err))
	}

	raw, err := primaryRemoteURL(repo)
	if err != nil {
		return Failed(err)
	}
	if raw == "" {
		return NoSignal()
	}

	remote, ok := parseRemoteURL(raw)
	if !ok {
		b := newResultBuilder("git-remote")
		b.warnf("unrecognized remote URL %q", raw)
		return b.outcome(pubconfig.Config{})
	}

	browseURL := remote.browseURL()

	b := newResultBuilder("git-remote")
	b.set(PathProjectURL, browseURL, High)
	b.set(PathSCMURL, browseURL, High)
	b.set(PathSCMConnection, "scm:git:"+browseURL+".git", High)
	b.set(PathSCMDeveloperConnection, "scm:git:"+raw, High)

	cfg := pubconfig.Config{}
	cfg.Project.URL = browseURL
	cfg.Project.SCM = pubconfig.SCMInfo{
		URL:                 browseURL,
		Connection:          "scm:git:" + browseURL + ".git",
		DeveloperConnection: "scm:git:" + raw,
	}

	if remote.isGitHub() {
		issues := browseURL + "/issues"
		b.set(PathIssueTrackerSystem, "GitHub", Medium)
		b.set(PathIssueTrackerURL, issues, Medium)
		cfg.Project.IssueTracker = pubconfig.IssueTracker{System: "GitHub", URL: issues}
	}

	return b.outcome(cfg)
}

// primaryRemoteURL returns the first URL of the "origin" remote, or of
// the alphabetically first remote when origin is absent.
func primaryRemoteURL(repo *gogit.Repository) (string, error) {
	if remote, err := repo.Remote("origin"); err == nil {
		if urls := remote.Config().URLs; len(urls) > 0 {
			return urls[0], nil
		}
		return "", nil
	}

	remotes, err := repo.Remotes()
	if err != nil {
		return "", fmt.Errorf("listing remotes: %w", err)
	}
	if len(remotes) == 0 {
		return "", nil
	}

	sort.Slice(remotes, func(i, j int) bool {
		return remotes[i].Config().Name < remotes[j].Config().Name
	})
	if urls := remotes[0].Config().URLs; len(urls) > 0 {
		return urls[0], nil
	}
	return "", nil
}

// remoteInfo is a parsed git remote address.
type remoteInfo struct {
	host string
	path string // owner/repo without the .git suffix
}

func (r remoteInfo) browseURL() string {
	return "https://" + r.host + "/" + r.path
}

func (r remoteInfo) isGitHub() bool {
	return r.host == "github.com" || strings.HasPrefix(r.host, "github.")
}

// ownerRepo splits the path into owner and repository name. ok is false
// for paths with more or fewer than two segments.
func (r remoteInfo) ownerRepo() (owner, repo string, ok bool) {
	parts := strings.Split(r.path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// parseRemoteURL understands the common remote URL shapes:
// scp-like (git@host:path.git), ssh://, git://, http:// and https://.
func parseRemoteURL(raw string) (remoteInfo, bool) {
	trim := func(p string) string {
		p = strings.TrimPrefix(p, "/")
		p = strings.TrimSuffix(p, "/")
		return strings.TrimSuffix(p, ".git")
	}

	for _, scheme := range []string{"ssh://", "git://", "https://", "http://"} {
		if !strings.HasPrefix(raw, scheme) {
			continue
		}
		rest := strings.TrimPrefix(raw, scheme)
		if at := strings.Index(rest, "@"); at >= 0 {
			rest = rest[at+1:]
		}
		slash := strings.Index(rest, "/")
		if slash <= 0 {
			return remoteInfo{}, false
		}
		host := rest[:slash]
		if colon := strings.Index(host, ":"); colon >= 0 {
			host = host[:colon]
		}
		path := trim(rest[slash:])
		if host == "" || path == "" {
			return remoteInfo{}, false
		}
		return remoteInfo{host: host, path: path}, true
	}

	// scp-like syntax: [user@]host:path
	if colon := strings.Index(raw, ":"); colon > 0 && !strings.Contains(raw[:colon], "/") {
		host := raw[:colon]
		if at := strings.Index(host, "@"); at >= 0 {
			host = host[at+1:]
		}
		path := trim(raw[colon+1:])
		if host == "" || path == "" {
			return remoteInfo{}, false
		}
		return remoteInfo{host: host, path: path}, true
	}

	return remoteInfo{}, false
}
