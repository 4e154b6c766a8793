package detect

import (
	"context"
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"

	ghprovider "github.com/MyCarrier-DevOps/go-pubresolve/internal/github"
	"github.com/MyCarrier-DevOps/go-pubresolve/internal/project"
	"github.com/MyCarrier-DevOps/go-pubresolve/internal/pubconfig"
)

// FetchFunc retrieves repository metadata for owner/repo using
// credentials resolved from the project context.
type FetchFunc func(ctx project.Context, owner, repo string) (ghprovider.RepositoryMetadata, error)

// GitHubAPIDetector enriches the configuration with the repository
// description, homepage, and license reported by the GitHub API. It only
// runs when detection options allow network access, the primary remote is
// a GitHub repository, and credentials resolve from the context.
type GitHubAPIDetector struct {
	fetch FetchFunc
}

// NewGitHubAPIDetector creates the detector with the real API client.
func NewGitHubAPIDetector() *GitHubAPIDetector {
	return &GitHubAPIDetector{fetch: apiFetch}
}

// NewGitHubAPIDetectorWithFetch injects a fetch function, for tests.
func NewGitHubAPIDetectorWithFetch(fetch FetchFunc) *GitHubAPIDetector {
	return &GitHubAPIDetector{fetch: fetch}
}

func (*GitHubAPIDetector) Name() string { return "github-api" }

func (*GitHubAPIDetector) RequiresNetwork() bool { return true }

func (d *GitHubAPIDetector) Detect(ctx project.Context) Outcome {
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
	remote, ok := parseRemoteURL(raw)
	if !ok || !remote.isGitHub() {
		return NoSignal()
	}
	owner, name, ok := remote.ownerRepo()
	if !ok {
		return NoSignal()
	}

	if !(ghprovider.ClientConfig{Owner: owner, Lookup: ctx.Env}).HasCredentials() {
		return NoSignal()
	}

	meta, err := d.fetch(ctx, owner, name)
	if err != nil {
		return Failed(err)
	}

	licenseName := meta.LicenseSPDX
	if licenseName == "" {
		licenseName = meta.LicenseName
	}

	b := newResultBuilder("github-api")
	b.set(PathProjectDescription, meta.Description, Medium)
	b.set(PathProjectURL, meta.Homepage, Medium)
	b.set(PathLicenseName, licenseName, Medium)
	b.set(PathLicenseURL, meta.LicenseURL, Medium)

	cfg := pubconfig.Config{}
	cfg.Project.Description = meta.Description
	cfg.Project.URL = meta.Homepage
	cfg.Project.License = pubconfig.License{Name: licenseName, URL: meta.LicenseURL}
	return b.outcome(cfg)
}

func apiFetch(ctx project.Context, owner, repo string) (ghprovider.RepositoryMetadata, error) {
	client, err := ghprovider.NewClient(ghprovider.ClientConfig{Owner: owner, Lookup: ctx.Env})
	if err != nil {
		return ghprovider.RepositoryMetadata{}, err
	}
	return ghprovider.FetchMetadata(context.Background(), client, owner, repo)
}

// DefaultDetectors returns the standard detector list. Order matters: the
// folded configuration takes the later detector on overlapping fields.
func DefaultDetectors() []Detector {
	return []Detector{
		ManifestDetector{},
		ReadmeDetector{},
		LicenseFileDetector{},
		GitRemoteDetector{},
		NewGitHubAPIDetector(),
	}
}
