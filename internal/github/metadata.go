package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v68/github"
)

// RepositoryMetadata is the slice of repository information useful to
// publishing configuration detection.
type RepositoryMetadata struct {
	Description string
	Homepage    string
	LicenseSPDX string
	LicenseName string
	LicenseURL  string
}

// FetchMetadata reads repository metadata via the REST API.
func FetchMetadata(ctx context.Context, client *gh.Client, owner, repo string) (RepositoryMetadata, error) {
	r, _, err := client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return RepositoryMetadata{}, fmt.Errorf("fetching repository %s/%s: %w", owner, repo, err)
	}

	meta := RepositoryMetadata{
		Description: r.GetDescription(),
		Homepage:    r.GetHomepage(),
	}
	if lic := r.GetLicense(); lic != nil {
		meta.LicenseSPDX = lic.GetSPDXID()
		meta.LicenseName = lic.GetName()
		meta.LicenseURL = lic.GetURL()
	}
	return meta, nil
}
