// Package driven defines the driven ports the application core depends on.
package driven

import (
	"context"

	"github.com/ericfisherdev/orgfolio/internal/domain/model"
)

// DirectoryClient defines the driven port for reading an organization's
// public directory data from the GitHub API. All methods are read-only.
type DirectoryClient interface {
	// FetchOrganization retrieves the organization profile.
	FetchOrganization(ctx context.Context, org string) (*model.Organization, error)

	// FetchRepositories retrieves the organization's public repositories,
	// sorted by most-recently-updated, as a single page of at most pageSize
	// entries (capped at 100 by the API).
	FetchRepositories(ctx context.Context, org string, pageSize int) ([]model.Repository, error)

	// FetchProfileReadme retrieves the organization's profile README
	// (.github/profile/README.md) as raw markdown. Returns "" with a nil
	// error when the organization has none.
	FetchProfileReadme(ctx context.Context, org string) (string, error)
}
