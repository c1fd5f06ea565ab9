// Package application contains use-case orchestration services.
package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ericfisherdev/orgfolio/internal/domain/model"
	"github.com/ericfisherdev/orgfolio/internal/domain/port/driven"
)

// Snapshot is one fully loaded view of the organization directory. It is
// immutable once built; filtered views are always derived from Repositories,
// never stored back into it.
type Snapshot struct {
	Organization model.Organization
	Repositories []model.Repository
	Languages    []string
	// ReadmeMarkdown is the raw markdown of the organization's profile
	// README, or "" when the organization has none.
	ReadmeMarkdown string
}

// PortfolioService loads the organization directory through the
// DirectoryClient port. It depends only on port interfaces.
type PortfolioService struct {
	client   driven.DirectoryClient
	org      string
	pageSize int
	timeout  time.Duration
}

// NewPortfolioService creates a PortfolioService for the given organization.
// timeout bounds each Load call end to end; zero means no deadline beyond the
// caller's context.
func NewPortfolioService(client driven.DirectoryClient, org string, pageSize int, timeout time.Duration) *PortfolioService {
	return &PortfolioService{
		client:   client,
		org:      org,
		pageSize: pageSize,
		timeout:  timeout,
	}
}

// Org returns the organization login this service is configured for.
func (s *PortfolioService) Org() string {
	return s.org
}

// Load performs the full sequential load: organization profile first, then
// the repository page, then the best-effort profile README. A profile
// failure returns immediately and the repository fetch never starts; a
// README failure is logged and tolerated. The language facet is derived
// from the loaded repositories before the snapshot is returned.
// The configured request timeout covers the whole sequence, so a stalled
// upstream call fails the load instead of holding the handler open.
func (s *PortfolioService) Load(ctx context.Context) (*Snapshot, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	org, err := s.client.FetchOrganization(ctx, s.org)
	if err != nil {
		return nil, fmt.Errorf("loading organization profile: %w", err)
	}

	repos, err := s.client.FetchRepositories(ctx, s.org, s.pageSize)
	if err != nil {
		return nil, fmt.Errorf("loading repositories: %w", err)
	}

	readme, err := s.client.FetchProfileReadme(ctx, s.org)
	if err != nil {
		slog.Warn("profile readme unavailable", "org", s.org, "error", err)
		readme = ""
	}

	return &Snapshot{
		Organization:   *org,
		Repositories:   repos,
		Languages:      model.Languages(repos),
		ReadmeMarkdown: readme,
	}, nil
}
