// Package github implements the DirectoryClient port using the go-github library.
package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	gh "github.com/google/go-github/v82/github"
	"github.com/gregjones/httpcache"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"

	"github.com/ericfisherdev/orgfolio/internal/domain/model"
	"github.com/ericfisherdev/orgfolio/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.DirectoryClient = (*Client)(nil)

// maxPageSize is the largest page the GitHub list endpoints accept.
const maxPageSize = 100

// Client implements the driven.DirectoryClient port using the go-github library.
type Client struct {
	gh *gh.Client
}

// NewClient creates a new GitHub API client with the following transport stack:
//  1. httpcache (ETag-based conditional request caching)
//  2. go-github-ratelimit (secondary rate limit middleware, sleeps on 429)
//  3. go-github (GitHub REST API client, unauthenticated)
//
// The directory only reads public data, so no credentials are attached; the
// conditional-request cache keeps repeated page loads within the
// unauthenticated rate budget.
func NewClient() *Client {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	rateLimitClient := github_ratelimit.NewClient(cacheTransport)

	return &Client{
		gh: gh.NewClient(rateLimitClient),
	}
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and base URL.
// This constructor is intended for testing, allowing injection of an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string) (*Client, error) {
	client := gh.NewClient(httpClient)

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	client.BaseURL = u

	return &Client{gh: client}, nil
}

// FetchOrganization retrieves the organization profile and maps it to the
// domain model. Any non-success status or transport failure surfaces as a
// wrapped error; callers treat all of them as the same load failure.
func (c *Client) FetchOrganization(ctx context.Context, org string) (*model.Organization, error) {
	o, resp, err := c.gh.Organizations.Get(ctx, org)
	if err != nil {
		return nil, fmt.Errorf("fetching organization %s: %w", org, err)
	}

	logRateLimit(resp, org, 0, 1)

	return mapOrganization(o), nil
}

// FetchRepositories retrieves a single page of the organization's public
// repositories, sorted by most-recently-updated. pageSize is clamped to the
// API's 100-entry maximum; there is no pagination beyond the first page.
func (c *Client) FetchRepositories(ctx context.Context, org string, pageSize int) ([]model.Repository, error) {
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	opts := &gh.RepositoryListByOrgOptions{
		Type:      "public",
		Sort:      "updated",
		Direction: "desc",
		ListOptions: gh.ListOptions{
			PerPage: pageSize,
		},
	}

	repos, resp, err := c.gh.Repositories.ListByOrg(ctx, org, opts)
	if err != nil {
		return nil, fmt.Errorf("listing repositories for %s: %w", org, err)
	}

	logRateLimit(resp, org+"/repos", 0, len(repos))

	mapped := make([]model.Repository, 0, len(repos))
	for _, r := range repos {
		mapped = append(mapped, mapRepository(r))
	}

	return mapped, nil
}

// FetchProfileReadme retrieves the organization's profile README from the
// .github repository. A missing .github repository or README is normal and
// maps to "", nil; only unexpected failures surface as errors.
func (c *Client) FetchProfileReadme(ctx context.Context, org string) (string, error) {
	file, _, resp, err := c.gh.Repositories.GetContents(ctx, org, ".github", "profile/README.md", nil)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return "", nil
		}
		return "", fmt.Errorf("fetching profile README for %s: %w", org, err)
	}

	logRateLimit(resp, org+"/profile-readme", 0, 1)

	if file == nil {
		return "", nil
	}

	content, err := file.GetContent()
	if err != nil {
		return "", fmt.Errorf("decoding profile README for %s: %w", org, err)
	}

	return content, nil
}

// mapOrganization converts a go-github Organization to the domain model.
// It uses GetXxx() helper methods exclusively to avoid nil pointer panics.
func mapOrganization(o *gh.Organization) *model.Organization {
	return &model.Organization{
		Login:       o.GetLogin(),
		Name:        o.GetName(),
		AvatarURL:   o.GetAvatarURL(),
		Description: o.GetDescription(),
		PublicRepos: o.GetPublicRepos(),
		Followers:   o.GetFollowers(),
	}
}

// mapRepository converts a go-github Repository to the domain model.
// Optional fields (description, language, topics) map to zero values.
func mapRepository(r *gh.Repository) model.Repository {
	topics := make([]string, 0, len(r.Topics))
	topics = append(topics, r.Topics...)

	return model.Repository{
		ID:          r.GetID(),
		Name:        r.GetName(),
		FullName:    r.GetFullName(),
		HTMLURL:     r.GetHTMLURL(),
		Description: r.GetDescription(),
		Language:    r.GetLanguage(),
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
		UpdatedAt:   r.GetUpdatedAt().Time,
		Topics:      topics,
	}
}

// logRateLimit logs the GitHub API rate limit status after each call.
func logRateLimit(resp *gh.Response, endpoint string, page, count int) {
	if resp == nil {
		return
	}

	slog.Debug("github api call",
		"endpoint", endpoint,
		"page", page,
		"count", count,
		"rate_remaining", resp.Rate.Remaining,
		"rate_limit", resp.Rate.Limit,
	)

	if resp.Rate.Remaining < 10 {
		slog.Warn("github rate limit low",
			"remaining", resp.Rate.Remaining,
			"reset_in", time.Until(resp.Rate.Reset.Time).Round(time.Second),
		)
	}
}
