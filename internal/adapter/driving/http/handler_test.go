package httphandler_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httphandler "github.com/ericfisherdev/orgfolio/internal/adapter/driving/http"
	"github.com/ericfisherdev/orgfolio/internal/application"
	"github.com/ericfisherdev/orgfolio/internal/domain/model"
)

// fakeDirectoryClient implements driven.DirectoryClient for API tests.
type fakeDirectoryClient struct {
	org    *model.Organization
	repos  []model.Repository
	orgErr error
}

func (f *fakeDirectoryClient) FetchOrganization(_ context.Context, _ string) (*model.Organization, error) {
	if f.orgErr != nil {
		return nil, f.orgErr
	}
	return f.org, nil
}

func (f *fakeDirectoryClient) FetchRepositories(_ context.Context, _ string, _ int) ([]model.Repository, error) {
	return f.repos, nil
}

func (f *fakeDirectoryClient) FetchProfileReadme(_ context.Context, _ string) (string, error) {
	return "", nil
}

func newTestMux(fake *fakeDirectoryClient) http.Handler {
	portfolio := application.NewPortfolioService(fake, "acme", 100, time.Second)
	h := httphandler.NewHandler(portfolio, slog.Default())

	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, h)
	return httphandler.ApplyMiddleware(mux, slog.Default())
}

func apiFake() *fakeDirectoryClient {
	return &fakeDirectoryClient{
		org: &model.Organization{Login: "acme", Name: "Acme Corp", PublicRepos: 2, Followers: 7},
		repos: []model.Repository{
			{ID: 1, Name: "widget-cli", FullName: "acme/widget-cli", Language: "Go", Stars: 120, UpdatedAt: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)},
			{ID: 2, Name: "parser", FullName: "acme/parser", Description: "A fast parser", Language: "Rust"},
		},
	}
}

func get(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestGetOrg(t *testing.T) {
	rec := get(t, newTestMux(apiFake()), "/api/v1/org")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp httphandler.OrgResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "acme", resp.Login)
	assert.Equal(t, "Acme Corp", resp.Name)
	assert.Equal(t, 2, resp.PublicRepos)
	assert.Equal(t, 7, resp.Followers)
}

func TestListRepos_Unfiltered(t *testing.T) {
	rec := get(t, newTestMux(apiFake()), "/api/v1/repos")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []httphandler.RepoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "widget-cli", resp[0].Name)
	assert.Equal(t, "2026-08-20T00:00:00Z", resp[0].UpdatedAt)
	assert.Equal(t, []string{}, resp[0].Topics)
}

func TestListRepos_Filtered(t *testing.T) {
	mux := newTestMux(apiFake())

	rec := get(t, mux, "/api/v1/repos?q=parser")
	var byQuery []httphandler.RepoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &byQuery))
	require.Len(t, byQuery, 1)
	assert.Equal(t, "parser", byQuery[0].Name)

	rec = get(t, mux, "/api/v1/repos?language=Go")
	var byLanguage []httphandler.RepoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &byLanguage))
	require.Len(t, byLanguage, 1)
	assert.Equal(t, "widget-cli", byLanguage[0].Name)

	rec = get(t, mux, "/api/v1/repos?q=parser&language=Go")
	var both []httphandler.RepoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &both))
	assert.Empty(t, both, "filters compose as an AND")
}

func TestListLanguages(t *testing.T) {
	rec := get(t, newTestMux(apiFake()), "/api/v1/languages")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Go", "Rust"}, resp)
}

func TestListRepos_UpstreamFailure(t *testing.T) {
	fake := &fakeDirectoryClient{orgErr: errors.New("rate limited")}

	rec := get(t, newTestMux(fake), "/api/v1/repos")

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"error":"upstream error"}`, rec.Body.String())
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestMux(apiFake()), "/api/v1/health")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp httphandler.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.Time)
}
