// Package httphandler implements the JSON API driving adapter.
package httphandler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ericfisherdev/orgfolio/internal/application"
	"github.com/ericfisherdev/orgfolio/internal/domain/model"
)

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	portfolio *application.PortfolioService
	logger    *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(portfolio *application.PortfolioService, logger *slog.Logger) *Handler {
	return &Handler{
		portfolio: portfolio,
		logger:    logger,
	}
}

// RegisterAPIRoutes registers the JSON API routes on the provided mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/v1/org", h.GetOrg)
	mux.HandleFunc("GET /api/v1/repos", h.ListRepos)
	mux.HandleFunc("GET /api/v1/languages", h.ListLanguages)
	mux.HandleFunc("GET /api/v1/health", h.Health)
}

// ApplyMiddleware wraps the handler with logging and recovery middleware.
// Recovery is innermost so panics are caught before logging.
func ApplyMiddleware(next http.Handler, logger *slog.Logger) http.Handler {
	wrapped := recoveryMiddleware(logger, next)
	wrapped = loggingMiddleware(logger, wrapped)
	return wrapped
}

// GetOrg returns the organization profile.
func (h *Handler) GetOrg(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.portfolio.Load(r.Context())
	if err != nil {
		h.logger.Error("failed to load directory", "error", err)
		writeError(w, http.StatusBadGateway, "upstream error")
		return
	}

	writeJSON(w, http.StatusOK, toOrgResponse(snapshot.Organization))
}

// ListRepos returns the repository list filtered by the q and language query
// parameters. The filter is always evaluated over the full loaded set, with
// the same predicate the HTML page uses.
func (h *Handler) ListRepos(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.portfolio.Load(r.Context())
	if err != nil {
		h.logger.Error("failed to load directory", "error", err)
		writeError(w, http.StatusBadGateway, "upstream error")
		return
	}

	state := model.NewFilterState()
	state.Query = r.URL.Query().Get("q")
	if lang := r.URL.Query().Get("language"); lang != "" {
		state.Language = lang
	}

	filtered := model.FilterRepositories(snapshot.Repositories, state)

	resp := make([]RepoResponse, 0, len(filtered))
	for _, repo := range filtered {
		resp = append(resp, toRepoResponse(repo))
	}

	writeJSON(w, http.StatusOK, resp)
}

// ListLanguages returns the distinct languages observed across the loaded
// repositories.
func (h *Handler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.portfolio.Load(r.Context())
	if err != nil {
		h.logger.Error("failed to load directory", "error", err)
		writeError(w, http.StatusBadGateway, "upstream error")
		return
	}

	writeJSON(w, http.StatusOK, snapshot.Languages)
}

// Health reports liveness. It does not touch the upstream API so the probe
// stays cheap and rate-limit free.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}
