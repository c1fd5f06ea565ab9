// Package web implements the HTML GUI driving adapter using html/template.
package web

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/ericfisherdev/orgfolio/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/orgfolio/internal/application"
	"github.com/ericfisherdev/orgfolio/internal/domain/model"
)

// Handler is the web GUI driving adapter that serves the directory page.
type Handler struct {
	portfolio *application.PortfolioService
	templates *template.Template
	logger    *slog.Logger
	now       func() time.Time
}

// templateFuncs are helpers available inside the page templates. "raw" marks
// already-sanitized README HTML as safe; everything else stays auto-escaped.
var templateFuncs = template.FuncMap{
	"raw": func(s string) template.HTML { return template.HTML(s) }, //nolint:gosec // input is bluemonday-sanitized
}

// NewHandler creates a Handler with all required dependencies. Templates are
// parsed once from the embedded filesystem; a parse failure is a programming
// error and panics at startup.
func NewHandler(portfolio *application.PortfolioService, logger *slog.Logger) *Handler {
	templates := template.Must(
		template.New("").Funcs(templateFuncs).ParseFS(TemplateFS, "templates/*.tmpl"),
	)

	return &Handler{
		portfolio: portfolio,
		templates: templates,
		logger:    logger,
		now:       time.Now,
	}
}

// Directory renders the directory page. Filter state comes from the q,
// language, and category query parameters; the filtered set is recomputed
// from the full loaded set on every request.
func (h *Handler) Directory(w http.ResponseWriter, r *http.Request) {
	state := filterStateFromQuery(r)

	snapshot, err := h.portfolio.Load(r.Context())
	if err != nil {
		h.logger.Error("failed to load directory", "org", h.portfolio.Org(), "error", err)
		h.render(w, http.StatusBadGateway, newErrorPage(h.portfolio.Org()))
		return
	}

	h.render(w, http.StatusOK, newPage(snapshot, state, h.now()))
}

// filterStateFromQuery derives the filter state from request query
// parameters. The category transition runs last so selecting a non-language
// category resets the language selection regardless of the other parameters.
func filterStateFromQuery(r *http.Request) model.FilterState {
	q := r.URL.Query()

	state := model.NewFilterState()
	state.Query = q.Get("q")
	if lang := q.Get("language"); lang != "" {
		state.Language = lang
	}

	category := model.Category(q.Get("category"))
	if category == "" {
		category = model.CategoryAll
		if state.Language != model.LanguageAll {
			// A language selection implies the language category even when
			// the category parameter is absent from the URL.
			category = model.CategoryLanguage
		}
	}

	return model.SelectCategory(state, category)
}

// render executes the directory template into a buffer first so a template
// error produces a clean 500 instead of a half-written page.
func (h *Handler) render(w http.ResponseWriter, status int, page viewmodel.PageViewModel) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, "directory.tmpl", page); err != nil {
		h.logger.Error("failed to render directory page", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
