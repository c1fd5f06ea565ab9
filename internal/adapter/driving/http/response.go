package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ericfisherdev/orgfolio/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// OrgResponse is the JSON representation of the organization profile.
type OrgResponse struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	AvatarURL   string `json:"avatar_url"`
	Description string `json:"description"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
}

// RepoResponse is the JSON representation of a listed repository.
type RepoResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	FullName    string   `json:"full_name"`
	HTMLURL     string   `json:"html_url"`
	Description string   `json:"description"`
	Language    string   `json:"language"`
	Stars       int      `json:"stars"`
	Forks       int      `json:"forks"`
	UpdatedAt   string   `json:"updated_at"`
	Topics      []string `json:"topics"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// toOrgResponse converts a domain Organization to its JSON representation.
func toOrgResponse(org model.Organization) OrgResponse {
	return OrgResponse{
		Login:       org.Login,
		Name:        org.Name,
		AvatarURL:   org.AvatarURL,
		Description: org.Description,
		PublicRepos: org.PublicRepos,
		Followers:   org.Followers,
	}
}

// toRepoResponse converts a domain Repository to its JSON representation.
func toRepoResponse(repo model.Repository) RepoResponse {
	topics := repo.Topics
	if topics == nil {
		topics = []string{}
	}

	return RepoResponse{
		ID:          repo.ID,
		Name:        repo.Name,
		FullName:    repo.FullName,
		HTMLURL:     repo.HTMLURL,
		Description: repo.Description,
		Language:    repo.Language,
		Stars:       repo.Stars,
		Forks:       repo.Forks,
		UpdatedAt:   repo.UpdatedAt.UTC().Format(time.RFC3339),
		Topics:      topics,
	}
}
