// Package model contains the domain types for the repository directory.
package model

// Organization is the profile of the GitHub organization whose repositories
// the directory lists. Loaded once per page load and immutable afterwards.
type Organization struct {
	Login       string
	Name        string
	AvatarURL   string
	Description string
	PublicRepos int
	Followers   int
}

// DisplayName returns the organization's display name, falling back to the
// login when no display name is set.
func (o Organization) DisplayName() string {
	if o.Name != "" {
		return o.Name
	}
	return o.Login
}
