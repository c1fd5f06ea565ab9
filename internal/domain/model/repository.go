package model

import (
	"fmt"
	"time"
)

// Repository is one public repository as listed by the GitHub API. Fields are
// mapped verbatim from the API response and treated as read-only; the full
// repository set is replaced wholesale on each load, never mutated in place.
type Repository struct {
	ID          int64
	Name        string
	FullName    string
	HTMLURL     string
	Description string
	Language    string
	Stars       int
	Forks       int
	UpdatedAt   time.Time
	Topics      []string
}

// HasLanguage reports whether the API recorded a primary language for this
// repository. Repositories without one never match a concrete language filter
// and render no language swatch.
func (r Repository) HasLanguage() bool {
	return r.Language != ""
}

// UpdatedLabel formats the repository's last-update time relative to now.
// Elapsed whole days are the ceiling of the absolute time difference, so a
// small negative delta from clock skew still lands in the "today" tier.
// Tiers: 1 day "today", under a week "N days ago", under 30 days
// "N weeks ago" (ceil days/7), otherwise "N months ago" (ceil days/30).
// There is no years tier, and the unit is always plural: the tier
// boundaries yield "1 weeks ago" and "1 months ago" on purpose, matching
// the fixed N-unit template the page has always shown.
func (r Repository) UpdatedLabel(now time.Time) string {
	elapsed := now.Sub(r.UpdatedAt)
	if elapsed < 0 {
		elapsed = -elapsed
	}

	days := int(elapsed / (24 * time.Hour))
	if elapsed%(24*time.Hour) != 0 {
		days++
	}

	switch {
	case days <= 1:
		return "today"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return fmt.Sprintf("%d weeks ago", ceilDiv(days, 7))
	default:
		return fmt.Sprintf("%d months ago", ceilDiv(days, 30))
	}
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
