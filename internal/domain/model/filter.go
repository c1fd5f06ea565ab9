package model

import (
	"sort"
	"strings"
)

// LanguageAll is the sentinel language selection meaning no language
// restriction.
const LanguageAll = "all"

// Category identifies a filter-category button. Exactly one category is
// active at a time; only CategoryLanguage exposes the language selector.
type Category string

const (
	CategoryAll      Category = "all"
	CategoryLanguage Category = "language"
)

// FilterState is the current search/filter input. The zero value is not
// meaningful; use NewFilterState for the defaults (empty query, all
// languages, "all" category).
type FilterState struct {
	Query    string
	Language string
	Category Category
}

// NewFilterState returns the default filter state.
func NewFilterState() FilterState {
	return FilterState{
		Language: LanguageAll,
		Category: CategoryAll,
	}
}

// ShowsLanguageSelect reports whether the language selector is visible for
// this state.
func (s FilterState) ShowsLanguageSelect() bool {
	return s.Category == CategoryLanguage
}

// categoryTransitions maps each category to a pure transition over the filter
// state. Selecting any category other than "language" hides the language
// selector and resets the selection to the sentinel.
var categoryTransitions = map[Category]func(FilterState) FilterState{
	CategoryAll: func(s FilterState) FilterState {
		s.Category = CategoryAll
		s.Language = LanguageAll
		return s
	},
	CategoryLanguage: func(s FilterState) FilterState {
		s.Category = CategoryLanguage
		return s
	},
}

// SelectCategory applies the transition for the given category. Unknown
// categories behave like CategoryAll.
func SelectCategory(s FilterState, category Category) FilterState {
	transition, ok := categoryTransitions[category]
	if !ok {
		transition = categoryTransitions[CategoryAll]
	}
	return transition(s)
}

// FilterRepositories computes the filtered view of repos for the given state.
// It always evaluates over the full set and preserves input order, so the
// search and language predicates compose as an AND independent of the order
// the inputs changed in, and re-filtering with the same state is idempotent.
func FilterRepositories(repos []Repository, state FilterState) []Repository {
	filtered := make([]Repository, 0, len(repos))
	for _, repo := range repos {
		if matchesSearch(repo, state.Query) && matchesLanguage(repo, state.Language) {
			filtered = append(filtered, repo)
		}
	}
	return filtered
}

// matchesSearch reports whether the repository name or description contains
// the query, case-insensitively. An empty query matches everything; a missing
// description only fails the description half of the check.
func matchesSearch(repo Repository, query string) bool {
	if query == "" {
		return true
	}

	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(repo.Name), q) {
		return true
	}
	return repo.Description != "" && strings.Contains(strings.ToLower(repo.Description), q)
}

// matchesLanguage reports whether the repository matches the language
// selection. The comparison is exact and case-sensitive; a repository without
// a recorded language never matches a concrete selection.
func matchesLanguage(repo Repository, selection string) bool {
	if selection == "" || selection == LanguageAll {
		return true
	}
	return repo.Language == selection
}

// Languages returns the distinct non-empty languages observed across repos,
// sorted so the filter option list is deterministic.
func Languages(repos []Repository) []string {
	seen := make(map[string]bool, len(repos))
	languages := make([]string, 0, len(repos))

	for _, repo := range repos {
		if !repo.HasLanguage() || seen[repo.Language] {
			continue
		}
		seen[repo.Language] = true
		languages = append(languages, repo.Language)
	}

	sort.Strings(languages)
	return languages
}
