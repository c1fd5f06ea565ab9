package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRepos() []Repository {
	return []Repository{
		{Name: "widget-cli", Description: "", Language: "Go"},
		{Name: "frontend", Description: "The Widget web frontend", Language: "TypeScript"},
		{Name: "parser", Description: "A fast parser", Language: "Rust"},
		{Name: "docs", Description: "Project documentation", Language: ""},
		{Name: "toolkit", Description: "Shared helpers", Language: "Go"},
	}
}

func TestFilterRepositories_DefaultStateYieldsFullSet(t *testing.T) {
	repos := sampleRepos()

	filtered := FilterRepositories(repos, NewFilterState())

	assert.Equal(t, repos, filtered, "empty query and 'all' language must yield the full set in original order")
}

func TestFilterRepositories_Idempotent(t *testing.T) {
	repos := sampleRepos()
	state := FilterState{Query: "widget", Language: "Go", Category: CategoryLanguage}

	once := FilterRepositories(repos, state)
	twice := FilterRepositories(once, state)

	assert.Equal(t, once, twice)
}

func TestFilterRepositories_SearchIsCaseInsensitive(t *testing.T) {
	repos := sampleRepos()
	state := NewFilterState()
	state.Query = "Widget"

	filtered := FilterRepositories(repos, state)

	require.Len(t, filtered, 2)
	assert.Equal(t, "widget-cli", filtered[0].Name, "name match")
	assert.Equal(t, "frontend", filtered[1].Name, "description match")
}

func TestFilterRepositories_NoMatchOnMissingDescription(t *testing.T) {
	repos := []Repository{{Name: "widget-cli", Description: "", Language: "Go"}}

	state := NewFilterState()
	state.Query = "python"

	assert.Empty(t, FilterRepositories(repos, state))
}

func TestFilterRepositories_LanguageIsExactAndCaseSensitive(t *testing.T) {
	repos := sampleRepos()

	state := NewFilterState()
	state.Language = "Go"
	filtered := FilterRepositories(repos, state)
	require.Len(t, filtered, 2)
	assert.Equal(t, "widget-cli", filtered[0].Name)
	assert.Equal(t, "toolkit", filtered[1].Name)

	state.Language = "go"
	assert.Empty(t, FilterRepositories(repos, state), "language comparison is case-sensitive")
}

func TestFilterRepositories_MissingLanguageNeverMatchesSelection(t *testing.T) {
	state := NewFilterState()
	state.Language = "Go"

	filtered := FilterRepositories([]Repository{{Name: "docs"}}, state)

	assert.Empty(t, filtered)
}

func TestFilterRepositories_PredicatesComposeAsAND(t *testing.T) {
	repos := sampleRepos()
	state := FilterState{Query: "widget", Language: "TypeScript", Category: CategoryLanguage}

	filtered := FilterRepositories(repos, state)

	require.Len(t, filtered, 1)
	assert.Equal(t, "frontend", filtered[0].Name)
}

func TestLanguages_DistinctAndSorted(t *testing.T) {
	repos := []Repository{
		{Name: "a", Language: "Go"},
		{Name: "b", Language: "Rust"},
		{Name: "c", Language: "Go"},
		{Name: "d", Language: ""},
	}

	assert.Equal(t, []string{"Go", "Rust"}, Languages(repos))
}

func TestLanguages_EmptyInput(t *testing.T) {
	assert.Empty(t, Languages(nil))
}

func TestSelectCategory_LanguageKeepsSelection(t *testing.T) {
	state := FilterState{Query: "cli", Language: "Go", Category: CategoryAll}

	next := SelectCategory(state, CategoryLanguage)

	assert.Equal(t, CategoryLanguage, next.Category)
	assert.Equal(t, "Go", next.Language)
	assert.True(t, next.ShowsLanguageSelect())
}

func TestSelectCategory_NonLanguageResetsSelection(t *testing.T) {
	state := FilterState{Query: "cli", Language: "Go", Category: CategoryLanguage}

	next := SelectCategory(state, CategoryAll)

	assert.Equal(t, CategoryAll, next.Category)
	assert.Equal(t, LanguageAll, next.Language)
	assert.False(t, next.ShowsLanguageSelect())
	assert.Equal(t, "cli", next.Query, "search text survives category changes")
}

func TestSelectCategory_UnknownBehavesLikeAll(t *testing.T) {
	state := FilterState{Language: "Rust", Category: CategoryLanguage}

	next := SelectCategory(state, Category("stars"))

	assert.Equal(t, CategoryAll, next.Category)
	assert.Equal(t, LanguageAll, next.Language)
}
