// Package viewmodel defines presentation-ready structs for the HTML templates.
// View models decouple template rendering from domain model types.
package viewmodel

// OrgViewModel holds presentation-ready data for the organization header.
type OrgViewModel struct {
	Login       string
	Name        string
	AvatarURL   string
	Description string
	PublicRepos int
	Followers   int
}

// LanguageOption is one entry in the language filter select. The option list
// is always prefixed with the "all languages" sentinel entry.
type LanguageOption struct {
	Value    string
	Label    string
	Selected bool
}

// CategoryButton is one filter-category button. Exactly one is active.
type CategoryButton struct {
	Value  string
	Label  string
	Active bool
}

// RepoCardViewModel holds presentation-ready data for a single repository card.
type RepoCardViewModel struct {
	Name          string
	URL           string
	Description   string
	Stars         int
	Forks         int
	HasLanguage   bool
	Language      string
	LanguageColor string
	UpdatedLabel  string
	Topics        []string
	TopicOverflow int // topics beyond the displayed ones; 0 hides the "+N" badge
}

// PageViewModel holds everything the directory page template renders.
type PageViewModel struct {
	Org        OrgViewModel
	ReadmeHTML string // sanitized HTML, "" when the org has no profile README

	Query              string
	Categories         []CategoryButton
	ShowLanguageSelect bool
	Languages          []LanguageOption

	Cards []RepoCardViewModel
	Empty bool

	LoadFailed bool
}
