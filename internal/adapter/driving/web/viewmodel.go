package web

import (
	"fmt"
	"time"

	"github.com/ericfisherdev/orgfolio/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/orgfolio/internal/application"
	"github.com/ericfisherdev/orgfolio/internal/domain/model"
)

// noDescriptionFallback is the literal card text for repositories whose API
// record carries no description.
const noDescriptionFallback = "No description provided"

// maxTopicBadges is how many topic labels a card shows before collapsing the
// rest into a "+N" badge.
const maxTopicBadges = 3

// newRepoCard builds the presentation record for one repository card.
func newRepoCard(repo model.Repository, now time.Time) viewmodel.RepoCardViewModel {
	description := repo.Description
	if description == "" {
		description = noDescriptionFallback
	}

	topics := repo.Topics
	overflow := 0
	if len(topics) > maxTopicBadges {
		overflow = len(topics) - maxTopicBadges
		topics = topics[:maxTopicBadges]
	}

	return viewmodel.RepoCardViewModel{
		Name:          repo.Name,
		URL:           repo.HTMLURL,
		Description:   description,
		Stars:         repo.Stars,
		Forks:         repo.Forks,
		HasLanguage:   repo.HasLanguage(),
		Language:      repo.Language,
		LanguageColor: LanguageColor(repo.Language),
		UpdatedLabel:  fmt.Sprintf("Updated %s", repo.UpdatedLabel(now)),
		Topics:        topics,
		TopicOverflow: overflow,
	}
}

// newLanguageOptions builds the language select, always prefixed with the
// "all languages" sentinel option.
func newLanguageOptions(languages []string, selected string) []viewmodel.LanguageOption {
	options := make([]viewmodel.LanguageOption, 0, len(languages)+1)
	options = append(options, viewmodel.LanguageOption{
		Value:    model.LanguageAll,
		Label:    "All languages",
		Selected: selected == model.LanguageAll,
	})
	for _, lang := range languages {
		options = append(options, viewmodel.LanguageOption{
			Value:    lang,
			Label:    lang,
			Selected: lang == selected,
		})
	}
	return options
}

// newCategoryButtons builds the filter-category buttons with exactly one
// marked active.
func newCategoryButtons(active model.Category) []viewmodel.CategoryButton {
	return []viewmodel.CategoryButton{
		{Value: string(model.CategoryAll), Label: "All", Active: active == model.CategoryAll},
		{Value: string(model.CategoryLanguage), Label: "By language", Active: active == model.CategoryLanguage},
	}
}

// newPage assembles the full directory page view model: org header, sanitized
// README, filter controls, and one card per repository in the filtered set.
func newPage(snapshot *application.Snapshot, state model.FilterState, now time.Time) viewmodel.PageViewModel {
	filtered := model.FilterRepositories(snapshot.Repositories, state)

	cards := make([]viewmodel.RepoCardViewModel, 0, len(filtered))
	for _, repo := range filtered {
		cards = append(cards, newRepoCard(repo, now))
	}

	org := snapshot.Organization

	return viewmodel.PageViewModel{
		Org: viewmodel.OrgViewModel{
			Login:       org.Login,
			Name:        org.DisplayName(),
			AvatarURL:   org.AvatarURL,
			Description: org.Description,
			PublicRepos: org.PublicRepos,
			Followers:   org.Followers,
		},
		ReadmeHTML:         RenderMarkdown(snapshot.ReadmeMarkdown),
		Query:              state.Query,
		Categories:         newCategoryButtons(state.Category),
		ShowLanguageSelect: state.ShowsLanguageSelect(),
		Languages:          newLanguageOptions(snapshot.Languages, state.Language),
		Cards:              cards,
		Empty:              len(cards) == 0,
	}
}

// newErrorPage builds the terminal error-state page: error panel visible,
// nothing partially rendered.
func newErrorPage(org string) viewmodel.PageViewModel {
	return viewmodel.PageViewModel{
		Org:        viewmodel.OrgViewModel{Login: org, Name: org},
		LoadFailed: true,
	}
}
