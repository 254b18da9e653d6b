package filter

import (
	"slices"
	"strings"

	"github.com/desertthunder/contenthub/internal/models"
)

func lower(s string) string { return strings.ToLower(s) }

// MatchesAudience reports whether an article filed under category is visible to audience.
//
// "all" sees everything. "teens" also sees school and college content. Every other
// audience sees the categories that map to it.
func MatchesAudience(category string, audience models.AudienceLevel) bool {
	switch audience {
	case models.AudienceAll, "":
		return true
	case models.AudienceTeens:
		return slices.Contains(models.TeenCategories, category)
	}
	mapped, ok := models.AudienceFor(category)
	return ok && mapped == audience
}

// MatchesSearch reports whether the lowercased query occurs in the title, description or any extra field.
//
// query must already be trimmed and lowercased; an empty query matches.
func MatchesSearch(query, title string, description *string, extra []string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(lower(title), query) {
		return true
	}
	if description != nil && strings.Contains(lower(*description), query) {
		return true
	}
	return slices.ContainsFunc(extra, func(s string) bool {
		return strings.Contains(lower(s), query)
	})
}

// Articles returns the articles visible under s, in their original order.
func Articles(articles []models.ArticlePreview, s State) []models.ArticlePreview {
	s = s.Normalize()
	query := s.query()

	out := make([]models.ArticlePreview, 0, len(articles))
	for _, a := range articles {
		switch {
		case !MatchesAudience(a.Category, s.Audience):
		case s.Category != "" && a.Category != s.Category:
		case s.Tag != "" && !slices.Contains(a.Tags, s.Tag):
		case !MatchesSearch(query, a.Title, a.Description, a.Tags):
		default:
			out = append(out, a)
		}
	}
	return out
}

// Categories returns the distinct categories of articles in first-seen order.
func Categories(articles []models.ArticlePreview) []string {
	out := []string{}
	for _, a := range articles {
		if a.Category != "" && !slices.Contains(out, a.Category) {
			out = append(out, a.Category)
		}
	}
	return out
}

// Tags returns the distinct tags of articles in first-seen order.
func Tags(articles []models.ArticlePreview) []string {
	out := []string{}
	for _, a := range articles {
		for _, t := range a.Tags {
			if t != "" && !slices.Contains(out, t) {
				out = append(out, t)
			}
		}
	}
	return out
}
