package store

import (
	"slices"
	"strings"

	"github.com/desertthunder/contenthub/internal/models"
)

// MatchesText reports whether search occurs, ignoring case, in title, description or category.
//
// An empty search matches everything. A nil description never matches.
func MatchesText(search, title string, description *string, category string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(title), needle) {
		return true
	}
	if description != nil && strings.Contains(strings.ToLower(*description), needle) {
		return true
	}
	return strings.Contains(strings.ToLower(category), needle)
}

// MatchArticle applies q to a in memory.
func MatchArticle(a models.ArticlePreview, q ArticleQuery) bool {
	switch {
	case q.Category != "" && a.Category != q.Category:
		return false
	case q.Tag != "" && !slices.Contains(a.Tags, q.Tag):
		return false
	case q.Featured != nil && a.Featured != *q.Featured:
		return false
	}
	return MatchesText(q.Search, a.Title, a.Description, a.Category)
}

// MatchVideo applies q to v in memory.
func MatchVideo(v models.Video, q VideoQuery) bool {
	switch {
	case q.Level != "" && v.Level != q.Level:
		return false
	case q.Category != "" && v.Category != q.Category:
		return false
	}
	return MatchesText(q.Search, v.Title, v.Description, v.Category)
}

// MatchProduct applies q to p in memory.
func MatchProduct(p models.Product, q ProductQuery) bool {
	switch {
	case q.Category != "" && p.Category != q.Category:
		return false
	case q.IsAffiliate != nil && p.IsAffiliate != *q.IsAffiliate:
		return false
	}
	return MatchesText(q.Search, p.Title, p.Description, p.Category)
}

// MatchRelated applies q to r in memory.
func MatchRelated(r models.RelatedContent, q RelatedQuery) bool {
	return q.ContentType == "" || r.ContentType == q.ContentType
}

// Cap truncates items to limit when limit is positive.
func Cap[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
