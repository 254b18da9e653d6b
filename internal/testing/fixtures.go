package testing

import (
	"time"

	"github.com/desertthunder/contenthub/internal/models"
	"github.com/desertthunder/contenthub/internal/store"
)

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 9, 0, 0, 0, time.UTC)
}

// Article builds a published article preview.
func Article(slug, title, description, category string, tags []string, published time.Time) models.ArticlePreview {
	return models.ArticlePreview{
		ID:          "art-" + slug,
		Slug:        slug,
		Title:       title,
		Description: models.StringPtr(description),
		Author:      "Test Author",
		Category:    category,
		Tags:        tags,
		ReadTime:    "5 min read",
		PublishedAt: published,
	}
}

// SampleArticles is a small catalogue covering every article category, newest first.
func SampleArticles() []models.ArticlePreview {
	return []models.ArticlePreview{
		Article("intro-to-ai", "Intro to AI", "Machine learning for beginners", "school", []string{"AI", "Beginners"}, day(20)),
		Article("javascript-basics", "JavaScript Basics", "Closures and the event loop", "college", []string{"JavaScript", "Web"}, day(18)),
		Article("ai-at-work", "Generative Tools at Work", "", "professional", []string{"AI", "Ethics"}, day(16)),
		Article("coding-clubs", "Starting a Coding Club", "Meetups for teens", "teens", []string{"Community"}, day(14)),
		Article("cloud-careers", "Cloud Careers", "Certifications for IT pros", "it-pros", []string{"Cloud", "Careers"}, day(12)),
		Article("typescript-tips", "Typed Script Tips", "Static types for the web", "college", []string{"TypeScript", "Web"}, day(10)),
	}
}

// SampleData wraps the sample articles with videos, products and related links.
func SampleData() store.FixtureData {
	var articles []models.Article
	for i, p := range SampleArticles() {
		p.Featured = i%2 == 0
		articles = append(articles, models.Article{
			ArticlePreview: p,
			Content:        "<h2>" + p.Title + "</h2><p>Body of <em>" + p.Slug + "</em>.</p>",
			IsPublished:    true,
			CreatedAt:      p.PublishedAt,
			UpdatedAt:      p.PublishedAt,
		})
	}

	return store.FixtureData{
		Articles: articles,
		Videos: []models.Video{
			{ID: "v1", YouTubeID: "yt-python", Title: "Python Basics", Description: models.StringPtr("Loops and functions"), Category: "Programming", Level: models.AudienceSchool, IsPublished: true, CreatedAt: day(9)},
			{ID: "v2", YouTubeID: "yt-linux", Title: "Linux Shell", Description: models.StringPtr("Navigating directories"), Category: "Linux", Level: models.AudienceITPros, IsPublished: true, CreatedAt: day(8)},
			{ID: "v3", YouTubeID: "yt-games", Title: "Game Design", Category: "Game Dev", Level: models.AudienceTeens, IsPublished: true, CreatedAt: day(7)},
		},
		Products: []models.Product{
			{ID: "p1", Title: "Study Planner", Description: models.StringPtr("Plan your week"), Category: "iOS App", Tags: []string{"Productivity"}, PriceType: models.PriceFree, SortOrder: 1, IsPublished: true},
			{ID: "p2", Title: "Flashcards", Category: "Android App", Tags: []string{"Study"}, PriceType: models.PriceFree, SortOrder: 2, IsPublished: true},
			{ID: "p3", Title: "Prompt Pack", Description: models.StringPtr("Reusable prompts"), Category: "AI Product", Tags: []string{"AI"}, PriceType: models.PricePaid, SortOrder: 3, IsPublished: true},
			{ID: "p4", Title: "Cheat Sheet", Category: "Downloadable PDF", Tags: []string{"Linux"}, PriceType: models.PriceFree, SortOrder: 4, IsPublished: true},
			{ID: "p5", Title: "Hosting", Category: "Web Tool", Tags: []string{"Cloud"}, PriceType: models.PriceSubscription, IsAffiliate: true, SortOrder: 5, IsPublished: true,
				CTAButtons: []models.ProductCTA{{Label: "Visit", Href: "https://example.com", Type: "primary"}}},
		},
		RelatedContent: []models.RelatedContent{
			{ID: "r1", Title: "Python Basics", ContentType: models.ContentVideo, Category: models.StringPtr("Programming"), Href: "/videos", IsActive: true, SortOrder: 1},
			{ID: "r2", Title: "Intro to AI", ContentType: models.ContentArticle, Href: "/articles/intro-to-ai", IsActive: true, SortOrder: 2},
			{ID: "r3", Title: "Go Tour", ContentType: models.ContentExternal, Href: "https://go.dev/tour", IsActive: true, SortOrder: 3},
			{ID: "r4", Title: "Prompt Pack", ContentType: models.ContentProduct, Href: "/products", IsActive: true, SortOrder: 4},
			{ID: "r5", Title: "Forum", ContentType: models.ContentExternal, Href: "https://example.com/forum", IsActive: true, SortOrder: 5},
			{ID: "r6", Title: "Archive", ContentType: models.ContentExternal, Href: "https://example.com/archive", IsActive: true, SortOrder: 6},
		},
	}
}
