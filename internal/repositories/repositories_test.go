package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/desertthunder/contenthub/internal/models"
	"github.com/desertthunder/contenthub/internal/shared"
	"github.com/desertthunder/contenthub/internal/store"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.OpenContentDatabase(shared.DatabaseConfig{Path: ":memory:"})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	return db
}

// setupSeededStore returns a [SQLite] backend loaded with the demo content
func setupSeededStore(t *testing.T) *SQLite {
	t.Helper()

	db := setupTestDB(t)
	if err := shared.Seed(db); err != nil {
		db.Close()
		t.Fatalf("failed to seed test database: %v", err)
	}

	s := NewSQLite(db)
	t.Cleanup(func() { s.Close() })
	return s
}

func slugsOf(items []models.ArticlePreview) []string {
	out := []string{}
	for _, a := range items {
		out = append(out, a.Slug)
	}
	return out
}

func TestArticleRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("List", func(t *testing.T) {
		s := setupSeededStore(t)

		got, err := s.Articles(ctx, store.ArticleQuery{})
		if err != nil {
			t.Fatalf("failed to list articles: %v", err)
		}

		want := []string{
			"getting-started-with-ai",
			"javascript-fundamentals",
			"building-a-cloud-career",
			"starting-a-coding-club",
			"ai-ethics-at-work",
		}
		if diff := cmp.Diff(want, slugsOf(got)); diff != "" {
			t.Errorf("Articles() mismatch (-want +got):\n%s", diff)
		}

		first := got[0]
		if diff := cmp.Diff([]string{"AI", "Beginners"}, first.Tags); diff != "" {
			t.Errorf("tags mismatch (-want +got):\n%s", diff)
		}
		if !first.Featured || first.PublishedAt.IsZero() {
			t.Errorf("expected featured article with publish date, got %+v", first)
		}
		if got[3].Description != nil {
			t.Errorf("expected NULL description to scan as nil, got %q", *got[3].Description)
		}
	})

	t.Run("List Filters", func(t *testing.T) {
		s := setupSeededStore(t)

		tc := []struct {
			name string
			q    store.ArticleQuery
			want []string
		}{
			{name: "category", q: store.ArticleQuery{Category: "college"}, want: []string{"javascript-fundamentals"}},
			{name: "tag containment", q: store.ArticleQuery{Tag: "AI"}, want: []string{"getting-started-with-ai", "ai-ethics-at-work"}},
			{name: "tag is exact", q: store.ArticleQuery{Tag: "ai"}, want: []string{}},
			{name: "featured", q: store.ArticleQuery{Featured: store.Bool(true)}, want: []string{"getting-started-with-ai", "building-a-cloud-career"}},
			{name: "search is case insensitive", q: store.ArticleQuery{Search: "CLOSURES"}, want: []string{"javascript-fundamentals"}},
			{name: "search matches category", q: store.ArticleQuery{Search: "professional"}, want: []string{"ai-ethics-at-work"}},
			{name: "search wildcard is literal", q: store.ArticleQuery{Search: "%"}, want: []string{}},
			{name: "limit after ordering", q: store.ArticleQuery{Limit: 2}, want: []string{"getting-started-with-ai", "javascript-fundamentals"}},
			{name: "zero limit is unlimited", q: store.ArticleQuery{Category: "teens", Limit: 0}, want: []string{"starting-a-coding-club"}},
			{name: "combined", q: store.ArticleQuery{Tag: "AI", Featured: store.Bool(false)}, want: []string{"ai-ethics-at-work"}},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				got, err := s.Articles(ctx, tt.q)
				if err != nil {
					t.Fatalf("Articles() error = %v", err)
				}
				if diff := cmp.Diff(tt.want, slugsOf(got)); diff != "" {
					t.Errorf("Articles() mismatch (-want +got):\n%s", diff)
				}
			})
		}
	})

	t.Run("GetBySlug", func(t *testing.T) {
		s := setupSeededStore(t)

		a, err := s.ArticleBySlug(ctx, "ai-ethics-at-work")
		if err != nil {
			t.Fatalf("failed to get article: %v", err)
		}
		if a.Title != "AI Ethics at Work" || a.Author != "Dana Reyes" || !a.IsPublished {
			t.Errorf("unexpected article %+v", a)
		}
		if a.Content == "" {
			t.Error("expected article body")
		}
	})

	t.Run("GetBySlug NotFound", func(t *testing.T) {
		s := setupSeededStore(t)

		for _, slug := range []string{"does-not-exist", "unpublished-draft"} {
			if _, err := s.ArticleBySlug(ctx, slug); !errors.Is(err, shared.ErrNotFound) {
				t.Errorf("ArticleBySlug(%q) expected ErrNotFound, got %v", slug, err)
			}
		}
	})

	t.Run("Slugs and Tags", func(t *testing.T) {
		s := setupSeededStore(t)

		slugs, err := s.ArticleSlugs(ctx)
		if err != nil {
			t.Fatalf("failed to list slugs: %v", err)
		}
		if len(slugs) != 5 {
			t.Errorf("expected 5 published slugs, got %v", slugs)
		}

		tags, err := s.ArticleTags(ctx)
		if err != nil {
			t.Fatalf("failed to list tags: %v", err)
		}
		if len(tags) != 5 {
			t.Errorf("expected 5 tag sets, got %v", tags)
		}
	})
}

func TestVideoRepository(t *testing.T) {
	ctx := context.Background()
	s := setupSeededStore(t)

	t.Run("List", func(t *testing.T) {
		got, err := s.Videos(ctx, store.VideoQuery{})
		if err != nil {
			t.Fatalf("failed to list videos: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("expected 3 published videos, got %d", len(got))
		}
		if got[0].YouTubeID != "rfscVS0vtbw" {
			t.Errorf("expected newest video first, got %s", got[0].YouTubeID)
		}
		if got[0].ThumbnailURL == nil || got[1].ThumbnailURL != nil {
			t.Errorf("unexpected thumbnails %v %v", got[0].ThumbnailURL, got[1].ThumbnailURL)
		}
	})

	t.Run("List by level and search", func(t *testing.T) {
		got, _ := s.Videos(ctx, store.VideoQuery{Level: models.AudienceTeens})
		if len(got) != 1 || got[0].Title != "Game Design for Teens" {
			t.Errorf("unexpected level result %+v", got)
		}

		got, _ = s.Videos(ctx, store.VideoQuery{Search: "shell"})
		if len(got) != 1 || got[0].Level != models.AudienceITPros {
			t.Errorf("unexpected search result %+v", got)
		}
	})

	t.Run("GetByYouTubeID", func(t *testing.T) {
		v, err := s.VideoByYouTubeID(ctx, "ZtqBQ68cfJc")
		if err != nil {
			t.Fatalf("failed to get video: %v", err)
		}
		if v.EmbedURL() != "https://www.youtube.com/embed/ZtqBQ68cfJc" {
			t.Errorf("unexpected embed URL %s", v.EmbedURL())
		}

		if _, err := s.VideoByYouTubeID(ctx, "hidden00vid"); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound for unpublished video, got %v", err)
		}
	})
}

func TestProductRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("List orders by sort_order then insertion", func(t *testing.T) {
		s := setupSeededStore(t)

		got, err := s.Products(ctx, store.ProductQuery{})
		if err != nil {
			t.Fatalf("failed to list products: %v", err)
		}

		ids := []string{}
		for _, p := range got {
			ids = append(ids, p.ID)
		}
		if diff := cmp.Diff([]string{"prd-002", "prd-001", "prd-003", "prd-004"}, ids); diff != "" {
			t.Errorf("Products() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Sort order reverses insertion order", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		_, err := db.Exec(`INSERT INTO products (id, title, category, sort_order) VALUES ('b', 'Second', 'Web Tool', 2), ('a', 'First', 'Web Tool', 1)`)
		if err != nil {
			t.Fatalf("failed to insert products: %v", err)
		}

		got, err := NewProductRepository(db).List(ctx, store.ProductQuery{})
		if err != nil {
			t.Fatalf("failed to list products: %v", err)
		}
		if len(got) != 2 || got[0].SortOrder != 1 || got[1].SortOrder != 2 {
			t.Errorf("expected sort orders [1 2], got %+v", got)
		}
	})

	t.Run("CTA buttons decode and default to empty", func(t *testing.T) {
		s := setupSeededStore(t)

		p, err := s.ProductByID(ctx, "prd-002")
		if err != nil {
			t.Fatalf("failed to get product: %v", err)
		}
		want := []models.ProductCTA{
			{Label: "Buy", Href: "https://example.com/prompt-toolkit", Type: "primary"},
			{Label: "Preview", Href: "https://example.com/prompt-toolkit/preview", Type: "secondary"},
		}
		if diff := cmp.Diff(want, p.CTAButtons); diff != "" {
			t.Errorf("CTA mismatch (-want +got):\n%s", diff)
		}

		hosting, err := s.ProductByID(ctx, "prd-004")
		if err != nil {
			t.Fatalf("failed to get product: %v", err)
		}
		if hosting.CTAButtons == nil || len(hosting.CTAButtons) != 0 {
			t.Errorf("expected empty non-nil CTA list for NULL column, got %#v", hosting.CTAButtons)
		}
		if hosting.PriceType != models.PriceSubscription || !hosting.IsAffiliate {
			t.Errorf("unexpected product %+v", hosting)
		}
	})

	t.Run("Filters", func(t *testing.T) {
		s := setupSeededStore(t)

		affiliate, _ := s.Products(ctx, store.ProductQuery{IsAffiliate: store.Bool(true)})
		if len(affiliate) != 1 || affiliate[0].ID != "prd-004" {
			t.Errorf("unexpected affiliate products %+v", affiliate)
		}

		byCategory, _ := s.Products(ctx, store.ProductQuery{Category: "Downloadable PDF"})
		if len(byCategory) != 1 || byCategory[0].ID != "prd-003" {
			t.Errorf("unexpected category products %+v", byCategory)
		}

		limited, _ := s.Products(ctx, store.ProductQuery{Limit: 1})
		if len(limited) != 1 || limited[0].ID != "prd-002" {
			t.Errorf("unexpected limited products %+v", limited)
		}
	})

	t.Run("Get NotFound", func(t *testing.T) {
		s := setupSeededStore(t)

		if _, err := s.ProductByID(ctx, "prd-005"); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound for unpublished product, got %v", err)
		}
	})
}

func TestRelatedRepository(t *testing.T) {
	ctx := context.Background()
	s := setupSeededStore(t)

	t.Run("List", func(t *testing.T) {
		got, err := s.RelatedContent(ctx, store.RelatedQuery{})
		if err != nil {
			t.Fatalf("failed to list related content: %v", err)
		}
		if len(got) != 6 {
			t.Fatalf("expected 6 active links, got %d", len(got))
		}
		if got[0].ID != "rel-001" || got[1].Label() != "General" {
			t.Errorf("unexpected related ordering %+v", got[:2])
		}
	})

	t.Run("List limit and type", func(t *testing.T) {
		got, _ := s.RelatedContent(ctx, store.RelatedQuery{Limit: 5})
		if len(got) != 5 {
			t.Errorf("expected 5 links, got %d", len(got))
		}

		articles, _ := s.RelatedContent(ctx, store.RelatedQuery{ContentType: models.ContentArticle})
		if len(articles) != 2 {
			t.Errorf("expected 2 article links, got %+v", articles)
		}
	})
}

func TestCategories(t *testing.T) {
	ctx := context.Background()
	s := setupSeededStore(t)

	tc := []struct {
		collection models.Collection
		want       []string
	}{
		{models.CollectionArticles, []string{"school", "college", "it-pros", "teens", "professional"}},
		{models.CollectionVideos, []string{"Programming", "Linux", "Game Dev"}},
		{models.CollectionProducts, []string{"AI Product", "iOS App", "Downloadable PDF", "Web Tool"}},
		{models.CollectionRelated, []string{"Programming", "AI", "Programming", "Cloud"}},
	}

	for _, tt := range tc {
		t.Run(string(tt.collection), func(t *testing.T) {
			got, err := s.Categories(ctx, tt.collection)
			if err != nil {
				t.Fatalf("Categories() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Categories() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := s.Categories(ctx, models.Collection("users")); !errors.Is(err, shared.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestUnicodeSearch(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	defer db.Close()

	_, err := db.Exec(`INSERT INTO articles (id, slug, title, category, tags) VALUES
		('u1', 'uber-go', 'Über Go', 'school', '[]'),
		('u2', 'cafe', 'Plain title', 'ÉCOLE', '[]')`)
	if err != nil {
		t.Fatalf("failed to insert articles: %v", err)
	}
	s := NewSQLite(db)

	tc := []struct {
		search string
		want   []string
	}{
		{search: "über", want: []string{"uber-go"}},
		{search: "ÜBER", want: []string{"uber-go"}},
		{search: "école", want: []string{"cafe"}},
		{search: "zzz", want: []string{}},
	}
	for _, tt := range tc {
		t.Run(tt.search, func(t *testing.T) {
			got, err := s.Articles(ctx, store.ArticleQuery{Search: tt.search})
			if err != nil {
				t.Fatalf("failed to search articles: %v", err)
			}
			if diff := cmp.Diff(tt.want, slugsOf(got)); diff != "" {
				t.Errorf("Articles(%q) mismatch (-want +got):\n%s", tt.search, diff)
			}
		})
	}
}
