// package store defines the boundary to the content store.
//
// A [Backend] answers parameterized reads over the four content collections. Every
// implementation gates rows on their publication flag (is_published, or is_active for
// related content), applies the collection's default ordering, treats search as a
// case-insensitive literal substring match, and caps the result at Limit only when
// Limit is positive.
//
// Implementations live next to the library they use:
//   - sqlite: [github.com/desertthunder/contenthub/internal/repositories]
//   - postgres: [github.com/desertthunder/contenthub/internal/store/postgres]
//   - supabase: [github.com/desertthunder/contenthub/internal/services]
//   - fixture and none: this package
package store

import (
	"context"

	"github.com/desertthunder/contenthub/internal/models"
)

// ArticleQuery filters published articles. Zero fields do not filter.
type ArticleQuery struct {
	Category string
	Tag      string
	Search   string
	Featured *bool
	Limit    int
}

// VideoQuery filters published videos. Zero fields do not filter.
type VideoQuery struct {
	Level    models.AudienceLevel
	Category string
	Search   string
	Limit    int
}

// ProductQuery filters published products. Zero fields do not filter.
type ProductQuery struct {
	Category    string
	Search      string
	IsAffiliate *bool
	Limit       int
}

// RelatedQuery filters active related links. Zero fields do not filter.
type RelatedQuery struct {
	ContentType models.ContentType
	Limit       int
}

// Backend is a read-only content store.
type Backend interface {
	// Name identifies the driver, e.g. "sqlite".
	Name() string

	// Articles returns published article previews, newest first.
	Articles(ctx context.Context, q ArticleQuery) ([]models.ArticlePreview, error)
	// ArticleBySlug returns the published article with slug or [shared.ErrNotFound].
	ArticleBySlug(ctx context.Context, slug string) (*models.Article, error)
	ArticleSlugs(ctx context.Context) ([]string, error)
	// ArticleTags returns the tag set of each published article.
	ArticleTags(ctx context.Context) ([][]string, error)
	// Categories returns the category of every visible row in c, duplicates included.
	Categories(ctx context.Context, c models.Collection) ([]string, error)

	// Videos returns published videos, newest first.
	Videos(ctx context.Context, q VideoQuery) ([]models.Video, error)
	VideoByYouTubeID(ctx context.Context, youtubeID string) (*models.Video, error)

	// Products returns published products by ascending sort order.
	Products(ctx context.Context, q ProductQuery) ([]models.Product, error)
	ProductByID(ctx context.Context, id string) (*models.Product, error)

	// RelatedContent returns active related links by ascending sort order.
	RelatedContent(ctx context.Context, q RelatedQuery) ([]models.RelatedContent, error)

	Close() error
}

// Bool returns a pointer to b, for the optional flags in query types.
func Bool(b bool) *bool {
	return &b
}
