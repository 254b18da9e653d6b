package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/desertthunder/contenthub/internal/models"
	"github.com/desertthunder/contenthub/internal/shared"
	"github.com/desertthunder/contenthub/internal/store"
)

// SQLite is the [store.Backend] over a local SQLite database.
type SQLite struct {
	db       *sql.DB
	articles *ArticleRepository
	videos   *VideoRepository
	products *ProductRepository
	related  *RelatedRepository
}

var _ store.Backend = (*SQLite)(nil)

// NewSQLite wraps an open, migrated database. Close closes db.
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{
		db:       db,
		articles: NewArticleRepository(db),
		videos:   NewVideoRepository(db),
		products: NewProductRepository(db),
		related:  NewRelatedRepository(db),
	}
}

// OpenSQLite opens the database at cfg.Path and runs pending migrations.
func OpenSQLite(cfg shared.DatabaseConfig) (*SQLite, error) {
	db, err := shared.OpenContentDatabase(cfg)
	if err != nil {
		return nil, err
	}
	return NewSQLite(db), nil
}

// DB exposes the underlying connection for setup tasks such as seeding.
func (s *SQLite) DB() *sql.DB { return s.db }

func (s *SQLite) Name() string { return shared.DriverSQLite }

func (s *SQLite) Articles(ctx context.Context, q store.ArticleQuery) ([]models.ArticlePreview, error) {
	return s.articles.List(ctx, q)
}

func (s *SQLite) ArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	return s.articles.GetBySlug(ctx, slug)
}

func (s *SQLite) ArticleSlugs(ctx context.Context) ([]string, error) {
	return s.articles.Slugs(ctx)
}

func (s *SQLite) ArticleTags(ctx context.Context) ([][]string, error) {
	return s.articles.TagSets(ctx)
}

func (s *SQLite) Categories(ctx context.Context, c models.Collection) ([]string, error) {
	var query string
	switch c {
	case models.CollectionArticles:
		query = "SELECT category FROM articles WHERE is_published = 1 ORDER BY published_at DESC"
	case models.CollectionVideos:
		query = "SELECT category FROM videos WHERE is_published = 1 ORDER BY created_at DESC"
	case models.CollectionProducts:
		query = "SELECT category FROM products WHERE is_published = 1 ORDER BY sort_order ASC, rowid ASC"
	case models.CollectionRelated:
		query = "SELECT category FROM related_content WHERE is_active = 1 AND category IS NOT NULL ORDER BY sort_order ASC"
	default:
		return nil, fmt.Errorf("%w: collection %q", shared.ErrInvalidArgument, c)
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, queryError("list categories", err)
	}
	cats, err := collectStrings(rows)
	if err != nil {
		return nil, queryError("list categories", err)
	}
	return cats, nil
}

func (s *SQLite) Videos(ctx context.Context, q store.VideoQuery) ([]models.Video, error) {
	return s.videos.List(ctx, q)
}

func (s *SQLite) VideoByYouTubeID(ctx context.Context, id string) (*models.Video, error) {
	return s.videos.GetByYouTubeID(ctx, id)
}

func (s *SQLite) Products(ctx context.Context, q store.ProductQuery) ([]models.Product, error) {
	return s.products.List(ctx, q)
}

func (s *SQLite) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	return s.products.Get(ctx, id)
}

func (s *SQLite) RelatedContent(ctx context.Context, q store.RelatedQuery) ([]models.RelatedContent, error) {
	return s.related.List(ctx, q)
}

func (s *SQLite) Close() error { return s.db.Close() }
