// package postgres implements the content store over a direct Postgres connection (the
// database behind a Supabase project) using gorm.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lib/pq"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/desertthunder/contenthub/internal/models"
	"github.com/desertthunder/contenthub/internal/shared"
	"github.com/desertthunder/contenthub/internal/store"
)

const previewColumns = "id, slug, title, description, author, category, tags, read_time, featured, published_at"

// Store is the [store.Backend] over Postgres.
type Store struct {
	db *gorm.DB
}

var _ store.Backend = (*Store)(nil)

// Open connects to the database at cfg.DSN. SQL warnings and slow queries go to logger.
func Open(cfg shared.PostgresConfig, logger *log.Logger) (*Store, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("%w: postgres.dsn", shared.ErrMissingCredentials)
	}

	gcfg := &gorm.Config{Logger: gormlogger.Discard}
	if logger != nil {
		gcfg.Logger = gormlogger.New(logger, gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		})
	}

	db, err := gorm.Open(pgdriver.Open(cfg.DSN), gcfg)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to connect to postgres: %w", shared.ErrServiceUnavailable, err)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	return New(db), nil
}

// New wraps an existing gorm connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Name() string { return shared.DriverPostgres }

// searchScope matches term as a literal, case-insensitive substring of title, description or category.
func searchScope(term string) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if term == "" {
			return tx
		}
		pattern := "%" + shared.EscapeLike(term) + "%"
		return tx.Where("(title ILIKE ? OR description ILIKE ? OR category ILIKE ?)", pattern, pattern, pattern)
	}
}

func limitScope(n int) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if n > 0 {
			return tx.Limit(n)
		}
		return tx
	}
}

func (s *Store) articlesQuery(tx *gorm.DB, q store.ArticleQuery) *gorm.DB {
	tx = tx.Model(&articleRow{}).Select(previewColumns).Where("is_published = ?", true)
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}
	if q.Tag != "" {
		tx = tx.Where("tags @> ?", pq.Array([]string{q.Tag}))
	}
	if q.Featured != nil {
		tx = tx.Where("featured = ?", *q.Featured)
	}
	return tx.Scopes(searchScope(q.Search)).Order("published_at DESC").Scopes(limitScope(q.Limit))
}

func (s *Store) Articles(ctx context.Context, q store.ArticleQuery) ([]models.ArticlePreview, error) {
	var rows []articleRow
	if err := s.articlesQuery(s.db.WithContext(ctx), q).Find(&rows).Error; err != nil {
		return nil, queryError("list articles", err)
	}

	out := make([]models.ArticlePreview, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.preview())
	}
	return out, nil
}

func (s *Store) ArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var row articleRow
	err := s.db.WithContext(ctx).Where("slug = ? AND is_published = ?", slug, true).Take(&row).Error
	if err != nil {
		return nil, queryError(fmt.Sprintf("article %q", slug), err)
	}
	return row.article(), nil
}

func (s *Store) ArticleSlugs(ctx context.Context) ([]string, error) {
	slugs := []string{}
	err := s.db.WithContext(ctx).Model(&articleRow{}).
		Where("is_published = ?", true).
		Order("published_at DESC").
		Pluck("slug", &slugs).Error
	if err != nil {
		return nil, queryError("list article slugs", err)
	}
	return slugs, nil
}

func (s *Store) ArticleTags(ctx context.Context) ([][]string, error) {
	var rows []articleRow
	if err := s.db.WithContext(ctx).Select("tags").Where("is_published = ?", true).Find(&rows).Error; err != nil {
		return nil, queryError("list article tags", err)
	}

	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, tagsOf(r.Tags))
	}
	return out, nil
}

func (s *Store) categoriesQuery(tx *gorm.DB, c models.Collection) (*gorm.DB, error) {
	switch c {
	case models.CollectionArticles:
		return tx.Model(&articleRow{}).Where("is_published = ?", true).Order("published_at DESC"), nil
	case models.CollectionVideos:
		return tx.Model(&videoRow{}).Where("is_published = ?", true).Order("created_at DESC"), nil
	case models.CollectionProducts:
		return tx.Model(&productRow{}).Where("is_published = ?", true).Order("sort_order ASC, created_at ASC"), nil
	case models.CollectionRelated:
		return tx.Model(&relatedRow{}).Where("is_active = ? AND category IS NOT NULL", true).Order("sort_order ASC"), nil
	}
	return nil, fmt.Errorf("%w: collection %q", shared.ErrInvalidArgument, c)
}

func (s *Store) Categories(ctx context.Context, c models.Collection) ([]string, error) {
	tx, err := s.categoriesQuery(s.db.WithContext(ctx), c)
	if err != nil {
		return nil, err
	}

	cats := []string{}
	if err := tx.Pluck("category", &cats).Error; err != nil {
		return nil, queryError("list categories", err)
	}
	return cats, nil
}

func (s *Store) videosQuery(tx *gorm.DB, q store.VideoQuery) *gorm.DB {
	tx = tx.Model(&videoRow{}).Where("is_published = ?", true)
	if q.Level != "" {
		tx = tx.Where("level = ?", string(q.Level))
	}
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}
	return tx.Scopes(searchScope(q.Search)).Order("created_at DESC").Scopes(limitScope(q.Limit))
}

func (s *Store) Videos(ctx context.Context, q store.VideoQuery) ([]models.Video, error) {
	var rows []videoRow
	if err := s.videosQuery(s.db.WithContext(ctx), q).Find(&rows).Error; err != nil {
		return nil, queryError("list videos", err)
	}

	out := make([]models.Video, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.video())
	}
	return out, nil
}

func (s *Store) VideoByYouTubeID(ctx context.Context, id string) (*models.Video, error) {
	var row videoRow
	err := s.db.WithContext(ctx).Where("youtube_id = ? AND is_published = ?", id, true).Take(&row).Error
	if err != nil {
		return nil, queryError(fmt.Sprintf("video %q", id), err)
	}
	v := row.video()
	return &v, nil
}

func (s *Store) productsQuery(tx *gorm.DB, q store.ProductQuery) *gorm.DB {
	tx = tx.Model(&productRow{}).Where("is_published = ?", true)
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}
	if q.IsAffiliate != nil {
		tx = tx.Where("is_affiliate = ?", *q.IsAffiliate)
	}
	return tx.Scopes(searchScope(q.Search)).Order("sort_order ASC, created_at ASC").Scopes(limitScope(q.Limit))
}

func (s *Store) Products(ctx context.Context, q store.ProductQuery) ([]models.Product, error) {
	var rows []productRow
	if err := s.productsQuery(s.db.WithContext(ctx), q).Find(&rows).Error; err != nil {
		return nil, queryError("list products", err)
	}

	out := make([]models.Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.product())
	}
	return out, nil
}

func (s *Store) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	var row productRow
	err := s.db.WithContext(ctx).Where("id = ? AND is_published = ?", id, true).Take(&row).Error
	if err != nil {
		return nil, queryError(fmt.Sprintf("product %q", id), err)
	}
	p := row.product()
	return &p, nil
}

func (s *Store) relatedQuery(tx *gorm.DB, q store.RelatedQuery) *gorm.DB {
	tx = tx.Model(&relatedRow{}).Where("is_active = ?", true)
	if q.ContentType != "" {
		tx = tx.Where("content_type = ?", string(q.ContentType))
	}
	return tx.Order("sort_order ASC").Scopes(limitScope(q.Limit))
}

func (s *Store) RelatedContent(ctx context.Context, q store.RelatedQuery) ([]models.RelatedContent, error) {
	var rows []relatedRow
	if err := s.relatedQuery(s.db.WithContext(ctx), q).Find(&rows).Error; err != nil {
		return nil, queryError("list related content", err)
	}

	out := make([]models.RelatedContent, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.link())
	}
	return out, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func queryError(what string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", shared.ErrNotFound, what)
	}
	return fmt.Errorf("%w: %s: %w", shared.ErrBackend, what, err)
}
