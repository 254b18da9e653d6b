package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/contenthub/internal/models"
	"github.com/desertthunder/contenthub/internal/shared"
	"github.com/desertthunder/contenthub/internal/store"
)

const articlePreviewColumns = `id, slug, title, description, author, category, tags, read_time, featured, published_at`

// ArticleRepository reads published articles.
type ArticleRepository struct {
	db *sql.DB
}

// NewArticleRepository creates a new ArticleRepository with the given database connection
func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// List returns previews matching q, newest first.
func (r *ArticleRepository) List(ctx context.Context, q store.ArticleQuery) ([]models.ArticlePreview, error) {
	cond := newConditions("is_published = 1")
	if q.Category != "" {
		cond.add("category = ?", q.Category)
	}
	if q.Tag != "" {
		cond.add("EXISTS (SELECT 1 FROM json_each(articles.tags) WHERE json_each.value = ?)", q.Tag)
	}
	if q.Featured != nil {
		cond.add("featured = ?", boolArg(*q.Featured))
	}
	cond.search(q.Search, "title", "description", "category")

	query := cond.limit(fmt.Sprintf(`
		SELECT %s
		FROM articles
		%s
		ORDER BY published_at DESC`, articlePreviewColumns, cond.where()), q.Limit)

	rows, err := r.db.QueryContext(ctx, query, cond.args...)
	if err != nil {
		return nil, queryError("list articles", err)
	}
	defer rows.Close()

	articles := []models.ArticlePreview{}
	for rows.Next() {
		a, err := r.scanPreview(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("list articles", err)
	}
	return articles, nil
}

// GetBySlug returns the published article with the given slug.
func (r *ArticleRepository) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	query := fmt.Sprintf(`
		SELECT %s, content, is_published, created_at, updated_at
		FROM articles
		WHERE slug = ? AND is_published = 1`, articlePreviewColumns)

	return r.scanOne(r.db.QueryRowContext(ctx, query, slug), slug)
}

// Slugs returns the slug of every published article.
func (r *ArticleRepository) Slugs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT slug FROM articles WHERE is_published = 1 ORDER BY published_at DESC")
	if err != nil {
		return nil, queryError("list article slugs", err)
	}
	slugs, err := collectStrings(rows)
	if err != nil {
		return nil, queryError("list article slugs", err)
	}
	return slugs, nil
}

// TagSets returns the tags of every published article.
func (r *ArticleRepository) TagSets(ctx context.Context) ([][]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT tags FROM articles WHERE is_published = 1")
	if err != nil {
		return nil, queryError("list article tags", err)
	}
	defer rows.Close()

	sets := [][]string{}
	for rows.Next() {
		var tags shared.JSONList[string]
		if err := rows.Scan(&tags); err != nil {
			return nil, queryError("scan article tags", err)
		}
		sets = append(sets, tags.Slice())
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("list article tags", err)
	}
	return sets, nil
}

// scanOne scans a full article from a single row.
func (r *ArticleRepository) scanOne(row *sql.Row, slug string) (*models.Article, error) {
	var (
		preview     models.ArticlePreview
		description sql.NullString
		tags        shared.JSONList[string]
		content     string
		isPublished bool
		createdAt   time.Time
		updatedAt   time.Time
	)

	err := row.Scan(&preview.ID, &preview.Slug, &preview.Title, &description, &preview.Author, &preview.Category,
		&tags, &preview.ReadTime, &preview.Featured, &preview.PublishedAt,
		&content, &isPublished, &createdAt, &updatedAt)
	if err != nil {
		return nil, queryError(fmt.Sprintf("article %q", slug), err)
	}

	preview.Description = nullable(description)
	preview.Tags = tags.Slice()

	return &models.Article{
		ArticlePreview: preview,
		Content:        content,
		IsPublished:    isPublished,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}, nil
}

// scanPreview scans an article preview from the current row.
func (r *ArticleRepository) scanPreview(s scanner) (*models.ArticlePreview, error) {
	var (
		a           models.ArticlePreview
		description sql.NullString
		tags        shared.JSONList[string]
	)

	err := s.Scan(&a.ID, &a.Slug, &a.Title, &description, &a.Author, &a.Category, &tags, &a.ReadTime, &a.Featured, &a.PublishedAt)
	if err != nil {
		return nil, queryError("scan article", err)
	}

	a.Description = nullable(description)
	a.Tags = tags.Slice()
	return &a, nil
}
