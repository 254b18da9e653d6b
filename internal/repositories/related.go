package repositories

import (
	"context"
	"database/sql"

	"github.com/desertthunder/contenthub/internal/models"
	"github.com/desertthunder/contenthub/internal/store"
)

// RelatedRepository reads active related links.
type RelatedRepository struct {
	db *sql.DB
}

// NewRelatedRepository creates a new RelatedRepository with the given database connection
func NewRelatedRepository(db *sql.DB) *RelatedRepository {
	return &RelatedRepository{db: db}
}

// List returns active links matching q by ascending sort_order.
func (r *RelatedRepository) List(ctx context.Context, q store.RelatedQuery) ([]models.RelatedContent, error) {
	cond := newConditions("is_active = 1")
	if q.ContentType != "" {
		cond.add("content_type = ?", string(q.ContentType))
	}

	query := cond.limit(`
		SELECT id, title, content_type, category, href, is_active, sort_order, created_at
		FROM related_content
		`+cond.where()+`
		ORDER BY sort_order ASC, rowid ASC`, q.Limit)

	rows, err := r.db.QueryContext(ctx, query, cond.args...)
	if err != nil {
		return nil, queryError("list related content", err)
	}
	defer rows.Close()

	links := []models.RelatedContent{}
	for rows.Next() {
		var (
			link        models.RelatedContent
			contentType string
			category    sql.NullString
		)
		if err := rows.Scan(&link.ID, &link.Title, &contentType, &category, &link.Href, &link.IsActive, &link.SortOrder, &link.CreatedAt); err != nil {
			return nil, queryError("scan related content", err)
		}
		link.ContentType = models.ContentType(contentType)
		link.Category = nullable(category)
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("list related content", err)
	}
	return links, nil
}
