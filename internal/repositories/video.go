package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/desertthunder/contenthub/internal/models"
	"github.com/desertthunder/contenthub/internal/store"
)

const videoColumns = `id, youtube_id, title, description, category, level, thumbnail_url, is_published, created_at, updated_at`

// VideoRepository reads published videos.
type VideoRepository struct {
	db *sql.DB
}

// NewVideoRepository creates a new VideoRepository with the given database connection
func NewVideoRepository(db *sql.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// List returns videos matching q, newest first.
func (r *VideoRepository) List(ctx context.Context, q store.VideoQuery) ([]models.Video, error) {
	cond := newConditions("is_published = 1")
	if q.Level != "" {
		cond.add("level = ?", string(q.Level))
	}
	if q.Category != "" {
		cond.add("category = ?", q.Category)
	}
	cond.search(q.Search, "title", "description", "category")

	query := cond.limit(fmt.Sprintf(`
		SELECT %s
		FROM videos
		%s
		ORDER BY created_at DESC`, videoColumns, cond.where()), q.Limit)

	rows, err := r.db.QueryContext(ctx, query, cond.args...)
	if err != nil {
		return nil, queryError("list videos", err)
	}
	defer rows.Close()

	videos := []models.Video{}
	for rows.Next() {
		v, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("list videos", err)
	}
	return videos, nil
}

// GetByYouTubeID returns the published video with the given YouTube ID.
func (r *VideoRepository) GetByYouTubeID(ctx context.Context, youtubeID string) (*models.Video, error) {
	query := fmt.Sprintf(`SELECT %s FROM videos WHERE youtube_id = ? AND is_published = 1`, videoColumns)

	v, err := r.scanRow(r.db.QueryRowContext(ctx, query, youtubeID))
	if err != nil {
		return nil, fmt.Errorf("video %q: %w", youtubeID, err)
	}
	return v, nil
}

func (r *VideoRepository) scanRow(s scanner) (*models.Video, error) {
	var (
		v           models.Video
		description sql.NullString
		thumbnail   sql.NullString
		level       string
	)

	err := s.Scan(&v.ID, &v.YouTubeID, &v.Title, &description, &v.Category, &level, &thumbnail,
		&v.IsPublished, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, queryError("scan video", err)
	}

	v.Description = nullable(description)
	v.ThumbnailURL = nullable(thumbnail)
	v.Level = models.AudienceLevel(level)
	return &v, nil
}
