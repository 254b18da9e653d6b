package store

import (
	"context"
	"fmt"

	"github.com/desertthunder/contenthub/internal/models"
	"github.com/desertthunder/contenthub/internal/shared"
)

// Empty is the backend used when no content store is configured.
//
// Lists are empty and lookups report [shared.ErrNotFound].
type Empty struct{}

// NewEmpty returns the no-op backend.
func NewEmpty() *Empty { return &Empty{} }

func (Empty) Name() string { return shared.DriverNone }

func (Empty) Articles(context.Context, ArticleQuery) ([]models.ArticlePreview, error) {
	return []models.ArticlePreview{}, nil
}

func (Empty) ArticleBySlug(_ context.Context, slug string) (*models.Article, error) {
	return nil, fmt.Errorf("%w: article %q", shared.ErrNotFound, slug)
}

func (Empty) ArticleSlugs(context.Context) ([]string, error) { return []string{}, nil }

func (Empty) ArticleTags(context.Context) ([][]string, error) { return [][]string{}, nil }

func (Empty) Categories(context.Context, models.Collection) ([]string, error) {
	return []string{}, nil
}

func (Empty) Videos(context.Context, VideoQuery) ([]models.Video, error) {
	return []models.Video{}, nil
}

func (Empty) VideoByYouTubeID(_ context.Context, id string) (*models.Video, error) {
	return nil, fmt.Errorf("%w: video %q", shared.ErrNotFound, id)
}

func (Empty) Products(context.Context, ProductQuery) ([]models.Product, error) {
	return []models.Product{}, nil
}

func (Empty) ProductByID(_ context.Context, id string) (*models.Product, error) {
	return nil, fmt.Errorf("%w: product %q", shared.ErrNotFound, id)
}

func (Empty) RelatedContent(context.Context, RelatedQuery) ([]models.RelatedContent, error) {
	return []models.RelatedContent{}, nil
}

func (Empty) Close() error { return nil }
