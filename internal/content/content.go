// package content is the query layer between callers and the configured content store.
//
// Reads never fail from the caller's point of view: a backend error is logged and the
// call yields an empty result, so a page with a broken section still renders the rest.
// Single-record lookups report whether a record was found. Every call goes to the
// backend; nothing is cached.
package content

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"github.com/desertthunder/contenthub/internal/models"
	"github.com/desertthunder/contenthub/internal/shared"
	"github.com/desertthunder/contenthub/internal/store"
)

// Service answers content queries against a [store.Backend].
type Service struct {
	backend store.Backend
	logger  *log.Logger
}

// NewService creates a query layer over backend. A nil logger writes to stderr.
func NewService(backend store.Backend, logger *log.Logger) *Service {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Service{backend: backend, logger: shared.WithLogger(logger, "backend", backend.Name())}
}

// Backend returns the configured driver name.
func (s *Service) Backend() string {
	return s.backend.Name()
}

// Articles returns published article previews, newest first.
func (s *Service) Articles(ctx context.Context, q store.ArticleQuery) []models.ArticlePreview {
	q.Search = shared.NormalizeSearch(q.Search)

	articles, err := s.backend.Articles(ctx, q)
	if err != nil {
		s.logFailure("articles", err, "category", q.Category, "tag", q.Tag, "search", q.Search)
		return []models.ArticlePreview{}
	}
	return nonNil(articles)
}

// ArticleBySlug returns the published article with slug, and false when there is none or the read failed.
func (s *Service) ArticleBySlug(ctx context.Context, slug string) (*models.Article, bool) {
	article, err := s.backend.ArticleBySlug(ctx, slug)
	if err != nil {
		s.logLookup("article", slug, err)
		return nil, false
	}
	if article.Tags == nil {
		article.Tags = []string{}
	}
	return article, true
}

// ArticleSlugs returns every published slug.
func (s *Service) ArticleSlugs(ctx context.Context) []string {
	slugs, err := s.backend.ArticleSlugs(ctx)
	if err != nil {
		s.logFailure("article slugs", err)
		return []string{}
	}
	return nonNil(slugs)
}

// ArticleTags returns the distinct tags across published articles, sorted.
func (s *Service) ArticleTags(ctx context.Context) []string {
	sets, err := s.backend.ArticleTags(ctx)
	if err != nil {
		s.logFailure("article tags", err)
		return []string{}
	}

	var all []string
	for _, tags := range sets {
		all = append(all, tags...)
	}
	return shared.UniqueSorted(all)
}

// ArticleCategories returns the distinct categories of published articles, sorted.
func (s *Service) ArticleCategories(ctx context.Context) []string {
	return s.categories(ctx, models.CollectionArticles)
}

// Videos returns published videos, newest first.
func (s *Service) Videos(ctx context.Context, q store.VideoQuery) []models.Video {
	q.Search = shared.NormalizeSearch(q.Search)
	if q.Level == models.AudienceAll {
		q.Level = ""
	}

	videos, err := s.backend.Videos(ctx, q)
	if err != nil {
		s.logFailure("videos", err, "level", q.Level, "category", q.Category, "search", q.Search)
		return []models.Video{}
	}
	return nonNil(videos)
}

// VideoByYouTubeID returns the published video with the YouTube ID, and false when there is none.
func (s *Service) VideoByYouTubeID(ctx context.Context, id string) (*models.Video, bool) {
	video, err := s.backend.VideoByYouTubeID(ctx, id)
	if err != nil {
		s.logLookup("video", id, err)
		return nil, false
	}
	return video, true
}

// VideoCategories returns the distinct categories of published videos, sorted.
func (s *Service) VideoCategories(ctx context.Context) []string {
	return s.categories(ctx, models.CollectionVideos)
}

// Products returns published products by ascending sort order.
func (s *Service) Products(ctx context.Context, q store.ProductQuery) []models.Product {
	q.Search = shared.NormalizeSearch(q.Search)

	products, err := s.backend.Products(ctx, q)
	if err != nil {
		s.logFailure("products", err, "category", q.Category, "search", q.Search)
		return []models.Product{}
	}

	for i := range products {
		if products[i].CTAButtons == nil {
			products[i].CTAButtons = []models.ProductCTA{}
		}
	}
	return nonNil(products)
}

// ProductByID returns the published product with id, and false when there is none.
func (s *Service) ProductByID(ctx context.Context, id string) (*models.Product, bool) {
	product, err := s.backend.ProductByID(ctx, id)
	if err != nil {
		s.logLookup("product", id, err)
		return nil, false
	}
	if product.CTAButtons == nil {
		product.CTAButtons = []models.ProductCTA{}
	}
	return product, true
}

// ProductCategories returns the distinct categories of published products, sorted.
func (s *Service) ProductCategories(ctx context.Context) []string {
	return s.categories(ctx, models.CollectionProducts)
}

// RelatedContent returns active related links by ascending sort order.
func (s *Service) RelatedContent(ctx context.Context, q store.RelatedQuery) []models.RelatedContent {
	links, err := s.backend.RelatedContent(ctx, q)
	if err != nil {
		s.logFailure("related content", err, "type", q.ContentType)
		return []models.RelatedContent{}
	}
	return nonNil(links)
}

func (s *Service) categories(ctx context.Context, c models.Collection) []string {
	cats, err := s.backend.Categories(ctx, c)
	if err != nil {
		s.logFailure("categories", err, "collection", c)
		return []string{}
	}
	return shared.UniqueSorted(cats)
}

func (s *Service) logFailure(what string, err error, kv ...any) {
	s.logger.Error("failed to fetch "+what, append([]any{"err", err}, kv...)...)
}

func (s *Service) logLookup(kind, key string, err error) {
	if errors.Is(err, shared.ErrNotFound) {
		s.logger.Debug(kind+" not found", "key", key)
		return
	}
	s.logger.Error("failed to fetch "+kind, "key", key, "err", err)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
