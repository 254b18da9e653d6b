// Supabase content store
//
// Reads the four content collections through the project's PostgREST API using the
// anonymous key, so row-level security decides what is visible in addition to the
// publication filters applied here.
package services

import (
	"context"
	"fmt"

	"github.com/desertthunder/contenthub/internal/models"
	"github.com/desertthunder/contenthub/internal/shared"
	"github.com/desertthunder/contenthub/internal/store"
)

const articlePreviewSelect = "id,slug,title,description,author,category,tags,read_time,featured,published_at"

// SupabaseService implements [store.Backend] over PostgREST.
type SupabaseService struct {
	api *APIService
}

var _ store.Backend = (*SupabaseService)(nil)

// NewSupabaseService creates the Supabase backend from configuration.
func NewSupabaseService(cfg shared.SupabaseConfig) (*SupabaseService, error) {
	if cfg.URL == "" || cfg.AnonKey == "" {
		return nil, fmt.Errorf("%w: supabase.url and supabase.anon_key", shared.ErrMissingCredentials)
	}
	api := NewAPIService(cfg.URL, cfg.AnonKey, NewHTTPClient(cfg.TimeoutSeconds), cfg.RateLimit)
	return &SupabaseService{api: api}, nil
}

// NewSupabaseServiceWithAPI wraps an existing client.
func NewSupabaseServiceWithAPI(api *APIService) *SupabaseService {
	return &SupabaseService{api: api}
}

// Name returns the driver name.
func (s *SupabaseService) Name() string { return shared.DriverSupabase }

func searchTerms() []string {
	return []string{"title", "description", "category"}
}

func (s *SupabaseService) articlesQuery(q store.ArticleQuery) *query {
	pq := newQuery(articlePreviewSelect).eqBool("is_published", true)
	if q.Category != "" {
		pq.eq("category", q.Category)
	}
	if q.Tag != "" {
		pq.contains("tags", q.Tag)
	}
	if q.Featured != nil {
		pq.eqBool("featured", *q.Featured)
	}
	return pq.search(q.Search, searchTerms()...).order("published_at.desc").limit(q.Limit)
}

// Articles returns published article previews, newest first.
func (s *SupabaseService) Articles(ctx context.Context, q store.ArticleQuery) ([]models.ArticlePreview, error) {
	var rows []models.ArticlePreview
	if err := s.api.Select(ctx, string(models.CollectionArticles), s.articlesQuery(q).params(), &rows); err != nil {
		return nil, err
	}

	out := make([]models.ArticlePreview, 0, len(rows))
	for _, a := range rows {
		if a.Tags == nil {
			a.Tags = []string{}
		}
		if literalSearch(q.Search) && !store.MatchesText(q.Search, a.Title, a.Description, a.Category) {
			continue
		}
		out = append(out, a)
	}
	return store.Cap(out, q.Limit), nil
}

// ArticleBySlug returns the published article with slug.
func (s *SupabaseService) ArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	params := newQuery("*").eq("slug", slug).eqBool("is_published", true).limit(1).params()

	var rows []models.Article
	if err := s.api.Select(ctx, string(models.CollectionArticles), params, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: article %q", shared.ErrNotFound, slug)
	}

	a := rows[0]
	if a.Tags == nil {
		a.Tags = []string{}
	}
	return &a, nil
}

// ArticleSlugs returns every published slug.
func (s *SupabaseService) ArticleSlugs(ctx context.Context) ([]string, error) {
	params := newQuery("slug").eqBool("is_published", true).order("published_at.desc").params()

	var rows []struct {
		Slug string `json:"slug"`
	}
	if err := s.api.Select(ctx, string(models.CollectionArticles), params, &rows); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Slug)
	}
	return out, nil
}

// ArticleTags returns the tag set of each published article.
func (s *SupabaseService) ArticleTags(ctx context.Context) ([][]string, error) {
	params := newQuery("tags").eqBool("is_published", true).params()

	var rows []struct {
		Tags []string `json:"tags"`
	}
	if err := s.api.Select(ctx, string(models.CollectionArticles), params, &rows); err != nil {
		return nil, err
	}

	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		if r.Tags == nil {
			r.Tags = []string{}
		}
		out = append(out, r.Tags)
	}
	return out, nil
}

// Categories returns the category of each visible row in c.
func (s *SupabaseService) Categories(ctx context.Context, c models.Collection) ([]string, error) {
	pq := newQuery("category")
	switch c {
	case models.CollectionArticles:
		pq.eqBool("is_published", true).order("published_at.desc")
	case models.CollectionVideos:
		pq.eqBool("is_published", true).order("created_at.desc")
	case models.CollectionProducts:
		pq.eqBool("is_published", true).order("sort_order.asc,created_at.asc")
	case models.CollectionRelated:
		pq.eqBool("is_active", true).order("sort_order.asc")
		pq.values.Add("category", "not.is.null")
	default:
		return nil, fmt.Errorf("%w: collection %q", shared.ErrInvalidArgument, c)
	}

	var rows []struct {
		Category *string `json:"category"`
	}
	if err := s.api.Select(ctx, string(c), pq.params(), &rows); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(rows))
	for _, r := range rows {
		if r.Category != nil {
			out = append(out, *r.Category)
		}
	}
	return out, nil
}

func (s *SupabaseService) videosQuery(q store.VideoQuery) *query {
	pq := newQuery("*").eqBool("is_published", true)
	if q.Level != "" {
		pq.eq("level", string(q.Level))
	}
	if q.Category != "" {
		pq.eq("category", q.Category)
	}
	return pq.search(q.Search, searchTerms()...).order("created_at.desc").limit(q.Limit)
}

// Videos returns published videos, newest first.
func (s *SupabaseService) Videos(ctx context.Context, q store.VideoQuery) ([]models.Video, error) {
	rows := []models.Video{}
	if err := s.api.Select(ctx, string(models.CollectionVideos), s.videosQuery(q).params(), &rows); err != nil {
		return nil, err
	}
	if !literalSearch(q.Search) {
		return rows, nil
	}
	out := make([]models.Video, 0, len(rows))
	for _, v := range rows {
		if store.MatchesText(q.Search, v.Title, v.Description, v.Category) {
			out = append(out, v)
		}
	}
	return store.Cap(out, q.Limit), nil
}

// VideoByYouTubeID returns the published video with the given YouTube ID.
func (s *SupabaseService) VideoByYouTubeID(ctx context.Context, id string) (*models.Video, error) {
	params := newQuery("*").eq("youtube_id", id).eqBool("is_published", true).limit(1).params()

	var rows []models.Video
	if err := s.api.Select(ctx, string(models.CollectionVideos), params, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: video %q", shared.ErrNotFound, id)
	}
	return &rows[0], nil
}

func (s *SupabaseService) productsQuery(q store.ProductQuery) *query {
	pq := newQuery("*").eqBool("is_published", true)
	if q.Category != "" {
		pq.eq("category", q.Category)
	}
	if q.IsAffiliate != nil {
		pq.eqBool("is_affiliate", *q.IsAffiliate)
	}
	return pq.search(q.Search, searchTerms()...).order("sort_order.asc,created_at.asc").limit(q.Limit)
}

// Products returns published products by ascending sort order.
func (s *SupabaseService) Products(ctx context.Context, q store.ProductQuery) ([]models.Product, error) {
	var rows []models.Product
	if err := s.api.Select(ctx, string(models.CollectionProducts), s.productsQuery(q).params(), &rows); err != nil {
		return nil, err
	}

	out := make([]models.Product, 0, len(rows))
	for _, p := range rows {
		if literalSearch(q.Search) && !store.MatchesText(q.Search, p.Title, p.Description, p.Category) {
			continue
		}
		out = append(out, normalizeProduct(p))
	}
	return store.Cap(out, q.Limit), nil
}

// ProductByID returns the published product with id.
func (s *SupabaseService) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	params := newQuery("*").eq("id", id).eqBool("is_published", true).limit(1).params()

	var rows []models.Product
	if err := s.api.Select(ctx, string(models.CollectionProducts), params, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: product %q", shared.ErrNotFound, id)
	}
	p := normalizeProduct(rows[0])
	return &p, nil
}

// RelatedContent returns active related links by ascending sort order.
func (s *SupabaseService) RelatedContent(ctx context.Context, q store.RelatedQuery) ([]models.RelatedContent, error) {
	pq := newQuery("*").eqBool("is_active", true)
	if q.ContentType != "" {
		pq.eq("content_type", string(q.ContentType))
	}
	pq.order("sort_order.asc").limit(q.Limit)

	rows := []models.RelatedContent{}
	if err := s.api.Select(ctx, string(models.CollectionRelated), pq.params(), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Close is a no-op; the HTTP client holds no exclusive resources.
func (s *SupabaseService) Close() error { return nil }

func normalizeProduct(p models.Product) models.Product {
	if p.CTAButtons == nil {
		p.CTAButtons = []models.ProductCTA{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p
}

