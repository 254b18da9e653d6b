package tasks

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/desertthunder/contenthub/internal/content"
	"github.com/desertthunder/contenthub/internal/filter"
	"github.com/desertthunder/contenthub/internal/models"
	"github.com/desertthunder/contenthub/internal/store"
)

const (
	RelatedLimit      = 5
	HomeArticlesLimit = 3
	HomeVideosLimit   = 6
	HomeProductsLimit = 4
	HomeRelatedLimit  = 4
)

// ArticlesSection is the articles page: the full list, the subset visible under State and its facets.
type ArticlesSection struct {
	State      filter.State            `json:"state"`
	Active     bool                    `json:"active"`
	All        []models.ArticlePreview `json:"-"`
	Total      int                     `json:"total"`
	Visible    []models.ArticlePreview `json:"articles"`
	Tags       []string                `json:"tags"`
	Categories []string                `json:"categories"`
	Audiences  []models.AudienceOption `json:"audiences"`
	Related    []models.RelatedContent `json:"related"`
}

// Apply recomputes the visible subset for s without touching the store.
func (a ArticlesSection) Apply(s filter.State) ArticlesSection {
	a.State = s.Normalize()
	a.Active = a.State.Active()
	a.Visible = filter.Articles(a.All, a.State)
	return a
}

// VideosSection is the videos page.
type VideosSection struct {
	State      filter.VideoState       `json:"state"`
	All        []models.Video          `json:"-"`
	Total      int                     `json:"total"`
	Visible    []models.Video          `json:"videos"`
	Categories []string                `json:"categories"`
	Audiences  []models.AudienceOption `json:"audiences"`
	Related    []models.RelatedContent `json:"related"`
}

// Apply recomputes the visible subset for s.
func (v VideosSection) Apply(s filter.VideoState) VideosSection {
	if !s.Audience.Valid() {
		s.Audience = models.AudienceAll
	}
	v.State = s
	v.Visible = filter.Videos(v.All, s)
	return v
}

// ProductsSection is the products page.
type ProductsSection struct {
	State   filter.ProductState     `json:"state"`
	All     []models.Product        `json:"-"`
	Total   int                     `json:"total"`
	Visible []models.Product        `json:"products"`
	Groups  []filter.ProductGroup   `json:"groups"`
	Related []models.RelatedContent `json:"related"`
}

// Apply recomputes the visible subset for s.
func (p ProductsSection) Apply(s filter.ProductState) ProductsSection {
	if s.Group == "" {
		s.Group = filter.GroupAll
	}
	p.State = s
	p.Visible = filter.Products(p.All, s)
	return p
}

// HomeSection is the landing page.
type HomeSection struct {
	Featured []models.ArticlePreview `json:"featured_articles"`
	Videos   []models.Video          `json:"videos"`
	Products []models.Product        `json:"products"`
	Related  []models.RelatedContent `json:"related"`
}

// Loader assembles sections from concurrent Query Layer reads.
type Loader struct {
	content *content.Service
}

func NewLoader(c *content.Service) *Loader {
	return &Loader{content: c}
}

// LoadArticles fetches articles, the tag union and related links concurrently, then applies s.
func (l *Loader) LoadArticles(ctx context.Context, s filter.State) ArticlesSection {
	var section ArticlesSection
	var g errgroup.Group

	g.Go(func() error {
		section.All = l.content.Articles(ctx, store.ArticleQuery{})
		return nil
	})
	g.Go(func() error {
		section.Tags = l.content.ArticleTags(ctx)
		return nil
	})
	g.Go(func() error {
		section.Related = l.content.RelatedContent(ctx, store.RelatedQuery{
			ContentType: models.ContentArticle,
			Limit:       RelatedLimit,
		})
		return nil
	})
	_ = g.Wait()

	section.Total = len(section.All)
	section.Categories = filter.Categories(section.All)
	section.Audiences = models.AudienceLevels()
	return section.Apply(s)
}

// LoadVideos fetches videos, their categories and related links concurrently, then applies s.
func (l *Loader) LoadVideos(ctx context.Context, s filter.VideoState) VideosSection {
	var section VideosSection
	var g errgroup.Group

	g.Go(func() error {
		section.All = l.content.Videos(ctx, store.VideoQuery{})
		return nil
	})
	g.Go(func() error {
		section.Categories = l.content.VideoCategories(ctx)
		return nil
	})
	g.Go(func() error {
		section.Related = l.content.RelatedContent(ctx, store.RelatedQuery{
			ContentType: models.ContentVideo,
			Limit:       RelatedLimit,
		})
		return nil
	})
	_ = g.Wait()

	section.Total = len(section.All)
	section.Audiences = models.AudienceLevels()
	return section.Apply(s)
}

// LoadProducts fetches products and related links concurrently, then applies s.
func (l *Loader) LoadProducts(ctx context.Context, s filter.ProductState) ProductsSection {
	var section ProductsSection
	var g errgroup.Group

	g.Go(func() error {
		section.All = l.content.Products(ctx, store.ProductQuery{})
		return nil
	})
	g.Go(func() error {
		section.Related = l.content.RelatedContent(ctx, store.RelatedQuery{
			ContentType: models.ContentProduct,
			Limit:       RelatedLimit,
		})
		return nil
	})
	_ = g.Wait()

	section.Total = len(section.All)
	section.Groups = filter.ProductGroups()
	return section.Apply(s)
}

// LoadHome fetches featured articles, the latest videos, products and related links concurrently.
func (l *Loader) LoadHome(ctx context.Context) HomeSection {
	var home HomeSection
	var g errgroup.Group

	g.Go(func() error {
		home.Featured = l.content.Articles(ctx, store.ArticleQuery{
			Featured: store.Bool(true),
			Limit:    HomeArticlesLimit,
		})
		return nil
	})
	g.Go(func() error {
		home.Videos = l.content.Videos(ctx, store.VideoQuery{Limit: HomeVideosLimit})
		return nil
	})
	g.Go(func() error {
		home.Products = l.content.Products(ctx, store.ProductQuery{Limit: HomeProductsLimit})
		return nil
	})
	g.Go(func() error {
		home.Related = l.content.RelatedContent(ctx, store.RelatedQuery{Limit: HomeRelatedLimit})
		return nil
	})
	_ = g.Wait()

	return home
}
