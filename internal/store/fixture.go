package store

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/desertthunder/contenthub/internal/models"
	"github.com/desertthunder/contenthub/internal/shared"
)

// FixtureData is the on-disk layout of a YAML content fixture.
type FixtureData struct {
	Articles       []models.Article        `yaml:"articles"`
	Videos         []models.Video          `yaml:"videos"`
	Products       []models.Product        `yaml:"products"`
	RelatedContent []models.RelatedContent `yaml:"related_content"`
}

// Fixture serves content held in memory, typically loaded from a YAML file.
//
// Rows are kept in the default order for their collection at load time; ties keep file order.
type Fixture struct {
	data FixtureData
}

// LoadFixture reads and decodes a YAML fixture from path.
func LoadFixture(path string) (*Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	return ParseFixture(raw)
}

// ParseFixture decodes a YAML fixture. Unknown keys are rejected.
func ParseFixture(raw []byte) (*Fixture, error) {
	var data FixtureData
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: fixture: %v", shared.ErrInvalidInput, err)
	}
	return NewFixture(data), nil
}

// NewFixture builds a fixture backend over data.
func NewFixture(data FixtureData) *Fixture {
	slices.SortStableFunc(data.Articles, func(a, b models.Article) int {
		return b.PublishedAt.Compare(a.PublishedAt)
	})
	slices.SortStableFunc(data.Videos, func(a, b models.Video) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	slices.SortStableFunc(data.Products, func(a, b models.Product) int {
		return cmp.Compare(a.SortOrder, b.SortOrder)
	})
	slices.SortStableFunc(data.RelatedContent, func(a, b models.RelatedContent) int {
		return cmp.Compare(a.SortOrder, b.SortOrder)
	})
	for i := range data.Products {
		if data.Products[i].CTAButtons == nil {
			data.Products[i].CTAButtons = []models.ProductCTA{}
		}
	}
	return &Fixture{data: data}
}

func (f *Fixture) Name() string { return shared.DriverFixture }

func (f *Fixture) Articles(ctx context.Context, q ArticleQuery) ([]models.ArticlePreview, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := []models.ArticlePreview{}
	for _, a := range f.data.Articles {
		if a.IsPublished && MatchArticle(a.ArticlePreview, q) {
			out = append(out, a.Preview())
		}
	}
	return Cap(out, q.Limit), nil
}

func (f *Fixture) ArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, a := range f.data.Articles {
		if a.IsPublished && a.Slug == slug {
			found := a
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: article %q", shared.ErrNotFound, slug)
}

func (f *Fixture) ArticleSlugs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := []string{}
	for _, a := range f.data.Articles {
		if a.IsPublished {
			out = append(out, a.Slug)
		}
	}
	return out, nil
}

func (f *Fixture) ArticleTags(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := [][]string{}
	for _, a := range f.data.Articles {
		if a.IsPublished {
			out = append(out, slices.Clone(a.Tags))
		}
	}
	return out, nil
}

func (f *Fixture) Categories(ctx context.Context, c models.Collection) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := []string{}
	switch c {
	case models.CollectionArticles:
		for _, a := range f.data.Articles {
			if a.IsPublished {
				out = append(out, a.Category)
			}
		}
	case models.CollectionVideos:
		for _, v := range f.data.Videos {
			if v.IsPublished {
				out = append(out, v.Category)
			}
		}
	case models.CollectionProducts:
		for _, p := range f.data.Products {
			if p.IsPublished {
				out = append(out, p.Category)
			}
		}
	case models.CollectionRelated:
		for _, r := range f.data.RelatedContent {
			if r.IsActive && r.Category != nil {
				out = append(out, *r.Category)
			}
		}
	default:
		return nil, fmt.Errorf("%w: collection %q", shared.ErrInvalidArgument, c)
	}
	return out, nil
}

func (f *Fixture) Videos(ctx context.Context, q VideoQuery) ([]models.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := []models.Video{}
	for _, v := range f.data.Videos {
		if v.IsPublished && MatchVideo(v, q) {
			out = append(out, v)
		}
	}
	return Cap(out, q.Limit), nil
}

func (f *Fixture) VideoByYouTubeID(ctx context.Context, id string) (*models.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, v := range f.data.Videos {
		if v.IsPublished && v.YouTubeID == id {
			found := v
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: video %q", shared.ErrNotFound, id)
}

func (f *Fixture) Products(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := []models.Product{}
	for _, p := range f.data.Products {
		if p.IsPublished && MatchProduct(p, q) {
			out = append(out, p)
		}
	}
	return Cap(out, q.Limit), nil
}

func (f *Fixture) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, p := range f.data.Products {
		if p.IsPublished && p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: product %q", shared.ErrNotFound, id)
}

func (f *Fixture) RelatedContent(ctx context.Context, q RelatedQuery) ([]models.RelatedContent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := []models.RelatedContent{}
	for _, r := range f.data.RelatedContent {
		if r.IsActive && MatchRelated(r, q) {
			out = append(out, r)
		}
	}
	return Cap(out, q.Limit), nil
}

func (f *Fixture) Close() error { return nil }
