package postgres

import (
	"time"

	"github.com/lib/pq"

	"github.com/desertthunder/contenthub/internal/models"
	"github.com/desertthunder/contenthub/internal/shared"
)

// articleRow maps the articles table; tags is a text[] column.
type articleRow struct {
	ID          string `gorm:"primaryKey"`
	Slug        string
	Title       string
	Description *string
	Content     string
	Author      string
	Category    string
	Tags        pq.StringArray `gorm:"type:text[]"`
	ReadTime    string
	Featured    bool
	IsPublished bool
	PublishedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (articleRow) TableName() string { return string(models.CollectionArticles) }

func (r articleRow) preview() models.ArticlePreview {
	return models.ArticlePreview{
		ID:          r.ID,
		Slug:        r.Slug,
		Title:       r.Title,
		Description: r.Description,
		Author:      r.Author,
		Category:    r.Category,
		Tags:        tagsOf(r.Tags),
		ReadTime:    r.ReadTime,
		Featured:    r.Featured,
		PublishedAt: r.PublishedAt,
	}
}

func (r articleRow) article() *models.Article {
	return &models.Article{
		ArticlePreview: r.preview(),
		Content:        r.Content,
		IsPublished:    r.IsPublished,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

type videoRow struct {
	ID           string `gorm:"primaryKey"`
	YoutubeID    string `gorm:"column:youtube_id"`
	Title        string
	Description  *string
	Category     string
	Level        string
	ThumbnailURL *string `gorm:"column:thumbnail_url"`
	IsPublished  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (videoRow) TableName() string { return string(models.CollectionVideos) }

func (r videoRow) video() models.Video {
	return models.Video{
		ID:           r.ID,
		YouTubeID:    r.YoutubeID,
		Title:        r.Title,
		Description:  r.Description,
		Category:     r.Category,
		Level:        models.AudienceLevel(r.Level),
		ThumbnailURL: r.ThumbnailURL,
		IsPublished:  r.IsPublished,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// productRow maps the products table; cta_buttons is jsonb.
type productRow struct {
	ID          string `gorm:"primaryKey"`
	Title       string
	Description *string
	Category    string
	Tags        pq.StringArray `gorm:"type:text[]"`
	ImageURL    *string        `gorm:"column:image_url"`
	Price       string
	PriceType   string
	Badge       *string
	IsAffiliate bool
	CTAButtons  shared.JSONList[models.ProductCTA] `gorm:"column:cta_buttons;type:jsonb"`
	SortOrder   int
	IsPublished bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (productRow) TableName() string { return string(models.CollectionProducts) }

func (r productRow) product() models.Product {
	return models.Product{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Tags:        tagsOf(r.Tags),
		ImageURL:    r.ImageURL,
		Price:       r.Price,
		PriceType:   models.PriceType(r.PriceType),
		Badge:       r.Badge,
		IsAffiliate: r.IsAffiliate,
		CTAButtons:  r.CTAButtons.Slice(),
		SortOrder:   r.SortOrder,
		IsPublished: r.IsPublished,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type relatedRow struct {
	ID          string `gorm:"primaryKey"`
	Title       string
	ContentType string
	Category    *string
	Href        string
	IsActive    bool
	SortOrder   int
	CreatedAt   time.Time
}

func (relatedRow) TableName() string { return string(models.CollectionRelated) }

func (r relatedRow) link() models.RelatedContent {
	return models.RelatedContent{
		ID:          r.ID,
		Title:       r.Title,
		ContentType: models.ContentType(r.ContentType),
		Category:    r.Category,
		Href:        r.Href,
		IsActive:    r.IsActive,
		SortOrder:   r.SortOrder,
		CreatedAt:   r.CreatedAt,
	}
}

func tagsOf(a pq.StringArray) []string {
	if a == nil {
		return []string{}
	}
	return append([]string{}, a...)
}
