package models

import (
	"fmt"
	"time"
)

// Video is a published YouTube video.
type Video struct {
	ID           string        `json:"id" yaml:"id"`
	YouTubeID    string        `json:"youtube_id" yaml:"youtube_id"`
	Title        string        `json:"title" yaml:"title"`
	Description  *string       `json:"description" yaml:"description"`
	Category     string        `json:"category" yaml:"category"`
	Level        AudienceLevel `json:"level" yaml:"level"`
	ThumbnailURL *string       `json:"thumbnail_url" yaml:"thumbnail_url"`
	IsPublished  bool          `json:"is_published" yaml:"is_published"`
	CreatedAt    time.Time     `json:"created_at" yaml:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at" yaml:"updated_at"`
}

// EmbedURL returns the iframe embed URL for the video.
func (v Video) EmbedURL() string {
	return fmt.Sprintf("https://www.youtube.com/embed/%s", v.YouTubeID)
}

// WatchURL returns the youtube.com watch URL for the video.
func (v Video) WatchURL() string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", v.YouTubeID)
}

// ArticlePreview is the list projection of an [Article].
type ArticlePreview struct {
	ID          string    `json:"id" yaml:"id"`
	Slug        string    `json:"slug" yaml:"slug"`
	Title       string    `json:"title" yaml:"title"`
	Description *string   `json:"description" yaml:"description"`
	Author      string    `json:"author" yaml:"author"`
	Category    string    `json:"category" yaml:"category"`
	Tags        []string  `json:"tags" yaml:"tags"`
	ReadTime    string    `json:"read_time" yaml:"read_time"`
	Featured    bool      `json:"featured" yaml:"featured"`
	PublishedAt time.Time `json:"published_at" yaml:"published_at"`
}

// Article is a full article including its body.
type Article struct {
	ArticlePreview `yaml:",inline"`
	Content        string    `json:"content" yaml:"content"`
	IsPublished    bool      `json:"is_published" yaml:"is_published"`
	CreatedAt      time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" yaml:"updated_at"`
}

// Preview returns the list projection of the article.
func (a Article) Preview() ArticlePreview {
	return a.ArticlePreview
}

// ProductCTA is a call-to-action button rendered on a product card.
type ProductCTA struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
	Type  string `json:"type" yaml:"type"`
	Icon  string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Product is an app, tool, resource or affiliate recommendation.
type Product struct {
	ID          string       `json:"id" yaml:"id"`
	Title       string       `json:"title" yaml:"title"`
	Description *string      `json:"description" yaml:"description"`
	Category    string       `json:"category" yaml:"category"`
	Tags        []string     `json:"tags" yaml:"tags"`
	ImageURL    *string      `json:"image_url" yaml:"image_url"`
	Price       string       `json:"price" yaml:"price"`
	PriceType   PriceType    `json:"price_type" yaml:"price_type"`
	Badge       *string      `json:"badge" yaml:"badge"`
	IsAffiliate bool         `json:"is_affiliate" yaml:"is_affiliate"`
	CTAButtons  []ProductCTA `json:"cta_buttons" yaml:"cta_buttons"`
	SortOrder   int          `json:"sort_order" yaml:"sort_order"`
	IsPublished bool         `json:"is_published" yaml:"is_published"`
	CreatedAt   time.Time    `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" yaml:"updated_at"`
}

// RelatedContent is a curated cross-link shown alongside primary content.
type RelatedContent struct {
	ID          string      `json:"id" yaml:"id"`
	Title       string      `json:"title" yaml:"title"`
	ContentType ContentType `json:"content_type" yaml:"content_type"`
	Category    *string     `json:"category" yaml:"category"`
	Href        string      `json:"href" yaml:"href"`
	IsActive    bool        `json:"is_active" yaml:"is_active"`
	SortOrder   int         `json:"sort_order" yaml:"sort_order"`
	CreatedAt   time.Time   `json:"created_at" yaml:"created_at"`
}

// Label returns the category label, falling back to "General".
func (r RelatedContent) Label() string {
	if r.Category == nil || *r.Category == "" {
		return "General"
	}
	return *r.Category
}

// Deref returns the value of a nullable text column, or "" when absent.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// StringPtr returns a pointer to s. Empty strings become nil.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
