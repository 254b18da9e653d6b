// package models defines the data model for the content service
package models

import (
	"fmt"
	"slices"
)

// AudienceLevel is a coarse reader segment used to filter content.
type AudienceLevel string

const (
	AudienceAll     AudienceLevel = "all"
	AudienceSchool  AudienceLevel = "school"
	AudienceCollege AudienceLevel = "college"
	AudienceTeens   AudienceLevel = "teens"
	AudienceITPros  AudienceLevel = "it-pros"
)

// AudienceOption pairs an [AudienceLevel] with its display label.
type AudienceOption struct {
	Value AudienceLevel `json:"value"`
	Label string        `json:"label"`
}

var audienceOptions = []AudienceOption{
	{AudienceAll, "All Levels"},
	{AudienceSchool, "School Level"},
	{AudienceCollege, "College Level"},
	{AudienceTeens, "Teens"},
	{AudienceITPros, "IT Pros"},
}

// AudienceLevels returns every audience level in display order, wildcard first.
func AudienceLevels() []AudienceOption {
	return slices.Clone(audienceOptions)
}

// Valid reports whether a is one of the known audience levels (including "all").
func (a AudienceLevel) Valid() bool {
	for _, o := range audienceOptions {
		if o.Value == a {
			return true
		}
	}
	return false
}

// Label returns the display label, or the raw value for unknown levels.
func (a AudienceLevel) Label() string {
	for _, o := range audienceOptions {
		if o.Value == a {
			return o.Label
		}
	}
	return string(a)
}

// ParseAudience converts user input into an [AudienceLevel]. Empty input is "all".
func ParseAudience(s string) (AudienceLevel, error) {
	if s == "" {
		return AudienceAll, nil
	}
	a := AudienceLevel(s)
	if !a.Valid() {
		return "", fmt.Errorf("unknown audience level %q", s)
	}
	return a, nil
}

// ArticleCategory is the fixed audience-category enumeration articles are filed under.
type ArticleCategory string

const (
	CategorySchool       ArticleCategory = "school"
	CategoryCollege      ArticleCategory = "college"
	CategoryProfessional ArticleCategory = "professional"
	CategoryTeens        ArticleCategory = "teens"
	CategoryITPros       ArticleCategory = "it-pros"
)

var categoryLabels = map[ArticleCategory]string{
	CategorySchool:       "School",
	CategoryCollege:      "College",
	CategoryProfessional: "Professional",
	CategoryTeens:        "Teens",
	CategoryITPros:       "IT Professionals",
}

// ArticleCategories returns the article categories in their canonical order.
func ArticleCategories() []ArticleCategory {
	return []ArticleCategory{CategorySchool, CategoryCollege, CategoryProfessional, CategoryTeens, CategoryITPros}
}

// Valid reports whether c is a known article category.
func (c ArticleCategory) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the display label, or the raw value for unknown categories.
func (c ArticleCategory) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// category -> audience lookup table
var categoryAudience = map[string]AudienceLevel{
	string(CategorySchool):       AudienceSchool,
	string(CategoryCollege):      AudienceCollege,
	string(CategoryProfessional): AudienceITPros,
	string(CategoryTeens):        AudienceTeens,
	string(CategoryITPros):       AudienceITPros,
}

// TeenCategories are the article categories visible under the "teens" audience.
var TeenCategories = []string{string(CategorySchool), string(CategoryCollege), string(CategoryTeens)}

// AudienceFor returns the audience level an article category maps to.
func AudienceFor(category string) (AudienceLevel, bool) {
	a, ok := categoryAudience[category]
	return a, ok
}

// PriceType describes how a product is charged for.
type PriceType string

const (
	PriceFree         PriceType = "free"
	PricePaid         PriceType = "paid"
	PriceSubscription PriceType = "subscription"
)

// Valid reports whether p is a known price type.
func (p PriceType) Valid() bool {
	switch p {
	case PriceFree, PricePaid, PriceSubscription:
		return true
	}
	return false
}

// ContentType tags what a [RelatedContent] link points at.
type ContentType string

const (
	ContentVideo    ContentType = "video"
	ContentArticle  ContentType = "article"
	ContentProduct  ContentType = "product"
	ContentExternal ContentType = "external"
)

// Valid reports whether t is a known content type.
func (t ContentType) Valid() bool {
	switch t {
	case ContentVideo, ContentArticle, ContentProduct, ContentExternal:
		return true
	}
	return false
}

// Collection names a record collection (table) in the content store.
type Collection string

const (
	CollectionVideos   Collection = "videos"
	CollectionArticles Collection = "articles"
	CollectionProducts Collection = "products"
	CollectionRelated  Collection = "related_content"
)

// Collections returns all collections in a stable order.
func Collections() []Collection {
	return []Collection{CollectionArticles, CollectionVideos, CollectionProducts, CollectionRelated}
}
