// Package models defines the content entities served by contenthub and the fixed
// enumerations used to filter them.
//
// The package contains three kinds of types:
//
// 1. Entities read from the content store (never written by this application)
//   - [Video] : an embedded YouTube video with an audience level
//   - [ArticlePreview] : list projection of an article (no body)
//   - [Article] : full article including its body
//   - [Product] : an app, tool or affiliate recommendation with call-to-action buttons
//   - [RelatedContent] : a curated, manually ordered cross-link
//
// 2. Enumerations: [AudienceLevel], [ArticleCategory], [PriceType], [ContentType], [Collection]
//
// 3. The audience lookup table: [AudienceFor] maps an article category to the audience
// level it belongs to, and [TeenCategories] lists the categories teen readers can see.
//
// All entities carry a publication flag; only published (or active) rows are ever
// returned by a [store.Backend].
package models
