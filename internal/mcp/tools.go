// package mcp exposes the content catalogue as Model Context Protocol tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/desertthunder/contenthub/internal/content"
	"github.com/desertthunder/contenthub/internal/filter"
	"github.com/desertthunder/contenthub/internal/formatter"
	"github.com/desertthunder/contenthub/internal/models"
	"github.com/desertthunder/contenthub/internal/store"
)

const (
	Name    = "contenthub"
	Version = "0.1.0"
)

type SearchArticlesRequest struct {
	Query    string `json:"query"`
	Category string `json:"category"`
	Tag      string `json:"tag"`
	Audience string `json:"audience"`
	Limit    int    `json:"limit"`
}

type GetArticleRequest struct {
	Slug string `json:"slug"`
}

// ArticleResponse is an article with its body rendered as Markdown.
type ArticleResponse struct {
	models.ArticlePreview
	Markdown string `json:"markdown"`
}

type ListVideosRequest struct {
	Query    string `json:"query"`
	Audience string `json:"audience"`
	Limit    int    `json:"limit"`
}

type ListProductsRequest struct {
	Query string `json:"query"`
	Group string `json:"group"`
	Limit int    `json:"limit"`
}

type ListRelatedRequest struct {
	Type  string `json:"type"`
	Limit int    `json:"limit"`
}

// Tools holds the handlers; each one reads through the Query Layer and narrows with the filter engine.
type Tools struct {
	content *content.Service
}

// NewServer creates an MCP server with every content tool registered.
func NewServer(svc *content.Service) *server.MCPServer {
	s := server.NewMCPServer(
		Name,
		Version,
		server.WithToolCapabilities(false),
	)
	t := &Tools{content: svc}

	s.AddTool(mcp.NewTool("search_articles",
		mcp.WithDescription("Search published articles by text, category, tag and audience level"),
		mcp.WithString("query", mcp.Description("Case-insensitive text matched against title, description and tags")),
		mcp.WithString("category", mcp.Description("Exact article category, e.g. 'school' or 'it-pros'")),
		mcp.WithString("tag", mcp.Description("Exact, case-sensitive tag")),
		mcp.WithString("audience", mcp.Description("Audience level: all, school, college, teens or it-pros")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results; 0 for no limit")),
	), mcp.NewTypedToolHandler(t.SearchArticles))

	s.AddTool(mcp.NewTool("get_article",
		mcp.WithDescription("Get a published article by slug with its body as Markdown"),
		mcp.WithString("slug", mcp.Required(), mcp.Description("The article slug")),
	), mcp.NewTypedToolHandler(t.GetArticle))

	s.AddTool(mcp.NewTool("list_videos",
		mcp.WithDescription("List published videos, newest first"),
		mcp.WithString("query", mcp.Description("Text matched against title, description and category")),
		mcp.WithString("audience", mcp.Description("Exact video level: all, school, college, teens or it-pros")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results; 0 for no limit")),
	), mcp.NewTypedToolHandler(t.ListVideos))

	s.AddTool(mcp.NewTool("list_products",
		mcp.WithDescription("List published products in display order"),
		mcp.WithString("query", mcp.Description("Text matched against title, description and tags")),
		mcp.WithString("group", mcp.Description("Product group: all, apps, tools, resources, ai or affiliate")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results; 0 for no limit")),
	), mcp.NewTypedToolHandler(t.ListProducts))

	s.AddTool(mcp.NewTool("list_related",
		mcp.WithDescription("List active related links"),
		mcp.WithString("type", mcp.Description("Content type: video, article, product or external")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results; 0 for no limit")),
	), mcp.NewTypedToolHandler(t.ListRelated))

	return s
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func checkLimit(limit int) *mcp.CallToolResult {
	if limit < 0 {
		return mcp.NewToolResultError("limit must not be negative")
	}
	return nil
}

func (t *Tools) SearchArticles(ctx context.Context, _ mcp.CallToolRequest, args SearchArticlesRequest) (*mcp.CallToolResult, error) {
	if res := checkLimit(args.Limit); res != nil {
		return res, nil
	}
	audience, err := models.ParseAudience(args.Audience)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	articles := t.content.Articles(ctx, store.ArticleQuery{Category: args.Category, Tag: args.Tag})
	state := filter.DefaultState().WithSearch(args.Query).WithAudience(audience)
	return jsonResult(store.Cap(filter.Articles(articles, state), args.Limit))
}

func (t *Tools) GetArticle(ctx context.Context, _ mcp.CallToolRequest, args GetArticleRequest) (*mcp.CallToolResult, error) {
	if args.Slug == "" {
		return mcp.NewToolResultError("slug is required"), nil
	}

	article, ok := t.content.ArticleBySlug(ctx, args.Slug)
	if !ok {
		return mcp.NewToolResultError("article not found"), nil
	}
	body, err := formatter.HTMLToMarkdown(article.Content)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(ArticleResponse{ArticlePreview: article.Preview(), Markdown: body})
}

func (t *Tools) ListVideos(ctx context.Context, _ mcp.CallToolRequest, args ListVideosRequest) (*mcp.CallToolResult, error) {
	if res := checkLimit(args.Limit); res != nil {
		return res, nil
	}
	audience, err := models.ParseAudience(args.Audience)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	videos := filter.Videos(t.content.Videos(ctx, store.VideoQuery{}), filter.VideoState{
		SearchQuery: args.Query,
		Audience:    audience,
	})
	return jsonResult(store.Cap(videos, args.Limit))
}

func (t *Tools) ListProducts(ctx context.Context, _ mcp.CallToolRequest, args ListProductsRequest) (*mcp.CallToolResult, error) {
	if res := checkLimit(args.Limit); res != nil {
		return res, nil
	}
	group, err := filter.ParseProductGroup(args.Group)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	products := filter.Products(t.content.Products(ctx, store.ProductQuery{}), filter.ProductState{
		SearchQuery: args.Query,
		Group:       group,
	})
	return jsonResult(store.Cap(products, args.Limit))
}

func (t *Tools) ListRelated(ctx context.Context, _ mcp.CallToolRequest, args ListRelatedRequest) (*mcp.CallToolResult, error) {
	if res := checkLimit(args.Limit); res != nil {
		return res, nil
	}
	contentType := models.ContentType(args.Type)
	if contentType != "" && !contentType.Valid() {
		return mcp.NewToolResultError(fmt.Sprintf("unknown content type %q", args.Type)), nil
	}

	return jsonResult(t.content.RelatedContent(ctx, store.RelatedQuery{
		ContentType: contentType,
		Limit:       args.Limit,
	}))
}
