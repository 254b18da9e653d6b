package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/contenthub/internal/filter"
	"github.com/desertthunder/contenthub/internal/formatter"
	"github.com/desertthunder/contenthub/internal/models"
	"github.com/desertthunder/contenthub/internal/shared"
	"github.com/desertthunder/contenthub/internal/store"
	"github.com/urfave/cli/v3"
)

func limitValue(cmd *cli.Command) (int, error) {
	limit := cmd.Int("limit")
	if limit < 0 {
		return 0, fmt.Errorf("%w: --limit must be non-negative, got %d", shared.ErrInvalidFlag, limit)
	}
	return limit, nil
}

// optionalBool returns nil unless the flag was given, so an absent flag does not filter.
func optionalBool(cmd *cli.Command, name string) *bool {
	if !cmd.IsSet(name) {
		return nil
	}
	b := cmd.Bool(name)
	return &b
}

func audienceValue(cmd *cli.Command, name string) (models.AudienceLevel, error) {
	a, err := models.ParseAudience(cmd.String(name))
	if err != nil {
		return "", fmt.Errorf("%w: --%s: %v", shared.ErrInvalidFlag, name, err)
	}
	return a, nil
}

func requiredArg(cmd *cli.Command, name string) (string, error) {
	v := strings.TrimSpace(cmd.StringArg(name))
	if v == "" {
		return "", fmt.Errorf("%w: %s", shared.ErrMissingArgument, name)
	}
	return v, nil
}

// ArticlesList lists published articles. --audience narrows the read with the filter engine.
func (r *Runner) ArticlesList(ctx context.Context, cmd *cli.Command) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	limit, err := limitValue(cmd)
	if err != nil {
		return err
	}
	audience, err := audienceValue(cmd, "audience")
	if err != nil {
		return err
	}
	svc, err := r.service()
	if err != nil {
		return err
	}

	q := store.ArticleQuery{
		Category: cmd.String("category"),
		Tag:      cmd.String("tag"),
		Search:   cmd.String("search"),
		Featured: optionalBool(cmd, "featured"),
		Limit:    limit,
	}
	if audience != models.AudienceAll {
		q.Limit = 0
	}

	articles := svc.Articles(ctx, q)
	if audience != models.AudienceAll {
		articles = store.Cap(filter.Articles(articles, filter.DefaultState().WithAudience(audience)), limit)
	}

	r.logger.Debug("articles listed", "count", len(articles), "audience", audience)
	return r.render(format, articles, formatter.ArticlesTable(articles))
}

// ArticlesGet shows one article as a summary, Markdown or JSON.
func (r *Runner) ArticlesGet(ctx context.Context, cmd *cli.Command) error {
	slug, err := requiredArg(cmd, "slug")
	if err != nil {
		return err
	}
	svc, err := r.service()
	if err != nil {
		return err
	}

	article, ok := svc.ArticleBySlug(ctx, slug)
	if !ok {
		return fmt.Errorf("%w: article %q", shared.ErrNotFound, slug)
	}

	switch {
	case cmd.Bool("json"):
		return r.writeJSON(article, true)
	case cmd.Bool("markdown"):
		md, err := formatter.ArticleMarkdown(article)
		if err != nil {
			return err
		}
		if _, err := r.output.Write(md); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	r.writePlainHeader(article.Title)
	r.writePlain("Slug:      %s\n", article.Slug)
	r.writePlain("Author:    %s\n", article.Author)
	r.writePlain("Category:  %s\n", article.Category)
	r.writePlain("Tags:      %s\n", strings.Join(article.Tags, ", "))
	r.writePlain("Published: %s (%s)\n", article.PublishedAt.Format("2006-01-02"), article.ReadTime)
	if article.Featured {
		r.writePlain("Featured:  yes\n")
	}
	if desc := models.Deref(article.Description); desc != "" {
		r.writePlain("\n%s\n", desc)
	}
	return nil
}

// ArticleTags prints the distinct tags, sorted.
func (r *Runner) ArticleTags(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.service()
	if err != nil {
		return err
	}
	return r.writeList(cmd, svc.ArticleTags(ctx))
}

// ArticleCategories prints the distinct categories, sorted.
func (r *Runner) ArticleCategories(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.service()
	if err != nil {
		return err
	}
	return r.writeList(cmd, svc.ArticleCategories(ctx))
}

// ArticleSlugs prints every published slug.
func (r *Runner) ArticleSlugs(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.service()
	if err != nil {
		return err
	}
	return r.writeList(cmd, svc.ArticleSlugs(ctx))
}

func (r *Runner) writeList(cmd *cli.Command, items []string) error {
	if cmd.Bool("json") {
		return r.writeJSON(items, false)
	}
	return r.writeLines(items)
}

// VideosList lists published videos. --level filters in the store, --audience after the read.
func (r *Runner) VideosList(ctx context.Context, cmd *cli.Command) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	limit, err := limitValue(cmd)
	if err != nil {
		return err
	}
	level, err := audienceValue(cmd, "level")
	if err != nil {
		return err
	}
	audience, err := audienceValue(cmd, "audience")
	if err != nil {
		return err
	}
	svc, err := r.service()
	if err != nil {
		return err
	}

	q := store.VideoQuery{
		Category: cmd.String("category"),
		Search:   cmd.String("search"),
		Limit:    limit,
	}
	if level != models.AudienceAll {
		q.Level = level
	}
	if audience != models.AudienceAll {
		q.Limit = 0
	}

	videos := svc.Videos(ctx, q)
	if audience != models.AudienceAll {
		videos = store.Cap(filter.Videos(videos, filter.VideoState{Audience: audience}), limit)
	}
	return r.render(format, videos, formatter.VideosTable(videos))
}

// VideosGet shows one video by YouTube ID.
func (r *Runner) VideosGet(ctx context.Context, cmd *cli.Command) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	id, err := requiredArg(cmd, "id")
	if err != nil {
		return err
	}
	svc, err := r.service()
	if err != nil {
		return err
	}

	video, ok := svc.VideoByYouTubeID(ctx, id)
	if !ok {
		return fmt.Errorf("%w: video %q", shared.ErrNotFound, id)
	}
	return r.render(format, video, formatter.VideosTable([]models.Video{*video}))
}

// ProductsList lists published products. --group narrows the read with the filter engine.
func (r *Runner) ProductsList(ctx context.Context, cmd *cli.Command) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	limit, err := limitValue(cmd)
	if err != nil {
		return err
	}
	group, err := filter.ParseProductGroup(cmd.String("group"))
	if err != nil {
		return fmt.Errorf("%w: --group: %v", shared.ErrInvalidFlag, err)
	}
	svc, err := r.service()
	if err != nil {
		return err
	}

	q := store.ProductQuery{
		Category:    cmd.String("category"),
		Search:      cmd.String("search"),
		IsAffiliate: optionalBool(cmd, "affiliate"),
		Limit:       limit,
	}
	if group != filter.GroupAll {
		q.Limit = 0
	}

	products := svc.Products(ctx, q)
	if group != filter.GroupAll {
		products = store.Cap(filter.Products(products, filter.ProductState{Group: group}), limit)
	}
	return r.render(format, products, formatter.ProductsTable(products))
}

// ProductsGet shows one product by ID.
func (r *Runner) ProductsGet(ctx context.Context, cmd *cli.Command) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	id, err := requiredArg(cmd, "id")
	if err != nil {
		return err
	}
	svc, err := r.service()
	if err != nil {
		return err
	}

	product, ok := svc.ProductByID(ctx, id)
	if !ok {
		return fmt.Errorf("%w: product %q", shared.ErrNotFound, id)
	}
	return r.render(format, product, formatter.ProductsTable([]models.Product{*product}))
}

// RelatedList lists active related links, optionally of one content type.
func (r *Runner) RelatedList(ctx context.Context, cmd *cli.Command) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	limit, err := limitValue(cmd)
	if err != nil {
		return err
	}
	contentType := models.ContentType(cmd.String("type"))
	if contentType != "" && !contentType.Valid() {
		return fmt.Errorf("%w: --type %q", shared.ErrInvalidFlag, contentType)
	}
	svc, err := r.service()
	if err != nil {
		return err
	}

	related := svc.RelatedContent(ctx, store.RelatedQuery{ContentType: contentType, Limit: limit})
	return r.render(format, related, formatter.RelatedTable(related))
}
