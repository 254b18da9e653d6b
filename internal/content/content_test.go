package content

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/desertthunder/contenthub/internal/models"
	"github.com/desertthunder/contenthub/internal/shared"
	"github.com/desertthunder/contenthub/internal/store"
	ctesting "github.com/desertthunder/contenthub/internal/testing"
)

func newTestService(t *testing.T, backend store.Backend) (*Service, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	logger := shared.NewLogger(&buf)
	shared.SetLogLevel(logger, log.DebugLevel)
	return NewService(backend, logger), &buf
}

func TestService(t *testing.T) {
	ctx := context.Background()

	t.Run("Articles", func(t *testing.T) {
		svc, _ := newTestService(t, ctesting.NewMockBackend(ctesting.SampleData()))

		got := svc.Articles(ctx, store.ArticleQuery{Tag: "AI"})
		slugs := []string{}
		for _, a := range got {
			slugs = append(slugs, a.Slug)
		}
		if diff := cmp.Diff([]string{"intro-to-ai", "ai-at-work"}, slugs); diff != "" {
			t.Errorf("Articles() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Articles trims search", func(t *testing.T) {
		svc, _ := newTestService(t, ctesting.NewMockBackend(ctesting.SampleData()))

		padded := svc.Articles(ctx, store.ArticleQuery{Search: "  event loop  "})
		if len(padded) != 1 || padded[0].Slug != "javascript-basics" {
			t.Errorf("expected trimmed search to match, got %+v", padded)
		}

		blank := svc.Articles(ctx, store.ArticleQuery{Search: "   "})
		if len(blank) != len(ctesting.SampleArticles()) {
			t.Errorf("expected whitespace search to return everything, got %d", len(blank))
		}
	})

	t.Run("backend failure yields empty results", func(t *testing.T) {
		backend := ctesting.NewFailingBackend(errors.New("connection reset"))
		svc, buf := newTestService(t, backend)

		if got := svc.Articles(ctx, store.ArticleQuery{}); got == nil || len(got) != 0 {
			t.Errorf("expected empty non-nil articles, got %#v", got)
		}
		if got := svc.Videos(ctx, store.VideoQuery{}); got == nil || len(got) != 0 {
			t.Errorf("expected empty non-nil videos, got %#v", got)
		}
		if got := svc.Products(ctx, store.ProductQuery{}); got == nil || len(got) != 0 {
			t.Errorf("expected empty non-nil products, got %#v", got)
		}
		if got := svc.RelatedContent(ctx, store.RelatedQuery{}); got == nil || len(got) != 0 {
			t.Errorf("expected empty non-nil related, got %#v", got)
		}
		if got := svc.ArticleSlugs(ctx); got == nil || len(got) != 0 {
			t.Errorf("expected empty non-nil slugs, got %#v", got)
		}
		if got := svc.ArticleTags(ctx); got == nil || len(got) != 0 {
			t.Errorf("expected empty non-nil tags, got %#v", got)
		}
		if got := svc.ArticleCategories(ctx); got == nil || len(got) != 0 {
			t.Errorf("expected empty non-nil categories, got %#v", got)
		}

		if !strings.Contains(buf.String(), "connection reset") {
			t.Errorf("expected failure to be logged, got %q", buf.String())
		}
		if backend.Calls("Articles") != 1 {
			t.Errorf("expected one Articles call, got %d", backend.Calls("Articles"))
		}
	})

	t.Run("ArticleBySlug", func(t *testing.T) {
		svc, buf := newTestService(t, ctesting.NewMockBackend(ctesting.SampleData()))

		a, ok := svc.ArticleBySlug(ctx, "cloud-careers")
		if !ok || a.Title != "Cloud Careers" {
			t.Errorf("expected article, got %+v, %v", a, ok)
		}

		if a, ok := svc.ArticleBySlug(ctx, "missing"); ok || a != nil {
			t.Errorf("expected not found, got %+v, %v", a, ok)
		}
		if !strings.Contains(buf.String(), "article not found") {
			t.Errorf("expected not-found debug log, got %q", buf.String())
		}
	})

	t.Run("lookup failure is distinct in logs", func(t *testing.T) {
		svc, buf := newTestService(t, ctesting.NewFailingBackend(nil))

		if _, ok := svc.ArticleBySlug(ctx, "intro-to-ai"); ok {
			t.Error("expected lookup to fail")
		}
		if _, ok := svc.VideoByYouTubeID(ctx, "yt-python"); ok {
			t.Error("expected lookup to fail")
		}
		if _, ok := svc.ProductByID(ctx, "p1"); ok {
			t.Error("expected lookup to fail")
		}

		out := buf.String()
		if !strings.Contains(out, "failed to fetch article") || strings.Contains(out, "not found") {
			t.Errorf("expected error-level failure log, got %q", out)
		}
	})

	t.Run("ArticleTags unions and sorts", func(t *testing.T) {
		svc, _ := newTestService(t, ctesting.NewMockBackend(ctesting.SampleData()))

		want := []string{"AI", "Beginners", "Careers", "Cloud", "Community", "Ethics", "JavaScript", "TypeScript", "Web"}
		if diff := cmp.Diff(want, svc.ArticleTags(ctx)); diff != "" {
			t.Errorf("ArticleTags() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Categories are unique and sorted", func(t *testing.T) {
		svc, _ := newTestService(t, ctesting.NewMockBackend(ctesting.SampleData()))

		if diff := cmp.Diff([]string{"college", "it-pros", "professional", "school", "teens"}, svc.ArticleCategories(ctx)); diff != "" {
			t.Errorf("ArticleCategories() mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]string{"Game Dev", "Linux", "Programming"}, svc.VideoCategories(ctx)); diff != "" {
			t.Errorf("VideoCategories() mismatch (-want +got):\n%s", diff)
		}
		if got := svc.ProductCategories(ctx); len(got) != 5 {
			t.Errorf("expected 5 product categories, got %v", got)
		}
	})

	t.Run("Videos treats all as no level filter", func(t *testing.T) {
		svc, _ := newTestService(t, ctesting.NewMockBackend(ctesting.SampleData()))

		if got := svc.Videos(ctx, store.VideoQuery{Level: models.AudienceAll}); len(got) != 3 {
			t.Errorf("expected 3 videos, got %d", len(got))
		}
		if got := svc.Videos(ctx, store.VideoQuery{Level: models.AudienceTeens}); len(got) != 1 {
			t.Errorf("expected 1 teens video, got %d", len(got))
		}
	})

	t.Run("Products normalize CTA buttons", func(t *testing.T) {
		svc, _ := newTestService(t, ctesting.NewMockBackend(ctesting.SampleData()))

		for _, p := range svc.Products(ctx, store.ProductQuery{}) {
			if p.CTAButtons == nil {
				t.Errorf("product %s has nil CTA buttons", p.ID)
			}
		}

		p, ok := svc.ProductByID(ctx, "p5")
		if !ok || len(p.CTAButtons) != 1 {
			t.Errorf("unexpected product %+v, %v", p, ok)
		}
	})

	t.Run("RelatedContent limit", func(t *testing.T) {
		svc, _ := newTestService(t, ctesting.NewMockBackend(ctesting.SampleData()))

		if got := svc.RelatedContent(ctx, store.RelatedQuery{Limit: 5}); len(got) != 5 {
			t.Errorf("expected 5 related links, got %d", len(got))
		}
	})

	t.Run("Empty backend", func(t *testing.T) {
		svc, _ := newTestService(t, store.NewEmpty())

		if svc.Backend() != shared.DriverNone {
			t.Errorf("unexpected backend %q", svc.Backend())
		}
		if got := svc.Articles(ctx, store.ArticleQuery{}); got == nil || len(got) != 0 {
			t.Errorf("expected empty articles, got %#v", got)
		}
		if _, ok := svc.ArticleBySlug(ctx, "anything"); ok {
			t.Error("expected not found from empty backend")
		}
	})

	t.Run("each call re-queries", func(t *testing.T) {
		backend := ctesting.NewMockBackend(ctesting.SampleData())
		svc, _ := newTestService(t, backend)

		svc.Articles(ctx, store.ArticleQuery{})
		svc.Articles(ctx, store.ArticleQuery{})
		if backend.Calls("Articles") != 2 {
			t.Errorf("expected 2 backend calls, got %d", backend.Calls("Articles"))
		}
	})
}
