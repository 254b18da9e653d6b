package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/desertthunder/contenthub/internal/formatter"
	"github.com/desertthunder/contenthub/internal/models"
	"github.com/desertthunder/contenthub/internal/shared"
	"github.com/desertthunder/contenthub/internal/store"
)

const (
	DefaultExportWorkers = 4
	MaxExportWorkers     = 8
	DefaultExportRate    = 5.0
	ManifestFile         = "manifest.json"
)

// ExportOpts configures [Exporter.Export].
type ExportOpts struct {
	Format     formatter.Format // Output format (default: txt)
	OutputDir  string           // Base output directory (default: contenthub_export_{epoch})
	NumWorkers int              // Concurrent workers (default: 4, max: 8)
	RateLimit  float64          // Backend reads per second (default: 5)
}

// CollectionResult records the outcome of exporting one collection.
type CollectionResult struct {
	Collection models.Collection `json:"collection"`
	Count      int               `json:"count"`
	Files      []string          `json:"files"`
	Success    bool              `json:"success"`
	Error      string            `json:"error,omitempty"`
}

// ExportResult is the manifest written next to the exported files.
type ExportResult struct {
	Backend         string             `json:"backend"`
	Format          formatter.Format   `json:"format"`
	OutputDirectory string             `json:"output_directory"`
	ExportedAt      time.Time          `json:"exported_at"`
	Collections     []CollectionResult `json:"collections"`
	Succeeded       int                `json:"succeeded"`
	Failed          int                `json:"failed"`
	ManifestPath    string             `json:"-"`
}

// Exporter dumps every collection of a backend to disk.
//
// It reads the backend directly rather than through the Query Layer so that read
// failures reach the manifest instead of turning into empty files.
type Exporter struct {
	backend store.Backend
	logger  *log.Logger
}

func NewExporter(backend store.Backend, logger *log.Logger) *Exporter {
	return &Exporter{backend: backend, logger: logger}
}

func (o ExportOpts) withDefaults() ExportOpts {
	if o.Format == "" {
		o.Format = formatter.FormatText
	}
	if o.OutputDir == "" {
		o.OutputDir = fmt.Sprintf("contenthub_export_%d", time.Now().Unix())
	}
	if o.NumWorkers <= 0 {
		o.NumWorkers = DefaultExportWorkers
	}
	if o.NumWorkers > MaxExportWorkers {
		o.NumWorkers = MaxExportWorkers
	}
	if o.RateLimit <= 0 {
		o.RateLimit = DefaultExportRate
	}
	return o
}

// Export writes every collection to opts.OutputDir with a worker pool and a shared rate limiter.
//
// A failed collection is recorded in the manifest and does not stop the others. The
// returned error is non-nil only when the output directory or manifest cannot be written.
func (e *Exporter) Export(ctx context.Context, progress chan<- ProgressUpdate, opts ExportOpts) (*ExportResult, error) {
	if e.backend == nil {
		return nil, fmt.Errorf("%w: content store not configured", shared.ErrServiceUnavailable)
	}
	opts = opts.withDefaults()

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	sendProgress(progress, prepareOutputUpdate(opts.OutputDir))

	collections := models.Collections()
	result := &ExportResult{
		Backend:         e.backend.Name(),
		Format:          opts.Format,
		OutputDirectory: opts.OutputDir,
		ExportedAt:      time.Now().UTC(),
		Collections:     make([]CollectionResult, 0, len(collections)),
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)

	jobs := make(chan models.Collection, len(collections))
	results := make(chan CollectionResult, len(collections))
	for _, c := range collections {
		jobs <- c
	}
	close(jobs)

	var wg sync.WaitGroup
	for range min(opts.NumWorkers, len(collections)) {
		wg.Add(1)
		go e.exportWorker(ctx, &wg, limiter, jobs, results, progress, opts)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for res := range results {
		completed++
		result.Collections = append(result.Collections, res)

		if res.Success {
			result.Succeeded++
			sendProgress(progress, collectionCompletedUpdate(completed, len(collections), res))
		} else {
			result.Failed++
			e.logger.Warn("export failed", "collection", res.Collection, "err", res.Error)
			sendProgress(progress, collectionFailedUpdate(completed, len(collections), res))
		}
	}

	slices.SortFunc(result.Collections, func(a, b CollectionResult) int {
		return slices.Index(collections, a.Collection) - slices.Index(collections, b.Collection)
	})

	manifestPath := filepath.Join(opts.OutputDir, ManifestFile)
	data, err := shared.MarshalJSON(result, true)
	if err == nil {
		err = os.WriteFile(manifestPath, data, 0644)
	}
	if err != nil {
		return result, fmt.Errorf("export completed but failed to write manifest: %w", err)
	}
	result.ManifestPath = manifestPath
	sendProgress(progress, manifestUpdate(manifestPath))
	return result, nil
}

func (e *Exporter) exportWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	limiter *rate.Limiter,
	jobs <-chan models.Collection,
	results chan<- CollectionResult,
	progress chan<- ProgressUpdate,
	opts ExportOpts,
) {
	defer wg.Done()

	for c := range jobs {
		sendProgress(progress, fetchCollectionUpdate(slices.Index(models.Collections(), c)+1, len(models.Collections()), c))

		res := CollectionResult{Collection: c, Files: []string{}}
		count, files, err := e.exportCollection(ctx, limiter, progress, c, opts)
		res.Count = count
		res.Files = append(res.Files, files...)
		if err != nil {
			res.Error = err.Error()
		} else {
			res.Success = true
		}
		results <- res
	}
}

// exportCollection fetches c and writes it in opts.Format, returning the item count and written files.
func (e *Exporter) exportCollection(
	ctx context.Context,
	limiter *rate.Limiter,
	progress chan<- ProgressUpdate,
	c models.Collection,
	opts ExportOpts,
) (int, []string, error) {
	if err := limiter.Wait(ctx); err != nil {
		return 0, nil, fmt.Errorf("rate limiter: %w", err)
	}

	write := func(v any, table formatter.Table) ([]string, error) {
		path, err := formatter.WriteFile(opts.OutputDir, string(c), v, table, opts.Format)
		if err != nil {
			return nil, err
		}
		return []string{path}, nil
	}

	switch c {
	case models.CollectionVideos:
		items, err := e.backend.Videos(ctx, store.VideoQuery{})
		if err != nil {
			return 0, nil, err
		}
		files, err := write(items, formatter.VideosTable(items))
		return len(items), files, err

	case models.CollectionProducts:
		items, err := e.backend.Products(ctx, store.ProductQuery{})
		if err != nil {
			return 0, nil, err
		}
		files, err := write(items, formatter.ProductsTable(items))
		return len(items), files, err

	case models.CollectionRelated:
		items, err := e.backend.RelatedContent(ctx, store.RelatedQuery{})
		if err != nil {
			return 0, nil, err
		}
		files, err := write(items, formatter.RelatedTable(items))
		return len(items), files, err

	case models.CollectionArticles:
		return e.exportArticles(ctx, limiter, progress, opts)
	}
	return 0, nil, fmt.Errorf("%w: collection %q", shared.ErrInvalidArgument, c)
}

// exportArticles writes the article table. JSON exports carry full bodies and Markdown
// exports add one file per article, so both fetch every article by slug.
func (e *Exporter) exportArticles(
	ctx context.Context,
	limiter *rate.Limiter,
	progress chan<- ProgressUpdate,
	opts ExportOpts,
) (int, []string, error) {
	previews, err := e.backend.Articles(ctx, store.ArticleQuery{})
	if err != nil {
		return 0, nil, err
	}
	table := formatter.ArticlesTable(previews)

	if opts.Format != formatter.FormatJSON && opts.Format != formatter.FormatMarkdown {
		path, err := formatter.WriteFile(opts.OutputDir, string(models.CollectionArticles), previews, table, opts.Format)
		if err != nil {
			return len(previews), nil, err
		}
		return len(previews), []string{path}, nil
	}

	articles := make([]models.Article, 0, len(previews))
	for i, p := range previews {
		if err := limiter.Wait(ctx); err != nil {
			return len(previews), nil, fmt.Errorf("rate limiter: %w", err)
		}
		sendProgress(progress, fetchArticleUpdate(i+1, len(previews), p.Slug))

		article, err := e.backend.ArticleBySlug(ctx, p.Slug)
		if err != nil {
			return len(previews), nil, fmt.Errorf("article %s: %w", p.Slug, err)
		}
		articles = append(articles, *article)
	}

	path, err := formatter.WriteFile(opts.OutputDir, string(models.CollectionArticles), articles, table, opts.Format)
	if err != nil {
		return len(articles), nil, err
	}
	files := []string{path}

	if opts.Format == formatter.FormatMarkdown {
		written, err := formatter.WriteArticles(filepath.Join(opts.OutputDir, string(models.CollectionArticles)), articles)
		files = append(files, written...)
		if err != nil {
			return len(articles), files, err
		}
	}
	return len(articles), files, nil
}
