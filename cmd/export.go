package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/contenthub/internal/formatter"
	"github.com/desertthunder/contenthub/internal/shared"
	"github.com/desertthunder/contenthub/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Export writes every collection to a directory and reports the manifest.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}
	workers := cmd.Int("workers")
	if workers < 0 {
		return fmt.Errorf("%w: --workers must be non-negative, got %d", shared.ErrInvalidFlag, workers)
	}
	rate := cmd.Float("rate")
	if rate < 0 {
		return fmt.Errorf("%w: --rate must be non-negative, got %v", shared.ErrInvalidFlag, rate)
	}
	if _, err := r.service(); err != nil {
		return err
	}

	opts := tasks.ExportOpts{
		Format:     format,
		OutputDir:  cmd.String("output"),
		NumWorkers: workers,
		RateLimit:  rate,
	}
	r.logger.Info("starting export", "backend", r.backend.Name(), "format", format)

	progressCh := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	quiet := cmd.Bool("json")
	go func() {
		defer close(done)
		for update := range progressCh {
			if quiet {
				continue
			}
			switch update.Phase {
			case tasks.PrepareOutput, tasks.WriteManifest:
				r.writePlain("📁 %s\n", update.Message)
			case tasks.FetchCollection:
				r.writePlain("📥 %s\n", update.Message)
			case tasks.FetchArticleBody:
				r.logger.Debug(update.Message, "step", update.Step, "total", update.Total)
			case tasks.WriteCollection:
				r.writePlain("   %s\n", update.Message)
			}
		}
	}()

	result, err := tasks.NewExporter(r.backend, r.logger).Export(ctx, progressCh, opts)
	close(progressCh)
	<-done

	if err != nil {
		return err
	}

	if quiet {
		return r.writeJSON(result, true)
	}

	r.writePlain("\n")
	r.writePlainHeader("Export Complete!")
	r.writePlain("Backend: %s\n", result.Backend)
	r.writePlain("Format: %s\n", result.Format)
	r.writePlain("Directory: %s\n", result.OutputDirectory)
	r.writePlain("Collections: %d succeeded, %d failed\n", result.Succeeded, result.Failed)
	for _, c := range result.Collections {
		if c.Success {
			r.writePlain("  ✓ %-16s %d rows\n", c.Collection, c.Count)
		} else {
			r.writePlain("  ✗ %-16s %s\n", c.Collection, c.Error)
		}
	}
	r.writePlain("Manifest: %s\n", result.ManifestPath)
	return nil
}
