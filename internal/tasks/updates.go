package tasks

import (
	"fmt"

	"github.com/desertthunder/contenthub/internal/models"
)

// ProgressUpdate represents a progress event during an export.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data
}

// Phase of an export.
type Phase int

const (
	PrepareOutput Phase = iota
	FetchCollection
	FetchArticleBody
	WriteCollection
	WriteManifest
)

func (p Phase) String() string {
	switch p {
	case PrepareOutput:
		return "prepare_output"
	case FetchCollection:
		return "fetch_collection"
	case FetchArticleBody:
		return "fetch_article_body"
	case WriteCollection:
		return "write_collection"
	case WriteManifest:
		return "write_manifest"
	default:
		return ""
	}
}

// sendProgress sends update without blocking.
func sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

func prepareOutputUpdate(dir string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   PrepareOutput,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Writing export to %s...", dir),
	}
}

func fetchCollectionUpdate(step, total int, c models.Collection) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchCollection,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Fetching %s...", step, total, c),
	}
}

func fetchArticleUpdate(step, total int, slug string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchArticleBody,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Fetching article %s...", step, total, slug),
	}
}

func collectionCompletedUpdate(step, total int, res CollectionResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteCollection,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✓ %s (%d items, %d files)", step, total, res.Collection, res.Count, len(res.Files)),
		Data:    res,
	}
}

func collectionFailedUpdate(step, total int, res CollectionResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteCollection,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s: %s", step, total, res.Collection, res.Error),
		Data:    res,
	}
}

func manifestUpdate(path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteManifest,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Manifest written to %s", path),
	}
}
