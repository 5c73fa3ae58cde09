package importer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/recipe-tools/tandoor-import/internal/source"
)

// ItemResult is the outcome of one URL in a batch run.
type ItemResult struct {
	URL string
	Result
}

// Summary aggregates a batch run.
type Summary struct {
	Total   int
	Created int
	Failed  int
	Images  int
}

// Runner drives a batch import: fetch each URL, decode, import, continue.
// No single document failure aborts the batch.
type Runner struct {
	Source   *source.Client
	Importer *Importer
}

// Run processes urls in order and returns per-item results plus a summary.
func (r *Runner) Run(ctx context.Context, urls []string) (Summary, []ItemResult) {
	summary := Summary{Total: len(urls)}
	results := make([]ItemResult, 0, len(urls))

	for i, url := range urls {
		slog.Info("Processing recipe", "index", i+1, "total", len(urls), "url", url)

		src, err := r.Source.Fetch(ctx, url)
		if err != nil {
			slog.Error("Failed to fetch recipe document", "url", url, "error", err)
			summary.Failed++
			results = append(results, ItemResult{
				URL: url,
				Result: Result{
					Title:  "unknown",
					Status: StatusFailed,
					Err:    fmt.Errorf("fetch failed: %w", err),
				},
			})
			continue
		}

		result := r.Importer.Import(ctx, src)
		switch result.Status {
		case StatusCreated:
			summary.Created++
			if result.ImageAttached {
				summary.Images++
			}
		default:
			summary.Failed++
			slog.Error("Failed to import recipe", "url", url, "title", result.Title, "error", result.Err)
		}

		results = append(results, ItemResult{URL: url, Result: result})
	}

	return summary, results
}
