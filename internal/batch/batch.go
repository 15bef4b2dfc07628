// Package batch analyzes many documents concurrently.
package batch

import (
	"context"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/format-analyzer/internal/analyzer"
	"github.com/jonathan/format-analyzer/internal/types"
)

// Options controls a batch run.
type Options struct {
	// Workers bounds concurrent analyses. Zero or less means GOMAXPROCS.
	Workers int
	// OnResult, if set, is called once per finished document from worker
	// goroutines. It must be safe for concurrent use.
	OnResult func(types.BatchItem)
}

// Run suggests a format for every document. Results keep input order.
// Documents without an ID are assigned a random UUID. Documents with a current
// format are flagged when the suggestion differs.
func Run(ctx context.Context, a *analyzer.Analyzer, docs []types.Document, opts Options) ([]types.BatchItem, error) {
	if a == nil {
		return nil, fmt.Errorf("batch: analyzer is nil")
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]types.BatchItem, len(docs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, doc := range docs {
		if err := gCtx.Err(); err != nil {
			break
		}

		id := doc.ID
		if id == "" {
			id = uuid.NewString()
		}

		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			item := types.BatchItem{
				ID:         id,
				Suggestion: a.SuggestFormat(doc.Content, doc.Title),
			}
			if doc.Format != "" {
				item.CurrentFormat = doc.Format
				item.Mismatch = doc.Format != item.Suggestion.SuggestedFormat
			}
			// each goroutine owns its own slot
			results[i] = item
			if opts.OnResult != nil {
				opts.OnResult(item)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch analysis failed: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch analysis failed: %w", err)
	}
	return results, nil
}

// Scan summarizes the format mismatches in items. It returns nil when no item
// has a current format.
func Scan(items []types.BatchItem) *types.FormatScan {
	scan := &types.FormatScan{Mismatches: []string{}}
	for _, item := range items {
		if item.CurrentFormat == "" {
			continue
		}
		scan.Scanned++
		if item.Mismatch {
			scan.Mismatches = append(scan.Mismatches, item.ID)
		} else {
			scan.Correct++
		}
	}
	if scan.Scanned == 0 {
		return nil
	}
	scan.MismatchCount = len(scan.Mismatches)
	return scan
}
