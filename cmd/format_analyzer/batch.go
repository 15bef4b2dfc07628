package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/format-analyzer/internal/batch"
	"github.com/jonathan/format-analyzer/internal/observability"
	"github.com/jonathan/format-analyzer/internal/types"
	"github.com/jonathan/format-analyzer/schemas"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Suggest formats for every document in a directory, glob or manifest",
	Long: `Analyzes each .html, .htm, .txt and .md file concurrently. Document IDs are
file names without extension; results keep sorted path order.

A single .json, .yaml or .yml file is read as a manifest with a "documents"
list. Documents that carry their current "format" are compared with the
suggestion, and the output reports every mismatch.`,
	Args:  cobra.NoArgs,
	RunE:  runBatch,
}

var (
	batchIn      string
	batchWorkers int
)

func init() {
	batchCmd.Flags().StringVarP(&batchIn, "in", "i", "", "Directory, glob, file or manifest to analyze (required)")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Concurrent analyses (default from config)")
	if err := batchCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	cfg, a, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = batchWorkers
	}

	docs, err := batch.LoadDocuments(batchIn)
	if err != nil {
		return err
	}
	logger.Debug("loaded documents", "count", len(docs), "workers", cfg.Workers)

	results, err := batch.Run(cmd.Context(), a, docs, batch.Options{
		Workers: cfg.Workers,
		OnResult: func(item types.BatchItem) {
			logger.Debug("analyzed", "id", item.ID, "format", item.Suggestion.SuggestedFormat)
		},
	})
	if err != nil {
		return err
	}

	resp := &types.BatchResponse{Results: results, Scan: batch.Scan(results)}
	if resp.Scan != nil {
		logger.Debug("format scan", "scanned", resp.Scan.Scanned, "mismatches", resp.Scan.MismatchCount)
	}
	return emit(cmd, cfg, schemas.Batch, resp, func(p *observability.Printer) {
		p.PrintBatch(resp)
	})
}
