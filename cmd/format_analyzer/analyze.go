package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/format-analyzer/internal/observability"
	"github.com/jonathan/format-analyzer/schemas"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Show every format score and the raw content signals",
	Args:  cobra.NoArgs,
	RunE:  runAnalyze,
}

var analyzeInput contentFlags

func init() {
	analyzeInput.register(analyzeCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	doc, err := analyzeInput.read(cmd)
	if err != nil {
		return err
	}
	cfg, a, _, err := setupForHost(cmd, doc.host)
	if err != nil {
		return err
	}

	analysis := a.AnalyzeContent(doc.content, doc.title)
	return emit(cmd, cfg, schemas.Analysis, analysis, func(p *observability.Printer) {
		p.PrintAnalysis(analysis)
	})
}
