package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/format-analyzer/internal/observability"
	"github.com/jonathan/format-analyzer/schemas"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest the best post format for content",
	Long:  "Extracts content signals, scores every format and prints the winner with its confidence, reason and up to two alternatives.",
	Args:  cobra.NoArgs,
	RunE:  runSuggest,
}

var suggestInput contentFlags

func init() {
	suggestInput.register(suggestCmd)
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	doc, err := suggestInput.read(cmd)
	if err != nil {
		return err
	}
	cfg, a, _, err := setupForHost(cmd, doc.host)
	if err != nil {
		return err
	}

	suggestion := a.SuggestFormat(doc.content, doc.title)
	return emit(cmd, cfg, schemas.Suggestion, suggestion, func(p *observability.Printer) {
		p.PrintSuggestion(suggestion)
	})
}
