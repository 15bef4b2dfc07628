package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/format-analyzer/internal/formats"
	"github.com/jonathan/format-analyzer/internal/observability"
	"github.com/jonathan/format-analyzer/internal/types"
	"github.com/jonathan/format-analyzer/schemas"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported post formats",
	Args:  cobra.NoArgs,
	RunE:  runFormats,
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func runFormats(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	resp := types.FormatsResponse{Formats: formats.Sorted()}
	return emit(cmd, cfg, schemas.Formats, resp, func(p *observability.Printer) {
		p.PrintFormats(resp.Formats)
	})
}
