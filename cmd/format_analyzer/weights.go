package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/format-analyzer/internal/observability"
	"github.com/jonathan/format-analyzer/schemas"
)

var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Print signal weights for one or all formats",
	Args:  cobra.NoArgs,
	RunE:  runWeights,
}

var weightsFormat string

func init() {
	weightsCmd.Flags().StringVarP(&weightsFormat, "format", "f", "", "Only show this format")
	rootCmd.AddCommand(weightsCmd)
}

func runWeights(cmd *cobra.Command, _ []string) error {
	cfg, a, _, err := setup(cmd)
	if err != nil {
		return err
	}

	resp, err := a.FormatSignalWeights(weightsFormat)
	if err != nil {
		return err
	}
	return emit(cmd, cfg, schemas.Weights, resp, func(p *observability.Printer) {
		p.PrintWeights(resp)
	})
}
