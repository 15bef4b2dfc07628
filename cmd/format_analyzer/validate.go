package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/format-analyzer/internal/formats"
	"github.com/jonathan/format-analyzer/internal/observability"
	"github.com/jonathan/format-analyzer/schemas"
)

// errContentInvalid is returned after printing a failing validation result.
var errContentInvalid = errors.New("content does not meet format requirements")

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check content against a post format's requirements",
	Long:  "Validates content for the given format and exits non-zero when any requirement fails. Warnings do not fail validation.",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

var (
	validateInput  contentFlags
	validateFormat string
)

func init() {
	validateInput.register(validateCmd)
	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", formats.Standard, "Format slug to validate against")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	doc, err := validateInput.read(cmd)
	if err != nil {
		return err
	}
	cfg, a, _, err := setupForHost(cmd, doc.host)
	if err != nil {
		return err
	}
	if !a.KnowsFormat(validateFormat) {
		return &formats.UnknownFormatError{Slug: validateFormat}
	}

	result := a.ValidateFormatContent(doc.content, validateFormat, doc.title)
	if err := emit(cmd, cfg, schemas.ValidationResult, result, func(p *observability.Printer) {
		p.PrintValidation(result)
	}); err != nil {
		return err
	}

	if !result.Valid {
		return fmt.Errorf("%w: %s", errContentInvalid, validateFormat)
	}
	return nil
}
