package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/format-analyzer/internal/config"
	"github.com/jonathan/format-analyzer/internal/observability"
	"github.com/jonathan/format-analyzer/internal/schemas"
)

// emit renders v in the configured output format. text draws v with the
// observability printer.
func emit(cmd *cobra.Command, cfg config.Config, schemaName string, v any, text func(*observability.Printer)) error {
	if cfg.CheckSchema && schemaName != "" {
		if err := schemas.ValidateValue(schemaName, v); err != nil {
			return fmt.Errorf("output failed schema check: %w", err)
		}
	}

	var buf bytes.Buffer
	switch cfg.Output {
	case config.OutputYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
	case config.OutputText:
		text(observability.NewPrinter(&buf))
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	}

	return writeOutput(cmd.OutOrStdout(), outPath, buf.Bytes())
}

// writeOutput writes data to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
