package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	internalschemas "github.com/jonathan/format-analyzer/internal/schemas"
	"github.com/jonathan/format-analyzer/schemas"
)

var schemaCmd = &cobra.Command{
	Use:   "schema [NAME]",
	Short: "Print or check against the JSON schemas for command output",
	Long:  "With no arguments lists schema names. With NAME prints that schema, or validates --check FILE against it.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSchema,
}

var schemaCheck string

func init() {
	schemaCmd.Flags().StringVar(&schemaCheck, "check", "", "Validate this JSON file against the schema")
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		if schemaCheck != "" {
			return fmt.Errorf("--check requires a schema name")
		}
		_, err := fmt.Fprintln(out, strings.Join(schemas.Names(), "\n"))
		return err
	}

	name := args[0]
	if schemaCheck != "" {
		if err := internalschemas.ValidateFile(name, schemaCheck); err != nil {
			return err
		}
		_, err := fmt.Fprintf(out, "%s: valid %s\n", schemaCheck, name)
		return err
	}

	doc, err := schemas.Load(name)
	if err != nil {
		return err
	}
	return writeOutput(out, outPath, []byte(doc))
}
