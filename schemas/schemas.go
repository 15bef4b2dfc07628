// Package schemas embeds the JSON Schemas describing the analyzer's inputs and outputs.
package schemas

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// Schema names.
const (
	Suggestion       = "suggestion"
	Analysis         = "analysis"
	ValidationResult = "validation_result"
	Weights          = "weights"
	WeightTable      = "weight_table"
	Formats          = "formats"
	Batch            = "batch"
	Syndication      = "syndication"
	MF2              = "mf2"
)

const suffix = ".schema.json"

//go:embed *.schema.json
var files embed.FS

// FS exposes the embedded schema files.
func FS() fs.FS {
	return files
}

// Names lists the embedded schemas, sorted.
func Names() []string {
	entries, _ := fs.ReadDir(files, ".")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), suffix))
	}
	sort.Strings(names)
	return names
}

// Load returns the schema document for name.
func Load(name string) (string, error) {
	data, err := files.ReadFile(name + suffix)
	if err != nil {
		return "", fmt.Errorf("unknown schema %q: %w", name, err)
	}
	return string(data), nil
}
