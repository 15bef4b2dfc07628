package ranking

import (
	"os"

	"gopkg.in/yaml.v3"
)

// LoadWeightTable reads a weight table from a YAML or JSON file. The loaded
// table replaces the defaults entirely.
func LoadWeightTable(path string) (*WeightTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &WeightTableError{Path: path, Message: "failed to read file", Cause: err}
	}
	return ParseWeightTable(data, path)
}

// ParseWeightTable decodes and validates a weight table. YAML is a superset
// of JSON, so both encodings are accepted. Status and aside entries without a
// character_limit get 280 and 500.
func ParseWeightTable(data []byte, source string) (*WeightTable, error) {
	var table WeightTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, &WeightTableError{Path: source, Message: "failed to parse", Cause: err}
	}
	table.fillCharacterLimits()
	if err := table.Validate(); err != nil {
		if wtErr, ok := err.(*WeightTableError); ok {
			wtErr.Path = source
		}
		return nil, err
	}
	return &table, nil
}
