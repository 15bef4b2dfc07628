// Package types provides type definitions for the records produced and consumed by the format analyzer.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Alternative is a runner-up format in a Suggestion.
type Alternative struct {
	Format     string `json:"format" yaml:"format"`
	Confidence int    `json:"confidence" yaml:"confidence"`
	Reason     string `json:"reason" yaml:"reason"`
}

// Suggestion is the ranked recommendation for a piece of content.
type Suggestion struct {
	SuggestedFormat string         `json:"suggested_format" yaml:"suggested_format"`
	Confidence      int            `json:"confidence" yaml:"confidence"`
	Reason          string         `json:"reason" yaml:"reason"`
	Alternatives    []Alternative  `json:"alternatives" yaml:"alternatives"`
	Signals         map[string]any `json:"signals" yaml:"signals"`
	Scores          map[string]int `json:"scores" yaml:"scores"`
}

// Analysis is the raw view of a suggestion: signals and scores without reasons.
type Analysis struct {
	SuggestedFormat string         `json:"suggested_format" yaml:"suggested_format"`
	Confidence      int            `json:"confidence" yaml:"confidence"`
	Signals         map[string]any `json:"signals" yaml:"signals"`
	Scores          map[string]int `json:"scores" yaml:"scores"`
}
