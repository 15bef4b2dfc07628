package types

import "github.com/jonathan/format-analyzer/internal/formats"

// FormatSignalWeights is one format's entry in a weights listing.
type FormatSignalWeights struct {
	Format         string         `json:"format" yaml:"format"`
	Signals        map[string]int `json:"signals" yaml:"signals"`
	CharacterLimit int            `json:"character_limit,omitempty" yaml:"character_limit,omitempty"`
	MaxScore       int            `json:"max_score" yaml:"max_score"`
}

// WeightsResponse lists signal weights in weight table order.
type WeightsResponse struct {
	Formats []FormatSignalWeights `json:"formats" yaml:"formats"`
}

// FormatsResponse lists the format registry.
type FormatsResponse struct {
	Formats []formats.Definition `json:"formats" yaml:"formats"`
}
