// Package analyzer is the entry point for format suggestion, analysis,
// validation and weight introspection.
package analyzer

import (
	"io"
	"maps"
	"strings"

	charmlog "github.com/charmbracelet/log"

	"github.com/jonathan/format-analyzer/internal/formats"
	"github.com/jonathan/format-analyzer/internal/ranking"
	"github.com/jonathan/format-analyzer/internal/signals"
	"github.com/jonathan/format-analyzer/internal/types"
	"github.com/jonathan/format-analyzer/internal/validation"
)

// EmptyContentReason is the reason given when there is nothing to analyze.
const EmptyContentReason = "No content provided."

// Option configures an Analyzer.
type Option func(*settings)

type settings struct {
	weights *ranking.WeightTable
	ownHost string
	hooks   []signals.Hook
	logger  *charmlog.Logger
}

// WithWeights replaces the default weight table.
func WithWeights(table *ranking.WeightTable) Option {
	return func(s *settings) {
		s.weights = table
	}
}

// WithOwnHost sets the site host used to tell external links apart.
func WithOwnHost(host string) Option {
	return func(s *settings) {
		s.ownHost = host
	}
}

// WithSignalHooks registers hooks that add custom signals.
func WithSignalHooks(hooks ...signals.Hook) Option {
	return func(s *settings) {
		s.hooks = append(s.hooks, hooks...)
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *charmlog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// Analyzer runs the extract, score and rank pipeline. It holds no mutable
// state and is safe for concurrent use.
type Analyzer struct {
	extractor *signals.Extractor
	weights   *ranking.WeightTable
	logger    *charmlog.Logger
}

// New builds an Analyzer. The weight table is validated and copied.
func New(opts ...Option) (*Analyzer, error) {
	cfg := settings{}
	for _, opt := range opts {
		opt(&cfg)
	}

	weights := cfg.weights
	if weights == nil {
		weights = ranking.DefaultWeightTable()
	} else {
		if err := weights.Validate(); err != nil {
			return nil, err
		}
		weights = weights.Clone()
	}

	logger := cfg.logger
	if logger == nil {
		logger = charmlog.New(io.Discard)
	}

	return &Analyzer{
		extractor: signals.NewExtractor(
			signals.WithOwnHost(cfg.ownHost),
			signals.WithHooks(cfg.hooks...),
		),
		weights: weights,
		logger:  logger,
	}, nil
}

// SuggestFormat recommends a format for content with confidence, reason and alternatives.
func (a *Analyzer) SuggestFormat(content, title string) *types.Suggestion {
	if strings.TrimSpace(content) == "" {
		return emptySuggestion()
	}

	s := a.extractor.Extract(content, title)
	if s.Blank() {
		a.logger.Debug("content has no text or media", "bytes", len(content))
		return emptySuggestion()
	}
	scores := ranking.Score(s, a.weights)
	result := ranking.Suggest(s, scores, a.weights)

	a.logger.Debug("suggested format",
		"format", result.SuggestedFormat,
		"confidence", result.Confidence,
		"alternatives", len(result.Alternatives),
		"chars", s.Int(signals.CharCount),
	)
	return result
}

// AnalyzeContent returns the signals and scores behind a suggestion.
func (a *Analyzer) AnalyzeContent(content, title string) *types.Analysis {
	suggestion := a.SuggestFormat(content, title)
	return &types.Analysis{
		SuggestedFormat: suggestion.SuggestedFormat,
		Confidence:      suggestion.Confidence,
		Signals:         suggestion.Signals,
		Scores:          suggestion.Scores,
	}
}

// ValidateFormatContent checks content against format. An empty format means standard.
func (a *Analyzer) ValidateFormatContent(content, format, title string) *types.ValidationResult {
	if format == "" {
		format = formats.Standard
	}
	result := validation.ValidateContent(a.extractor, content, format, title)

	a.logger.Debug("validated content",
		"format", format,
		"valid", result.Valid,
		"messages", len(result.Messages),
		"warnings", len(result.Warnings),
	)
	return result
}

// FormatSignalWeights lists signal weights for one format, or for all
// formats when format is empty.
func (a *Analyzer) FormatSignalWeights(format string) (*types.WeightsResponse, error) {
	if format == "" {
		resp := &types.WeightsResponse{Formats: make([]types.FormatSignalWeights, 0, len(a.weights.Formats))}
		for i := range a.weights.Formats {
			resp.Formats = append(resp.Formats, toResponse(&a.weights.Formats[i]))
		}
		return resp, nil
	}

	fw, ok := a.weights.Lookup(format)
	if !ok {
		return nil, &formats.UnknownFormatError{Slug: format}
	}
	return &types.WeightsResponse{Formats: []types.FormatSignalWeights{toResponse(fw)}}, nil
}

// KnowsFormat reports whether format is a registered format or one declared
// by the weight table.
func (a *Analyzer) KnowsFormat(format string) bool {
	if formats.IsValid(format) {
		return true
	}
	_, ok := a.weights.Lookup(format)
	return ok
}

func toResponse(fw *ranking.FormatWeights) types.FormatSignalWeights {
	return types.FormatSignalWeights{
		Format:         fw.Format,
		Signals:        maps.Clone(fw.Signals),
		CharacterLimit: fw.CharacterLimit,
		MaxScore:       fw.MaxScore(),
	}
}

// emptySuggestion is the result for content that is empty once markup is stripped.
func emptySuggestion() *types.Suggestion {
	return &types.Suggestion{
		SuggestedFormat: formats.Standard,
		Reason:          EmptyContentReason,
		Alternatives:    []types.Alternative{},
		Signals:         map[string]any{},
		Scores:          map[string]int{},
	}
}
