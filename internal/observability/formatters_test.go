package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/format-analyzer/internal/formats"
	"github.com/jonathan/format-analyzer/internal/types"
)

func TestPrintSuggestion(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSuggestion(&types.Suggestion{
		SuggestedFormat: "quote",
		Confidence:      86,
		Reason:          "contains blockquote, has citation",
		Alternatives: []types.Alternative{
			{Format: "status", Confidence: 88, Reason: "no title"},
		},
		Scores: map[string]int{"quote": 120, "status": 75, "aside": 60},
	})
	output := buf.String()

	assert.Contains(t, output, "FORMAT SUGGESTION")
	assert.Contains(t, output, "Quote")
	assert.Contains(t, output, "86%")
	assert.Contains(t, output, "contains blockquote")
	assert.Contains(t, output, "Status (88%)")
	assert.Contains(t, output, "█")
}

func TestPrintSuggestion_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSuggestion(nil)
	assert.Empty(t, buf.String())
}

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAnalysis(&types.Analysis{
		SuggestedFormat: "status",
		Confidence:      100,
		Signals:         map[string]any{"no_title": true, "has_links": false, "char_count": 12},
		Scores:          map[string]int{"status": 85},
	})
	output := buf.String()

	assert.Contains(t, output, "CONTENT ANALYSIS")
	assert.Contains(t, output, "✓ no_title")
	assert.NotContains(t, output, "has_links")
	assert.Contains(t, output, "char_count=12")
}

func TestPrintValidation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintValidation(&types.ValidationResult{
		Valid:    false,
		Format:   "link",
		Messages: []string{"Link posts must contain at least one link."},
	})
	assert.Contains(t, buf.String(), "INVALID")
	assert.Contains(t, buf.String(), "✗ Link posts must")

	buf.Reset()
	p.PrintValidation(&types.ValidationResult{Valid: true, Format: "standard"})
	assert.Contains(t, buf.String(), "VALID")
	assert.Contains(t, buf.String(), "No issues found")
}

func TestPrintWeights(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintWeights(&types.WeightsResponse{Formats: []types.FormatSignalWeights{
		{Format: "status", Signals: map[string]int{"no_title": 15, "short_content": 30}, CharacterLimit: 280, MaxScore: 65},
	}})
	output := buf.String()

	assert.Contains(t, output, "status (max 65, limit 280 chars)")
	assert.Less(t, strings.Index(output, "short_content"), strings.Index(output, "no_title"), "heaviest first")
}

func TestPrintFormats(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintFormats(formats.Sorted())
	output := buf.String()

	assert.Contains(t, output, "POST FORMATS")
	assert.Contains(t, output, "status    no title, author_date_only")
}

func TestPrintBatch(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintBatch(&types.BatchResponse{Results: []types.BatchItem{
		{ID: "a", Suggestion: &types.Suggestion{SuggestedFormat: "quote", Confidence: 80}},
		{ID: "b", Suggestion: &types.Suggestion{SuggestedFormat: "quote", Confidence: 70}},
		{ID: "c", Suggestion: &types.Suggestion{SuggestedFormat: "status", Confidence: 100}},
	}})
	output := buf.String()

	assert.Contains(t, output, "Analyzed 3 documents")
	assert.Contains(t, output, "quote: 2")
	assert.Contains(t, output, "status: 1")
	assert.NotContains(t, output, "Scanned")
}

func TestPrintBatch_Mismatches(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintBatch(&types.BatchResponse{
		Results: []types.BatchItem{
			{ID: "a", CurrentFormat: "standard", Mismatch: true, Suggestion: &types.Suggestion{SuggestedFormat: "quote", Confidence: 80}},
			{ID: "b", CurrentFormat: "status", Suggestion: &types.Suggestion{SuggestedFormat: "status", Confidence: 100}},
		},
		Scan: &types.FormatScan{Scanned: 2, Correct: 1, MismatchCount: 1, Mismatches: []string{"a"}},
	})
	output := buf.String()

	assert.Contains(t, output, "! was standard")
	assert.Equal(t, 1, strings.Count(output, "! was"))
	assert.Contains(t, output, "Scanned 2 with a format: 1 correct, 1 mismatched")
}

func TestPrintBatch_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintBatch(nil)
	NewPrinter(&buf).PrintBatch(&types.BatchResponse{})
	assert.Empty(t, buf.String())
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.printBox("T", strings.Repeat("é", 200))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line))
	}
}
