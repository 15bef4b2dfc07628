package ranking

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/format-analyzer/internal/formats"
)

func slugsOf(table *WeightTable) []string {
	out := make([]string, 0, len(table.Formats))
	for _, fw := range table.Formats {
		out = append(out, fw.Format)
	}
	return out
}

func TestDefaultWeightTable_CanonicalOrder(t *testing.T) {
	table := DefaultWeightTable()
	assert.Equal(t, formats.Slugs(), slugsOf(table))
	require.NoError(t, table.Validate())
}

func TestDefaultWeightTable_FreshCopy(t *testing.T) {
	a := DefaultWeightTable()
	a.Formats[0].Signals["short_content"] = 999

	b := DefaultWeightTable()
	assert.Equal(t, 30, b.Formats[0].Signals["short_content"])
}

func TestDefaultWeightTable_CharacterLimits(t *testing.T) {
	table := DefaultWeightTable()

	status, ok := table.Lookup(formats.Status)
	require.True(t, ok)
	assert.Equal(t, 280, status.CharacterLimit)

	aside, ok := table.Lookup(formats.Aside)
	require.True(t, ok)
	assert.Equal(t, 500, aside.CharacterLimit)

	quote, ok := table.Lookup(formats.Quote)
	require.True(t, ok)
	assert.Zero(t, quote.CharacterLimit)
}

func TestMaxPossibleScore(t *testing.T) {
	table := DefaultWeightTable()

	tests := []struct {
		format string
		want   int
	}{
		{formats.Status, 85},
		{formats.Aside, 80},
		{formats.Quote, 140},
		{formats.Link, 125},
		{formats.Image, 125},
		{formats.Gallery, 140},
		{formats.Video, 150},
		{formats.Audio, 150},
		{formats.Chat, 150},
		{formats.Standard, 55},
		{"podcast", UndeclaredMaxScore},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			assert.Equal(t, tt.want, table.MaxPossibleScore(tt.format))
		})
	}
}

func TestWeightTable_Clone(t *testing.T) {
	table := DefaultWeightTable()
	clone := table.Clone()
	clone.Formats[0].Signals["short_content"] = 1
	clone.Formats[0].CharacterLimit = 1

	assert.Equal(t, 30, table.Formats[0].Signals["short_content"])
	assert.Equal(t, 280, table.Formats[0].CharacterLimit)
}

func TestWeightTable_Validate(t *testing.T) {
	tests := []struct {
		name    string
		table   *WeightTable
		wantErr string
	}{
		{
			name:    "empty table",
			table:   &WeightTable{},
			wantErr: "invalid weight table",
		},
		{
			name: "missing format slug",
			table: &WeightTable{Formats: []FormatWeights{
				{Signals: map[string]int{"short_content": 1}},
			}},
			wantErr: "invalid weight table",
		},
		{
			name: "no signals",
			table: &WeightTable{Formats: []FormatWeights{
				{Format: "status", Signals: map[string]int{}},
			}},
			wantErr: "invalid weight table",
		},
		{
			name: "zero weight",
			table: &WeightTable{Formats: []FormatWeights{
				{Format: "status", Signals: map[string]int{"short_content": 0}},
			}},
			wantErr: "invalid weight table",
		},
		{
			name: "negative limit",
			table: &WeightTable{Formats: []FormatWeights{
				{Format: "status", Signals: map[string]int{"short_content": 1}, CharacterLimit: -1},
			}},
			wantErr: "invalid weight table",
		},
		{
			name: "duplicate format",
			table: &WeightTable{Formats: []FormatWeights{
				{Format: "status", Signals: map[string]int{"short_content": 1}},
				{Format: "status", Signals: map[string]int{"no_title": 1}},
			}},
			wantErr: "declared more than once",
		},
		{
			name: "reserved signal name",
			table: &WeightTable{Formats: []FormatWeights{
				{Format: "status", Signals: map[string]int{"character_limit": 280}},
			}},
			wantErr: "is not a signal",
		},
		{
			name: "custom format is fine",
			table: &WeightTable{Formats: []FormatWeights{
				{Format: "code", Signals: map[string]int{"has_code": 50}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			var wtErr *WeightTableError
			assert.True(t, errors.As(err, &wtErr))
		})
	}
}
