// Package ranking scores content signals against per-format weights and
// turns the scores into a ranked format suggestion.
package ranking

import (
	"fmt"
	"maps"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/format-analyzer/internal/formats"
	"github.com/jonathan/format-analyzer/internal/signals"
)

// CharacterLimitBonus is added to a format's score when it declares a
// character limit and the content fits within it.
const CharacterLimitBonus = 20

// UndeclaredMaxScore is the maximum possible score reported for a format
// that the weight table does not declare.
const UndeclaredMaxScore = 100

// defaultCharacterLimits apply to loaded tables that omit character_limit.
var defaultCharacterLimits = map[string]int{
	formats.Status: signals.ShortContentChars,
	formats.Aside:  signals.MediumContentChars,
}

// reservedKey names the character limit in flat weight listings. It is never a signal.
const reservedKey = "character_limit"

// FormatWeights holds the signal weights for one format.
type FormatWeights struct {
	Format         string         `json:"format" yaml:"format" validate:"required,max=64"`
	Signals        map[string]int `json:"signals" yaml:"signals" validate:"required,min=1,dive,keys,required,endkeys,gt=0"`
	CharacterLimit int            `json:"character_limit,omitempty" yaml:"character_limit,omitempty" validate:"gte=0"`
}

// WeightTable is the ordered set of format weights. Declaration order
// breaks ties between equal scores.
type WeightTable struct {
	Formats []FormatWeights `json:"formats" yaml:"formats" validate:"required,min=1,dive"`
}

// DefaultWeightTable returns a fresh copy of the built-in weights.
func DefaultWeightTable() *WeightTable {
	return &WeightTable{Formats: []FormatWeights{
		{
			Format: formats.Status,
			Signals: map[string]int{
				signals.ShortContent:    30,
				signals.NoTitle:         15,
				signals.NoMedia:         10,
				signals.SingleParagraph: 10,
			},
			CharacterLimit: 280,
		},
		{
			Format: formats.Aside,
			Signals: map[string]int{
				signals.ShortContent:  25,
				signals.NoTitle:       10,
				signals.NoMedia:       5,
				signals.FewParagraphs: 20,
			},
			CharacterLimit: 500,
		},
		{
			Format: formats.Quote,
			Signals: map[string]int{
				signals.HasBlockquote:  80,
				signals.HasCite:        30,
				signals.QuotationMarks: 20,
				signals.ShortContent:   10,
			},
		},
		{
			Format: formats.Link,
			Signals: map[string]int{
				signals.DominantURL:     50,
				signals.ExternalLink:    30,
				signals.ShortCommentary: 20,
				signals.LinkInTitle:     25,
			},
		},
		{
			Format: formats.Image,
			Signals: map[string]int{
				signals.SingleImage:   60,
				signals.ImageDominant: 30,
				signals.MinimalText:   20,
				signals.HasFigure:     15,
			},
		},
		{
			Format: formats.Gallery,
			Signals: map[string]int{
				signals.MultipleImages: 60,
				signals.GalleryBlock:   40,
				signals.ImageGrid:      30,
				signals.MinimalText:    10,
			},
		},
		{
			Format: formats.Video,
			Signals: map[string]int{
				signals.HasVideo:     70,
				signals.VideoEmbed:   40,
				signals.YouTubeVimeo: 30,
				signals.MinimalText:  10,
			},
		},
		{
			Format: formats.Audio,
			Signals: map[string]int{
				signals.HasAudio:    70,
				signals.AudioEmbed:  40,
				signals.PodcastLink: 30,
				signals.MinimalText: 10,
			},
		},
		{
			Format: formats.Chat,
			Signals: map[string]int{
				signals.ChatPattern:      60,
				signals.DialogueMarkers:  40,
				signals.SpeakerLabels:    30,
				signals.AlternatingLines: 20,
			},
		},
		{
			Format: formats.Standard,
			Signals: map[string]int{
				signals.LongContent:      20,
				signals.MultipleSections: 15,
				signals.HasHeadings:      10,
				signals.MixedMedia:       10,
			},
		},
	}}
}

// Lookup returns the weights declared for format.
func (t *WeightTable) Lookup(format string) (*FormatWeights, bool) {
	for i := range t.Formats {
		if t.Formats[i].Format == format {
			return &t.Formats[i], true
		}
	}
	return nil, false
}

// MaxPossibleScore is the score format would get if every weighted signal
// were true and the character limit bonus applied.
func (t *WeightTable) MaxPossibleScore(format string) int {
	fw, ok := t.Lookup(format)
	if !ok {
		return UndeclaredMaxScore
	}
	return fw.MaxScore()
}

// MaxScore sums the weights plus the character limit bonus when declared.
func (fw *FormatWeights) MaxScore() int {
	total := 0
	for _, w := range fw.Signals {
		total += w
	}
	if fw.CharacterLimit > 0 {
		total += CharacterLimitBonus
	}
	return total
}

// fillCharacterLimits sets the default limit on formats that have one but
// declare none.
func (t *WeightTable) fillCharacterLimits() {
	for i := range t.Formats {
		fw := &t.Formats[i]
		if limit, ok := defaultCharacterLimits[fw.Format]; ok && fw.CharacterLimit == 0 {
			fw.CharacterLimit = limit
		}
	}
}

// Clone returns a deep copy of the table.
func (t *WeightTable) Clone() *WeightTable {
	out := &WeightTable{Formats: make([]FormatWeights, len(t.Formats))}
	for i, fw := range t.Formats {
		out.Formats[i] = FormatWeights{
			Format:         fw.Format,
			Signals:        maps.Clone(fw.Signals),
			CharacterLimit: fw.CharacterLimit,
		}
	}
	return out
}

// Validate checks field constraints, duplicate formats and reserved signal names.
func (t *WeightTable) Validate() error {
	if err := validator.New().Struct(t); err != nil {
		return &WeightTableError{Message: "invalid weight table", Cause: err}
	}

	seen := make(map[string]bool, len(t.Formats))
	for _, fw := range t.Formats {
		if seen[fw.Format] {
			return &WeightTableError{Message: fmt.Sprintf("format %q declared more than once", fw.Format)}
		}
		seen[fw.Format] = true

		if _, ok := fw.Signals[reservedKey]; ok {
			return &WeightTableError{
				Message: fmt.Sprintf("format %q: %q is not a signal; use the character_limit field", fw.Format, reservedKey),
			}
		}
	}
	return nil
}
