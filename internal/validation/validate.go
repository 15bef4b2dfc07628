// Package validation checks content against the rules of a chosen post format.
package validation

import (
	"fmt"

	"github.com/jonathan/format-analyzer/internal/formats"
	"github.com/jonathan/format-analyzer/internal/signals"
	"github.com/jonathan/format-analyzer/internal/types"
)

// Messages produced by the format rules.
const (
	MsgLinkRequired     = "Link posts must contain at least one link."
	MsgImageRequired    = "Image posts must contain at least one image."
	MsgVideoRequired    = "Video posts must contain video content."
	MsgAudioRequired    = "Audio posts must contain audio content."
	MsgStatusTooLong    = "Status posts are typically under 280 characters. Current: %d"
	MsgStatusHasTitle   = "Status posts typically have no title."
	MsgQuoteMissing     = "Quote posts should contain a blockquote or quoted text."
	MsgGallerySingle    = "Gallery posts typically contain multiple images."
	MsgChatMissing      = "Chat posts should contain dialogue with speaker labels."
	MsgImageUseGallery  = "Multiple images detected. Consider using Gallery format."
	statusCharThreshold = signals.ShortContentChars
)

type rule func(s signals.Signals, r *types.ValidationResult)

var rules = map[string]rule{
	formats.Status: func(s signals.Signals, r *types.ValidationResult) {
		if n := s.Int(signals.CharCount); n > statusCharThreshold {
			r.AddWarning(fmt.Sprintf(MsgStatusTooLong, n))
		}
		if s.Bool(signals.HasTitle) {
			r.AddWarning(MsgStatusHasTitle)
		}
	},
	formats.Quote: func(s signals.Signals, r *types.ValidationResult) {
		if !s.Bool(signals.HasBlockquote) && !s.Bool(signals.QuotationMarks) {
			r.AddWarning(MsgQuoteMissing)
		}
	},
	formats.Link: func(s signals.Signals, r *types.ValidationResult) {
		if !s.Bool(signals.HasLinks) {
			r.AddError(MsgLinkRequired)
		}
	},
	formats.Image: func(s signals.Signals, r *types.ValidationResult) {
		if !s.Bool(signals.HasImages) {
			r.AddError(MsgImageRequired)
		}
		if s.Bool(signals.MultipleImages) {
			r.AddWarning(MsgImageUseGallery)
		}
	},
	formats.Gallery: func(s signals.Signals, r *types.ValidationResult) {
		if !s.Bool(signals.MultipleImages) && !s.Bool(signals.GalleryBlock) {
			r.AddWarning(MsgGallerySingle)
		}
	},
	formats.Video: func(s signals.Signals, r *types.ValidationResult) {
		if !s.Bool(signals.HasVideo) {
			r.AddError(MsgVideoRequired)
		}
	},
	formats.Audio: func(s signals.Signals, r *types.ValidationResult) {
		if !s.Bool(signals.HasAudio) {
			r.AddError(MsgAudioRequired)
		}
	},
	formats.Chat: func(s signals.Signals, r *types.ValidationResult) {
		if !s.Bool(signals.ChatPattern) && !s.Bool(signals.SpeakerLabels) {
			r.AddWarning(MsgChatMissing)
		}
	},
}

// Validate applies the rules for format to already extracted signals.
// Formats without rules, including unknown ones, are always valid.
func Validate(s signals.Signals, format string) *types.ValidationResult {
	result := &types.ValidationResult{
		Valid:    true,
		Format:   format,
		Messages: []string{},
		Warnings: []string{},
		Signals:  s,
	}
	if check, ok := rules[format]; ok {
		check(s, result)
	}
	return result
}

// ValidateContent extracts signals with ex and validates them against format.
func ValidateContent(ex *signals.Extractor, content, format, title string) *types.ValidationResult {
	return Validate(ex.Extract(content, title), format)
}
