package ranking

import (
	"strings"

	"github.com/jonathan/format-analyzer/internal/formats"
	"github.com/jonathan/format-analyzer/internal/signals"
)

type reasonClause struct {
	text string
	when func(signals.Signals) bool
}

func on(name string) func(signals.Signals) bool {
	return func(s signals.Signals) bool { return s.Bool(name) }
}

var reasonTable = map[string][]reasonClause{
	formats.Status: {
		{"short content under 280 characters", on(signals.ShortContent)},
		{"no title", on(signals.NoTitle)},
		{"single paragraph", on(signals.SingleParagraph)},
	},
	formats.Aside: {
		{"brief content", func(s signals.Signals) bool {
			return s.Bool(signals.MediumContent) || s.Bool(signals.ShortContent)
		}},
		{"few paragraphs", on(signals.FewParagraphs)},
	},
	formats.Quote: {
		{"contains blockquote", on(signals.HasBlockquote)},
		{"has citation", on(signals.HasCite)},
	},
	formats.Link: {
		{"URL is primary content", on(signals.DominantURL)},
		{"links to external site", on(signals.ExternalLink)},
	},
	formats.Image: {
		{"single image", on(signals.SingleImage)},
		{"image is primary content", on(signals.ImageDominant)},
	},
	formats.Gallery: {
		{"multiple images", on(signals.MultipleImages)},
		{"gallery block detected", on(signals.GalleryBlock)},
	},
	formats.Video: {
		{"contains video", on(signals.HasVideo)},
		{"YouTube/Vimeo embed", on(signals.YouTubeVimeo)},
	},
	formats.Audio: {
		{"contains audio", on(signals.HasAudio)},
		{"podcast content", on(signals.PodcastLink)},
	},
	formats.Chat: {
		{"chat/dialogue pattern", on(signals.ChatPattern)},
		{"speaker labels detected", on(signals.SpeakerLabels)},
	},
}

// standard and any format outside the table
var defaultReasons = []reasonClause{
	{"long-form content", on(signals.LongContent)},
	{"structured with headings", on(signals.HasHeadings)},
	{"mixed media types", on(signals.MixedMedia)},
}

const fallbackReason = "general article content"

// Reason explains why format fits the signals as a comma-joined list of clauses.
func Reason(format string, s signals.Signals) string {
	clauses, known := reasonTable[format]
	if !known {
		clauses = defaultReasons
	}

	var parts []string
	for _, c := range clauses {
		if c.when(s) {
			parts = append(parts, c.text)
		}
	}
	if len(parts) == 0 && !known {
		return fallbackReason
	}
	return strings.Join(parts, ", ")
}
