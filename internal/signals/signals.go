// Package signals extracts content signals from post markup.
//
// A signal is a named boolean or integer observation about a piece of content,
// such as "has_blockquote" or "word_count". Signals feed the format scorer.
package signals

// Signal names. These are part of the wire format and of the weight table vocabulary.
const (
	CharCount        = "char_count"
	WordCount        = "word_count"
	ShortContent     = "short_content"
	MediumContent    = "medium_content"
	LongContent      = "long_content"
	NoTitle          = "no_title"
	HasTitle         = "has_title"
	LinkInTitle      = "link_in_title"
	SingleParagraph  = "single_paragraph"
	FewParagraphs    = "few_paragraphs"
	MultipleSections = "multiple_sections"
	HasHeadings      = "has_headings"
	HasBlockquote    = "has_blockquote"
	HasCite          = "has_cite"
	QuotationMarks   = "quotation_marks"
	HasLinks         = "has_links"
	ExternalLink     = "external_link"
	DominantURL      = "dominant_url"
	ShortCommentary  = "short_commentary"
	HasImages        = "has_images"
	SingleImage      = "single_image"
	MultipleImages   = "multiple_images"
	ImageDominant    = "image_dominant"
	ImageGrid        = "image_grid"
	HasFigure        = "has_figure"
	GalleryBlock     = "gallery_block"
	HasVideo         = "has_video"
	VideoEmbed       = "video_embed"
	YouTubeVimeo     = "youtube_vimeo"
	HasAudio         = "has_audio"
	AudioEmbed       = "audio_embed"
	PodcastLink      = "podcast_link"
	ChatPattern      = "chat_pattern"
	DialogueMarkers  = "dialogue_markers"
	SpeakerLabels    = "speaker_labels"
	AlternatingLines = "alternating_lines"
	NoMedia          = "no_media"
	MinimalText      = "minimal_text"
	MixedMedia       = "mixed_media"
)

// Thresholds used when deriving length and count signals.
const (
	ShortContentChars     = 280
	MediumContentChars    = 500
	LongContentChars      = 1000
	DominantURLWords      = 30
	ShortCommentaryWords  = 25
	MinimalTextWords      = 50
	ImageDominantWords    = 100
	ImageGridImages       = 3
	SpeakerLabelLines     = 3
	AlternatingLineBlocks = 5
)

// Signals maps signal names to bool or int values.
type Signals map[string]any

// Bool returns the named signal when it is a boolean, false otherwise.
func (s Signals) Bool(name string) bool {
	v, ok := s[name].(bool)
	return ok && v
}

// Int returns the named signal when it is an integer, 0 otherwise.
func (s Signals) Int(name string) int {
	switch v := s[name].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// Has reports whether the signal is present at all.
func (s Signals) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Blank reports whether the content behind s has no text, media or links.
func (s Signals) Blank() bool {
	return s.Int(CharCount) == 0 &&
		s.Bool(NoMedia) &&
		!s.Bool(HasLinks) &&
		!s.Bool(HasVideo) &&
		!s.Bool(HasAudio)
}
