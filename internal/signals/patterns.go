package signals

import "regexp"

var (
	mediaMarkerRe = regexp.MustCompile(`(?i)<img|<video|<audio|<iframe|wp-block-embed|wp-block-gallery`)

	videoBlockRe   = regexp.MustCompile(`(?i)wp-block-video|wp-block-embed.*?youtube|wp-block-embed.*?vimeo`)
	videoEmbedRe   = regexp.MustCompile(`(?i)wp-block-embed|<iframe[^>]+(?:youtube|vimeo|dailymotion)`)
	youtubeVimeoRe = regexp.MustCompile(`(?i)youtube\.com|youtu\.be|vimeo\.com`)

	audioBlockRe = regexp.MustCompile(`(?i)wp-block-audio|wp-block-embed.*?soundcloud|wp-block-embed.*?spotify`)
	audioEmbedRe = regexp.MustCompile(`(?i)wp-block-embed.*?(?:soundcloud|spotify|bandcamp)|<iframe[^>]+(?:soundcloud|spotify)`)
	podcastRe    = regexp.MustCompile(`(?i)podcasts?\.apple\.com|spotify\.com/episode|anchor\.fm|overcast\.fm`)

	// Applied to plain text, one line per block element.
	chatLineRe     = regexp.MustCompile(`(?m)^(?:[\[(]?\d{1,2}:\d{2}[\])]?\s*[A-Z][a-z]+:|[A-Z][a-z]+\s*:)`)
	speakerLabelRe = regexp.MustCompile(`(?m)^[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?:`)
	dialogueRes    = []*regexp.Regexp{
		regexp.MustCompile(`(?m)^[-–—]\s`),
		regexp.MustCompile(`(?m):\s*$`),
		regexp.MustCompile(`(?m)^>[^>]`),
	}

	titleURLRe = regexp.MustCompile(`(?i)https?://`)
)

// quotationGlyphs are typographic quote characters. Plain ASCII quotes are
// too common in ordinary prose to count.
const quotationGlyphs = "“”‘’„「」『』«»"
