package signals

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Hook adds or overrides signals after the built-in ones are computed.
type Hook func(s Signals, content, title string)

// Option configures an Extractor.
type Option func(*Extractor)

// WithOwnHost sets the site's own host. Links to it are not external.
func WithOwnHost(host string) Option {
	if strings.Contains(host, "://") {
		if u, err := url.Parse(host); err == nil {
			host = u.Hostname()
		}
	}
	return func(e *Extractor) {
		e.ownHost = normalizeHost(host)
	}
}

// WithHooks appends hooks that run after the built-in signals, in order.
func WithHooks(hooks ...Hook) Option {
	return func(e *Extractor) {
		for _, h := range hooks {
			if h != nil {
				e.hooks = append(e.hooks, h)
			}
		}
	}
}

// Extractor computes Signals for content. It is immutable after
// construction and safe for concurrent use.
type Extractor struct {
	ownHost string
	hooks   []Hook
}

// NewExtractor returns an Extractor configured by opts.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract computes the signal map for content and title. It never fails:
// markup that cannot be parsed yields signals for an empty document.
func (e *Extractor) Extract(content, title string) Signals {
	doc := parseDocument(content)
	text := PlainText(doc.Nodes[0])
	lower := strings.ToLower(content)

	charCount := utf8.RuneCountInString(text)
	wordCount := CountWords(text)
	paragraphs := strings.Count(lower, "</p>")
	trimmedTitle := strings.TrimSpace(title)

	anchors := doc.Find("a")
	anchorWords := 0
	anchors.Each(func(_ int, a *goquery.Selection) {
		anchorWords += CountWords(a.Text())
	})
	hrefs := doc.Find("a[href]")

	images := doc.Find("img").Length()
	hasImages := images > 0
	hasVideo := doc.Find("video").Length() > 0 || videoBlockRe.MatchString(content)
	hasAudio := doc.Find("audio").Length() > 0 || audioBlockRe.MatchString(content)

	alternating := doc.Find("p").Length() >= AlternatingLineBlocks ||
		doc.Find("br").Length() >= AlternatingLineBlocks

	mediaKinds := 0
	for _, present := range []bool{hasImages, hasVideo, hasAudio} {
		if present {
			mediaKinds++
		}
	}

	s := Signals{
		CharCount:     charCount,
		WordCount:     wordCount,
		ShortContent:  charCount <= ShortContentChars,
		MediumContent: charCount > ShortContentChars && charCount <= MediumContentChars,
		LongContent:   charCount > LongContentChars,

		NoTitle:     trimmedTitle == "",
		HasTitle:    trimmedTitle != "",
		LinkInTitle: titleURLRe.MatchString(title),

		SingleParagraph:  paragraphs <= 1,
		FewParagraphs:    paragraphs <= 3,
		MultipleSections: paragraphs > 5,
		HasHeadings:      doc.Find("h1, h2, h3, h4, h5, h6").Length() > 0,

		HasBlockquote:  doc.Find("blockquote").Length() > 0,
		HasCite:        doc.Find("cite").Length() > 0,
		QuotationMarks: strings.ContainsAny(text, quotationGlyphs),

		HasLinks:        hrefs.Length() > 0,
		ExternalLink:    e.hasExternalLink(hrefs),
		DominantURL:     anchors.Length() > 0 && wordCount < DominantURLWords,
		ShortCommentary: anchors.Length() > 0 && wordCount-anchorWords <= ShortCommentaryWords,

		HasImages:      hasImages,
		SingleImage:    images == 1,
		MultipleImages: images > 1,
		ImageDominant:  hasImages && wordCount < ImageDominantWords,
		ImageGrid:      images >= ImageGridImages,
		HasFigure:      doc.Find("figure").Length() > 0,
		GalleryBlock:   strings.Contains(lower, "wp-block-gallery"),

		HasVideo:     hasVideo,
		VideoEmbed:   videoEmbedRe.MatchString(content),
		YouTubeVimeo: youtubeVimeoRe.MatchString(content),

		HasAudio:    hasAudio,
		AudioEmbed:  audioEmbedRe.MatchString(content),
		PodcastLink: podcastRe.MatchString(content),

		ChatPattern:      chatLineRe.MatchString(text),
		DialogueMarkers:  countDialogueMarkers(text) >= 2,
		SpeakerLabels:    len(speakerLabelRe.FindAllStringIndex(text, -1)) >= SpeakerLabelLines,
		AlternatingLines: alternating,

		NoMedia:     !mediaMarkerRe.MatchString(content),
		MinimalText: wordCount < MinimalTextWords,
		MixedMedia:  mediaKinds >= 2,
	}

	for _, hook := range e.hooks {
		hook(s, content, title)
	}
	return s
}

func (e *Extractor) hasExternalLink(hrefs *goquery.Selection) bool {
	external := false
	hrefs.EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		u, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return true
		}
		host := normalizeHost(u.Hostname())
		if host != "" && host != e.ownHost {
			external = true
			return false
		}
		return true
	})
	return external
}

func countDialogueMarkers(text string) int {
	n := 0
	for _, re := range dialogueRes {
		if re.MatchString(text) {
			n++
		}
	}
	return n
}

func parseDocument(content string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return goquery.NewDocumentFromNode(&html.Node{Type: html.DocumentNode})
	}
	return doc
}

func normalizeHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	return strings.TrimPrefix(host, "www.")
}
