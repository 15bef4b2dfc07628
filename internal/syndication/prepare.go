package syndication

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/format-analyzer/internal/formats"
	"github.com/jonathan/format-analyzer/internal/signals"
)

const (
	ellipsis          = "…"
	citationSeparator = " — "
	urlSeparator      = "\n\n"
	// A truncation backs up to the last space only when that keeps at
	// least this share of the allowed length.
	wordBoundaryRatio = 0.8
)

// Post is the source post to syndicate.
type Post struct {
	Content       string
	Title         string
	Excerpt       string
	Format        string
	URL           string
	FeaturedImage string
}

// MediaItem is one attachment for a syndicated copy.
type MediaItem struct {
	Type string `json:"type" yaml:"type"`
	URL  string `json:"url" yaml:"url"`
}

// Prepared is the copy for one target, or the generic copy when Target is empty.
type Prepared struct {
	Target string      `json:"target,omitempty" yaml:"target,omitempty"`
	Format string      `json:"format" yaml:"format"`
	Text   string      `json:"text" yaml:"text"`
	URL    string      `json:"url,omitempty" yaml:"url,omitempty"`
	Media  []MediaItem `json:"media" yaml:"media"`
	// CharCount is the length as the target counts it, links included.
	CharCount int  `json:"char_count" yaml:"char_count"`
	Valid     bool `json:"valid" yaml:"valid"`
}

// Result holds the prepared copies in the order targets were requested.
type Result struct {
	Format string     `json:"format" yaml:"format"`
	Posts  []Prepared `json:"posts" yaml:"posts"`
}

// Prepare builds a copy of post for each target ID. With no targets it returns
// a single generic copy with the full text and every media item.
func Prepare(post Post, targetIDs ...string) (*Result, error) {
	if post.Format == "" {
		post.Format = formats.Standard
	}
	text := Text(post)
	media := Media(post)

	if len(targetIDs) == 0 {
		return &Result{
			Format: post.Format,
			Posts: []Prepared{{
				Format:    post.Format,
				Text:      text,
				URL:       post.URL,
				Media:     media,
				CharCount: utf8.RuneCountInString(text),
				Valid:     true,
			}},
		}, nil
	}

	result := &Result{Format: post.Format, Posts: make([]Prepared, 0, len(targetIDs))}
	for _, id := range targetIDs {
		target, err := LookupTarget(id)
		if err != nil {
			return nil, err
		}
		result.Posts = append(result.Posts, forTarget(target, post, text, media))
	}
	return result, nil
}

func forTarget(target Target, post Post, text string, media []MediaItem) Prepared {
	urlCost := 0
	if post.URL != "" {
		urlCost = target.URLLength
		if urlCost == 0 {
			urlCost = utf8.RuneCountInString(post.URL)
		}
		urlCost += utf8.RuneCountInString(urlSeparator)
	}

	if target.CharLimit > 0 {
		available := target.CharLimit - urlCost
		if utf8.RuneCountInString(text) > available {
			text = Truncate(text, available)
		}
	}

	text = strings.TrimSpace(text)
	count := utf8.RuneCountInString(text) + urlCost
	final := text
	if post.URL != "" {
		final += urlSeparator + post.URL
	}

	kept := make([]MediaItem, 0, len(media))
	for _, item := range media {
		if target.Supports(item.Type) {
			kept = append(kept, item)
		}
	}

	return Prepared{
		Target:    target.ID,
		Format:    post.Format,
		Text:      final,
		URL:       post.URL,
		Media:     kept,
		CharCount: count,
		Valid:     target.CharLimit == 0 || count <= target.CharLimit,
	}
}

// Text picks the text a syndicated copy leads with. Short-form formats use the
// whole body, quotes use the quotation and its citation, and the rest use the
// title and excerpt. It falls back to the body when that leaves nothing.
func Text(post Post) string {
	var text string
	switch post.Format {
	case formats.Status, formats.Aside:
		text = signals.StripTags(post.Content)
	case formats.Quote:
		text = quoteText(post.Content)
	case formats.Link:
		text = post.Title
	case formats.Image, formats.Gallery, formats.Video, formats.Audio:
		text = post.Excerpt
		if text == "" {
			text = post.Title
		}
	default:
		text = post.Title
		if post.Excerpt != "" {
			text = post.Title + ": " + post.Excerpt
		}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		text = signals.StripTags(post.Content)
	}
	return text
}

func quoteText(content string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return signals.StripTags(content)
	}
	quote := doc.Find("blockquote").First()
	if quote.Length() == 0 {
		return signals.StripTags(content)
	}

	body := quote.Clone()
	body.Find("cite").Remove()
	text := signals.PlainText(body.Nodes[0])

	if cite := strings.Join(strings.Fields(doc.Find("cite").First().Text()), " "); cite != "" {
		text += citationSeparator + cite
	}
	return strings.TrimSpace(text)
}

// Media lists the featured image and the media matching the post's format,
// without duplicate URLs.
func Media(post Post) []MediaItem {
	items := make([]MediaItem, 0)
	seen := make(map[string]bool)
	add := func(typ string, urls ...string) {
		for _, u := range urls {
			if u == "" || seen[u] {
				continue
			}
			seen[u] = true
			items = append(items, MediaItem{Type: typ, URL: u})
		}
	}

	add(MediaImage, post.FeaturedImage)

	found := signals.ExtractMedia(post.Content)
	switch post.Format {
	case formats.Image, formats.Gallery:
		add(MediaImage, found.Images...)
	case formats.Video:
		add(MediaVideo, found.Videos...)
	case formats.Audio:
		add(MediaAudio, found.Audios...)
	}
	return items
}

// Truncate shortens s to at most maxChars runes, ending with an ellipsis. It
// cuts at the last word boundary when that boundary is near the end.
func Truncate(s string, maxChars int) string {
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	if maxChars <= 0 {
		return ""
	}

	cut := runes[:maxChars-utf8.RuneCountInString(ellipsis)]
	for i := len(cut) - 1; i >= 0; i-- {
		if cut[i] == ' ' {
			if float64(i) > float64(maxChars)*wordBoundaryRatio {
				cut = cut[:i]
			}
			break
		}
	}
	return strings.TrimSpace(string(cut)) + ellipsis
}
