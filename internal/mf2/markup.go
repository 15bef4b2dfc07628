package mf2

import (
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/format-analyzer/internal/formats"
	"github.com/jonathan/format-analyzer/internal/signals"
)

// Validation messages.
const (
	MsgMissingURL       = "Missing required u-url property."
	MsgMissingPublished = "Missing required dt-published property."
	MsgMissingAuthor    = "Missing required p-author property."
	MsgMissingPhoto     = "Image/Gallery format should have u-photo property."
	MsgMissingVideo     = "Video format should have u-video property."
	MsgMissingAudio     = "Audio format should have u-audio property."
)

// Author is the post author, rendered as an h-card.
type Author struct {
	Name string
	URL  string
}

// Post is the source for an h-entry.
type Post struct {
	Content   string
	Title     string
	Format    string
	URL       string
	Published time.Time
	// Updated defaults to Published when zero.
	Updated time.Time
	Author  Author
	// OwnHost marks links that point back to the site. They are never
	// reported as bookmark-of.
	OwnHost string
}

// Item is a parsed microformats2 object.
type Item struct {
	Type       []string         `json:"type" yaml:"type"`
	Properties map[string][]any `json:"properties" yaml:"properties"`
}

// ContentValue is an e-content property value.
type ContentValue struct {
	HTML  string `json:"html" yaml:"html"`
	Value string `json:"value" yaml:"value"`
}

// Markup is the h-entry for a post together with its wrapper classes.
type Markup struct {
	Format       string           `json:"format" yaml:"format"`
	EntryClass   string           `json:"entry_class" yaml:"entry_class"`
	ContentClass string           `json:"content_class" yaml:"content_class"`
	Properties   map[string][]any `json:"properties" yaml:"properties"`
}

// Result is the outcome of Validate.
type Result struct {
	Valid  bool     `json:"valid" yaml:"valid"`
	Errors []string `json:"errors" yaml:"errors"`
	Markup *Markup  `json:"markup" yaml:"markup"`
}

// Generate builds the h-entry properties for post. Notes (status and aside)
// without a title carry no name.
func Generate(post Post) *Markup {
	format := post.Format
	if format == "" {
		format = formats.Standard
	}
	c := ClassesFor(format)

	props := map[string][]any{
		"name": {post.Title},
		"content": {ContentValue{
			HTML:  post.Content,
			Value: signals.StripTags(post.Content),
		}},
	}
	if !post.Published.IsZero() {
		props["published"] = []any{post.Published.Format(time.RFC3339)}
		updated := post.Updated
		if updated.IsZero() {
			updated = post.Published
		}
		props["updated"] = []any{updated.Format(time.RFC3339)}
	}
	if post.URL != "" {
		props["url"] = []any{post.URL}
	}
	if card := hCard(post.Author); card != nil {
		props["author"] = []any{*card}
	}

	addFormatProperties(props, post, format)

	return &Markup{
		Format:       format,
		EntryClass:   c.Entry,
		ContentClass: c.Content,
		Properties:   props,
	}
}

func hCard(a Author) *Item {
	cardProps := map[string][]any{}
	if a.Name != "" {
		cardProps["name"] = []any{a.Name}
	}
	if a.URL != "" {
		cardProps["url"] = []any{a.URL}
	}
	if len(cardProps) == 0 {
		return nil
	}
	return &Item{Type: []string{"h-card"}, Properties: cardProps}
}

func addFormatProperties(props map[string][]any, post Post, format string) {
	switch format {
	case formats.Image, formats.Gallery:
		if photos := signals.ExtractMedia(post.Content).Images; len(photos) > 0 {
			props["photo"] = anySlice(photos)
		}
	case formats.Video:
		if videos := signals.ExtractMedia(post.Content).Videos; len(videos) > 0 {
			props["video"] = anySlice(videos)
		}
	case formats.Audio:
		if audios := signals.ExtractMedia(post.Content).Audios; len(audios) > 0 {
			props["audio"] = anySlice(audios)
		}
	case formats.Quote:
		if cite := quotationSource(post.Content); cite != "" {
			props["quotation-of"] = []any{hCite(cite)}
		}
	case formats.Link:
		if bookmark := bookmarkURL(post.Content, post.OwnHost); bookmark != "" {
			props["bookmark-of"] = []any{hCite(bookmark)}
		}
	case formats.Status, formats.Aside:
		if strings.TrimSpace(post.Title) == "" {
			delete(props, "name")
		}
	}
}

func hCite(u string) Item {
	return Item{Type: []string{"h-cite"}, Properties: map[string][]any{"url": {u}}}
}

func anySlice(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}

func parse(content string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil
	}
	return doc
}

// quotationSource is the cite attribute of the first blockquote that has one.
func quotationSource(content string) string {
	doc := parse(content)
	if doc == nil {
		return ""
	}
	cite, _ := doc.Find("blockquote[cite]").First().Attr("cite")
	return strings.TrimSpace(cite)
}

// bookmarkURL is the first link in content when it points off site.
// Relative links and links to ownHost are internal.
func bookmarkURL(content, ownHost string) string {
	doc := parse(content)
	if doc == nil {
		return ""
	}
	href, ok := doc.Find("a[href]").First().Attr("href")
	if !ok {
		return ""
	}
	href = strings.TrimSpace(href)
	u, err := url.Parse(href)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	if ownHost != "" && normalizeHost(u.Hostname()) == normalizeHost(ownHost) {
		return ""
	}
	return href
}

func normalizeHost(host string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(host)), "www.")
}

// Validate generates the markup for post and checks the properties consumers
// rely on: url, published and author for every entry, plus the media
// property matching an image, gallery, video or audio format.
func Validate(post Post) *Result {
	m := Generate(post)
	errs := []string{}

	if len(m.Properties["url"]) == 0 {
		errs = append(errs, MsgMissingURL)
	}
	if len(m.Properties["published"]) == 0 {
		errs = append(errs, MsgMissingPublished)
	}
	if len(m.Properties["author"]) == 0 {
		errs = append(errs, MsgMissingAuthor)
	}

	switch m.Format {
	case formats.Image, formats.Gallery:
		if len(m.Properties["photo"]) == 0 {
			errs = append(errs, MsgMissingPhoto)
		}
	case formats.Video:
		if len(m.Properties["video"]) == 0 {
			errs = append(errs, MsgMissingVideo)
		}
	case formats.Audio:
		if len(m.Properties["audio"]) == 0 {
			errs = append(errs, MsgMissingAudio)
		}
	}

	return &Result{Valid: len(errs) == 0, Errors: errs, Markup: m}
}
