// Package formats describes the ten post formats the analyzer knows about.
package formats

import (
	"slices"
	"sort"
)

// Format slugs in canonical order. The order doubles as the scoring tie-break.
const (
	Status   = "status"
	Aside    = "aside"
	Quote    = "quote"
	Link     = "link"
	Image    = "image"
	Gallery  = "gallery"
	Video    = "video"
	Audio    = "audio"
	Chat     = "chat"
	Standard = "standard"
)

// Meta behaviors describe how much post metadata a theme shows for a format.
const (
	MetaNormal         = "normal"
	MetaMinimized      = "minimized"
	MetaAuthorDateOnly = "author_date_only"
)

// Definition is the display metadata for a single format.
type Definition struct {
	Slug          string `json:"slug" yaml:"slug"`
	Name          string `json:"name" yaml:"name"`
	Description   string `json:"description" yaml:"description"`
	Icon          string `json:"icon" yaml:"icon"`
	TitleVisible  bool   `json:"title_visible" yaml:"title_visible"`
	MetaBehavior  string `json:"meta_behavior" yaml:"meta_behavior"`
	FirstBlock    string `json:"first_block" yaml:"first_block"`
	FallbackBlock string `json:"fallback_block,omitempty" yaml:"fallback_block,omitempty"`
	CharLimit     int    `json:"char_limit,omitempty" yaml:"char_limit,omitempty"`
	PatternName   string `json:"pattern_name" yaml:"pattern_name"`
}

var slugs = []string{Status, Aside, Quote, Link, Image, Gallery, Video, Audio, Chat, Standard}

var definitions = map[string]Definition{
	Standard: {
		Slug:         Standard,
		Name:         "Standard",
		Description:  "Default post format with full title and content. Best for traditional blog posts.",
		Icon:         "admin-post",
		TitleVisible: true,
		MetaBehavior: MetaNormal,
		PatternName:  "pfpu/standard",
	},
	Aside: {
		Slug:         Aside,
		Name:         "Aside",
		Description:  "Short note or update without a title. Displays in a bubble style with minimized metadata.",
		Icon:         "format-aside",
		MetaBehavior: MetaMinimized,
		FirstBlock:   "core/group",
		PatternName:  "pfpu/aside",
	},
	Audio: {
		Slug:         Audio,
		Name:         "Audio",
		Description:  "Audio file or embed. Starts with an audio block for podcasts or music.",
		Icon:         "format-audio",
		TitleVisible: true,
		MetaBehavior: MetaNormal,
		FirstBlock:   "core/audio",
		PatternName:  "pfpu/audio",
	},
	Chat: {
		Slug:         Chat,
		Name:         "Chat",
		Description:  "Chat transcript or conversation log. Supports Slack, Discord, Teams, WhatsApp, and transcript formats.",
		Icon:         "format-chat",
		TitleVisible: true,
		MetaBehavior: MetaNormal,
		FirstBlock:   "chatlog/conversation",
		PatternName:  "pfpu/chat",
	},
	Gallery: {
		Slug:         Gallery,
		Name:         "Gallery",
		Description:  "Image gallery post. Starts with a gallery block for multiple images.",
		Icon:         "format-gallery",
		TitleVisible: true,
		MetaBehavior: MetaNormal,
		FirstBlock:   "core/gallery",
		PatternName:  "pfpu/gallery",
	},
	Image: {
		Slug:         Image,
		Name:         "Image",
		Description:  "Single image post. Starts with an image block for photo-centric content.",
		Icon:         "format-image",
		TitleVisible: true,
		MetaBehavior: MetaNormal,
		FirstBlock:   "core/image",
		PatternName:  "pfpu/image",
	},
	Link: {
		Slug:          Link,
		Name:          "Link",
		Description:   "Link to external content. Uses a bookmark card block if available, otherwise starts with a link paragraph.",
		Icon:          "admin-links",
		TitleVisible:  true,
		MetaBehavior:  MetaNormal,
		FirstBlock:    "bookmark-card/bookmark-card",
		FallbackBlock: "core/paragraph",
		PatternName:   "pfpu/link",
	},
	Quote: {
		Slug:         Quote,
		Name:         "Quote",
		Description:  "Quotation or citation. Starts with a quote block for highlighted text.",
		Icon:         "format-quote",
		TitleVisible: true,
		MetaBehavior: MetaNormal,
		FirstBlock:   "core/quote",
		PatternName:  "pfpu/quote",
	},
	Status: {
		Slug:         Status,
		Name:         "Status",
		Description:  "Short status update without title. Limited to 280 characters, Twitter-style.",
		Icon:         "format-status",
		MetaBehavior: MetaAuthorDateOnly,
		FirstBlock:   "core/paragraph",
		CharLimit:    280,
		PatternName:  "pfpu/status",
	},
	Video: {
		Slug:         Video,
		Name:         "Video",
		Description:  "Video file or embed. Starts with a video block for multimedia content.",
		Icon:         "format-video",
		TitleVisible: true,
		MetaBehavior: MetaNormal,
		FirstBlock:   "core/video",
		PatternName:  "pfpu/video",
	},
}

// Slugs returns the format slugs in canonical order.
func Slugs() []string {
	return slices.Clone(slugs)
}

// IsValid reports whether slug names one of the known formats.
func IsValid(slug string) bool {
	_, ok := definitions[slug]
	return ok
}

// Get returns the definition for slug.
func Get(slug string) (Definition, bool) {
	def, ok := definitions[slug]
	return def, ok
}

// Lookup is like Get but returns an UnknownFormatError for unknown slugs.
func Lookup(slug string) (Definition, error) {
	def, ok := definitions[slug]
	if !ok {
		return Definition{}, &UnknownFormatError{Slug: slug}
	}
	return def, nil
}

// Sorted returns every definition with standard first and the rest by slug.
func Sorted() []Definition {
	out := make([]Definition, 0, len(definitions))
	for _, def := range definitions {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Slug == Standard {
			return true
		}
		if out[j].Slug == Standard {
			return false
		}
		return out[i].Slug < out[j].Slug
	})
	return out
}
