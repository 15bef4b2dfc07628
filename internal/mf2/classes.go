// Package mf2 maps post formats to microformats2 markup: the classes a theme
// puts on the entry and its content, and the parsed h-entry properties a
// post exposes.
package mf2

import "github.com/jonathan/format-analyzer/internal/formats"

// Classes are the microformats2 class names for one post format.
type Classes struct {
	Entry       string `json:"entry_class" yaml:"entry_class"`
	Content     string `json:"content_class" yaml:"content_class"`
	Name        string `json:"name_class,omitempty" yaml:"name_class,omitempty"`
	Quote       string `json:"quote_class,omitempty" yaml:"quote_class,omitempty"`
	Author      string `json:"author_class,omitempty" yaml:"author_class,omitempty"`
	Source      string `json:"source_class,omitempty" yaml:"source_class,omitempty"`
	Bookmark    string `json:"bookmark_class,omitempty" yaml:"bookmark_class,omitempty"`
	Photo       string `json:"photo_class,omitempty" yaml:"photo_class,omitempty"`
	Video       string `json:"video_class,omitempty" yaml:"video_class,omitempty"`
	Audio       string `json:"audio_class,omitempty" yaml:"audio_class,omitempty"`
	Description string `json:"description" yaml:"description"`
}

// FormatClasses pairs a format slug with its classes.
type FormatClasses struct {
	Format  string `json:"format" yaml:"format"`
	Classes `yaml:",inline"`
}

var classes = map[string]Classes{
	formats.Standard: {
		Entry: "h-entry", Content: "e-content", Name: "p-name",
		Description: "Standard blog post entry.",
	},
	formats.Aside: {
		Entry: "h-entry", Content: "p-note e-content",
		Description: "Short note without a title, similar to a tweet.",
	},
	formats.Status: {
		Entry: "h-entry", Content: "p-note e-content",
		Description: "Short status update, like a tweet or toot.",
	},
	formats.Quote: {
		Entry: "h-entry h-cite", Content: "e-content", Name: "p-name",
		Quote: "p-content", Author: "p-author h-card", Source: "u-url",
		Description: "Quotation with citation, using h-cite.",
	},
	formats.Link: {
		Entry: "h-entry", Content: "e-content", Name: "p-name",
		Bookmark:    "u-bookmark-of h-cite",
		Description: "Link post with bookmark reference.",
	},
	formats.Image: {
		Entry: "h-entry", Content: "e-content", Name: "p-name", Photo: "u-photo",
		Description: "Single image post with u-photo.",
	},
	formats.Gallery: {
		Entry: "h-entry", Content: "e-content", Name: "p-name", Photo: "u-photo",
		Description: "Multiple images, each marked as u-photo.",
	},
	formats.Video: {
		Entry: "h-entry", Content: "e-content", Name: "p-name", Video: "u-video",
		Description: "Video post with u-video.",
	},
	formats.Audio: {
		Entry: "h-entry", Content: "e-content", Name: "p-name", Audio: "u-audio",
		Description: "Audio post with u-audio.",
	},
	formats.Chat: {
		Entry: "h-entry", Content: "e-content", Name: "p-name",
		Description: "Conversation transcript.",
	},
}

// ClassesFor returns the classes for format. Empty and unknown formats get
// the standard classes.
func ClassesFor(format string) Classes {
	if c, ok := classes[format]; ok {
		return c
	}
	return classes[formats.Standard]
}

// All lists the classes for every format in registry order.
func All() []FormatClasses {
	out := make([]FormatClasses, 0, len(classes))
	for _, slug := range formats.Slugs() {
		out = append(out, FormatClasses{Format: slug, Classes: classes[slug]})
	}
	return out
}
