// Package syndication prepares post content for copies published on other
// platforms: text chosen by post format, trimmed to the platform's limit, with
// a link back and the media types the platform accepts.
package syndication

import (
	"fmt"
	"slices"
	"strings"
)

// Media types a target may accept.
const (
	MediaImage    = "image"
	MediaVideo    = "video"
	MediaAudio    = "audio"
	MediaGIF      = "gif"
	MediaDocument = "document"
)

// Target describes a platform that receives syndicated copies.
type Target struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	// CharLimit is the post length limit. Zero means unlimited.
	CharLimit  int      `json:"char_limit" yaml:"char_limit"`
	MediaTypes []string `json:"media_types" yaml:"media_types"`
	// URLLength is the fixed length the platform counts for any link.
	// Zero means links count at their real length.
	URLLength int `json:"url_length" yaml:"url_length"`
}

// Supports reports whether the target accepts mediaType.
func (t Target) Supports(mediaType string) bool {
	return slices.Contains(t.MediaTypes, mediaType)
}

var targets = []Target{
	{ID: "twitter", Name: "Twitter/X", CharLimit: 280, MediaTypes: []string{MediaImage, MediaVideo, MediaGIF}, URLLength: 23},
	{ID: "mastodon", Name: "Mastodon", CharLimit: 500, MediaTypes: []string{MediaImage, MediaVideo, MediaAudio}, URLLength: 23},
	{ID: "bluesky", Name: "Bluesky", CharLimit: 300, MediaTypes: []string{MediaImage}},
	{ID: "threads", Name: "Threads", CharLimit: 500, MediaTypes: []string{MediaImage, MediaVideo}},
	{ID: "linkedin", Name: "LinkedIn", CharLimit: 3000, MediaTypes: []string{MediaImage, MediaVideo, MediaDocument}},
	{ID: "tumblr", Name: "Tumblr", MediaTypes: []string{MediaImage, MediaVideo, MediaAudio}},
}

// Targets returns the known targets in display order.
func Targets() []Target {
	out := make([]Target, len(targets))
	for i, t := range targets {
		t.MediaTypes = slices.Clone(t.MediaTypes)
		out[i] = t
	}
	return out
}

// TargetIDs lists the target IDs in display order.
func TargetIDs() []string {
	ids := make([]string, 0, len(targets))
	for _, t := range targets {
		ids = append(ids, t.ID)
	}
	return ids
}

// LookupTarget returns the target with id.
func LookupTarget(id string) (Target, error) {
	for _, t := range targets {
		if t.ID == id {
			t.MediaTypes = slices.Clone(t.MediaTypes)
			return t, nil
		}
	}
	return Target{}, &UnknownTargetError{ID: id}
}

// UnknownTargetError is returned for a target ID that is not registered.
type UnknownTargetError struct {
	ID string
}

func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("unknown syndication target %q (expected one of: %s)", e.ID, strings.Join(TargetIDs(), ", "))
}
