package fetch

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectPlatform_FromHost(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://medium.com/@someone/a-post-123", PlatformMedium},
		{"https://engineering.medium.com/post", PlatformMedium},
		{"https://writer.substack.com/p/hello", PlatformSubstack},
		{"https://someone.wordpress.com/2024/01/01/post/", PlatformWordPress},
		{"https://blog.ghost.io/welcome/", PlatformGhost},
		{"https://example.com/post", PlatformUnknown},
		{"://bad", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.url, nil))
		})
	}
}

func TestDetectPlatform_FromDocument(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected Platform
	}{
		{"wordpress generator", `<meta name="generator" content="WordPress 6.4">`, PlatformWordPress},
		{"ghost generator", `<meta name="generator" content="Ghost 5.7">`, PlatformGhost},
		{"wordpress markup", `<div class="entry-content"><p>x</p></div>`, PlatformWordPress},
		{"plain page", `<p>hello</p>`, PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := goquery.NewDocumentFromReader(strings.NewReader(tt.html))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, DetectPlatform("https://example.com/p", doc))
		})
	}
}

func TestPlatformContentSelectors(t *testing.T) {
	assert.Equal(t, ".wp-block-post-content", PlatformContentSelectors(PlatformWordPress)[0])
	assert.Equal(t, ".gh-content", PlatformContentSelectors(PlatformGhost)[0])
	for _, p := range []Platform{PlatformWordPress, PlatformGhost, PlatformMedium, PlatformSubstack, PlatformUnknown} {
		assert.Contains(t, PlatformContentSelectors(p), "article", p)
	}
}

func TestPlatformNoiseSelectors(t *testing.T) {
	common := PlatformNoiseSelectors(PlatformUnknown)
	assert.Contains(t, common, "#comments")

	wp := PlatformNoiseSelectors(PlatformWordPress)
	assert.Contains(t, wp, ".jp-relatedposts")
	assert.Greater(t, len(wp), len(common))
}

func TestPlatformTitleSelectors(t *testing.T) {
	assert.Contains(t, PlatformTitleSelectors(PlatformWordPress), ".entry-title")
	assert.Equal(t, "h1", PlatformTitleSelectors(PlatformUnknown)[1])
}
