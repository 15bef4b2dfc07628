package fetch

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Platform is a known blogging platform.
type Platform string

const (
	// PlatformWordPress covers self-hosted and wordpress.com sites
	PlatformWordPress Platform = "wordpress"
	// PlatformGhost is the Ghost publishing platform
	PlatformGhost Platform = "ghost"
	// PlatformMedium is medium.com
	PlatformMedium Platform = "medium"
	// PlatformSubstack is substack.com
	PlatformSubstack Platform = "substack"
	// PlatformUnknown is an unrecognized platform
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the platform from the URL host, then from the
// page's generator meta tag. doc may be nil.
func DetectPlatform(urlStr string, doc *goquery.Document) Platform {
	if parsed, err := url.Parse(urlStr); err == nil {
		host := strings.ToLower(parsed.Hostname())
		switch {
		case host == "medium.com" || strings.HasSuffix(host, ".medium.com"):
			return PlatformMedium
		case strings.HasSuffix(host, ".substack.com"):
			return PlatformSubstack
		case strings.HasSuffix(host, ".wordpress.com"):
			return PlatformWordPress
		case strings.HasSuffix(host, ".ghost.io"):
			return PlatformGhost
		}
	}

	if doc == nil {
		return PlatformUnknown
	}
	generator, _ := doc.Find(`meta[name="generator"]`).Attr("content")
	generator = strings.ToLower(generator)
	switch {
	case strings.HasPrefix(generator, "wordpress"):
		return PlatformWordPress
	case strings.HasPrefix(generator, "ghost"):
		return PlatformGhost
	case doc.Find(".wp-block-post-content, .entry-content").Length() > 0:
		return PlatformWordPress
	}
	return PlatformUnknown
}

// PlatformContentSelectors returns post body selectors for a platform, most
// specific first.
func PlatformContentSelectors(platform Platform) []string {
	generic := []string{"article .post-content", "article", "main", ".content", "#content"}

	switch platform {
	case PlatformWordPress:
		return append([]string{".wp-block-post-content", ".entry-content", ".post-content"}, generic...)
	case PlatformGhost:
		return append([]string{".gh-content", ".post-full-content", ".post-content"}, generic...)
	case PlatformMedium:
		return append([]string{"article section", "article"}, generic...)
	case PlatformSubstack:
		return append([]string{".available-content .body", ".body.markup"}, generic...)
	default:
		return generic
	}
}

// PlatformTitleSelectors returns post title selectors for a platform.
func PlatformTitleSelectors(platform Platform) []string {
	switch platform {
	case PlatformWordPress:
		return []string{".wp-block-post-title", ".entry-title", "h1"}
	case PlatformGhost:
		return []string{".gh-article-title", ".post-full-title", "h1"}
	case PlatformSubstack:
		return []string{".post-title", "h1"}
	default:
		return []string{"article h1", "h1"}
	}
}

// PlatformNoiseSelectors returns elements removed before the body is extracted.
func PlatformNoiseSelectors(platform Platform) []string {
	common := []string{
		// Sharing and subscriptions
		".social-share",
		".share-buttons",
		".sharedaddy",
		".subscribe-widget",

		// Comments
		"#comments",
		".comments-area",
		".comment-respond",

		// Cookie and GDPR
		".cookie-consent",
		".gdpr-notice",
	}

	switch platform {
	case PlatformWordPress:
		return append(common, ".wp-block-post-navigation-link", ".post-navigation", ".jp-relatedposts", ".wp-block-comments")
	case PlatformGhost:
		return append(common, ".gh-post-upgrade-cta", ".post-full-comments", ".read-next")
	case PlatformSubstack:
		return append(common, ".subscription-widget-wrap", ".post-footer", ".button-wrapper")
	case PlatformMedium:
		return append(common, "aside")
	default:
		return common
	}
}
