// Package fetch retrieves published posts over HTTP and extracts the post body
// and title for analysis.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; FormatAnalyzer/1.0)"

// DefaultMaxBytes caps how much of a response body is read.
const DefaultMaxBytes int64 = 5 << 20

// Result holds the raw response from a URL fetch.
type Result struct {
	URL         string
	HTML        string
	ContentType string
	StatusCode  int
}

// Post is the post body and title extracted from a page.
type Post struct {
	URL      string
	Host     string
	Title    string
	Content  string // inner HTML of the post body
	Platform Platform
}

// Error represents an error during URL fetching.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	MaxBytes  int64
	Headers   map[string]string
	Client    *http.Client // overrides Timeout when set
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
		MaxBytes:  DefaultMaxBytes,
	}
}

// URL retrieves HTML content from a URL. On a non-200 status the partial
// result is returned with the error.
func URL(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Host == "" || (parsedURL.Scheme != "http" && parsedURL.Scheme != "https") {
		return nil, &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	limit := opts.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	result := &Result{
		URL:         urlStr,
		HTML:        string(bodyBytes),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}

	if resp.StatusCode != http.StatusOK {
		return result, &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}
	return result, nil
}

// FetchPost downloads a post page and extracts its body and title.
func FetchPost(ctx context.Context, urlStr string, opts *Options) (*Post, error) {
	result, err := URL(ctx, urlStr, opts)
	if err != nil {
		return nil, err
	}
	post, err := ExtractPost(result.HTML, urlStr)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to extract post", Cause: err}
	}
	return post, nil
}

// ExtractPost finds the post body in a full page. Page chrome and
// platform-specific noise are removed first; the first matching content
// selector wins, falling back to body.
func ExtractPost(html, pageURL string) (*Post, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	platform := DetectPlatform(pageURL, doc)
	title := extractTitle(doc.Selection, platform)

	doc.Find("nav, footer, script, style, noscript, .sidebar, .cookie-banner, .popup").Remove()
	if noise := strings.Join(PlatformNoiseSelectors(platform), ", "); noise != "" {
		doc.Find(noise).Remove()
	}

	var body *goquery.Selection
	for _, selector := range PlatformContentSelectors(platform) {
		if sel := doc.Find(selector); sel.Length() > 0 {
			body = sel.First()
			break
		}
	}
	if body == nil {
		body = doc.Find("body")
	}
	// Post headers repeat the title inside article elements.
	body.Find("header, .entry-header, .post-header, h1").Remove()

	content, err := body.Html()
	if err != nil {
		return nil, fmt.Errorf("failed to render post body: %w", err)
	}

	host := ""
	if u, err := url.Parse(pageURL); err == nil {
		host = u.Hostname()
	}

	return &Post{
		URL:      pageURL,
		Host:     host,
		Title:    title,
		Content:  strings.TrimSpace(content),
		Platform: platform,
	}, nil
}

func extractTitle(doc *goquery.Selection, platform Platform) string {
	for _, selector := range PlatformTitleSelectors(platform) {
		if text := cleanWhitespace(doc.Find(selector).First().Text()); text != "" {
			return text
		}
	}
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		return strings.TrimSpace(og)
	}
	return cleanWhitespace(doc.Find("title").First().Text())
}

// cleanWhitespace collapses runs of whitespace to single spaces.
func cleanWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
