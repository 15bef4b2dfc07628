package analyzer

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/format-analyzer/internal/formats"
	"github.com/jonathan/format-analyzer/internal/ranking"
	"github.com/jonathan/format-analyzer/internal/signals"
)

func newAnalyzer(t *testing.T, opts ...Option) *Analyzer {
	t.Helper()
	a, err := New(opts...)
	require.NoError(t, err)
	return a
}

func TestSuggestFormat_Detection(t *testing.T) {
	chat := "<p>Alice: Hey, how are you?</p><p>Bob: I'm good, thanks!</p><p>Alice: Great to hear.</p>" +
		"<p>Bob: What have you been up to?</p><p>Alice: Just working on a new project.</p>"
	longArticle := "<h2>Introduction</h2><p>" + strings.Repeat("This is a long article with lots of content. ", 50) + "</p>"

	tests := []struct {
		name    string
		content string
		title   string
		want    []string
	}{
		{
			name:    "status",
			content: "<p>Just shipped a new feature! Feeling great about the progress.</p>",
			want:    []string{formats.Status},
		},
		{
			name:    "quote",
			content: "<blockquote><p>The best way to predict the future is to invent it.</p></blockquote><cite>Alan Kay</cite>",
			want:    []string{formats.Quote},
		},
		{
			name:    "bare blockquote",
			content: "<blockquote><p>Simplicity is prerequisite for reliability.</p></blockquote>",
			want:    []string{formats.Quote},
		},
		{
			name:    "link",
			content: `<p>Check out <a href="https://example.com/great-article">this great article</a>.</p>`,
			want:    []string{formats.Link},
		},
		{
			name:    "image",
			content: `<figure><img src="https://example.com/photo.jpg" alt="My photo"></figure><p>Caption here</p>`,
			want:    []string{formats.Image},
		},
		{
			name: "gallery",
			content: `<div class="wp-block-gallery"><img src="https://example.com/1.jpg">` +
				`<img src="https://example.com/2.jpg"><img src="https://example.com/3.jpg"></div>`,
			want: []string{formats.Gallery},
		},
		{
			name: "video",
			content: `<figure class="wp-block-embed wp-block-embed-youtube"><div class="wp-block-embed__wrapper">` +
				`https://youtube.com/watch?v=abc123</div></figure>`,
			want: []string{formats.Video},
		},
		{
			name:    "audio",
			content: `<figure class="wp-block-audio"><audio src="https://example.com/podcast.mp3" controls></audio></figure>`,
			want:    []string{formats.Audio},
		},
		{
			name:    "chat",
			content: chat,
			want:    []string{formats.Chat},
		},
		{
			name:    "standard",
			content: longArticle,
			title:   "My Long Article",
			want:    []string{formats.Standard},
		},
		{
			name:    "aside or status",
			content: "<p>Quick thought about today.</p><p>More details here.</p>",
			want:    []string{formats.Aside, formats.Status},
		},
	}

	a := newAnalyzer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := a.SuggestFormat(tt.content, tt.title)
			assert.Contains(t, tt.want, result.SuggestedFormat, "scores: %v", result.Scores)
			assert.Greater(t, result.Confidence, 0)
			assert.NotEmpty(t, result.Reason)
		})
	}
}

func TestSuggestFormat_StatusConfidence(t *testing.T) {
	a := newAnalyzer(t)
	result := a.SuggestFormat("<p>Short text</p>", "")

	assert.Equal(t, formats.Status, result.SuggestedFormat)
	assert.Greater(t, result.Confidence, 50)
	assert.Equal(t, "short content under 280 characters, no title, single paragraph", result.Reason)
}

func TestSuggestFormat_ChatReason(t *testing.T) {
	content := "<p>Alice: hi</p><p>Bob: hey</p><p>Alice: how are you</p><p>Bob: fine</p><p>Alice: good</p>"
	result := newAnalyzer(t).SuggestFormat(content, "")

	assert.Equal(t, formats.Chat, result.SuggestedFormat)
	assert.Equal(t, "chat/dialogue pattern, speaker labels detected", result.Reason)
}

func TestSuggestFormat_EmptyContent(t *testing.T) {
	a := newAnalyzer(t)
	for _, content := range []string{"", "   ", "\n\t"} {
		result := a.SuggestFormat(content, "Some title")

		assert.Equal(t, formats.Standard, result.SuggestedFormat)
		assert.Equal(t, 0, result.Confidence)
		assert.Equal(t, EmptyContentReason, result.Reason)
		assert.NotNil(t, result.Alternatives)
		assert.Empty(t, result.Alternatives)
		assert.Empty(t, result.Signals)
		assert.Empty(t, result.Scores)
	}
}

func TestSuggestFormat_MarkupWithoutText(t *testing.T) {
	a := newAnalyzer(t)
	tests := []struct {
		name    string
		content string
	}{
		{"empty paragraph", "<p></p>"},
		{"whitespace paragraph", "<p>   </p>"},
		{"empty paragraph block", "<!-- wp:paragraph --><p></p><!-- /wp:paragraph -->"},
		{"block comments only", "<!-- wp:paragraph -->\n<!-- /wp:paragraph -->"},
		{"non-breaking space", "<p>&nbsp;</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := a.SuggestFormat(tt.content, "")

			assert.Equal(t, formats.Standard, result.SuggestedFormat)
			assert.Equal(t, 0, result.Confidence)
			assert.Equal(t, EmptyContentReason, result.Reason)
			assert.Empty(t, result.Alternatives)
			assert.Empty(t, result.Scores)
		})
	}
}

func TestSuggestFormat_MediaWithoutText(t *testing.T) {
	result := newAnalyzer(t).SuggestFormat(`<figure class="wp-block-image"><img src="x.jpg"></figure>`, "")

	assert.Equal(t, formats.Image, result.SuggestedFormat)
	assert.NotEqual(t, EmptyContentReason, result.Reason)
	assert.Positive(t, result.Confidence)
}

func TestSuggestFormat_Invariants(t *testing.T) {
	inputs := []string{
		"<p>hello</p>",
		"<p>x</p><p>y</p><img src='a.jpg'>",
		"<blockquote>q</blockquote>",
		strings.Repeat("<p>para</p>", 20),
		"<iframe src='https://soundcloud.com/track'></iframe>",
		"plain text with no markup at all",
		"<<<>>>",
	}

	a := newAnalyzer(t)
	for _, in := range inputs {
		result := a.SuggestFormat(in, "")

		assert.GreaterOrEqual(t, result.Confidence, 0)
		assert.LessOrEqual(t, result.Confidence, 100)
		assert.Contains(t, result.Scores, result.SuggestedFormat)
		assert.LessOrEqual(t, len(result.Alternatives), 2)

		top := result.Scores[result.SuggestedFormat]
		for _, score := range result.Scores {
			assert.LessOrEqual(t, score, top)
		}
		seen := map[string]bool{result.SuggestedFormat: true}
		for _, alt := range result.Alternatives {
			assert.False(t, seen[alt.Format], "duplicate format %s", alt.Format)
			seen[alt.Format] = true
			assert.Greater(t, result.Scores[alt.Format], 0)
			assert.LessOrEqual(t, result.Scores[alt.Format], top)
		}
	}
}

func TestSuggestFormat_Deterministic(t *testing.T) {
	a := newAnalyzer(t)
	content := `<p>See <a href="https://example.com">this</a></p><img src="x.jpg">`
	assert.Equal(t, a.SuggestFormat(content, "t"), a.SuggestFormat(content, "t"))
}

func TestSuggestFormat_OwnHost(t *testing.T) {
	content := `<p>Check out <a href="https://example.com/great-article">this great article</a>.</p>`

	external := newAnalyzer(t).SuggestFormat(content, "")
	assert.True(t, external.Signals[signals.ExternalLink].(bool))

	internal := newAnalyzer(t, WithOwnHost("example.com")).SuggestFormat(content, "")
	assert.False(t, internal.Signals[signals.ExternalLink].(bool))
	assert.Less(t, internal.Scores[formats.Link], external.Scores[formats.Link])
}

func TestSuggestFormat_CustomSignalAndWeights(t *testing.T) {
	table := ranking.DefaultWeightTable()
	table.Formats = append(table.Formats, ranking.FormatWeights{
		Format:  "code",
		Signals: map[string]int{"has_code": 200},
	})
	hook := func(s signals.Signals, content, _ string) {
		s["has_code"] = strings.Contains(content, "<code>")
	}

	a := newAnalyzer(t, WithWeights(table), WithSignalHooks(hook))
	result := a.SuggestFormat("<p><code>fmt.Println(42)</code></p>", "")

	assert.Equal(t, "code", result.SuggestedFormat)
	assert.Equal(t, 100, result.Confidence)
	assert.Equal(t, "general article content", result.Reason)
	assert.Equal(t, true, result.Signals["has_code"])
	assert.True(t, a.KnowsFormat("code"))
	assert.False(t, a.KnowsFormat("podcast"))
}

func TestNew_CopiesWeights(t *testing.T) {
	table := ranking.DefaultWeightTable()
	a := newAnalyzer(t, WithWeights(table))

	table.Formats[0].Signals[signals.ShortContent] = 1000
	resp, err := a.FormatSignalWeights(formats.Status)
	require.NoError(t, err)
	assert.Equal(t, 30, resp.Formats[0].Signals[signals.ShortContent])
}

func TestNew_InvalidWeights(t *testing.T) {
	_, err := New(WithWeights(&ranking.WeightTable{}))
	require.Error(t, err)

	var wtErr *ranking.WeightTableError
	assert.True(t, errors.As(err, &wtErr))
}

func TestAnalyzeContent(t *testing.T) {
	a := newAnalyzer(t)

	analysis := a.AnalyzeContent("<blockquote>Quote</blockquote><cite>Someone</cite>", "")
	assert.Equal(t, formats.Quote, analysis.SuggestedFormat)
	assert.Len(t, analysis.Scores, 10)
	assert.Equal(t, true, analysis.Signals[signals.HasBlockquote])

	empty := a.AnalyzeContent("", "")
	assert.Equal(t, formats.Standard, empty.SuggestedFormat)
	assert.Equal(t, 0, empty.Confidence)
	assert.NotNil(t, empty.Signals)
	assert.NotNil(t, empty.Scores)
	assert.Empty(t, empty.Signals)
	assert.Empty(t, empty.Scores)
}

func TestValidateFormatContent(t *testing.T) {
	a := newAnalyzer(t)

	result := a.ValidateFormatContent("<p>no links</p>", formats.Link, "")
	assert.False(t, result.Valid)
	assert.Equal(t, []string{"Link posts must contain at least one link."}, result.Messages)

	defaulted := a.ValidateFormatContent("<p>anything</p>", "", "")
	assert.True(t, defaulted.Valid)
	assert.Equal(t, formats.Standard, defaulted.Format)
}

func TestFormatSignalWeights(t *testing.T) {
	a := newAnalyzer(t)

	all, err := a.FormatSignalWeights("")
	require.NoError(t, err)
	require.Len(t, all.Formats, 10)
	assert.Equal(t, formats.Status, all.Formats[0].Format)
	assert.Equal(t, 85, all.Formats[0].MaxScore)
	assert.Equal(t, 280, all.Formats[0].CharacterLimit)

	quote, err := a.FormatSignalWeights(formats.Quote)
	require.NoError(t, err)
	require.Len(t, quote.Formats, 1)
	assert.Equal(t, 80, quote.Formats[0].Signals[signals.HasBlockquote])

	_, err = a.FormatSignalWeights("podcast")
	var unknown *formats.UnknownFormatError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "podcast", unknown.Slug)
}

func TestAnalyzer_ConcurrentUse(t *testing.T) {
	a := newAnalyzer(t)
	content := "<blockquote><p>Be water.</p></blockquote>"

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, formats.Quote, a.SuggestFormat(content, "").SuggestedFormat)
		}()
	}
	wg.Wait()
}
