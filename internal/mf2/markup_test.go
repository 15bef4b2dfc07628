package mf2

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/format-analyzer/internal/formats"
)

var published = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func completePost(format, content string) Post {
	return Post{
		Content:   content,
		Title:     "A post",
		Format:    format,
		URL:       "https://example.com/a-post",
		Published: published,
		Author:    Author{Name: "Ada", URL: "https://example.com/author/ada"},
		OwnHost:   "example.com",
	}
}

func TestClassesFor(t *testing.T) {
	tests := []struct {
		format  string
		entry   string
		content string
		name    string
	}{
		{formats.Standard, "h-entry", "e-content", "p-name"},
		{formats.Status, "h-entry", "p-note e-content", ""},
		{formats.Aside, "h-entry", "p-note e-content", ""},
		{formats.Quote, "h-entry h-cite", "e-content", "p-name"},
		{"", "h-entry", "e-content", "p-name"},
		{"poem", "h-entry", "e-content", "p-name"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			c := ClassesFor(tt.format)
			assert.Equal(t, tt.entry, c.Entry)
			assert.Equal(t, tt.content, c.Content)
			assert.Equal(t, tt.name, c.Name)
			assert.NotEmpty(t, c.Description)
		})
	}

	assert.Equal(t, "u-photo", ClassesFor(formats.Gallery).Photo)
	assert.Equal(t, "u-bookmark-of h-cite", ClassesFor(formats.Link).Bookmark)
	assert.Equal(t, "p-author h-card", ClassesFor(formats.Quote).Author)
}

func TestAll_CoversEveryFormat(t *testing.T) {
	all := All()
	require.Len(t, all, len(formats.Slugs()))
	for i, slug := range formats.Slugs() {
		assert.Equal(t, slug, all[i].Format)
		assert.NotEmpty(t, all[i].Entry)
	}
}

func TestGenerate_CommonProperties(t *testing.T) {
	m := Generate(completePost(formats.Standard, "<p>Hello <b>world</b></p>"))

	assert.Equal(t, formats.Standard, m.Format)
	assert.Equal(t, "h-entry", m.EntryClass)
	assert.Equal(t, []any{"A post"}, m.Properties["name"])
	assert.Equal(t, []any{ContentValue{HTML: "<p>Hello <b>world</b></p>", Value: "Hello world"}}, m.Properties["content"])
	assert.Equal(t, []any{"2024-05-01T09:30:00Z"}, m.Properties["published"])
	assert.Equal(t, []any{"2024-05-01T09:30:00Z"}, m.Properties["updated"])
	assert.Equal(t, []any{"https://example.com/a-post"}, m.Properties["url"])

	require.Len(t, m.Properties["author"], 1)
	card := m.Properties["author"][0].(Item)
	assert.Equal(t, []string{"h-card"}, card.Type)
	assert.Equal(t, []any{"Ada"}, card.Properties["name"])
}

func TestGenerate_FormatProperties(t *testing.T) {
	t.Run("gallery photos", func(t *testing.T) {
		m := Generate(completePost(formats.Gallery, `<img src="1.jpg"><img src="2.jpg"><img src="1.jpg">`))
		assert.Equal(t, []any{"1.jpg", "2.jpg"}, m.Properties["photo"])
	})

	t.Run("video", func(t *testing.T) {
		m := Generate(completePost(formats.Video, `<video><source src="clip.webm" type="video/webm"></video>`))
		assert.Equal(t, []any{"clip.webm"}, m.Properties["video"])
	})

	t.Run("audio", func(t *testing.T) {
		m := Generate(completePost(formats.Audio, `<audio src="ep.mp3"></audio>`))
		assert.Equal(t, []any{"ep.mp3"}, m.Properties["audio"])
	})

	t.Run("quote source", func(t *testing.T) {
		m := Generate(completePost(formats.Quote, `<blockquote cite="https://source.org/talk"><p>Hi</p></blockquote>`))
		require.Len(t, m.Properties["quotation-of"], 1)
		cite := m.Properties["quotation-of"][0].(Item)
		assert.Equal(t, []string{"h-cite"}, cite.Type)
		assert.Equal(t, []any{"https://source.org/talk"}, cite.Properties["url"])
	})

	t.Run("quote without source", func(t *testing.T) {
		m := Generate(completePost(formats.Quote, `<blockquote><p>Hi</p></blockquote>`))
		assert.NotContains(t, m.Properties, "quotation-of")
	})

	t.Run("external bookmark", func(t *testing.T) {
		m := Generate(completePost(formats.Link, `<p><a href="https://other.org/post">Read</a></p>`))
		require.Len(t, m.Properties["bookmark-of"], 1)
		assert.Equal(t, []any{"https://other.org/post"}, m.Properties["bookmark-of"][0].(Item).Properties["url"])
	})

	t.Run("internal links are not bookmarks", func(t *testing.T) {
		for _, content := range []string{
			`<a href="https://www.example.com/older">older</a>`,
			`<a href="/older">older</a>`,
		} {
			m := Generate(completePost(formats.Link, content))
			assert.NotContains(t, m.Properties, "bookmark-of", content)
		}
	})

	t.Run("untitled note has no name", func(t *testing.T) {
		post := completePost(formats.Status, "<p>Just shipped</p>")
		post.Title = "  "
		m := Generate(post)
		assert.NotContains(t, m.Properties, "name")
		assert.Equal(t, "p-note e-content", m.ContentClass)
	})

	t.Run("titled note keeps name", func(t *testing.T) {
		m := Generate(completePost(formats.Aside, "<p>Just shipped</p>"))
		assert.Equal(t, []any{"A post"}, m.Properties["name"])
	})
}

func TestGenerate_UpdatedDate(t *testing.T) {
	post := completePost(formats.Standard, "<p>x</p>")
	post.Updated = published.Add(48 * time.Hour)
	m := Generate(post)
	assert.Equal(t, []any{"2024-05-03T09:30:00Z"}, m.Properties["updated"])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		post   func() Post
		errors []string
	}{
		{
			name:   "complete standard entry",
			post:   func() Post { return completePost(formats.Standard, "<p>x</p>") },
			errors: []string{},
		},
		{
			name: "missing common properties",
			post: func() Post {
				return Post{Content: "<p>x</p>", Format: formats.Standard}
			},
			errors: []string{MsgMissingURL, MsgMissingPublished, MsgMissingAuthor},
		},
		{
			name:   "image without photo",
			post:   func() Post { return completePost(formats.Image, "<p>no picture</p>") },
			errors: []string{MsgMissingPhoto},
		},
		{
			name:   "gallery with photos",
			post:   func() Post { return completePost(formats.Gallery, `<img src="a.jpg"><img src="b.jpg">`) },
			errors: []string{},
		},
		{
			name:   "video without video",
			post:   func() Post { return completePost(formats.Video, "<p>soon</p>") },
			errors: []string{MsgMissingVideo},
		},
		{
			name:   "audio without audio",
			post:   func() Post { return completePost(formats.Audio, "<p>soon</p>") },
			errors: []string{MsgMissingAudio},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.post())
			assert.Equal(t, tt.errors, result.Errors)
			assert.Equal(t, len(tt.errors) == 0, result.Valid)
			require.NotNil(t, result.Markup)
		})
	}
}

func TestMarkup_JSONShape(t *testing.T) {
	data, err := json.Marshal(Generate(completePost(formats.Link, `<a href="https://other.org">x</a>`)))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	props := decoded["properties"].(map[string]any)
	bookmark := props["bookmark-of"].([]any)[0].(map[string]any)
	assert.Equal(t, []any{"h-cite"}, bookmark["type"])
	assert.Equal(t, "e-content", decoded["content_class"])
}
