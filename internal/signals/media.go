package signals

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Media lists the media URLs found in content, in document order and
// without duplicates.
type Media struct {
	Images []string `json:"images" yaml:"images"`
	Videos []string `json:"videos" yaml:"videos"`
	Audios []string `json:"audios" yaml:"audios"`
}

// ExtractMedia collects img, video and audio sources. A <source> element
// counts for its parent player, or for its MIME type when it has no player
// parent.
func ExtractMedia(content string) Media {
	doc := parseDocument(content)
	return mediaOf(doc.Selection)
}

func mediaOf(sel *goquery.Selection) Media {
	m := Media{Images: []string{}, Videos: []string{}, Audios: []string{}}
	seen := make(map[string]bool)
	add := func(list *[]string, src string) {
		src = strings.TrimSpace(src)
		if src == "" || seen[src] {
			return
		}
		seen[src] = true
		*list = append(*list, src)
	}

	sel.Find("img[src], video[src], audio[src], source[src]").Each(func(_ int, el *goquery.Selection) {
		src, _ := el.Attr("src")
		switch goquery.NodeName(el) {
		case "img":
			add(&m.Images, src)
		case "video":
			add(&m.Videos, src)
		case "audio":
			add(&m.Audios, src)
		case "source":
			typ := strings.ToLower(el.AttrOr("type", ""))
			switch {
			case goquery.NodeName(el.Parent()) == "video" || strings.HasPrefix(typ, "video/"):
				add(&m.Videos, src)
			case goquery.NodeName(el.Parent()) == "audio" || strings.HasPrefix(typ, "audio/"):
				add(&m.Audios, src)
			}
		}
	})
	return m
}

// StripTags returns the plain text of markup, one line per block element.
func StripTags(content string) string {
	doc := parseDocument(content)
	if len(doc.Nodes) == 0 {
		return ""
	}
	return PlainText(doc.Nodes[0])
}
