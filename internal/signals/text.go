package signals

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// blockElements end a line in the plain-text rendering.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "dd": true, "details": true, "div": true, "dl": true,
	"dt": true, "figcaption": true, "figure": true, "footer": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "summary": true,
	"table": true, "td": true, "th": true, "tr": true, "ul": true,
}

// PlainText renders the text of n with one line per block element. Line
// breaks inside text are kept, other whitespace inside a line is collapsed
// and empty lines are dropped.
func PlainText(n *html.Node) string {
	var sb strings.Builder
	var f func(*html.Node)
	f = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(lineBreaks.Replace(n.Data))
			return
		case html.CommentNode:
			return
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "template":
				return
			}
		}

		block := n.Type == html.ElementNode && blockElements[n.Data]
		if block {
			sb.WriteByte('\n')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
		if block {
			sb.WriteByte('\n')
		}
	}
	f(n)

	lines := strings.Split(sb.String(), "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// CountWords counts runs of letters and digits. Apostrophes and hyphens
// inside a word do not split it.
func CountWords(text string) int {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !isWordRune(r)
	})
	n := 0
	for _, field := range fields {
		if strings.IndexFunc(field, func(r rune) bool {
			return unicode.IsLetter(r) || unicode.IsDigit(r)
		}) >= 0 {
			n++
		}
	}
	return n
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '’' || r == '-'
}
