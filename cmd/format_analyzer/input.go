package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/format-analyzer/internal/fetch"
)

// contentFlags are shared by commands that analyze one document.
type contentFlags struct {
	in      string
	content string
	url     string
	title   string
}

// document is the content to analyze. url and host are set for fetched posts.
type document struct {
	content string
	title   string
	url     string
	host    string
}

func (f *contentFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.in, "in", "i", "", "Path to an HTML file, or - for stdin")
	cmd.Flags().StringVarP(&f.content, "content", "c", "", "Content to analyze")
	cmd.Flags().StringVarP(&f.url, "url", "u", "", "Fetch a published post and analyze its body")
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "Post title")
	cmd.MarkFlagsMutuallyExclusive("in", "content", "url")
}

// read returns the document from --content, --in, stdin or --url. An explicit
// --title overrides a fetched one.
func (f *contentFlags) read(cmd *cobra.Command) (document, error) {
	doc := document{title: f.title}
	switch {
	case cmd.Flags().Changed("content"):
		doc.content = f.content
	case f.url != "":
		post, err := fetch.FetchPost(cmd.Context(), f.url, nil)
		if err != nil {
			return document{}, err
		}
		doc.content = post.Content
		doc.url = post.URL
		doc.host = post.Host
		if !cmd.Flags().Changed("title") {
			doc.title = post.Title
		}
	case f.in == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return document{}, fmt.Errorf("failed to read stdin: %w", err)
		}
		doc.content = string(data)
	case f.in != "":
		data, err := os.ReadFile(f.in)
		if err != nil {
			return document{}, fmt.Errorf("failed to read input file %s: %w", f.in, err)
		}
		doc.content = string(data)
	default:
		return document{}, fmt.Errorf("one of --in, --content or --url is required")
	}
	return doc, nil
}
