package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/format-analyzer/internal/mf2"
	"github.com/jonathan/format-analyzer/internal/observability"
	"github.com/jonathan/format-analyzer/schemas"
)

// errMarkupIncomplete is returned by mf2 --validate after printing the result.
var errMarkupIncomplete = errors.New("microformats markup is missing required properties")

var mf2Cmd = &cobra.Command{
	Use:   "mf2",
	Short: "Generate the microformats2 h-entry for a post",
	Long: `Prints the entry and content classes for the post's format and the parsed
h-entry properties. With --validate the command fails when url, published,
author or the format's media property is missing. The format defaults to the
suggested one.`,
	Args: cobra.NoArgs,
	RunE: runMF2,
}

var mf2ClassesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List the microformats2 classes for every format",
	Args:  cobra.NoArgs,
	RunE:  runMF2Classes,
}

var (
	mf2Input      contentFlags
	mf2Format     string
	mf2Permalink  string
	mf2Published  string
	mf2Updated    string
	mf2AuthorName string
	mf2AuthorURL  string
	mf2Validate   bool
)

func init() {
	mf2Input.register(mf2Cmd)
	f := mf2Cmd.Flags()
	f.StringVarP(&mf2Format, "format", "f", "", "Format slug (default: the suggested format)")
	f.StringVar(&mf2Permalink, "permalink", "", "Post URL (default: the fetched URL)")
	f.StringVar(&mf2Published, "published", "", "Publish time, RFC 3339")
	f.StringVar(&mf2Updated, "updated", "", "Last update time, RFC 3339 (default: published)")
	f.StringVar(&mf2AuthorName, "author-name", "", "Author name for the h-card")
	f.StringVar(&mf2AuthorURL, "author-url", "", "Author URL for the h-card")
	f.BoolVar(&mf2Validate, "validate", false, "Exit non-zero when required properties are missing")
	mf2Cmd.AddCommand(mf2ClassesCmd)
	rootCmd.AddCommand(mf2Cmd)
}

func runMF2(cmd *cobra.Command, _ []string) error {
	doc, err := mf2Input.read(cmd)
	if err != nil {
		return err
	}
	cfg, a, _, err := setupForHost(cmd, doc.host)
	if err != nil {
		return err
	}

	format, err := resolveFormat(a, mf2Format, doc)
	if err != nil {
		return err
	}
	published, err := parseTime("published", mf2Published)
	if err != nil {
		return err
	}
	updated, err := parseTime("updated", mf2Updated)
	if err != nil {
		return err
	}
	permalink := mf2Permalink
	if permalink == "" {
		permalink = doc.url
	}

	result := mf2.Validate(mf2.Post{
		Content:   doc.content,
		Title:     doc.title,
		Format:    format,
		URL:       permalink,
		Published: published,
		Updated:   updated,
		Author:    mf2.Author{Name: mf2AuthorName, URL: mf2AuthorURL},
		OwnHost:   cfg.OwnHost,
	})
	if err := emit(cmd, cfg, schemas.MF2, result, func(p *observability.Printer) {
		p.PrintMF2(result)
	}); err != nil {
		return err
	}

	if mf2Validate && !result.Valid {
		return fmt.Errorf("%w: %s", errMarkupIncomplete, format)
	}
	return nil
}

func runMF2Classes(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	all := mf2.All()
	return emit(cmd, cfg, "", map[string]any{"formats": all}, func(p *observability.Printer) {
		p.PrintClasses(all)
	})
}

func parseTime(flag, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q: expected RFC 3339 time", flag, value)
	}
	return t, nil
}
