package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/format-analyzer/internal/analyzer"
	"github.com/jonathan/format-analyzer/internal/formats"
	"github.com/jonathan/format-analyzer/internal/observability"
	"github.com/jonathan/format-analyzer/internal/syndication"
	"github.com/jonathan/format-analyzer/schemas"
)

var syndicateCmd = &cobra.Command{
	Use:   "syndicate [target...]",
	Short: "Prepare copies of a post for other platforms",
	Long: `Builds the text and media to post on each target, truncated to the
target's character limit with room for the permalink. Without targets a single
generic copy is printed. The format defaults to the suggested one.`,
	ValidArgs: syndication.TargetIDs(),
	Args:      cobra.ArbitraryArgs,
	RunE:      runSyndicate,
}

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List the syndication targets",
	Args:  cobra.NoArgs,
	RunE:  runTargets,
}

var (
	syndicateInput     contentFlags
	syndicateFormat    string
	syndicatePermalink string
	syndicateExcerpt   string
	syndicateImage     string
)

func init() {
	syndicateInput.register(syndicateCmd)
	syndicateCmd.Flags().StringVarP(&syndicateFormat, "format", "f", "", "Format slug (default: the suggested format)")
	syndicateCmd.Flags().StringVar(&syndicatePermalink, "permalink", "", "Link back to the original post (default: the fetched URL)")
	syndicateCmd.Flags().StringVar(&syndicateExcerpt, "excerpt", "", "Post excerpt")
	syndicateCmd.Flags().StringVar(&syndicateImage, "featured-image", "", "Featured image URL, attached first")
	syndicateCmd.AddCommand(targetsCmd)
	rootCmd.AddCommand(syndicateCmd)
}

func runSyndicate(cmd *cobra.Command, args []string) error {
	doc, err := syndicateInput.read(cmd)
	if err != nil {
		return err
	}
	cfg, a, logger, err := setupForHost(cmd, doc.host)
	if err != nil {
		return err
	}

	format, err := resolveFormat(a, syndicateFormat, doc)
	if err != nil {
		return err
	}
	permalink := syndicatePermalink
	if permalink == "" {
		permalink = doc.url
	}
	logger.Debug("syndicating", "format", format, "targets", args)

	result, err := syndication.Prepare(syndication.Post{
		Content:       doc.content,
		Title:         doc.title,
		Excerpt:       syndicateExcerpt,
		Format:        format,
		URL:           permalink,
		FeaturedImage: syndicateImage,
	}, args...)
	if err != nil {
		return err
	}
	return emit(cmd, cfg, schemas.Syndication, result, func(p *observability.Printer) {
		p.PrintSyndication(result)
	})
}

func runTargets(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	targets := syndication.Targets()
	return emit(cmd, cfg, "", map[string]any{"targets": targets}, func(p *observability.Printer) {
		p.PrintTargets(targets)
	})
}

// resolveFormat returns the explicit format, or the suggestion for doc when
// none is given.
func resolveFormat(a *analyzer.Analyzer, explicit string, doc document) (string, error) {
	if explicit == "" {
		return a.SuggestFormat(doc.content, doc.title).SuggestedFormat, nil
	}
	if !a.KnowsFormat(explicit) {
		return "", &formats.UnknownFormatError{Slug: explicit}
	}
	return explicit, nil
}
