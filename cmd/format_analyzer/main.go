// Package main implements the format_analyzer CLI, which suggests post formats
// for HTML content and serves the same operations over HTTP.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	charmlog "github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/format-analyzer/internal/analyzer"
	"github.com/jonathan/format-analyzer/internal/config"
	"github.com/jonathan/format-analyzer/internal/ranking"
)

var rootCmd = &cobra.Command{
	Use:           "format_analyzer",
	Short:         "Suggest post formats from content signals",
	Long:          "format_analyzer inspects post HTML, extracts content signals, and ranks the ten post formats (status, aside, quote, link, image, gallery, video, audio, chat, standard) by weighted score.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	configPath  string
	weightsPath string
	ownHost     string
	outputFmt   string
	outPath     string
	checkSchema bool
	verbose     bool
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Path to JSON config file")
	pf.StringVar(&weightsPath, "weights", "", "Path to a YAML or JSON weight table")
	pf.StringVar(&ownHost, "own-host", "", "Site host; links to other hosts count as external")
	pf.StringVarP(&outputFmt, "output", "o", config.OutputJSON, "Output format: json, yaml or text")
	pf.StringVar(&outPath, "out", "", "Write output to this file instead of stdout")
	pf.BoolVar(&checkSchema, "check-schema", false, "Validate output against its JSON schema")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// loadSettings resolves configuration with precedence flags, config file,
// environment, then defaults.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	flags := cmd.Flags()
	if flags.Changed("own-host") {
		cfg.OwnHost = ownHost
	}
	if flags.Changed("weights") {
		cfg.Weights = weightsPath
	}
	if flags.Changed("output") {
		cfg.Output = outputFmt
	}
	if checkSchema {
		cfg.CheckSchema = true
	}
	if verbose {
		cfg.Verbose = true
	}

	cfg.ApplyEnv()
	merged := cfg.MergeWithDefaults(config.Defaults())
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

func newLogger(cmd *cobra.Command, cfg config.Config) *charmlog.Logger {
	logger := charmlog.NewWithOptions(cmd.ErrOrStderr(), charmlog.Options{
		ReportTimestamp: false,
		Prefix:          "format_analyzer",
	})
	if cfg.Verbose {
		logger.SetLevel(charmlog.DebugLevel)
	}
	return logger
}

// setup loads settings and builds the analyzer every command shares.
func setup(cmd *cobra.Command) (config.Config, *analyzer.Analyzer, *charmlog.Logger, error) {
	return setupForHost(cmd, "")
}

// setupForHost is setup with a fallback own host, used for fetched posts
// when no host is configured.
func setupForHost(cmd *cobra.Command, host string) (config.Config, *analyzer.Analyzer, *charmlog.Logger, error) {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	if cfg.OwnHost == "" {
		cfg.OwnHost = host
	}
	logger := newLogger(cmd, cfg)

	opts := []analyzer.Option{
		analyzer.WithOwnHost(cfg.OwnHost),
		analyzer.WithLogger(logger),
	}
	if cfg.Weights != "" {
		table, err := ranking.LoadWeightTable(cfg.Weights)
		if err != nil {
			return config.Config{}, nil, nil, fmt.Errorf("failed to load weights: %w", err)
		}
		logger.Debug("loaded weight table", "path", cfg.Weights, "formats", len(table.Formats))
		opts = append(opts, analyzer.WithWeights(table))
	}

	a, err := analyzer.New(opts...)
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("failed to create analyzer: %w", err)
	}
	return cfg, a, logger, nil
}
