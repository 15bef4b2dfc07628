package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/format-analyzer/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing suggest, analyze, validate, weights, formats and batch endpoints.`,
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, a, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	srv, err := server.New(server.Config{
		Port:       cfg.Port,
		Analyzer:   a,
		Logger:     logger,
		CORSOrigin: cfg.CORSOrigin,
		Workers:    cfg.Workers,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Run(cmd.Context())
}
