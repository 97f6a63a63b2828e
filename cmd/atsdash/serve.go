package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmorita/ats-analytics/internal/server"
)

var (
	servePort   int
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard API server",
	Long:  `Start an HTTP server that exposes the analytics report, CSV export, version scores and ad-hoc scoring endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVarP(&serveConfig, "config", "c", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(serveConfig)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	logger := newLogger(cfg)
	defer logger.Sync() //nolint:errcheck // stderr sync failure is not actionable

	agg, cleanup, err := buildAggregator(context.Background(), cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	defer cleanup()

	srv := server.New(server.Config{Port: cfg.Port}, agg, logger)
	return srv.Start()
}
