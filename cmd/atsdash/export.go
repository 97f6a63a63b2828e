package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmorita/ats-analytics/internal/observability"
)

var (
	exportOut     string
	exportConfig  string
	exportVerbose bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the scored version table as CSV",
	Long:  "Build the full analytics report from the version store and write it as a CSV file. Use '-' to write to stdout.",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output CSV path, or '-' for stdout (required)")
	exportCmd.Flags().StringVarP(&exportConfig, "config", "c", "", "Path to JSON config file")
	exportCmd.Flags().BoolVarP(&exportVerbose, "verbose", "v", false, "Print the fleet summary after exporting")

	exportCmd.MarkFlagRequired("out") //nolint:errcheck // flag is registered above

	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(exportConfig)
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	defer logger.Sync() //nolint:errcheck // stderr sync failure is not actionable

	ctx := context.Background()
	agg, cleanup, err := buildAggregator(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	report, err := agg.BuildReport(ctx)
	if err != nil {
		return err
	}

	out := os.Stdout
	if exportOut != "-" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close() //nolint:errcheck // write errors surface via WriteCSV
		out = f
	}

	if err := report.WriteCSV(out); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}

	if exportVerbose || cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintReport(report)
	}
	if exportOut != "-" {
		fmt.Fprintf(os.Stdout, "Exported %d versions to %s\n", len(report.Versions), exportOut)
	}
	return nil
}
