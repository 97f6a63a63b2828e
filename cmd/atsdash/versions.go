package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var versionsConfig string

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List stored resume versions",
	RunE:  runVersions,
}

func init() {
	versionsCmd.Flags().StringVarP(&versionsConfig, "config", "c", "", "Path to JSON config file")
	rootCmd.AddCommand(versionsCmd)
}

func runVersions(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(versionsConfig)
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

	versions, err := agg.Store.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list versions: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCREATED")
	for _, v := range versions {
		fmt.Fprintf(w, "%s\t%s\t%s\n", v.ID, v.Name, v.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
