package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tmorita/ats-analytics/internal/config"
	"github.com/tmorita/ats-analytics/internal/keywords"
	"github.com/tmorita/ats-analytics/internal/observability"
	"github.com/tmorita/ats-analytics/internal/resume"
	"github.com/tmorita/ats-analytics/internal/schemas"
	"github.com/tmorita/ats-analytics/internal/scoring"
	"github.com/tmorita/ats-analytics/internal/types"
)

var (
	scoreInput    string
	scoreConfig   string
	scoreKeywords string
	scorePolicy   string
	scoreVerbose  bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume file against job-description keywords",
	Long:  "Score a single resume JSON file. Keywords come from --keywords, from the configured job description, or are derived from the resume itself.",
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreInput, "input", "i", "", "Path to resume JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreConfig, "config", "c", "", "Path to JSON config file")
	scoreCmd.Flags().StringVarP(&scoreKeywords, "keywords", "k", "", "Comma-separated target keywords")
	scoreCmd.Flags().StringVar(&scorePolicy, "policy", "", "Readability policy: wordcount or flesch")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print formatted breakdown instead of JSON")

	scoreCmd.MarkFlagRequired("input") //nolint:errcheck // flag is registered above

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(scoreConfig)
	if err != nil {
		return err
	}
	if scorePolicy != "" {
		cfg.ReadabilityPolicy = scorePolicy
	}

	doc, err := loadResumeFile(scoreInput)
	if err != nil {
		return err
	}

	kws, err := resolveScoreKeywords(cfg, doc)
	if err != nil {
		return err
	}

	scorer := scoring.Scorer{Policy: scoring.ParseReadabilityPolicy(cfg.ReadabilityPolicy)}
	breakdown, overall := scorer.Score(doc, kws)

	validator, err := schemas.New()
	if err != nil {
		return err
	}
	warnings := validator.Warnings(doc)

	if scoreVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintKeywords(kws)
		printer.PrintScore("", breakdown, overall)
		printer.PrintWarnings(warnings)
		return nil
	}

	out := types.ScoreResponse{
		Breakdown: breakdown,
		Overall:   overall,
		Keywords:  kws,
		Warnings:  warnings,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// resolveScoreKeywords prefers the --keywords flag, then the configured job
// description, then keywords derived from the resume itself.
func resolveScoreKeywords(cfg config.Config, doc types.ResumeDocument) ([]string, error) {
	if scoreKeywords != "" {
		var kws []string
		for _, k := range strings.Split(scoreKeywords, ",") {
			if k = strings.TrimSpace(strings.ToLower(k)); k != "" {
				kws = append(kws, k)
			}
		}
		return kws, nil
	}

	if src := jobSource(cfg); src != nil {
		record, err := src.LoadCurrent(context.Background())
		if err != nil {
			return nil, fmt.Errorf("failed to load job description: %w", err)
		}
		if kws := keywords.FromRecord(record); len(kws) > 0 {
			return kws, nil
		}
		if kws := keywords.Derive(resume.Flatten(record), cfg.KeywordLimit); len(kws) > 0 {
			return kws, nil
		}
	}

	return keywords.Derive(resume.FlattenDocument(doc), cfg.KeywordLimit), nil
}
