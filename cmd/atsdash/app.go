package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/tmorita/ats-analytics/internal/analytics"
	"github.com/tmorita/ats-analytics/internal/config"
	"github.com/tmorita/ats-analytics/internal/fetch"
	"github.com/tmorita/ats-analytics/internal/jobdesc"
	"github.com/tmorita/ats-analytics/internal/keywords"
	"github.com/tmorita/ats-analytics/internal/logging"
	"github.com/tmorita/ats-analytics/internal/schemas"
	"github.com/tmorita/ats-analytics/internal/scoring"
	"github.com/tmorita/ats-analytics/internal/store"
	"github.com/tmorita/ats-analytics/internal/types"
)

// resolveConfig loads the optional config file and fills the gaps from
// environment variables and built-in defaults. CLI flags are applied by the
// individual commands on top of the result.
func resolveConfig(path string) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JobDescriptionURL: os.Getenv("JOB_DESCRIPTION_URL"),
		Port:              8080,
		ReadabilityPolicy: string(scoring.PolicyWordCount),
		KeywordLimit:      keywords.DefaultLimit,
		LogLevel:          "info",
		LogFormat:         "console",
	})

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// jobSource builds the job-description source from the config, or nil when
// none is configured.
func jobSource(cfg config.Config) jobdesc.Source {
	switch {
	case cfg.JobDescription != "":
		return &jobdesc.FileSource{Path: cfg.JobDescription}
	case cfg.JobDescriptionURL != "":
		f := fetch.New()
		f.UseBrowser = cfg.UseBrowser
		return &jobdesc.URLSource{URL: cfg.JobDescriptionURL, Fetcher: f}
	}
	return nil
}

// buildAggregator wires the database-backed aggregator. The returned cleanup
// closes the connection pool.
func buildAggregator(ctx context.Context, cfg config.Config, logger *zap.Logger) (*analytics.Aggregator, func(), error) {
	if cfg.DatabaseURL == "" {
		return nil, nil, fmt.Errorf("database URL is required (set DATABASE_URL or database_url in config)")
	}

	pg, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	validator, err := schemas.New()
	if err != nil {
		pg.Close()
		return nil, nil, err
	}

	// Without a file or URL source the job description comes from the
	// database; if none is stored the aggregator derives keywords instead.
	src := jobSource(cfg)
	if src == nil {
		src = pg
	}

	agg := &analytics.Aggregator{
		Store:          pg,
		Profile:        pg,
		JobDescription: src,
		Validator:      validator,
		Scorer:         scoring.Scorer{Policy: scoring.ParseReadabilityPolicy(cfg.ReadabilityPolicy)},
		KeywordLimit:   cfg.KeywordLimit,
		Logger:         logger,
	}
	return agg, pg.Close, nil
}

// newLogger builds the process logger from config.
func newLogger(cfg config.Config) *zap.Logger {
	return logging.New(cfg.LogLevel, cfg.LogFormat)
}

// loadResumeFile reads a resume document from a JSON file.
func loadResumeFile(path string) (types.ResumeDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	return doc, nil
}
