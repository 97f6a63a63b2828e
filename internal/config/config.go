// Package config provides configuration loading and validation for the
// dashboard and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tmorita/ats-analytics/internal/scoring"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags or environment variables.
type Config struct {
	// Sources
	DatabaseURL       string `json:"database_url,omitempty"`        // PostgreSQL connection URL for the version store
	JobDescriptionURL string `json:"job_description_url,omitempty"` // URL to fetch the current job description from
	JobDescription    string `json:"job_description,omitempty"`     // Path to a local job description file

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Scoring
	ReadabilityPolicy string `json:"readability_policy,omitempty"` // "wordcount" or "flesch"
	KeywordLimit      int    `json:"keyword_limit,omitempty"`      // Cap on derived keywords

	// Behavior
	UseBrowser bool   `json:"use_browser,omitempty"` // Use headless browser for SPA job boards
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed breakdowns
	LogLevel   string `json:"log_level,omitempty"`   // zap level: debug, info, warn, error
	LogFormat  string `json:"log_format,omitempty"`  // "json" or "console"
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are not checked here; they are handled by flag validation
// after merging.
func (c *Config) Validate() error {
	if c.JobDescription != "" && c.JobDescriptionURL != "" {
		return fmt.Errorf("config error: 'job_description' and 'job_description_url' are mutually exclusive")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.KeywordLimit < 0 {
		return fmt.Errorf("config error: 'keyword_limit' must be non-negative")
	}

	switch scoring.ReadabilityPolicy(c.ReadabilityPolicy) {
	case "", scoring.PolicyWordCount, scoring.PolicyFlesch:
	default:
		return fmt.Errorf("config error: unknown readability policy %q", c.ReadabilityPolicy)
	}

	if c.JobDescription != "" {
		if _, err := os.Stat(c.JobDescription); os.IsNotExist(err) {
			return fmt.Errorf("config error: job description file not found: %s", c.JobDescription)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.JobDescriptionURL == "" {
		result.JobDescriptionURL = defaults.JobDescriptionURL
	}
	if result.JobDescription == "" {
		result.JobDescription = defaults.JobDescription
	}
	if result.ReadabilityPolicy == "" {
		result.ReadabilityPolicy = defaults.ReadabilityPolicy
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.KeywordLimit == 0 {
		result.KeywordLimit = defaults.KeywordLimit
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
