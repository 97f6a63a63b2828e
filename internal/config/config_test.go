package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"database_url": "postgres://localhost/ats",
		"job_description_url": "https://example.com/job",
		"port": 8080,
		"readability_policy": "flesch",
		"keyword_limit": 30,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "postgres://localhost/ats", cfg.DatabaseURL)
	assert.Equal(t, "https://example.com/job", cfg.JobDescriptionURL)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "flesch", cfg.ReadabilityPolicy)
	assert.Equal(t, 30, cfg.KeywordLimit)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_MutuallyExclusive(t *testing.T) {
	cfg := &Config{
		JobDescription:    "job.json",
		JobDescriptionURL: "https://example.com/job",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := &Config{Port: 70000}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestValidate_NegativeKeywordLimit(t *testing.T) {
	cfg := &Config{KeywordLimit: -1}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "keyword_limit")
}

func TestValidate_UnknownReadabilityPolicy(t *testing.T) {
	cfg := &Config{ReadabilityPolicy: "gunning-fog"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "readability policy")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		DatabaseURL:       "postgres://localhost/ats",
		Port:              8080,
		ReadabilityPolicy: "wordcount",
		KeywordLimit:      25,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_MissingJobDescriptionFile(t *testing.T) {
	cfg := &Config{JobDescription: "/nonexistent/job.json"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "job description file not found")
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		DatabaseURL:       "postgres://localhost/ats",
		ReadabilityPolicy: "wordcount",
		Port:              8080,
		KeywordLimit:      25,
	}

	partial := Config{
		DatabaseURL: "postgres://custom/db",
		LogLevel:    "debug",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "postgres://custom/db", merged.DatabaseURL)
	assert.Equal(t, "debug", merged.LogLevel)

	// Default values should fill in empty fields
	assert.Equal(t, "wordcount", merged.ReadabilityPolicy)
	assert.Equal(t, 8080, merged.Port)
	assert.Equal(t, 25, merged.KeywordLimit)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		JobDescriptionURL: "https://example.com/job",
		Port:              9090,
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "https://example.com/job", merged.JobDescriptionURL)
	assert.Equal(t, 9090, merged.Port)
}
