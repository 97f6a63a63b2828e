package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmorita/ats-analytics/internal/config"
	"github.com/tmorita/ats-analytics/internal/jobdesc"
	"github.com/tmorita/ats-analytics/internal/keywords"
)

func TestResolveConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JOB_DESCRIPTION_URL", "")

	cfg, err := resolveConfig("")

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "wordcount", cfg.ReadabilityPolicy)
	assert.Equal(t, keywords.DefaultLimit, cfg.KeywordLimit)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestResolveConfig_FileOverridesDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/db")

	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"port": 9090, "readability_policy": "flesch"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := resolveConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "flesch", cfg.ReadabilityPolicy)
	// Env fills gaps the file left empty
	assert.Equal(t, "postgres://env/db", cfg.DatabaseURL)
}

func TestResolveConfig_InvalidFile(t *testing.T) {
	_, err := resolveConfig("/nonexistent/config.json")

	assert.Error(t, err)
}

func TestJobSource_File(t *testing.T) {
	src := jobSource(config.Config{JobDescription: "job.json"})

	require.IsType(t, &jobdesc.FileSource{}, src)
}

func TestJobSource_URL(t *testing.T) {
	src := jobSource(config.Config{JobDescriptionURL: "https://example.com/job"})

	require.IsType(t, &jobdesc.URLSource{}, src)
}

func TestJobSource_None(t *testing.T) {
	assert.Nil(t, jobSource(config.Config{}))
}

func TestLoadResumeFile_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	content := `{"summary": "engineer", "skills": ["Go"]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	doc, err := loadResumeFile(path)

	require.NoError(t, err)
	assert.Equal(t, "engineer", doc["summary"])
}

func TestLoadResumeFile_Missing(t *testing.T) {
	_, err := loadResumeFile("/nonexistent/resume.json")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read resume file")
}

func TestLoadResumeFile_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := loadResumeFile(path)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse resume JSON")
}
