// Package jobdesc loads the current job description from its external
// source. A job-description record is a free-form map; when it carries an
// explicit keyword list the extractor uses it, otherwise keywords are
// derived from the record's text.
package jobdesc

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tmorita/ats-analytics/internal/fetch"
)

// Source loads the current job-description record. A failing source is
// expected and handled by the caller via derived-keyword fallback; it never
// aborts a report build.
type Source interface {
	LoadCurrent(ctx context.Context) (map[string]any, error)
}

// URLSource fetches the job description from a remote endpoint. JSON
// responses are returned as-is; HTML and plain text are wrapped in a record
// with a single text field.
type URLSource struct {
	URL     string
	Fetcher *fetch.Fetcher
}

// LoadCurrent fetches and decodes the job description.
func (s *URLSource) LoadCurrent(ctx context.Context) (map[string]any, error) {
	f := s.Fetcher
	if f == nil {
		f = fetch.New()
	}

	result, err := f.Get(ctx, s.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load job description: %w", err)
	}

	if strings.Contains(result.ContentType, "json") {
		return decodeRecord([]byte(result.Body))
	}

	text := result.Body
	if strings.Contains(result.ContentType, "html") {
		if extracted, err := fetch.ExtractMainText(result.Body); err == nil {
			text = extracted
		}
	}
	return map[string]any{"text": strings.TrimSpace(text)}, nil
}

// FileSource reads the job description from a local file, for CLI runs.
// JSON files decode to a record; anything else becomes a text record.
type FileSource struct {
	Path string
}

// LoadCurrent reads and decodes the job-description file.
func (s *FileSource) LoadCurrent(_ context.Context) (map[string]any, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job description file: %w", err)
	}

	if record, err := decodeRecord(data); err == nil {
		return record, nil
	}
	return map[string]any{"text": strings.TrimSpace(string(data))}, nil
}

// Static is a fixed in-memory Source, mainly for tests.
type Static map[string]any

// LoadCurrent returns the fixed record.
func (s Static) LoadCurrent(_ context.Context) (map[string]any, error) {
	return s, nil
}

func decodeRecord(data []byte) (map[string]any, error) {
	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode job description: %w", err)
	}
	return record, nil
}
