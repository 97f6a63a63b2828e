package types

import (
	"time"

	"github.com/google/uuid"
)

// Breakdown holds the five dimension scores, each independently in [0,100].
type Breakdown struct {
	Formatting      float64 `json:"formatting"`
	Skills          float64 `json:"skills"`
	Experience      float64 `json:"experience"`
	Readability     float64 `json:"readability"`
	KeywordCoverage float64 `json:"keyword_coverage"`
}

// VersionScore is the scored result for a single stored resume version.
// It is computed fresh on every report build and never persisted.
type VersionScore struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Summary   string    `json:"summary,omitempty"`
	Breakdown Breakdown `json:"breakdown"`
	Overall   float64   `json:"overall"`

	// Warnings lists non-fatal document issues (e.g. schema violations)
	// surfaced for display; they never affect scoring.
	Warnings []string `json:"warnings,omitempty"`
}
