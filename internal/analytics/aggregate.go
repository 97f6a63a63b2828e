// Package analytics builds the dashboard report: it scores every stored
// resume version against the current job-description keyword set and
// computes fleet-level statistics, chart series and the CSV export table.
package analytics

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tmorita/ats-analytics/internal/jobdesc"
	"github.com/tmorita/ats-analytics/internal/keywords"
	"github.com/tmorita/ats-analytics/internal/resume"
	"github.com/tmorita/ats-analytics/internal/schemas"
	"github.com/tmorita/ats-analytics/internal/scoring"
	"github.com/tmorita/ats-analytics/internal/store"
	"github.com/tmorita/ats-analytics/internal/types"
)

// defaultConcurrency bounds the version-load fan-out.
const defaultConcurrency = 8

// Aggregator runs the scoring pipeline over every stored version. It holds
// all collaborators explicitly; nothing is cached between report builds.
type Aggregator struct {
	Store          store.VersionStore
	JobDescription jobdesc.Source
	Profile        store.ProfileSource
	Validator      *schemas.Validator
	Scorer         scoring.Scorer
	KeywordLimit   int
	Concurrency    int
	Logger         *zap.Logger
}

// Report is the full dashboard payload for one build.
type Report struct {
	Profile            *store.Profile       `json:"profile,omitempty"`
	Keywords           []string             `json:"keywords"`
	Versions           []types.VersionScore `json:"versions"`
	AvgScore           float64              `json:"avg_score"`
	BestScore          float64              `json:"best_score"`
	BestVersion        string               `json:"best_version"`
	AvgKeywordCoverage float64              `json:"avg_keyword_coverage"`
	DimensionAverages  types.Breakdown      `json:"dimension_averages"`
	Series             Series               `json:"series"`
}

// Series holds per-dimension score arrays aligned by version index,
// suitable for charting.
type Series struct {
	Labels          []string  `json:"labels"`
	Overall         []float64 `json:"overall"`
	Formatting      []float64 `json:"formatting"`
	Skills          []float64 `json:"skills"`
	Experience      []float64 `json:"experience"`
	Readability     []float64 `json:"readability"`
	KeywordCoverage []float64 `json:"keyword_coverage"`
}

// BuildReport scores every stored version and assembles the dashboard
// report. A version whose document cannot be loaded scores zero across the
// board; only an unreachable version list fails the build.
func (a *Aggregator) BuildReport(ctx context.Context) (*Report, error) {
	log := a.logger()

	versions, err := a.Store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list resume versions: %w", err)
	}

	docs := a.loadDocuments(ctx, versions)
	kws := a.resolveKeywords(ctx, docs)

	report := &Report{
		Keywords: kws,
		Versions: make([]types.VersionScore, 0, len(versions)),
		Series:   newSeries(len(versions)),
	}

	for i, v := range versions {
		breakdown, overall := a.Scorer.Score(docs[i], kws)
		score := types.VersionScore{
			ID:        v.ID,
			Name:      v.Name,
			CreatedAt: v.CreatedAt,
			Summary:   summaryOf(docs[i]),
			Breakdown: breakdown,
			Overall:   overall,
			Warnings:  a.Validator.Warnings(docs[i]),
		}
		report.Versions = append(report.Versions, score)
		report.Series.append(i, v.Name, score)
	}

	report.finishStats()

	if a.Profile != nil {
		profile, err := a.Profile.Get(ctx)
		if err != nil {
			log.Warn("profile source unavailable", zap.Error(err))
		} else {
			report.Profile = profile
		}
	}

	log.Info("report built",
		zap.Int("versions", len(report.Versions)),
		zap.Int("keywords", len(kws)),
		zap.Float64("avg_score", report.AvgScore),
	)
	return report, nil
}

// loadDocuments fetches every version's document concurrently. Results are
// re-associated by index, so completion order is irrelevant; a failed load
// degrades to an empty document.
func (a *Aggregator) loadDocuments(ctx context.Context, versions []store.Version) []types.ResumeDocument {
	log := a.logger()

	docs := make([]types.ResumeDocument, len(versions))
	g, gCtx := errgroup.WithContext(ctx)
	limit := a.Concurrency
	if limit <= 0 {
		limit = defaultConcurrency
	}
	g.SetLimit(limit)

	for i, v := range versions {
		g.Go(func() error {
			doc, err := a.Store.Load(gCtx, v.ID)
			if err != nil {
				log.Warn("failed to load version document",
					zap.String("version", v.ID.String()),
					zap.Error(err),
				)
				doc = types.ResumeDocument{}
			}
			if doc == nil {
				doc = types.ResumeDocument{}
			}
			docs[i] = doc
			return nil
		})
	}
	// Load goroutines never return errors; degraded versions score zero.
	_ = g.Wait()

	return docs
}

// resolveKeywords prefers the job description's explicit keyword list, then
// keywords derived from its text, and finally falls back to deriving from
// the corpus of all loaded versions.
func (a *Aggregator) resolveKeywords(ctx context.Context, docs []types.ResumeDocument) []string {
	log := a.logger()

	if a.JobDescription != nil {
		record, err := a.JobDescription.LoadCurrent(ctx)
		if err != nil {
			log.Warn("job description unavailable, deriving keywords from versions", zap.Error(err))
		} else {
			if kws := keywords.FromRecord(record); len(kws) > 0 {
				return kws
			}
			if kws := keywords.Derive(resume.Flatten(record), a.KeywordLimit); len(kws) > 0 {
				return kws
			}
		}
	}

	var sb strings.Builder
	for _, doc := range docs {
		sb.WriteString(resume.FlattenDocument(doc))
		sb.WriteString(" ")
	}
	return keywords.Derive(sb.String(), a.KeywordLimit)
}

// finishStats computes the fleet-level aggregates from the scored versions.
func (r *Report) finishStats() {
	if len(r.Versions) == 0 {
		return
	}

	var sumOverall, sumCoverage float64
	var sums types.Breakdown
	best := r.Versions[0]

	for _, v := range r.Versions {
		sumOverall += v.Overall
		sumCoverage += v.Breakdown.KeywordCoverage
		sums.Formatting += v.Breakdown.Formatting
		sums.Skills += v.Breakdown.Skills
		sums.Experience += v.Breakdown.Experience
		sums.Readability += v.Breakdown.Readability
		sums.KeywordCoverage += v.Breakdown.KeywordCoverage
		// Strictly greater keeps the first occurrence on ties.
		if v.Overall > best.Overall {
			best = v
		}
	}

	n := float64(len(r.Versions))
	r.AvgScore = sumOverall / n
	r.AvgKeywordCoverage = sumCoverage / n
	r.BestScore = best.Overall
	r.BestVersion = best.Name
	r.DimensionAverages = types.Breakdown{
		Formatting:      sums.Formatting / n,
		Skills:          sums.Skills / n,
		Experience:      sums.Experience / n,
		Readability:     sums.Readability / n,
		KeywordCoverage: sums.KeywordCoverage / n,
	}
}

func newSeries(n int) Series {
	return Series{
		Labels:          make([]string, n),
		Overall:         make([]float64, n),
		Formatting:      make([]float64, n),
		Skills:          make([]float64, n),
		Experience:      make([]float64, n),
		Readability:     make([]float64, n),
		KeywordCoverage: make([]float64, n),
	}
}

func (s *Series) append(i int, name string, score types.VersionScore) {
	s.Labels[i] = name
	s.Overall[i] = score.Overall
	s.Formatting[i] = score.Breakdown.Formatting
	s.Skills[i] = score.Breakdown.Skills
	s.Experience[i] = score.Breakdown.Experience
	s.Readability[i] = score.Breakdown.Readability
	s.KeywordCoverage[i] = score.Breakdown.KeywordCoverage
}

// summaryOf pulls the display summary from a raw document.
func summaryOf(doc types.ResumeDocument) string {
	if doc == nil {
		return ""
	}
	if s, ok := doc["summary"].(string); ok {
		return strings.TrimSpace(s)
	}
	if s, ok := doc["Summary"].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func (a *Aggregator) logger() *zap.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return zap.NewNop()
}
