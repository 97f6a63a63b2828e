// Package scoring implements the deterministic ATS scoring pipeline: five
// dimension scorers over a canonical resume, combined into a weighted
// composite score. Every score is clamped to [0,100] and absence of data
// yields 0, never an error.
package scoring

import (
	"regexp"
	"strings"

	"github.com/tmorita/ats-analytics/internal/resume"
	"github.com/tmorita/ats-analytics/internal/types"
)

// Composite weights for the five dimension scores. They must sum to 1.0.
const (
	formattingWeight  = 0.20
	skillsWeight      = 0.25
	experienceWeight  = 0.25
	readabilityWeight = 0.15
	coverageWeight    = 0.15
)

// completenessSlots is the number of weighted section slots. The
// experience-like types (experience, projects, volunteer, work) share a
// single combined slot.
const completenessSlots = 6

// Experience depth point values per role and per bullet, by category.
const (
	experienceRolePoints = 12
	projectRolePoints    = 10
	volunteerRolePoints  = 8
	bulletPoints         = 2
)

// skillPointValue is the score contribution of each unique skill.
const skillPointValue = 4

// Scorer computes dimension and composite scores for resume documents.
// The zero value uses the default readability policy.
type Scorer struct {
	Policy ReadabilityPolicy
}

// Score normalizes and scores a raw document against the given keyword set,
// returning the per-dimension breakdown and the composite overall score.
func (s Scorer) Score(doc types.ResumeDocument, kws []string) (types.Breakdown, float64) {
	r := resume.Normalize(doc)
	text := resume.FlattenDocument(doc)

	breakdown := types.Breakdown{
		Formatting:      SectionCompleteness(r),
		Skills:          SkillsCoverage(r),
		Experience:      ExperienceDepth(r),
		Readability:     Readability(text, s.Policy),
		KeywordCoverage: KeywordCoverage(text, kws),
	}
	return breakdown, Composite(breakdown)
}

// SectionCompleteness scores how many of the six weighted section slots the
// resume fills. Experience, projects, volunteer and work together fill one
// combined slot rather than four.
func SectionCompleteness(r *types.Resume) float64 {
	hits := 0
	if r.Found["summary"] {
		hits++
	}
	if r.Found["education"] {
		hits++
	}
	if r.Found["skills"] {
		hits++
	}
	if r.Found["experience"] || r.Found["projects"] || r.Found["volunteer"] || r.Found["work"] {
		hits++
	}
	if r.Found["achievements"] {
		hits++
	}
	if r.Found["certifications"] {
		hits++
	}
	return clamp(float64(hits) / completenessSlots * 100)
}

// SkillsCoverage scores the number of unique skills, 4 points each, capped
// at 100.
func SkillsCoverage(r *types.Resume) float64 {
	return clamp(float64(len(r.Skills) * skillPointValue))
}

// ExperienceDepth scores role and bullet counts across the three
// experience-like categories.
func ExperienceDepth(r *types.Resume) float64 {
	points := experienceRolePoints*len(r.Experience) + bulletPoints*types.BulletCount(r.Experience) +
		projectRolePoints*len(r.Projects) + bulletPoints*types.BulletCount(r.Projects) +
		volunteerRolePoints*len(r.Volunteer) + bulletPoints*types.BulletCount(r.Volunteer)
	return clamp(float64(points))
}

// KeywordCoverage scores the fraction of keywords found as case-insensitive
// whole words in the flattened resume text. An empty keyword list scores 0.
func KeywordCoverage(text string, kws []string) float64 {
	if len(kws) == 0 {
		return 0
	}
	matched := 0
	for _, kw := range kws {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
		if err != nil {
			continue
		}
		if re.MatchString(text) {
			matched++
		}
	}
	return clamp(float64(matched) / float64(len(kws)) * 100)
}

// Composite combines the dimension scores into the overall ATS score using
// the fixed weights. Inputs are already clamped, so the result is in [0,100].
func Composite(b types.Breakdown) float64 {
	return formattingWeight*b.Formatting +
		skillsWeight*b.Skills +
		experienceWeight*b.Experience +
		readabilityWeight*b.Readability +
		coverageWeight*b.KeywordCoverage
}

// Weights returns the composite weight per dimension, primarily for
// display and sanity checks.
func Weights() map[string]float64 {
	return map[string]float64{
		"formatting":       formattingWeight,
		"skills":           skillsWeight,
		"experience":       experienceWeight,
		"readability":      readabilityWeight,
		"keyword_coverage": coverageWeight,
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
