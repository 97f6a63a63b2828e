package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmorita/ats-analytics/internal/resume"
	"github.com/tmorita/ats-analytics/internal/types"
)

func TestSectionCompleteness_EmptyResume(t *testing.T) {
	r := resume.Normalize(types.ResumeDocument{})
	assert.Equal(t, 0.0, SectionCompleteness(r))
}

func TestSectionCompleteness_AllSlots(t *testing.T) {
	doc := types.ResumeDocument{
		"summary": "text",
		"skills":  []any{"Go"},
		"sections": []any{
			map[string]any{"type": "education"},
			map[string]any{"type": "experience"},
			map[string]any{"type": "achievements"},
			map[string]any{"type": "certifications"},
		},
	}
	r := resume.Normalize(doc)

	assert.Equal(t, 100.0, SectionCompleteness(r))
}

func TestSectionCompleteness_CombinedExperienceSlot(t *testing.T) {
	// All four experience-like types together fill a single slot.
	doc := types.ResumeDocument{
		"sections": []any{
			map[string]any{"type": "experience"},
			map[string]any{"type": "projects"},
			map[string]any{"type": "volunteer"},
			map[string]any{"type": "work"},
		},
	}
	r := resume.Normalize(doc)

	assert.InDelta(t, 100.0/6, SectionCompleteness(r), 0.001)
}

func TestSkillsCoverage_FourPointsPerSkill(t *testing.T) {
	r := resume.Normalize(types.ResumeDocument{"skills": []any{"Python", "SQL"}})
	assert.Equal(t, 8.0, SkillsCoverage(r))
}

func TestSkillsCoverage_CapAt100(t *testing.T) {
	skills := make([]any, 30)
	for i := range skills {
		skills[i] = strings.Repeat("x", i+1)
	}
	r := resume.Normalize(types.ResumeDocument{"skills": skills})

	assert.Equal(t, 100.0, SkillsCoverage(r))
}

func TestSkillsCoverage_Monotonic(t *testing.T) {
	var skills []any
	prev := 0.0
	for i := 0; i < 30; i++ {
		skills = append(skills, strings.Repeat("s", i+1))
		r := resume.Normalize(types.ResumeDocument{"skills": skills})
		score := SkillsCoverage(r)
		assert.GreaterOrEqual(t, score, prev)
		prev = score
	}
}

func TestExperienceDepth_PointValues(t *testing.T) {
	doc := types.ResumeDocument{
		"sections": []any{
			map[string]any{
				"type": "experience",
				"items": []any{
					map[string]any{"bullets": []any{"a", "b"}},
				},
			},
		},
	}
	r := resume.Normalize(doc)

	// 12 per role + 2 per bullet = 16.
	assert.Equal(t, 16.0, ExperienceDepth(r))
}

func TestExperienceDepth_AllCategories(t *testing.T) {
	doc := types.ResumeDocument{
		"experience": []any{map[string]any{"bullets": []any{"a"}}},
		"projects":   []any{map[string]any{"bullets": []any{"b"}}},
		"volunteer":  []any{map[string]any{}},
	}
	r := resume.Normalize(doc)

	// (12+2) + (10+2) + 8 = 34.
	assert.Equal(t, 34.0, ExperienceDepth(r))
}

func TestKeywordCoverage_EmptyList(t *testing.T) {
	assert.Equal(t, 0.0, KeywordCoverage("python sql docker", nil))
}

func TestKeywordCoverage_AllFound(t *testing.T) {
	assert.Equal(t, 100.0, KeywordCoverage("Python and SQL projects", []string{"python", "sql"}))
}

func TestKeywordCoverage_WholeWordOnly(t *testing.T) {
	// "java" must not match inside "javascript".
	assert.Equal(t, 0.0, KeywordCoverage("javascript developer", []string{"java"}))
}

func TestKeywordCoverage_PartialMatch(t *testing.T) {
	score := KeywordCoverage("built python services", []string{"python", "sql", "docker"})
	assert.InDelta(t, 100.0/3, score, 0.01)
}

func TestComposite_WeightsSumToOne(t *testing.T) {
	sum := 0.0
	for _, w := range Weights() {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestComposite_WeightedSum(t *testing.T) {
	b := types.Breakdown{
		Formatting:      50,
		Skills:          8,
		Experience:      16,
		Readability:     10,
		KeywordCoverage: 66.67,
	}
	expected := 0.20*50 + 0.25*8 + 0.25*16 + 0.15*10 + 0.15*66.67
	assert.InDelta(t, expected, Composite(b), 1e-9)
}

func TestScorer_SpecExample(t *testing.T) {
	doc := types.ResumeDocument{
		"summary": "Experienced engineer",
		"skills":  []any{"Python", "SQL"},
		"sections": []any{
			map[string]any{
				"type": "experience",
				"items": []any{
					map[string]any{"bullets": []any{"a", "b"}},
				},
			},
		},
	}
	kws := []string{"python", "sql", "docker"}

	breakdown, overall := Scorer{}.Score(doc, kws)

	assert.Equal(t, 8.0, breakdown.Skills)
	assert.Equal(t, 16.0, breakdown.Experience)
	assert.InDelta(t, 200.0/3, breakdown.KeywordCoverage, 0.01)
	assert.InDelta(t, 50.0, breakdown.Formatting, 0.01)
	assert.InDelta(t, Composite(breakdown), overall, 1e-9)
}

func TestScorer_Idempotent(t *testing.T) {
	doc := types.ResumeDocument{
		"summary": "engineer",
		"skills":  []any{"Go"},
	}
	kws := []string{"go"}

	b1, o1 := Scorer{}.Score(doc, kws)
	b2, o2 := Scorer{}.Score(doc, kws)

	assert.Equal(t, b1, b2)
	assert.Equal(t, o1, o2)
}

func TestScorer_GarbageDocumentInRange(t *testing.T) {
	docs := []types.ResumeDocument{
		nil,
		{},
		{"summary": nil, "skills": nil, "sections": nil},
		{"sections": []any{map[string]any{"type": 42}, "junk", nil}},
		{"skills": map[string]any{"deeply": []any{map[string]any{"nested": "garbage"}}}},
	}

	for _, doc := range docs {
		breakdown, overall := Scorer{}.Score(doc, []string{"go"})
		for _, v := range []float64{
			breakdown.Formatting, breakdown.Skills, breakdown.Experience,
			breakdown.Readability, breakdown.KeywordCoverage, overall,
		} {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 100.0)
		}
	}
}
