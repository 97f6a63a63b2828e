package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReadabilityPolicy(t *testing.T) {
	assert.Equal(t, PolicyWordCount, ParseReadabilityPolicy(""))
	assert.Equal(t, PolicyWordCount, ParseReadabilityPolicy("wordcount"))
	assert.Equal(t, PolicyWordCount, ParseReadabilityPolicy("unknown"))
	assert.Equal(t, PolicyFlesch, ParseReadabilityPolicy("flesch"))
	assert.Equal(t, PolicyFlesch, ParseReadabilityPolicy(" Flesch "))
}

func TestWordCountPolicy_Empty(t *testing.T) {
	assert.Equal(t, 0.0, Readability("", PolicyWordCount))
}

func TestWordCountPolicy_Proportional(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("word ", 250))
	assert.InDelta(t, 50.0, Readability(text, PolicyWordCount), 0.001)
}

func TestWordCountPolicy_CapAt100(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("word ", 800))
	assert.Equal(t, 100.0, Readability(text, PolicyWordCount))
}

func TestFleschPolicy_Empty(t *testing.T) {
	assert.Equal(t, 0.0, Readability("", PolicyFlesch))
}

func TestFleschPolicy_SimpleTextScoresHigh(t *testing.T) {
	// Short words in short sentences read easily.
	score := Readability("The cat sat. The dog ran. It was fun.", PolicyFlesch)
	assert.Greater(t, score, 80.0)
	assert.LessOrEqual(t, score, 100.0)
}

func TestFleschPolicy_DenseTextScoresLower(t *testing.T) {
	simple := Readability("The cat sat. The dog ran.", PolicyFlesch)
	dense := Readability(
		"Sophisticated organizational transformation initiatives necessitate comprehensive interdepartmental communication",
		PolicyFlesch)
	assert.Less(t, dense, simple)
}

func TestFleschPolicy_ClampedRange(t *testing.T) {
	texts := []string{
		"a.",
		"incomprehensibility antidisestablishmentarianism",
		strings.Repeat("polysyllabically ", 50),
	}
	for _, text := range texts {
		score := Readability(text, PolicyFlesch)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
}

func TestCountSentences(t *testing.T) {
	assert.Equal(t, 1, countSentences("no terminator here"))
	assert.Equal(t, 2, countSentences("First. Second."))
	assert.Equal(t, 2, countSentences("First... Second!?"))
	assert.Equal(t, 1, countSentences(""))
}

func TestCountSyllables(t *testing.T) {
	assert.Equal(t, 1, countSyllables("cat"))
	assert.Equal(t, 2, countSyllables("kitten"))
	assert.Equal(t, 1, countSyllables("make")) // trailing silent e
	assert.Equal(t, 1, countSyllables("xyz")) // minimum of one
}
