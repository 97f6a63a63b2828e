package keywords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRecord_Keywords(t *testing.T) {
	record := map[string]any{
		"keywords": []any{"Python", "SQL", "Docker"},
	}

	got := FromRecord(record)

	assert.Equal(t, []string{"python", "sql", "docker"}, got)
}

func TestFromRecord_JDKeywordsFallback(t *testing.T) {
	record := map[string]any{
		"jd_keywords": []any{"Go", "Kubernetes"},
	}

	got := FromRecord(record)

	assert.Equal(t, []string{"go", "kubernetes"}, got)
}

func TestFromRecord_KeywordsFieldWins(t *testing.T) {
	record := map[string]any{
		"keywords":    []any{"first"},
		"jd_keywords": []any{"second"},
	}

	assert.Equal(t, []string{"first"}, FromRecord(record))
}

func TestFromRecord_NonStringEntriesStringified(t *testing.T) {
	record := map[string]any{
		"keywords": []any{"Go", float64(2024)},
	}

	assert.Equal(t, []string{"go", "2024"}, FromRecord(record))
}

func TestFromRecord_Absent(t *testing.T) {
	assert.Nil(t, FromRecord(nil))
	assert.Nil(t, FromRecord(map[string]any{}))
	assert.Nil(t, FromRecord(map[string]any{"keywords": "not a list"}))
	assert.Nil(t, FromRecord(map[string]any{"keywords": []any{}}))
}

func TestDerive_FrequencyOrder(t *testing.T) {
	corpus := "docker docker docker python python sql"

	got := Derive(corpus, 10)

	assert.Equal(t, []string{"docker", "python", "sql"}, got)
}

func TestDerive_TiesByFirstOccurrence(t *testing.T) {
	corpus := "alpha beta alpha beta gamma"

	got := Derive(corpus, 10)

	assert.Equal(t, []string{"alpha", "beta", "gamma"}, got)
}

func TestDerive_StopWordsExcluded(t *testing.T) {
	corpus := "the engineer built the system with the team"

	got := Derive(corpus, 10)

	assert.NotContains(t, got, "the")
	assert.NotContains(t, got, "with")
	assert.Contains(t, got, "engineer")
}

func TestDerive_CompoundTokens(t *testing.T) {
	corpus := "Experienced with C++ and Node.js development"

	got := Derive(corpus, 10)

	assert.Contains(t, got, "c++")
	assert.Contains(t, got, "node.js")
}

func TestDerive_SingleLettersIgnored(t *testing.T) {
	got := Derive("a b c golang", 10)

	assert.Equal(t, []string{"golang"}, got)
}

func TestDerive_LimitApplied(t *testing.T) {
	var sb strings.Builder
	words := []string{"one", "two", "three", "four", "five"}
	for _, w := range words {
		sb.WriteString(w + " ")
	}

	got := Derive(sb.String(), 3)

	assert.Len(t, got, 3)
	assert.Equal(t, []string{"one", "two", "three"}, got)
}

func TestDerive_EmptyCorpus(t *testing.T) {
	assert.Empty(t, Derive("", 10))
}

func TestDerive_DefaultLimit(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 40; i++ {
		sb.WriteString("term")
		sb.WriteByte(byte('a' + i%26))
		sb.WriteByte(byte('a' + i/26))
		sb.WriteString(" ")
	}

	got := Derive(sb.String(), 0)

	assert.Len(t, got, DefaultLimit)
}
