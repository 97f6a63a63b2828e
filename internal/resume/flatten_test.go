package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmorita/ats-analytics/internal/types"
)

func TestFlatten_Nil(t *testing.T) {
	assert.Equal(t, "", Flatten(nil))
}

func TestFlatten_String(t *testing.T) {
	assert.Equal(t, "hello", Flatten("hello"))
}

func TestFlatten_List(t *testing.T) {
	input := []any{"one", "two", "three"}
	assert.Equal(t, "one two three", Flatten(input))
}

func TestFlatten_ObjectKeysSorted(t *testing.T) {
	input := map[string]any{
		"b": "second",
		"a": "first",
	}
	assert.Equal(t, "a first b second", Flatten(input))
}

func TestFlatten_Nested(t *testing.T) {
	input := map[string]any{
		"skills": []any{"Go", "SQL"},
		"summary": map[string]any{
			"text": "engineer",
		},
	}
	assert.Equal(t, "skills Go SQL summary text engineer", Flatten(input))
}

func TestFlatten_SkipsNumbersAndBooleans(t *testing.T) {
	input := map[string]any{
		"years":  float64(5),
		"active": true,
		"name":   "test",
	}
	assert.Equal(t, "active name test years", Flatten(input))
}

func TestFlatten_Idempotent(t *testing.T) {
	input := map[string]any{
		"sections": []any{
			map[string]any{"type": "experience", "items": []any{"a", "b"}},
		},
	}
	first := Flatten(input)
	second := Flatten(input)
	assert.Equal(t, first, second)
}

func TestFlattenDocument_Empty(t *testing.T) {
	assert.Equal(t, "", FlattenDocument(types.ResumeDocument{}))
	assert.Equal(t, "", FlattenDocument(nil))
}
