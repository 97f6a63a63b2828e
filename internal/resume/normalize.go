package resume

import (
	"strings"

	"github.com/tmorita/ats-analytics/internal/types"
)

// skillsetLists are the sub-list keys recognized inside a "skillsets" section.
var skillsetLists = []string{"languages", "soft", "concepts", "tools", "platforms"}

// bulletKeys are the keys an entry may use for its bullet list.
var bulletKeys = []string{"bullets", "points", "highlights"}

// Normalize maps a raw document onto the canonical Resume. All knowledge of
// legacy field aliases (skills/Skills, experience/work/Work, typed sections)
// is isolated here; scorers only ever see the canonical form.
//
// Normalize is total: any missing or malformed field yields the corresponding
// empty canonical field, never an error.
func Normalize(doc types.ResumeDocument) *types.Resume {
	r := &types.Resume{
		Found: make(map[string]bool),
		Raw:   doc,
	}
	if doc == nil {
		return r
	}

	r.Summary = strings.TrimSpace(firstString(doc, "summary", "Summary"))
	if r.Summary != "" {
		r.Found["summary"] = true
	}

	skills := topLevelSkills(doc)

	if sections, ok := doc["sections"].([]any); ok {
		for _, raw := range sections {
			section, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			typ := strings.ToLower(strings.TrimSpace(asString(section["type"])))
			if typ == "" {
				continue
			}
			r.Found[typ] = true

			switch typ {
			case "experience", "work":
				r.Experience = append(r.Experience, entries(section["items"])...)
			case "projects":
				r.Projects = append(r.Projects, entries(section["items"])...)
			case "volunteer":
				r.Volunteer = append(r.Volunteer, entries(section["items"])...)
			case "skillsets":
				skills = append(skills, skillsetSkills(section)...)
			case "skills":
				skills = append(skills, skillItems(section["items"])...)
			}
		}
	}

	// Legacy top-level aliases for experience-like categories.
	for _, key := range []string{"experience", "work", "Work"} {
		r.Experience = append(r.Experience, entries(doc[key])...)
	}
	r.Projects = append(r.Projects, entries(doc["projects"])...)
	r.Volunteer = append(r.Volunteer, entries(doc["volunteer"])...)

	r.Skills = dedupe(skills)
	if len(r.Skills) > 0 {
		r.Found["skills"] = true
	}

	return r
}

// topLevelSkills reads the skills/Skills field, which may be a list of
// strings or a single comma-separated string.
func topLevelSkills(doc types.ResumeDocument) []string {
	for _, key := range []string{"skills", "Skills"} {
		switch v := doc[key].(type) {
		case string:
			return splitComma(v)
		case []any:
			var out []string
			for _, item := range v {
				out = append(out, skillName(item)...)
			}
			if len(out) > 0 {
				return out
			}
		}
	}
	return nil
}

// skillsetSkills collects the recognized sub-lists from a skillsets section,
// looking both at the section itself and at a nested items object.
func skillsetSkills(section map[string]any) []string {
	var out []string
	out = append(out, skillsetListValues(section)...)
	if items, ok := section["items"].(map[string]any); ok {
		out = append(out, skillsetListValues(items)...)
	}
	return out
}

func skillsetListValues(m map[string]any) []string {
	var out []string
	for _, key := range skillsetLists {
		if list, ok := m[key].([]any); ok {
			for _, item := range list {
				out = append(out, skillName(item)...)
			}
		}
	}
	return out
}

// skillItems reads a skills section's items list, whose elements are either
// plain strings or {name: ...} objects.
func skillItems(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range list {
		out = append(out, skillName(item)...)
	}
	return out
}

// skillName extracts skill name(s) from a single list element.
func skillName(item any) []string {
	switch v := item.(type) {
	case string:
		return splitComma(v)
	case map[string]any:
		if name := strings.TrimSpace(asString(v["name"])); name != "" {
			return []string{name}
		}
	}
	return nil
}

// entries converts a raw items list into role entries, tolerating any shape.
func entries(v any) []types.Entry {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []types.Entry
	for _, raw := range list {
		item, ok := raw.(map[string]any)
		if !ok {
			// A bare string still counts as one role with no bullets.
			if s, isStr := raw.(string); isStr && strings.TrimSpace(s) != "" {
				out = append(out, types.Entry{Title: s})
			}
			continue
		}
		entry := types.Entry{
			Title: firstString(item, "title", "role", "name", "company"),
		}
		for _, key := range bulletKeys {
			if bullets, ok := item[key].([]any); ok {
				for _, b := range bullets {
					if s := strings.TrimSpace(asString(b)); s != "" {
						entry.Bullets = append(entry.Bullets, s)
					}
				}
				break
			}
		}
		out = append(out, entry)
	}
	return out
}

// dedupe trims entries, drops empties, and deduplicates case-sensitively
// while preserving first-occurrence order.
func dedupe(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	var out []string
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func splitComma(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func firstString(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := asString(m[key]); s != "" {
			return s
		}
	}
	return ""
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
