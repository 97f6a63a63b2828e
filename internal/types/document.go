// Package types provides type definitions for structured data used throughout the ats-analytics system.
package types

// ResumeDocument is a raw, semi-structured resume as stored by the version
// store. No schema is enforced: callers must tolerate missing or malformed
// fields and degrade to empty values rather than failing.
type ResumeDocument map[string]any

// Resume is the canonical form of a ResumeDocument produced by
// resume.Normalize. All legacy field aliases are resolved before scoring so
// that scorers never touch the raw document shape.
type Resume struct {
	// Summary is the professional summary text, empty if absent.
	Summary string

	// Skills is the deduplicated, trimmed list of skill names collected
	// from the top-level skills field and all skill-bearing sections.
	Skills []string

	// Found holds the lowercased section identifiers present in the
	// document, used for section-completeness scoring.
	Found map[string]bool

	// Experience, Projects and Volunteer hold the role entries for each
	// experience-like category, merged from typed sections and legacy
	// top-level aliases.
	Experience []Entry
	Projects   []Entry
	Volunteer  []Entry

	// Raw is the original document, retained for text flattening.
	Raw ResumeDocument
}

// Entry is a single role-like record (a job, project or volunteer position).
type Entry struct {
	Title   string
	Bullets []string
}

// BulletCount returns the total number of bullets across the given entries.
func BulletCount(entries []Entry) int {
	total := 0
	for _, e := range entries {
		total += len(e.Bullets)
	}
	return total
}
