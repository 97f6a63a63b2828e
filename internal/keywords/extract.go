// Package keywords derives the keyword set used for coverage scoring, either
// from an explicit job-description keyword list or by frequency analysis over
// a stop-word-filtered text corpus.
package keywords

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// DefaultLimit is the number of terms kept when deriving keywords from text.
const DefaultLimit = 25

// tokenPattern matches resume-style terms, retaining compound tokens such as
// "C++", "Node.js" and "CI-CD".
var tokenPattern = regexp.MustCompile(`[a-zA-Z][a-zA-Z+\-#.]{1,}`)

// stopWords is the fixed set of common English function words excluded from
// derived keywords.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "that": true,
	"this": true, "from": true, "are": true, "was": true, "were": true,
	"will": true, "have": true, "has": true, "had": true, "not": true,
	"but": true, "you": true, "your": true, "our": true, "their": true,
	"they": true, "them": true, "his": true, "her": true, "its": true,
	"who": true, "what": true, "when": true, "where": true, "which": true,
	"all": true, "any": true, "can": true, "into": true, "about": true,
}

// FromRecord extracts an explicit keyword list from a job-description record,
// checking the keywords and jd_keywords fields. Order is preserved and each
// entry is stringified and lowercased. Returns nil if neither field holds a
// non-empty list.
func FromRecord(record map[string]any) []string {
	if record == nil {
		return nil
	}
	for _, field := range []string{"keywords", "jd_keywords"} {
		list, ok := record[field].([]any)
		if !ok || len(list) == 0 {
			continue
		}
		out := make([]string, 0, len(list))
		for _, item := range list {
			s := strings.ToLower(strings.TrimSpace(stringify(item)))
			if s != "" {
				out = append(out, s)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

// Derive tokenizes the corpus and returns the top limit terms by descending
// frequency, ties broken by first occurrence. Stop words are excluded.
// A non-positive limit uses DefaultLimit.
func Derive(corpus string, limit int) []string {
	if limit <= 0 {
		limit = DefaultLimit
	}

	counts := make(map[string]int)
	var order []string

	for _, token := range tokenPattern.FindAllString(corpus, -1) {
		term := strings.ToLower(token)
		if stopWords[term] {
			continue
		}
		if _, seen := counts[term]; !seen {
			order = append(order, term)
		}
		counts[term]++
	}

	// order already holds terms by first occurrence; a stable sort on
	// frequency preserves that ordering for ties.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > limit {
		order = order[:limit]
	}
	return order
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}
