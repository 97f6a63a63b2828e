// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/tmorita/ats-analytics/internal/analytics"
	"github.com/tmorita/ats-analytics/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScore outputs a single version's breakdown and composite score.
func (p *Printer) PrintScore(name string, breakdown types.Breakdown, overall float64) {
	var sb strings.Builder

	if name != "" {
		sb.WriteString(fmt.Sprintf("Version:      %s\n\n", name))
	}
	sb.WriteString(fmt.Sprintf("ATS Score:    %.1f\n\n", overall))
	sb.WriteString(fmt.Sprintf("Formatting:   %.1f\n", breakdown.Formatting))
	sb.WriteString(fmt.Sprintf("Skills:       %.1f\n", breakdown.Skills))
	sb.WriteString(fmt.Sprintf("Experience:   %.1f\n", breakdown.Experience))
	sb.WriteString(fmt.Sprintf("Readability:  %.1f\n", breakdown.Readability))
	sb.WriteString(fmt.Sprintf("Coverage:     %.1f", breakdown.KeywordCoverage))

	p.printBox("ATS SCORE BREAKDOWN", sb.String())
}

// PrintKeywords outputs the keyword set scoring runs against.
func (p *Printer) PrintKeywords(keywords []string) {
	if len(keywords) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total keywords: %d\n\n", len(keywords)))

	count := min(len(keywords), maxItemsToShow*2)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", keywords[i]))
	}
	if len(keywords) > count {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(keywords)-count))
	}

	p.printBox("TARGET KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReport outputs the fleet-level summary of a full report.
func (p *Printer) PrintReport(report *analytics.Report) {
	if report == nil || len(report.Versions) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Versions scored:  %d\n", len(report.Versions)))
	sb.WriteString(fmt.Sprintf("Average ATS:      %.1f\n", report.AvgScore))
	sb.WriteString(fmt.Sprintf("Best version:     %s (%.1f)\n", report.BestVersion, report.BestScore))
	sb.WriteString(fmt.Sprintf("Avg coverage:     %.1f\n\n", report.AvgKeywordCoverage))

	count := min(len(report.Versions), maxItemsToShow)
	for i := 0; i < count; i++ {
		v := report.Versions[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, v.Name))
		sb.WriteString(fmt.Sprintf("    ATS: %.1f  Coverage: %.1f\n", v.Overall, v.Breakdown.KeywordCoverage))
	}
	if len(report.Versions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more versions", len(report.Versions)-maxItemsToShow))
	}

	p.printBox("RESUME FLEET SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWarnings outputs schema warnings for a scored document.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO SCHEMA WARNINGS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d warnings:\n\n", len(warnings)))

	for i, w := range warnings {
		if len(w) > 50 {
			w = w[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s", w))
		if i < len(warnings)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SCHEMA WARNINGS", sb.String())
}
