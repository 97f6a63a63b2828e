package analytics

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
)

// csvHeader is the fixed export header. Column order is part of the export
// contract and must not change.
var csvHeader = []string{"Version", "ATS", "Coverage", "Skills", "Experience", "Formatting", "Readability"}

// Table returns the report as an exportable table: the fixed header plus one
// row per version with scores rounded to integers.
func (r *Report) Table() [][]string {
	rows := make([][]string, 0, len(r.Versions)+1)
	rows = append(rows, csvHeader)
	for _, v := range r.Versions {
		rows = append(rows, []string{
			v.Name,
			roundScore(v.Overall),
			roundScore(v.Breakdown.KeywordCoverage),
			roundScore(v.Breakdown.Skills),
			roundScore(v.Breakdown.Experience),
			roundScore(v.Breakdown.Formatting),
			roundScore(v.Breakdown.Readability),
		})
	}
	return rows
}

// WriteCSV writes the export table as RFC 4180 CSV. Version names containing
// quotes or separators are quoted with doubled quotes by the encoder.
func (r *Report) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	return writer.WriteAll(r.Table())
}

func roundScore(v float64) string {
	return strconv.Itoa(int(math.Round(v)))
}
