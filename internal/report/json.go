package report

import (
	"encoding/json"
	"io"

	"genescan-core/runs"
	"genescan/internal/analysis"
	"genescan/internal/config"
	"genescan/pkg/api"
)

func init() { Register(config.FormatJSON, WriteJSON) }

func toAPIRun(r runs.Run) api.RunV1 {
	return api.RunV1{Char: string(r.Char), Start: r.Start, Length: r.Len}
}

// ToAPIReport converts a Summary to the stable wire schema (v1).
func ToAPIReport(s analysis.Summary) api.ReportV1 {
	v := api.ReportV1{
		Source:     s.Source,
		SequenceID: s.ID,
		Length:     s.Length,
		Longest:    s.LongestText(),
		MinRun:     s.Threshold,
		LongRuns:   s.LongRuns,
	}
	if s.Longest != nil {
		r := toAPIRun(*s.Longest)
		v.LongestRun = &r
	}
	for _, r := range s.Runs {
		v.Runs = append(v.Runs, toAPIRun(r))
	}
	if s.Timed {
		v.ElapsedSec = s.Elapsed.Seconds()
	}
	return v
}

// WriteJSON writes the report as one pretty-indented JSON object.
func WriteJSON(w io.Writer, s analysis.Summary, _ Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToAPIReport(s))
}
