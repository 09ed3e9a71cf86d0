package report

import (
	"fmt"
	"io"

	"genescan/internal/analysis"
	"genescan/internal/config"
)

func init() { Register(config.FormatText, WriteText) }

// WriteText prints the human-readable report.
func WriteText(w io.Writer, s analysis.Summary, o Options) error {
	if o.Header {
		if _, err := fmt.Fprintf(w, "starting search on %s\n", s.Source); err != nil {
			return err
		}
	}
	longest := s.LongestText()
	if s.Longest == nil {
		longest = "(none)"
	}
	if _, err := fmt.Fprintf(w, "Longest consecutive characters: %s\n", longest); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total number of %d-character or higher sequences: %d\n", s.Threshold, s.LongRuns); err != nil {
		return err
	}
	for _, r := range s.Runs {
		if _, err := fmt.Fprintf(w, "%d\t%d\t%c\t%d\n", r.Start, r.End(), r.Char, r.Len); err != nil {
			return err
		}
	}
	if s.Timed {
		if _, err := fmt.Fprintf(w, "total time %.6f\n", s.Elapsed.Seconds()); err != nil {
			return err
		}
	}
	return nil
}
