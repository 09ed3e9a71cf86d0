// Package analysis computes the run statistics reported for one sequence.
// It stays domain-only: no CLI, config or output knowledge.
package analysis

import (
	"errors"
	"fmt"
	"time"

	"genescan-core/runs"
	"go.uber.org/zap"
)

// Options controls Analyze.
type Options struct {
	MinRun   int  // threshold for a long run
	ListRuns bool // keep the qualifying runs in Summary.Runs
}

// Summary is the result for one sequence.
type Summary struct {
	Source string // input path as given
	ID     string // FASTA record id, if any
	Length int

	// Longest is nil when the sequence is empty.
	Longest *runs.Run

	Threshold int
	LongRuns  int
	Runs      []runs.Run

	Timed   bool
	Elapsed time.Duration
}

// LongestText returns the longest run as a string, or "" when there is none.
func (s Summary) LongestText() string {
	if s.Longest == nil {
		return ""
	}
	return s.Longest.String()
}

// Empty reports whether the analysed sequence had no characters.
func (s Summary) Empty() bool { return s.Length == 0 }

// Analyze runs both scans over seq. An empty sequence is not an error: it
// yields no longest run and zero long runs.
func Analyze(seq []byte, o Options, log *zap.Logger) (Summary, error) {
	if log == nil {
		log = zap.NewNop()
	}
	sum := Summary{Length: len(seq), Threshold: o.MinRun}

	n, err := runs.CountAtLeast(seq, o.MinRun)
	switch {
	case errors.Is(err, runs.ErrEmptySequence):
		log.Debug("empty sequence, skipping scans")
		return sum, nil
	case err != nil:
		return Summary{}, fmt.Errorf("count runs >= %d: %w", o.MinRun, err)
	}
	sum.LongRuns = n

	if r, ok := runs.Longest(seq); ok {
		sum.Longest = &r
	}
	if o.ListRuns {
		// threshold already validated by CountAtLeast
		sum.Runs, _ = runs.AtLeast(seq, o.MinRun)
	}

	log.Debug("sequence analysed",
		zap.Int("length", sum.Length),
		zap.Int("longest_len", sum.Longest.Len),
		zap.Int("longest_start", sum.Longest.Start),
		zap.Int("min_run", o.MinRun),
		zap.Int("long_runs", n),
	)
	return sum, nil
}
