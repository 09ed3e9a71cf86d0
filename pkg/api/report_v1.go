// Package api holds the stable JSON wire schema.
package api

// RunV1 is one maximal run.
type RunV1 struct {
	Char   string `json:"char"`
	Start  int    `json:"start"`
	Length int    `json:"length"`
}

// ReportV1 is the stable JSON schema for one analysed sequence.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	Source     string  `json:"source"`
	SequenceID string  `json:"sequence_id,omitempty"`
	Length     int     `json:"length"`
	LongestRun *RunV1  `json:"longest_run"` // null for an empty sequence
	Longest    string  `json:"longest"`
	MinRun     int     `json:"min_run"`
	LongRuns   int     `json:"long_runs"`
	Runs       []RunV1 `json:"runs,omitempty"`
	ElapsedSec float64 `json:"elapsed_sec,omitempty"`
}
