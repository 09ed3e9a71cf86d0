package report

import (
	"fmt"
	"io"
	"sort"

	"genescan/internal/analysis"
)

// Options tune presentation.
type Options struct {
	Header bool // text: print the "starting search on" line
}

// WriterFunc serializes one summary.
type WriterFunc func(w io.Writer, s analysis.Summary, o Options) error

// writers maps format → handler. Filled from init() in the format files.
var writers = map[string]WriterFunc{}

// Register installs fn for format (last wins).
func Register(format string, fn WriterFunc) { writers[format] = fn }

// Formats lists the registered formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(writers))
	for f := range writers {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, s analysis.Summary, o Options) error {
	fn, ok := writers[format]
	if !ok {
		return fmt.Errorf("unknown format %q (no writer registered)", format)
	}
	return fn(w, s, o)
}
