// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"genescan-core/seqfile"
	"genescan/internal/analysis"
	"genescan/internal/report"
	"genescan/internal/runutil"
	"go.uber.org/zap"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitInput    = 2
	ExitOutput   = 3
	ExitCanceled = 130
)

type Options struct {
	SeqFile string

	MinRun   int
	ListRuns bool
	Timing   bool

	Format string
	Quiet  bool

	// Now overrides the wall clock used for --time.
	Now runutil.Clock
}

// Run loads the sequence, analyses it and writes the report to stdout.
// Errors go to stderr; the return value is the process exit code.
func Run(ctx context.Context, stdout, stderr io.Writer, o Options, log *zap.Logger) int {
	if log == nil {
		log = zap.NewNop()
	}
	outw := bufio.NewWriter(stdout)

	var (
		seq seqfile.Sequence
		sum analysis.Summary
	)
	elapsed, err := runutil.Measure(o.Now, func() error {
		var err error
		if seq, err = seqfile.Load(o.SeqFile); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		log.Debug("sequence loaded", zap.String("source", o.SeqFile), zap.String("id", seq.ID), zap.Int("length", len(seq.Seq)))
		sum, err = analysis.Analyze(seq.Seq, analysis.Options{MinRun: o.MinRun, ListRuns: o.ListRuns}, log)
		return err
	})
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return ExitCanceled
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitInput
	}
	sum.Source, sum.ID = o.SeqFile, seq.ID
	if sum.Empty() {
		log.Warn("sequence is empty; no runs to report", zap.String("source", o.SeqFile))
	}
	if o.Timing {
		sum.Timed, sum.Elapsed = true, elapsed
	}

	if err := report.Write(o.Format, outw, sum, report.Options{Header: !o.Quiet}); report.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitOutput
	}
	if err := outw.Flush(); report.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitOutput
	}
	if errors.Is(ctx.Err(), context.Canceled) {
		return ExitCanceled
	}
	return ExitOK
}
