// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"io"

	"genescan/internal/appcore"
	"genescan/internal/cli"
	"genescan/internal/logging"
)

// Name is the command name used in usage and version output.
const Name = "genescan"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		argv = []string{"--help"}
	}

	code := appcore.ExitOK
	cmd := cli.NewCommand(Name, func(ctx context.Context, o cli.Options) error {
		log, err := logging.New(o.LogLevel, stderr)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		code = appcore.Run(ctx, stdout, stderr, appcore.Options{
			SeqFile:  o.SeqFile,
			MinRun:   o.MinRun,
			ListRuns: o.ListRuns,
			Timing:   o.Timing,
			Format:   o.Output,
			Quiet:    o.Quiet,
		}, log)
		return nil
	})
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(parent); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		_, _ = fmt.Fprint(stderr, cmd.UsageString())
		return appcore.ExitInput
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
