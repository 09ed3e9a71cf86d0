// internal/cli/options.go
package cli

import (
	"fmt"
	"strings"

	"genescan/internal/config"
	"genescan/internal/report"
	"github.com/spf13/pflag"
)

// Options is the fully resolved run configuration: defaults, then the
// config file, then the environment, then explicit flags.
type Options struct {
	SeqFile string

	MinRun   int
	Output   string // text|json
	ListRuns bool
	Timing   bool

	Quiet    bool
	LogLevel string
}

// flagValues are the raw flag targets; only flags the user set override
// the config.
type flagValues struct {
	configPath string
	minRun     int
	output     string
	listRuns   bool
	timing     bool
	quiet      bool
	verbose    bool
}

func register(fs *pflag.FlagSet, fv *flagValues) {
	d := config.Default()

	// Input
	fs.StringVarP(&fv.configPath, "config", "C", config.DefaultPath, "YAML config file")

	// Analysis
	fs.IntVarP(&fv.minRun, "min-run", "n", d.MinRun, "minimum length of a counted run")
	fs.BoolVar(&fv.listRuns, "runs", d.ListRuns, "list every run at or above --min-run")

	// Output
	fs.StringVarP(&fv.output, "output", "o", d.Output, "output: "+strings.Join(report.Formats(), " | "))
	fs.BoolVarP(&fv.timing, "time", "T", d.Timing, "report wall time of load + analysis (off unless set here or by timing: true)")

	// Misc
	fs.BoolVarP(&fv.quiet, "quiet", "q", false, "suppress the header line and warnings")
	fs.BoolVarP(&fv.verbose, "verbose", "V", false, "debug logging on stderr")
}

// Resolve merges config and flags for the sequence at path.
func Resolve(fs *pflag.FlagSet, fv flagValues, path string) (Options, error) {
	cfg, err := config.Load(fv.configPath, fs.Changed("config"))
	if err != nil {
		return Options{}, err
	}
	if fs.Changed("min-run") {
		cfg.MinRun = fv.minRun
	}
	if fs.Changed("output") {
		cfg.Output = fv.output
	}
	if fs.Changed("runs") {
		cfg.ListRuns = fv.listRuns
	}
	if fs.Changed("time") {
		cfg.Timing = fv.timing
	}
	if err := cfg.Validate(); err != nil {
		return Options{}, fmt.Errorf("invalid settings: %w", err)
	}

	o := Options{
		SeqFile:  path,
		MinRun:   cfg.MinRun,
		Output:   cfg.Output,
		ListRuns: cfg.ListRuns,
		Timing:   cfg.Timing,
		Quiet:    fv.quiet,
		LogLevel: cfg.Logging.Level,
	}
	switch {
	case fv.verbose:
		o.LogLevel = "debug"
	case fv.quiet:
		o.LogLevel = "error"
	}
	return o, nil
}
