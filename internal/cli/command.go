package cli

import (
	"context"

	"genescan/internal/version"
	"github.com/spf13/cobra"
)

// NewCommand builds the root command. run receives the resolved options;
// parse, config and validation failures are returned by Execute.
func NewCommand(name string, run func(context.Context, Options) error) *cobra.Command {
	var fv flagValues
	cmd := &cobra.Command{
		Use:   name + " [flags] <sequence-file|->",
		Short: "Homopolymer run statistics for one sequence",
		Long: name + ` reads one sequence (plain text or a single FASTA record,
optionally gzipped, '-' for STDIN) and reports:

  - the longest run of one repeated character
  - the number of maximal runs at least --min-run long (default 5)`,
		Example: `  ` + name + ` ABO.gene
  ` + name + ` --output json --time chr9.fa.gz
  zcat chr9.fa.gz | ` + name + ` -n 10 --runs -`,
		Args:          cobra.ExactArgs(1),
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := Resolve(cmd.Flags(), fv, args[0])
			if err != nil {
				return err
			}
			return run(cmd.Context(), o)
		},
	}
	cmd.SetVersionTemplate(name + " version {{.Version}}\n")
	register(cmd.Flags(), &fv)
	return cmd
}
