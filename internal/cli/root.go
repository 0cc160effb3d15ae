/*
PURPOSE:
  Defines the root Cobra command for the benchplot CLI.
  Running it with no arguments charts every configured report.

REQUIREMENTS:
  User-specified:
  - `benchplot` with no arguments reads bench_result.yml and writes
    bench_result.png.
  - Support global flags like --config.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - Errors are printed once, by main.go.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/benchplot/main.go
  - Calls: internal/engine.Run(), child commands (plot, table, libs)

ERROR HANDLING:
  - Returns error to main.go for exit code handling.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.

USAGE:
  Called by main.go.

RELATED FILES:
  - cmd/benchplot/main.go
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/benchplot/internal/config"
	"github.com/daryltucker/benchplot/internal/engine"
	"github.com/daryltucker/benchplot/internal/output"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile string
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "benchplot",
		Short: "Chart benchmark results as grouped horizontal bars",
		Long: `Reads benchmark reports (YAML, benchmark -> library -> elapsed_time_ms)
and renders one grouped horizontal bar chart per report.

With no arguments every job of the config file is run; without a config file
that is bench_result.yml -> bench_result.png.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			return engine.Run(cfg)
		},
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./benchplot.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
