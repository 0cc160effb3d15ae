/*
PURPOSE:
  Defines the 'libs' subcommand.
  Prints the canonical libraries and benchmarks of a report.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.LoadJob()

ERROR HANDLING:
  - Returns the loader error unchanged (inconsistent or malformed report).

USAGE:
  benchplot libs gcc.yml
*/

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daryltucker/benchplot/internal/config"
	"github.com/daryltucker/benchplot/internal/engine"
)

var libsCmd = &cobra.Command{
	Use:   "libs [report.yml]",
	Short: "List the libraries and benchmarks of a report",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		job := config.Job{Input: "bench_result.yml"}
		if len(args) == 1 {
			job.Input = args[0]
		}

		t, err := engine.LoadJob(job)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Libraries:")
		for _, lib := range t.Libraries {
			fmt.Fprintf(out, "- %s\n", lib)
		}
		fmt.Fprintln(out, "Benchmarks:")
		for _, bench := range t.Benchmarks {
			fmt.Fprintf(out, "- %s\n", bench)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(libsCmd)
}
