/*
PURPOSE:
  Defines the 'table' subcommand.
  Exports the result table behind a chart as CSV or JSON Lines.

REQUIREMENTS:
  User-specified:
  - Same validation as plotting; no output on an invalid report.

  Implementation-discovered:
  - Output goes to stdout unless --output is given.
  - The output file is only created after the report has loaded.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.LoadJob(), internal/output.WriteTable()

ERROR HANDLING:
  - Returns error on load, unknown format, or write/close failure.

IMPLEMENTATION RULES:
  - Setup flags in init().

USAGE:
  benchplot table gcc.yml -f json -o gcc.jsonl

RELATED FILES:
  - internal/output/table.go
*/

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/daryltucker/benchplot/internal/config"
	"github.com/daryltucker/benchplot/internal/engine"
	"github.com/daryltucker/benchplot/internal/model"
	"github.com/daryltucker/benchplot/internal/output"
)

var (
	tableFormat string
	tableOutput string
)

var tableCmd = &cobra.Command{
	Use:   "table [report.yml]",
	Short: "Export the result table behind a chart",
	Long: `Validates a report and writes its result table, one row per benchmark,
as CSV (default) or JSON Lines.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		job := config.Job{Input: "bench_result.yml"}
		if len(args) == 1 {
			job.Input = args[0]
		}

		t, err := engine.LoadJob(job)
		if err != nil {
			return err
		}

		if tableOutput == "" {
			return writeTable(cmd.OutOrStdout(), t)
		}

		f, err := os.Create(tableOutput)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", tableOutput, err)
		}
		if err := writeTable(f, t); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	},
}

func writeTable(w io.Writer, t *model.ResultTable) error {
	rw, err := output.NewTableWriter(tableFormat, w, t.Libraries)
	if err != nil {
		return err
	}
	return output.WriteTable(rw, t)
}

func init() {
	rootCmd.AddCommand(tableCmd)

	tableCmd.Flags().StringVarP(&tableFormat, "format", "f", "csv", "Output format: csv or json")
	tableCmd.Flags().StringVarP(&tableOutput, "output", "o", "", "Write to file instead of stdout")
}
