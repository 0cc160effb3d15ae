/*
PURPOSE:
  Entry point for benchplot.
  Initializes the CLI root command and executes it.

REQUIREMENTS:
  User-specified:
  - Must serve as the single binary entry point.
  - Running with no arguments charts bench_result.yml.
  - Any failure exits non-zero.

ARCHITECTURE INTEGRATION:
  - Calls: internal/cli.Execute()

ERROR HANDLING:
  - Explicit error check on Execute(); exit code 1 on failure.

IMPLEMENTATION RULES:
  - Critical: Keep main() minimal. All logic belongs in internal/ packages.

USAGE:
  go build -o benchplot ./cmd/benchplot
  ./benchplot [command] [flags]
*/

package main

import (
	"fmt"
	"os"

	"github.com/daryltucker/benchplot/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
