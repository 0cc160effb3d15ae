/*
PURPOSE:
  Defines the core data structures used throughout benchplot.
  These models represent benchmark measurements and the derived result table.

REQUIREMENTS:
  User-specified:
  - Record elapsed time (ms) per library per benchmark.
  - Keep benchmark and library order exactly as they appear in the report.

  Implementation-discovered:
  - The chart wants a library-major table (one row per library).
  - Export wants to walk the table benchmark-major, hence Column().

ARCHITECTURE INTEGRATION:
  - Used by: internal/report, internal/chart, internal/output, internal/engine
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Never mutate a table after the loader built it.

USAGE:
  t := &model.ResultTable{Libraries: libs, Benchmarks: benches, Values: vals}

RELATED FILES:
  - internal/report/report.go
  - internal/chart/chart.go

MAINTENANCE:
  - Update when adding new measured fields to capture.
*/

package model

// ProfileSuffix marks report keys that carry profiling metadata rather than
// a measurement.
const ProfileSuffix = "_profile"

// Measurement is the record a benchmark stores for one library.
// Fields other than ElapsedTimeMS are ignored.
type Measurement struct {
	ElapsedTimeMS float64 `yaml:"elapsed_time_ms" json:"elapsed_time_ms"`
}

// ResultTable is the rectangular view of a benchmark report.
// Values[i][j] is the elapsed time of Libraries[i] on Benchmarks[j].
type ResultTable struct {
	Libraries  []string    `json:"libraries"`
	Benchmarks []string    `json:"benchmarks"`
	Values     [][]float64 `json:"values"`
}

// Column returns the measurements of every library for benchmark j,
// in canonical library order.
func (t *ResultTable) Column(j int) []float64 {
	col := make([]float64, len(t.Libraries))
	for i := range t.Libraries {
		col[i] = t.Values[i][j]
	}
	return col
}

// Empty reports whether the table holds no measurements at all.
func (t *ResultTable) Empty() bool {
	return len(t.Libraries) == 0 || len(t.Benchmarks) == 0
}
