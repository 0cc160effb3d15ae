/*
PURPOSE:
  Writes a result table as JSON Lines (NDJSON), one object per benchmark.

REQUIREMENTS:
  User-specified:
  - JSON output for easier parsing (jq and friends).

  Implementation-discovered:
  - JSON objects have no key order, so results are a list to keep the
    canonical library order.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli (table command)
  - Consumes: internal/model.ResultTable

ERROR HANDLING:
  - Returns error on encode failure.

IMPLEMENTATION RULES:
  - Use encoding/json.NewEncoder.

USAGE:
  w := output.NewJSONWriter(os.Stdout, table.Libraries)
  w.Write("Random", table.Column(0))
*/

package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// LibraryTime is one library's measurement inside a JSON row.
type LibraryTime struct {
	Library       string  `json:"library"`
	ElapsedTimeMS float64 `json:"elapsed_time_ms"`
}

// JSONRow is the object written for each benchmark.
type JSONRow struct {
	Benchmark string        `json:"benchmark"`
	Results   []LibraryTime `json:"results"`
}

// JSONWriter writes benchmark rows as JSON lines.
type JSONWriter struct {
	encoder *json.Encoder
	libs    []string
}

// NewJSONWriter creates a new JSONWriter for libs.
func NewJSONWriter(w io.Writer, libs []string) *JSONWriter {
	return &JSONWriter{
		encoder: json.NewEncoder(w),
		libs:    libs,
	}
}

// Write writes a single benchmark as a JSON line.
func (jw *JSONWriter) Write(bench string, times []float64) error {
	if len(times) != len(jw.libs) {
		return fmt.Errorf("benchmark %q: %d values for %d libraries", bench, len(times), len(jw.libs))
	}

	row := JSONRow{Benchmark: bench, Results: make([]LibraryTime, len(times))}
	for i, v := range times {
		row.Results[i] = LibraryTime{Library: jw.libs[i], ElapsedTimeMS: v}
	}
	return jw.encoder.Encode(row)
}

// Close is a no-op; every Write is already complete.
func (jw *JSONWriter) Close() error {
	return nil
}
