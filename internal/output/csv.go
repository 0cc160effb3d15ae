/*
PURPOSE:
  Writes a result table to CSV, one row per benchmark.

REQUIREMENTS:
  User-specified:
  - Export the numbers behind a chart for spreadsheets.

  Implementation-discovered:
  - The header is "benchmark" followed by the libraries in canonical order.
  - Values use the shortest representation that round-trips ('g', -1).

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli (table command)
  - Consumes: internal/model.ResultTable

ERROR HANDLING:
  - Returns error on header or row write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write.

USAGE:
  w, err := output.NewCSVWriter(os.Stdout, table.Libraries)
  w.Write("Random", table.Column(0))

RELATED FILES:
  - internal/model/types.go
*/

package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// CSVWriter writes benchmark rows as CSV.
type CSVWriter struct {
	writer *csv.Writer
	width  int
}

// NewCSVWriter writes the header for libs and returns the writer.
func NewCSVWriter(w io.Writer, libs []string) (*CSVWriter, error) {
	cw := csv.NewWriter(w)

	header := append([]string{"benchmark"}, libs...)
	if err := cw.Write(header); err != nil {
		return nil, err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}

	return &CSVWriter{writer: cw, width: len(libs)}, nil
}

// Write writes one benchmark with its times in canonical library order.
func (cw *CSVWriter) Write(bench string, times []float64) error {
	if len(times) != cw.width {
		return fmt.Errorf("benchmark %q: %d values for %d libraries", bench, len(times), cw.width)
	}

	record := make([]string, 0, len(times)+1)
	record = append(record, bench)
	for _, v := range times {
		record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
	}

	if err := cw.writer.Write(record); err != nil {
		return err
	}
	cw.writer.Flush()
	return cw.writer.Error()
}

// Close flushes pending output. The underlying writer is left open.
func (cw *CSVWriter) Close() error {
	cw.writer.Flush()
	return cw.writer.Error()
}
