/*
PURPOSE:
  Picks a row writer by format name and streams a whole result table into it.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli (table command)
  - Uses: internal/output/csv.go, internal/output/json.go

ERROR HANDLING:
  - ErrUnknownFormat for anything but csv, json or jsonl.

USAGE:
  err := output.WriteTable("csv", os.Stdout, table)
*/

package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/daryltucker/benchplot/internal/model"
)

// ErrUnknownFormat is returned by NewTableWriter for unsupported formats.
var ErrUnknownFormat = errors.New("unknown table format")

// RowWriter is implemented by CSVWriter and JSONWriter.
type RowWriter interface {
	Write(bench string, times []float64) error
	Close() error
}

// NewTableWriter returns the writer for format ("csv" or "json").
func NewTableWriter(format string, w io.Writer, libs []string) (RowWriter, error) {
	switch format {
	case "csv":
		return NewCSVWriter(w, libs)
	case "json", "jsonl":
		return NewJSONWriter(w, libs), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// WriteTable writes every benchmark of t in document order, then closes rw.
func WriteTable(rw RowWriter, t *model.ResultTable) error {
	for j, bench := range t.Benchmarks {
		if err := rw.Write(bench, t.Column(j)); err != nil {
			rw.Close()
			return err
		}
	}
	return rw.Close()
}
