/*
PURPOSE:
  Renders a model.ResultTable as a grouped horizontal bar chart.

REQUIREMENTS:
  User-specified:
  - One category slot per benchmark, first benchmark on top.
  - One bar per library inside each slot, bars share 0.75 of the slot.
  - Dashed gridlines along the time axis only, one legend entry per library.
  - Fixed pixel size and DPI (1024x600 @ 96 by default).
  - A library can be pinned to a palette slot across charts.

  Implementation-discovered:
  - plotter.BarChart widths are canvas lengths, not data units, so bars
    are drawn by a small custom plotter (bars.go).
  - vgimg needs the size in inches; pixels are width/dpi inches.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Uses: internal/model, gonum.org/v1/plot

ERROR HANDLING:
  - ErrShape when the table does not match its labels.
  - ErrNonFinite for NaN/Inf values (gonum tick search never ends on them).
  - ErrUnsupportedFormat for output extensions that are not raster images.
  - Rendering and I/O errors are returned unchanged.

USAGE:
  err := chart.Plot("bench_result.png", table, "clang 17", chart.DefaultOptions())

RELATED FILES:
  - internal/chart/bars.go
  - internal/chart/palette.go
*/

package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/daryltucker/benchplot/internal/model"
)

var (
	ErrShape             = errors.New("table shape does not match labels")
	ErrEmpty             = errors.New("nothing to plot")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrOptions           = errors.New("invalid chart options")
	ErrNonFinite         = errors.New("non-finite value")
)

// Options controls the chart geometry and colours.
type Options struct {
	Width       int // pixels
	Height      int // pixels
	DPI         int
	GroupHeight float64
	Palette     string
	Pinned      map[string]int
	ValueLabel  string
}

// DefaultOptions returns the standard 1024x600 chart settings.
func DefaultOptions() Options {
	return Options{
		Width:       1024,
		Height:      600,
		DPI:         96,
		GroupHeight: 0.75,
		Palette:     DefaultPalette,
		ValueLabel:  "elapsed time (ms)",
	}
}

func (o Options) validate() error {
	switch {
	case o.Width <= 0 || o.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrOptions, o.Width, o.Height)
	case o.DPI <= 0:
		return fmt.Errorf("%w: dpi %d", ErrOptions, o.DPI)
	case o.GroupHeight <= 0 || o.GroupHeight > 1:
		return fmt.Errorf("%w: group height %g outside (0, 1]", ErrOptions, o.GroupHeight)
	}
	return nil
}

// CheckShape verifies that t has one row per library, one column per
// benchmark and only finite values. Axis ticks cannot be laid out over a
// NaN or infinite range.
func CheckShape(t *model.ResultTable) error {
	if len(t.Values) != len(t.Libraries) {
		return fmt.Errorf("%w: %d rows for %d libraries", ErrShape, len(t.Values), len(t.Libraries))
	}
	for i, row := range t.Values {
		if len(row) != len(t.Benchmarks) {
			return fmt.Errorf("%w: library %q has %d values for %d benchmarks",
				ErrShape, t.Libraries[i], len(row), len(t.Benchmarks))
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: %s on %s is %v", ErrNonFinite, t.Libraries[i], t.Benchmarks[j], v)
			}
		}
	}
	if t.Empty() {
		return ErrEmpty
	}
	return nil
}

// New builds the plot for t without drawing it.
func New(t *model.ResultTable, title string, opts Options) (*plot.Plot, error) {
	if err := CheckShape(t); err != nil {
		return nil, err
	}
	pal, err := Palette(opts.Palette)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = opts.ValueLabel

	grid := plotter.NewGrid()
	grid.Horizontal.Color = nil
	grid.Vertical.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(grid)

	centers := Layout(len(t.Libraries), len(t.Benchmarks), opts.GroupHeight)
	thickness := Thickness(len(t.Libraries), opts.GroupHeight)
	colors := Colors(t.Libraries, opts.Pinned, pal)
	for i, lib := range t.Libraries {
		bars := &hbars{
			Values:    t.Values[i],
			Centers:   centers[i],
			Thickness: thickness,
			Color:     colors[i],
		}
		p.Add(bars)
		p.Legend.Add(lib, bars)
	}
	p.Legend.Top = true

	ticks := make([]plot.Tick, len(t.Benchmarks))
	for j, bench := range t.Benchmarks {
		ticks[j] = plot.Tick{Value: SlotCenter(j, len(t.Benchmarks)), Label: bench}
	}
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)
	p.Y.Min = -0.5
	p.Y.Max = float64(len(t.Benchmarks)) - 0.5

	// Leave headroom past the longest bar.
	p.X.Min = 0
	if p.X.Max > 0 {
		p.X.Max *= 1.05
	}
	return p, nil
}

// Render draws the chart for t into w using the given image format
// ("png", "jpg", "jpeg", "tif" or "tiff").
func Render(w io.Writer, format string, t *model.ResultTable, title string, opts Options) error {
	mk, err := canvasFor(format)
	if err != nil {
		return err
	}
	if err := opts.validate(); err != nil {
		return err
	}
	p, err := New(t, title, opts)
	if err != nil {
		return err
	}

	c := vgimg.NewWith(
		vgimg.UseWH(pixels(opts.Width, opts.DPI), pixels(opts.Height, opts.DPI)),
		vgimg.UseDPI(opts.DPI),
	)
	p.Draw(draw.New(c))

	if _, err := mk(c).WriteTo(w); err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}

// Plot renders t into the file at path, overwriting it. The format follows
// the file extension.
func Plot(path string, t *model.ResultTable, title string, opts Options) error {
	format := Format(path)
	if _, err := canvasFor(format); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := opts.validate(); err != nil {
		return err
	}
	if _, err := Palette(opts.Palette); err != nil {
		return err
	}
	if err := CheckShape(t); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Render(f, format, t, title, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Format returns the lower-case extension of path without the dot.
func Format(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

func canvasFor(format string) (func(*vgimg.Canvas) io.WriterTo, error) {
	switch format {
	case "png":
		return func(c *vgimg.Canvas) io.WriterTo { return vgimg.PngCanvas{Canvas: c} }, nil
	case "jpg", "jpeg":
		return func(c *vgimg.Canvas) io.WriterTo { return vgimg.JpegCanvas{Canvas: c} }, nil
	case "tif", "tiff":
		return func(c *vgimg.Canvas) io.WriterTo { return vgimg.TiffCanvas{Canvas: c} }, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

func pixels(n, dpi int) vg.Length {
	return vg.Length(n) / vg.Length(dpi) * vg.Inch
}
