/*
PURPOSE:
  Bar geometry for the grouped horizontal chart and the plotter that draws it.

REQUIREMENTS:
  User-specified:
  - n bars share groupHeight (0.75) of a unit slot, centred on the slot.
  - Bar i of a group sits below bar i-1.

  Implementation-discovered:
  - plotter.BarChart sizes bars in canvas units; hbars sizes them in data
    units so groups keep the slot fraction at any chart size.
  - Slot 0 is drawn at the top, so slot centres count down from n-1.

ARCHITECTURE INTEGRATION:
  - Called by: internal/chart/chart.go (New)
  - Implements: plot.Plotter, plot.DataRanger, plot.Thumbnailer

USAGE:
  centers := chart.Layout(len(libs), len(benches), 0.75)

RELATED FILES:
  - internal/chart/chart.go
*/

package chart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Offsets returns the offset of each bar centre from its slot centre, in
// slot units, for n bars sharing groupHeight. Positive offsets point down
// the chart, so bar 0 is the topmost one.
func Offsets(n int, groupHeight float64) []float64 {
	off := make([]float64, n)
	for i := range off {
		off[i] = (float64(i) - 0.5*float64(n-1)) * groupHeight / float64(n)
	}
	return off
}

// Thickness is the height of a single bar when n bars share groupHeight.
func Thickness(n int, groupHeight float64) float64 {
	if n == 0 {
		return 0
	}
	return groupHeight / float64(n)
}

// SlotCenter returns the y coordinate of benchmark j out of m. The first
// benchmark sits at the top of the axis.
func SlotCenter(j, m int) float64 {
	return float64(m - 1 - j)
}

// Layout returns the y centre of every bar: centers[i][j] belongs to
// library i in benchmark j.
func Layout(libs, benches int, groupHeight float64) [][]float64 {
	off := Offsets(libs, groupHeight)
	centers := make([][]float64, libs)
	for i := range centers {
		centers[i] = make([]float64, benches)
		for j := range centers[i] {
			centers[i][j] = SlotCenter(j, benches) - off[i]
		}
	}
	return centers
}

// hbars draws one library's bars across every benchmark slot. Bar thickness
// is in data units so groups never overlap regardless of canvas size.
type hbars struct {
	Values    []float64
	Centers   []float64
	Thickness float64
	Color     color.Color
}

var (
	_ plot.Plotter     = (*hbars)(nil)
	_ plot.DataRanger  = (*hbars)(nil)
	_ plot.Thumbnailer = (*hbars)(nil)
)

func (b *hbars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	half := b.Thickness / 2
	for j, v := range b.Values {
		x0, x1 := math.Min(0, v), math.Max(0, v)
		y0, y1 := b.Centers[j]-half, b.Centers[j]+half
		pts := []vg.Point{
			{X: trX(x0), Y: trY(y0)},
			{X: trX(x1), Y: trY(y0)},
			{X: trX(x1), Y: trY(y1)},
			{X: trX(x0), Y: trY(y1)},
		}
		c.FillPolygon(b.Color, c.ClipPolygonXY(pts))
	}
}

func (b *hbars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = 0, 0
	ymin, ymax = math.Inf(1), math.Inf(-1)
	half := b.Thickness / 2
	for j, v := range b.Values {
		xmin = math.Min(xmin, v)
		xmax = math.Max(xmax, v)
		ymin = math.Min(ymin, b.Centers[j]-half)
		ymax = math.Max(ymax, b.Centers[j]+half)
	}
	return xmin, xmax, ymin, ymax
}

// Thumbnail fills the legend swatch with the bar colour.
func (b *hbars) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(b.Color, c.ClipPolygonY(pts))
}
