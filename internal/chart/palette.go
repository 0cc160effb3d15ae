/*
PURPOSE:
  Colour schemes and library-to-colour assignment.

REQUIREMENTS:
  User-specified:
  - tableau-colorblind10 by default.
  - A pinned library keeps its palette slot in every chart.

  Implementation-discovered:
  - Pinned slots stay reserved even when the library is absent, otherwise
    the remaining libraries would shift between charts.
  - Slot numbers wrap modulo the palette size.

ERROR HANDLING:
  - Unknown scheme names are returned as errors from Palette.

RELATED FILES:
  - internal/chart/chart.go
  - internal/config/config.go (pinned_colors)
*/

package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/palette/brewer"
)

// DefaultPalette is the palette used when none is configured.
const DefaultPalette = "tableau-colorblind10"

// tableauColorblind10 is the Tableau colour-blind safe scheme.
var tableauColorblind10 = []color.Color{
	color.RGBA{R: 0x00, G: 0x6b, B: 0xa4, A: 0xff},
	color.RGBA{R: 0xff, G: 0x80, B: 0x0e, A: 0xff},
	color.RGBA{R: 0xab, G: 0xab, B: 0xab, A: 0xff},
	color.RGBA{R: 0x59, G: 0x59, B: 0x59, A: 0xff},
	color.RGBA{R: 0x5f, G: 0x9e, B: 0xd1, A: 0xff},
	color.RGBA{R: 0xc8, G: 0x52, B: 0x00, A: 0xff},
	color.RGBA{R: 0x89, G: 0x89, B: 0x89, A: 0xff},
	color.RGBA{R: 0xa2, G: 0xc8, B: 0xec, A: 0xff},
	color.RGBA{R: 0xff, G: 0xbc, B: 0x79, A: 0xff},
	color.RGBA{R: 0xcf, G: 0xcf, B: 0xcf, A: 0xff},
}

// Palette returns the colours of the named scheme. Besides the default,
// any qualitative ColorBrewer scheme (Set1, Paired, Dark2, ...) is accepted
// and returned in its largest variant.
func Palette(name string) ([]color.Color, error) {
	if name == "" || name == DefaultPalette {
		return tableauColorblind10, nil
	}

	var lastErr error
	// Qualitative brewer schemes top out at 12 colours and start at 3.
	for n := 12; n >= 3; n-- {
		p, err := brewer.GetPalette(brewer.TypeQualitative, name, n)
		if err == nil {
			return p.Colors(), nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("unknown palette %q: %w", name, lastErr)
}

// Slots assigns a palette index to every library. Libraries named in pinned
// always get their reserved slot. The rest take sequential slots in library
// order, skipping every reserved slot, and wrap around the palette.
func Slots(libs []string, pinned map[string]int, size int) []int {
	if size <= 0 {
		return make([]int, len(libs))
	}
	reserved := make(map[int]bool, len(pinned))
	for _, slot := range pinned {
		reserved[mod(slot, size)] = true
	}

	slots := make([]int, len(libs))
	next := 0
	for i, lib := range libs {
		if slot, ok := pinned[lib]; ok {
			slots[i] = mod(slot, size)
			continue
		}
		// Give up skipping once every slot is reserved.
		for tries := 0; tries < size && reserved[mod(next, size)]; tries++ {
			next++
		}
		slots[i] = mod(next, size)
		next++
	}
	return slots
}

// Colors resolves Slots against a concrete palette.
func Colors(libs []string, pinned map[string]int, pal []color.Color) []color.Color {
	out := make([]color.Color, len(libs))
	for i, slot := range Slots(libs, pinned, len(pal)) {
		out[i] = pal[slot]
	}
	return out
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
