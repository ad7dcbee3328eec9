package core

import (
	"fmt"
	"math"
)

// FullCirclePath is the path substituted when a single slice covers the
// whole chart. The large-arc-flag trick used for partial slices degenerates
// into a zero-length arc at exactly 360 degrees, so a full turn is drawn as
// two half-circle arcs instead.
const FullCirclePath = "M 1 0 A 1 1 0 1 1 -1 0 A 1 1 0 1 1 1 0 Z"

// fullSliceEpsilon tolerates floating-point accumulation when deciding a
// slice is effectively the whole circle.
const fullSliceEpsilon = 0.999

// ChartDatum is one labeled value feeding the pie chart.
type ChartDatum struct {
	Label string
	Value Money
	Color string
}

// PieSlice is one wedge of the expense breakdown chart, in the unit-circle
// coordinate space the report templates use (viewBox -1.2 -1.2 2.4 2.4,
// rotated so slice zero starts at twelve o'clock).
type PieSlice struct {
	Label    string
	Value    Money
	Color    string
	Fraction float64 // share of the full turn, cumulative ordering
	Percent  int     // rounded share for the legend
	Path     string  // SVG arc path
}

// PieSlices computes cumulative slice geometry for an ordered data list.
// Slice i starts where slice i-1 ended; fractions sum to one. A total of
// zero means there is nothing to chart: the second return is false and no
// geometry is produced, short-circuiting ahead of any division.
func PieSlices(data []ChartDatum, total Money) ([]PieSlice, bool) {
	if total.Cents <= 0 {
		return nil, false
	}
	slices := make([]PieSlice, 0, len(data))
	cumulative := 0.0
	for _, d := range data {
		start := cumulative
		fraction := float64(d.Value.Cents) / float64(total.Cents)
		cumulative += fraction
		slices = append(slices, PieSlice{
			Label:    d.Label,
			Value:    d.Value,
			Color:    d.Color,
			Fraction: fraction,
			Percent:  int(math.Round(fraction * 100)),
			Path:     arcPath(start, cumulative, fraction),
		})
	}
	return slices, true
}

func arcPath(start, end, fraction float64) string {
	if fraction >= fullSliceEpsilon {
		return FullCirclePath
	}
	x := math.Cos(2 * math.Pi * start)
	y := math.Sin(2 * math.Pi * start)
	endX := math.Cos(2 * math.Pi * end)
	endY := math.Sin(2 * math.Pi * end)
	largeArc := 0
	if fraction > 0.5 {
		largeArc = 1
	}
	return fmt.Sprintf("M %s %s A 1 1 0 %d 1 %s %s L 0 0",
		coord(x), coord(y), largeArc, coord(endX), coord(endY))
}

// coord trims trailing zeros so cardinal points render as "1" and "0"
// rather than "1.0000".
func coord(v float64) string {
	return fmt.Sprintf("%g", math.Round(v*10000)/10000)
}
