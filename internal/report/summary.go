// Package report summarises landing densities and renders them as charts.
package report

import (
	"fmt"

	"bomb-abm/internal/core"
)

// Summary describes where particles landed relative to the source.
type Summary struct {
	Landed    int
	MaxCell   int
	MaxCellAt core.Position

	// CentroidX and CentroidY are the count-weighted mean landing cell.
	CentroidX float64
	CentroidY float64

	// Distances are Manhattan distances from the source cell.
	MeanDistance float64
	MaxDistance  int
}

// Summarize scans a density grid.
func Summarize(g *core.Grid, source core.Position) Summary {
	var s Summary
	var sumX, sumY, sumD float64
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			n := g.Cells()[g.Index(x, y)]
			if n <= 0 {
				continue
			}
			p := core.Position{X: x, Y: y}
			if n > s.MaxCell {
				s.MaxCell = n
				s.MaxCellAt = p
			}
			d := distance(p, source)
			if d > s.MaxDistance {
				s.MaxDistance = d
			}
			s.Landed += n
			sumX += float64(n * x)
			sumY += float64(n * y)
			sumD += float64(n * d)
		}
	}
	if s.Landed > 0 {
		total := float64(s.Landed)
		s.CentroidX = sumX / total
		s.CentroidY = sumY / total
		s.MeanDistance = sumD / total
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("landed=%d peak=%d@%s centroid=(%.2f, %.2f) mean-distance=%.2f max-distance=%d",
		s.Landed, s.MaxCell, s.MaxCellAt, s.CentroidX, s.CentroidY, s.MeanDistance, s.MaxDistance)
}

// Bin counts landings whose distance from the source lies in [Lo, Hi].
type Bin struct {
	Lo, Hi int
	Count  int
}

// Label renders the bin range for chart axes.
func (b Bin) Label() string {
	if b.Lo == b.Hi {
		return fmt.Sprintf("%d", b.Lo)
	}
	return fmt.Sprintf("%d-%d", b.Lo, b.Hi)
}

// DistanceHistogram groups landings into at most bins equal-width distance
// bands starting at 0.
func DistanceHistogram(g *core.Grid, source core.Position, bins int) []Bin {
	if bins <= 0 {
		bins = 1
	}
	maxDist := Summarize(g, source).MaxDistance
	width := (maxDist + bins) / bins
	hist := make([]Bin, 0, bins)
	for lo := 0; lo <= maxDist; lo += width {
		hist = append(hist, Bin{Lo: lo, Hi: lo + width - 1})
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			n := g.Cells()[g.Index(x, y)]
			if n <= 0 {
				continue
			}
			d := distance(core.Position{X: x, Y: y}, source)
			hist[d/width].Count += n
		}
	}
	return hist
}

func distance(a, b core.Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
