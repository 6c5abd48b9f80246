package ui

import "bomb-abm/internal/core"

// stepTarget returns the value one step away from value in direction, clamped
// to the control bounds, and whether that differs from value.
func stepTarget(ctrl core.ParameterControl, value, direction int) (int, bool) {
	if direction == 0 {
		return value, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := value + direction*step
	if target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	return target, target != value
}

// arrow is a screen-space offset from the release cell.
type arrow struct {
	dx, dy float64
}

// windRose turns the four wind percentages into arrows whose length is the
// share of span each direction receives. Screen y grows downward, so north
// points to negative dy.
func windRose(north, east, south, west int, span float64) [4]arrow {
	f := func(pct int) float64 { return float64(pct) / 100 * span }
	return [4]arrow{
		{dx: 0, dy: -f(north)},
		{dx: f(east), dy: 0},
		{dx: 0, dy: f(south)},
		{dx: -f(west), dy: 0},
	}
}

// cellCentre maps a grid cell to the centre of its scaled screen square with
// north drawn at the top.
func cellCentre(p core.Position, h, scale int) (float64, float64) {
	s := float64(scale)
	return (float64(p.X) + 0.5) * s, (float64(h-1-p.Y) + 0.5) * s
}
