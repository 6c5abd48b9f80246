// Package tui renders dispersal runs in a terminal.
package tui

import (
	"github.com/gdamore/tcell/v2"

	"bomb-abm/internal/core"
	"bomb-abm/internal/render"
)

var shades = []rune{' ', '░', '▒', '▓', '█'}

// Draw paints g into the screen above the bottom status line, north at the
// top. Grids larger than the screen are summed into square blocks. The source
// cell, when given, is drawn as a red 'X'.
func Draw(screen tcell.Screen, g *core.Grid, source *core.Position, status string) {
	sw, sh := screen.Size()
	screen.Clear()
	rows := sh - 1
	if sw <= 0 || rows <= 0 {
		return
	}
	k := blockSize(g.W, g.H, sw, rows)
	bw := (g.W + k - 1) / k
	bh := (g.H + k - 1) / k

	blocks := make([]int, bw*bh)
	peak := 0
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			i := (y/k)*bw + x/k
			blocks[i] += g.Cells()[g.Index(x, y)]
			if blocks[i] > peak {
				peak = blocks[i]
			}
		}
	}

	palette := render.HeatPalette()
	for by := 0; by < bh; by++ {
		row := bh - 1 - by
		for bx := 0; bx < bw; bx++ {
			n := blocks[by*bw+bx]
			style := tcell.StyleDefault
			r := shades[0]
			if n > 0 {
				level := 1 + n*(len(shades)-2)/peak
				r = shades[level]
				c := palette[1+n*254/peak]
				style = style.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			}
			screen.SetContent(bx, row, r, nil, style)
		}
	}
	if source != nil {
		screen.SetContent(source.X/k, bh-1-source.Y/k, 'X', nil,
			tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	}
	for i, r := range []rune(status) {
		if i >= sw {
			break
		}
		screen.SetContent(i, sh-1, r, nil, tcell.StyleDefault.Reverse(true))
	}
	screen.Show()
}

// blockSize returns the smallest square block edge that fits a w*h grid into
// a sw*sh area.
func blockSize(w, h, sw, sh int) int {
	k := 1
	for (w+k-1)/k > sw || (h+k-1)/k > sh {
		k++
	}
	return k
}
