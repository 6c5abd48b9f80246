//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"bomb-abm/internal/core"
	"bomb-abm/internal/render"
	"bomb-abm/internal/sims/dispersal"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type plumeProvider interface {
	Source() *core.SourceGrid
	Particles() []*dispersal.Particle
	Config() dispersal.Config
	Done() bool
}

// Overlay draws optional visuals on top of the density map. Keys 1, 2 and 3
// toggle the release marker, airborne particles and the wind rose.
type Overlay struct {
	sim          core.Sim
	scale        int
	showSource   bool
	showAirborne bool
	showWind     bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showSource: true, showAirborne: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update allows the overlay to update internal state.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showSource = !o.showSource
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showAirborne = !o.showAirborne
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showWind = !o.showWind
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	provider, ok := o.sim.(plumeProvider)
	if !ok {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	src := provider.Source()
	if o.showAirborne && !provider.Done() {
		o.drawAirborne(screen, provider.Particles(), src.H, scale)
	}
	if o.showWind {
		o.drawWindRose(screen, provider.Config().Params, src, scale)
	}
	if o.showSource {
		cx, cy := cellCentre(src.Source, src.H, scale)
		size := math.Max(float64(scale)*3, 6)
		o.drawLine(screen, cx-size, cy, cx+size, cy, 1.5, render.SourceColor())
		o.drawLine(screen, cx, cy-size, cx, cy+size, 1.5, render.SourceColor())
	}
}

// drawAirborne dots every particle still above ground, brighter the higher it
// flies relative to its release height.
func (o *Overlay) drawAirborne(screen *ebiten.Image, particles []*dispersal.Particle, h, scale int) {
	size := math.Max(float64(scale)*0.8, 1)
	for _, p := range particles {
		if !p.CanFall() {
			continue
		}
		rel := 1.0
		if p.ReleaseHeight() > 0 {
			rel = float64(p.Height()) / float64(p.ReleaseHeight())
		}
		x, y := cellCentre(p.Position(), h, scale)
		o.drawPoint(screen, x, y, size, interpolateColor(rel))
	}
}

func (o *Overlay) drawWindRose(screen *ebiten.Image, p dispersal.Params, src *core.SourceGrid, scale int) {
	const headAngle = math.Pi / 6
	span := float64(min(src.W, src.H)*scale) * 0.25
	cx, cy := cellCentre(src.Source, src.H, scale)
	for _, a := range windRose(p.North, p.East, p.South, p.West, span) {
		length := math.Hypot(a.dx, a.dy)
		if length < 1 {
			continue
		}
		tipX, tipY := cx+a.dx, cy+a.dy
		col := interpolateColor(length / span)
		thickness := math.Max(float64(scale)*0.6, 1.5)
		o.drawLine(screen, cx, cy, tipX, tipY, thickness, col)

		head := math.Min(length*0.3, 12)
		angle := math.Atan2(a.dy, a.dx)
		o.drawLine(screen, tipX, tipY, tipX-math.Cos(angle+headAngle)*head, tipY-math.Sin(angle+headAngle)*head, thickness, col)
		o.drawLine(screen, tipX, tipY, tipX-math.Cos(angle-headAngle)*head, tipY-math.Sin(angle-headAngle)*head, thickness, col)
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func interpolateColor(t float64) color.RGBA {
	t = clamp01(t)
	r := uint8(math.Round(80 + 70*t))
	g := uint8(math.Round(170 + 70*t))
	b := uint8(math.Round(230 + 20*t))
	a := uint8(math.Round(150 + 90*t))
	return color.RGBA{R: r, G: g, B: b, A: a}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
