package render

import "image/color"

var (
	emptyColor  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	sourceColor = color.RGBA{R: 220, G: 30, B: 30, A: 255}

	// Viridis anchor colours, low to high.
	heatStops = []color.RGBA{
		{R: 68, G: 1, B: 84, A: 255},
		{R: 59, G: 82, B: 139, A: 255},
		{R: 33, G: 145, B: 140, A: 255},
		{R: 94, G: 201, B: 98, A: 255},
		{R: 253, G: 231, B: 37, A: 255},
	}

	heatPalette = buildHeatPalette()
)

// HeatPalette returns the 256-entry density palette. Index 0 (no particles)
// is grey so sparse landings stand out; 1..255 ramp from purple to yellow.
func HeatPalette() []color.RGBA { return heatPalette }

// SourceColor is the colour used to mark the release cell.
func SourceColor() color.RGBA { return sourceColor }

func buildHeatPalette() []color.RGBA {
	palette := make([]color.RGBA, 256)
	palette[0] = emptyColor
	segments := len(heatStops) - 1
	for i := 1; i < 256; i++ {
		t := float64(i-1) / 254 * float64(segments)
		seg := int(t)
		if seg >= segments {
			seg = segments - 1
		}
		palette[i] = blendColors(heatStops[seg], heatStops[seg+1], t-float64(seg))
	}
	return palette
}

func blendColors(base, overlay color.RGBA, overlayWeight float64) color.RGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	inv := 1 - overlayWeight
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*inv + float64(b)*overlayWeight + 0.5)
	}
	return color.RGBA{
		R: mix(base.R, overlay.R),
		G: mix(base.G, overlay.G),
		B: mix(base.B, overlay.B),
		A: 255,
	}
}
