package render

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/nfnt/resize"

	"bomb-abm/internal/core"
)

// Image draws a density grid with north at the top. When source is non-nil
// its cell is painted in SourceColor.
func Image(g *core.Grid, source *core.Position) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.W, g.H))
	cells := make([]uint8, g.W*g.H)
	g.Heat(cells)
	fillPaletteRGBA(img.Pix, cells, g.W, g.H, heatPalette)
	if source != nil {
		markCell(img.Pix, source.X, source.Y, g.W, g.H, sourceColor)
	}
	return img
}

// WritePNG encodes the density map as PNG, upscaled by scale with
// nearest-neighbour sampling so cells stay crisp.
func WritePNG(w io.Writer, g *core.Grid, source *core.Position, scale int) error {
	var img image.Image = Image(g, source)
	if scale > 1 {
		img = resize.Resize(uint(g.W*scale), uint(g.H*scale), img, resize.NearestNeighbor)
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
