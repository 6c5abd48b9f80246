package render

import "image/color"

// fillPaletteRGBA converts row-major cell values (row 0 = south) into RGBA
// pixels in buf with north at the top. When the palette is empty the buffer
// is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, w, h int, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range buf {
			buf[i] = 0
		}
		return
	}

	last := len(palette) - 1
	for y := 0; y < h; y++ {
		row := h - 1 - y
		for x := 0; x < w; x++ {
			idx := int(cells[y*w+x])
			if idx > last {
				idx = last
			}
			base := (row*w + x) * 4
			col := palette[idx]
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

// markCell paints the pixel for grid cell (x, y) in buf.
func markCell(buf []byte, x, y, w, h int, c color.RGBA) {
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	base := ((h-1-y)*w + x) * 4
	buf[base+0] = c.R
	buf[base+1] = c.G
	buf[base+2] = c.B
	buf[base+3] = c.A
}
