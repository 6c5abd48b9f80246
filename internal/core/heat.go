package core

// Heat scales cell counts into palette indices in dst, which must hold W*H
// entries. Empty cells map to 0, every non-empty cell to [1, 255] relative to
// the busiest cell.
func (g *Grid) Heat(dst []uint8) {
	max := g.Max()
	for i, v := range g.data {
		if v <= 0 || max <= 0 {
			dst[i] = 0
			continue
		}
		dst[i] = uint8(1 + v*254/max)
	}
}
