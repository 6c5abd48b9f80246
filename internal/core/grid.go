package core

// Grid stores a 2D surface of integer cells in row-major order. Row 0 is the
// southern edge of the terrain; y grows northwards.
type Grid struct {
	W, H int
	data []int
}

// NewGrid allocates a w*h grid with every cell set to initial.
func NewGrid(w, h, initial int) (*Grid, error) {
	if w <= 0 {
		return nil, Configf("width", "must be positive, got %d", w)
	}
	if h <= 0 {
		return nil, Configf("height", "must be positive, got %d", h)
	}
	g := &Grid{W: w, H: h, data: make([]int, w*h)}
	if initial != 0 {
		g.Fill(initial)
	}
	return g, nil
}

// GridFromRows copies a rectangular raster into a new grid. Row i of the
// raster becomes y == i.
func GridFromRows(rows [][]int) (*Grid, error) {
	if len(rows) == 0 {
		return nil, Configf("raster", "has no rows")
	}
	w := len(rows[0])
	if w == 0 {
		return nil, Configf("raster", "row 0 is empty")
	}
	g := &Grid{W: w, H: len(rows), data: make([]int, w*len(rows))}
	for y, row := range rows {
		if len(row) != w {
			return nil, Configf("raster", "row %d has %d cells, want %d", y, len(row), w)
		}
		copy(g.data[y*w:(y+1)*w], row)
	}
	return g, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []int { return g.data }

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Contains reports whether p lies inside the grid.
func (g *Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.W && p.Y >= 0 && p.Y < g.H
}

// At returns the value at p. p must be contained in the grid.
func (g *Grid) At(p Position) int { return g.data[g.Index(p.X, p.Y)] }

// Set stores v at p. p must be contained in the grid.
func (g *Grid) Set(p Position, v int) { g.data[g.Index(p.X, p.Y)] = v }

// Add increments the cell at p by delta and reports whether p was in bounds.
func (g *Grid) Add(p Position, delta int) bool {
	if !g.Contains(p) {
		return false
	}
	g.data[g.Index(p.X, p.Y)] += delta
	return true
}

// Merge adds every cell of other into g. Both grids must share dimensions.
func (g *Grid) Merge(other *Grid) {
	for i, v := range other.data {
		g.data[i] += v
	}
}

// Sum totals every cell.
func (g *Grid) Sum() int {
	total := 0
	for _, v := range g.data {
		total += v
	}
	return total
}

// Max returns the largest cell value.
func (g *Grid) Max() int {
	max := g.data[0]
	for _, v := range g.data[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Rows returns a copy of the grid as a slice of rows, row 0 first.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.H)
	for y := range rows {
		rows[y] = append([]int(nil), g.data[y*g.W:(y+1)*g.W]...)
	}
	return rows
}

// Fill sets every cell to v.
func (g *Grid) Fill(v int) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() { g.Fill(0) }

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{W: g.W, H: g.H, data: append([]int(nil), g.data...)}
}
