package core

// DefaultMarker is the cell value that marks the release point in a terrain
// raster.
const DefaultMarker = 255

// SourceGrid is a terrain grid with one designated release position.
type SourceGrid struct {
	*Grid
	Source Position
}

// NewSourceGrid pairs g with an explicit source position.
func NewSourceGrid(g *Grid, source Position) (*SourceGrid, error) {
	if g == nil {
		return nil, Configf("terrain", "grid is nil")
	}
	if !g.Contains(source) {
		return nil, Configf("source", "%s lies outside the %dx%d grid", source, g.W, g.H)
	}
	return &SourceGrid{Grid: g, Source: source}, nil
}

// LocateSource scans g for the single cell equal to marker and uses its
// (column, row) as the source position. Zero or several marker cells are
// rejected.
func LocateSource(g *Grid, marker int) (*SourceGrid, error) {
	if g == nil {
		return nil, Configf("terrain", "grid is nil")
	}
	found := false
	var source Position
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.data[g.Index(x, y)] != marker {
				continue
			}
			if found {
				return nil, Configf("terrain", "marker %d found at both %s and %s", marker, source, Position{X: x, Y: y})
			}
			found = true
			source = Position{X: x, Y: y}
		}
	}
	if !found {
		return nil, Configf("terrain", "marker %d not found", marker)
	}
	return &SourceGrid{Grid: g, Source: source}, nil
}

// Blank returns a w*h zero terrain with the source at its centre.
func Blank(w, h int) (*SourceGrid, error) {
	g, err := NewGrid(w, h, 0)
	if err != nil {
		return nil, err
	}
	return NewSourceGrid(g, Position{X: w / 2, Y: h / 2})
}
