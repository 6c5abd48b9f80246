package dispersal

import "bomb-abm/internal/core"

// Direction is a horizontal wind heading.
type Direction int

// Sampling order is North, East, South, West.
const (
	North Direction = iota
	East
	South
	West
)

var directionNames = [...]string{"north", "east", "south", "west"}

func (d Direction) String() string {
	if d < North || d > West {
		return "unknown"
	}
	return directionNames[d]
}

// Offset returns the unit grid displacement for d. North increases y.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	}
	return 0, 0
}

// WindModel picks a heading for each horizontal step.
type WindModel struct {
	dist *Distribution
}

// NewWindModel builds a wind model from percentages that sum to 100.
func NewWindModel(north, east, south, west int) (*WindModel, error) {
	d, err := NewDistribution("wind",
		Weight{Name: North.String(), Percent: north},
		Weight{Name: East.String(), Percent: east},
		Weight{Name: South.String(), Percent: south},
		Weight{Name: West.String(), Percent: west},
	)
	if err != nil {
		return nil, err
	}
	return &WindModel{dist: d}, nil
}

// NextDirection draws one heading.
func (w *WindModel) NextDirection(src core.Source) Direction {
	return Direction(w.dist.Next(src))
}

// Apply moves p one cell along d. Exactly one axis changes.
func (w *WindModel) Apply(p *core.Position, d Direction) {
	p.Translate(d.Offset())
}

// Blow draws a heading and applies it to p.
func (w *WindModel) Blow(src core.Source, p *core.Position) Direction {
	d := w.NextDirection(src)
	w.Apply(p, d)
	return d
}

// Percent returns the configured chance of heading d.
func (w *WindModel) Percent(d Direction) int { return w.dist.Percent(int(d)) }
