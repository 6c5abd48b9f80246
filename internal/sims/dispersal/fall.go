package dispersal

import "bomb-abm/internal/core"

// Fall is a vertical step outcome.
type Fall int

// Sampling order is Up, Down, NoChange.
const (
	Up Fall = iota
	Down
	NoChange
)

var fallNames = [...]string{"up", "down", "nochange"}

func (f Fall) String() string {
	if f < Up || f > NoChange {
		return "unknown"
	}
	return fallNames[f]
}

// Delta returns the height change for f.
func (f Fall) Delta() int {
	switch f {
	case Up:
		return 1
	case Down:
		return -1
	}
	return 0
}

// FallModel picks a vertical step while a particle is at or above its release
// height.
type FallModel struct {
	dist *Distribution
}

// NewFallModel builds a fall model from percentages that sum to 100.
func NewFallModel(up, down, noChange int) (*FallModel, error) {
	d, err := NewDistribution("fall",
		Weight{Name: Up.String(), Percent: up},
		Weight{Name: Down.String(), Percent: down},
		Weight{Name: NoChange.String(), Percent: noChange},
	)
	if err != nil {
		return nil, err
	}
	return &FallModel{dist: d}, nil
}

// NextFall draws one vertical step.
func (f *FallModel) NextFall(src core.Source) Fall {
	return Fall(f.dist.Next(src))
}

// Percent returns the configured chance of outcome k.
func (f *FallModel) Percent(k Fall) int { return f.dist.Percent(int(k)) }
