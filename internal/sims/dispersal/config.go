package dispersal

import (
	"strconv"

	"bomb-abm/internal/core"
)

// Params holds the wind and fall percentages for a run. Each group must sum
// to exactly 100.
type Params struct {
	North int
	East  int
	South int
	West  int

	Up       int
	Down     int
	NoChange int
}

// Config controls a dispersal run.
type Config struct {
	Particles     int
	ReleaseHeight int
	MaxIterations int

	// Seed selects the per-particle random streams.
	Seed int64
	// Workers bounds the goroutines used by Run. Zero means one per CPU.
	Workers int

	Params Params

	Logger core.Logger
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Particles:     5000,
		ReleaseHeight: 75,
		MaxIterations: 10000,
		Seed:          1337,
		Params: Params{
			North:    5,
			East:     75,
			South:    10,
			West:     10,
			Up:       20,
			Down:     70,
			NoChange: 10,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults; range checks are left to Validate.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	ints := map[string]*int{
		"north":          &c.Params.North,
		"east":           &c.Params.East,
		"south":          &c.Params.South,
		"west":           &c.Params.West,
		"up":             &c.Params.Up,
		"down":           &c.Params.Down,
		"nochange":       &c.Params.NoChange,
		"particles":      &c.Particles,
		"height":         &c.ReleaseHeight,
		"max_iterations": &c.MaxIterations,
		"workers":        &c.Workers,
	}
	for key, dst := range ints {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil {
				*dst = parsed
			}
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Validate checks counts and percentages without building anything.
func (c Config) Validate() error {
	if _, _, err := c.Params.Models(); err != nil {
		return err
	}
	return validateCounts(c.Particles, c.ReleaseHeight, c.MaxIterations)
}

// Models builds the wind and fall models described by p.
func (p Params) Models() (*WindModel, *FallModel, error) {
	wind, err := NewWindModel(p.North, p.East, p.South, p.West)
	if err != nil {
		return nil, nil, err
	}
	fall, err := NewFallModel(p.Up, p.Down, p.NoChange)
	if err != nil {
		return nil, nil, err
	}
	return wind, fall, nil
}

func validateCounts(particles, height, maxIterations int) error {
	if particles <= 0 {
		return core.Configf("particles", "must be positive, got %d", particles)
	}
	if height < 0 {
		return core.Configf("height", "must not be negative, got %d", height)
	}
	if maxIterations <= 0 {
		return core.Configf("max_iterations", "must be positive, got %d", maxIterations)
	}
	return nil
}
