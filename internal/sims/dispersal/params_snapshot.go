package dispersal

import (
	"fmt"
	"strconv"

	"bomb-abm/internal/core"
)

// Parameters reports the pending configuration. Values edited through
// SetIntParameter show up here before they are committed.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	d := s.draft
	p := d.Params
	windSum := p.North + p.East + p.South + p.West
	fallSum := p.Up + p.Down + p.NoChange
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Wind",
			Params: []core.Parameter{
				percentParam("north", "North %", p.North),
				percentParam("east", "East %", p.East),
				percentParam("south", "South %", p.South),
				percentParam("west", "West %", p.West),
			},
			Summary: sumSummary(windSum),
		},
		{
			Name: "Fall",
			Params: []core.Parameter{
				percentParam("up", "Up %", p.Up),
				percentParam("down", "Down %", p.Down),
				percentParam("nochange", "No change %", p.NoChange),
			},
			Summary: sumSummary(fallSum),
		},
		{
			Name: "Release",
			Params: []core.Parameter{
				intParam("particles", "Particles", d.Particles),
				intParam("height", "Release height", d.ReleaseHeight),
				intParam("max_iterations", "Max iterations", d.MaxIterations),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(s.seed, 10)},
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable values.
func (s *Simulation) ParameterControls() []core.ParameterControl {
	percent := func(key, label string) core.ParameterControl {
		return core.ParameterControl{Key: key, Label: label, Step: 5, Min: 0, Max: 100, HasMax: true}
	}
	return []core.ParameterControl{
		percent("north", "North %"),
		percent("east", "East %"),
		percent("south", "South %"),
		percent("west", "West %"),
		percent("up", "Up %"),
		percent("down", "Down %"),
		percent("nochange", "No change %"),
		{Key: "particles", Label: "Particles", Step: 500, Min: 1},
		{Key: "height", Label: "Release height", Step: 5, Min: 0},
		{Key: "max_iterations", Label: "Max iterations", Step: 1000, Min: 1},
	}
}

// SetIntParameter edits the pending configuration. Once the pending values
// form a valid configuration they are committed and the particles are
// released again; until then the previous configuration stays active. It
// reports false only for unknown keys or out-of-range values.
func (s *Simulation) SetIntParameter(key string, value int) bool {
	d := s.draft
	dst, min, max := d.field(key)
	if dst == nil || value < min || (max >= 0 && value > max) {
		return false
	}
	*dst = value
	s.draft = d

	wind, fall, err := d.Params.Models()
	if err == nil {
		err = s.UpdateConfiguration(fall, wind, d.Particles, d.ReleaseHeight, d.MaxIterations)
	}
	if err != nil {
		s.logger.Printf("holding %s=%d: %v", key, value, err)
		return true
	}
	s.Initialize()
	return true
}

// Pending reports whether edited values are waiting for a valid combination.
func (s *Simulation) Pending() bool {
	d := s.draft
	return d.Params != s.cfg.Params ||
		d.Particles != s.cfg.Particles ||
		d.ReleaseHeight != s.cfg.ReleaseHeight ||
		d.MaxIterations != s.cfg.MaxIterations
}

// field maps a parameter key to its storage and bounds. max < 0 means
// unbounded.
func (c *Config) field(key string) (dst *int, min, max int) {
	switch key {
	case "north":
		return &c.Params.North, 0, 100
	case "east":
		return &c.Params.East, 0, 100
	case "south":
		return &c.Params.South, 0, 100
	case "west":
		return &c.Params.West, 0, 100
	case "up":
		return &c.Params.Up, 0, 100
	case "down":
		return &c.Params.Down, 0, 100
	case "nochange":
		return &c.Params.NoChange, 0, 100
	case "particles":
		return &c.Particles, 1, -1
	case "height":
		return &c.ReleaseHeight, 0, -1
	case "max_iterations":
		return &c.MaxIterations, 1, -1
	}
	return nil, 0, 0
}

func sumSummary(sum int) string {
	if sum == 100 {
		return "sum 100%"
	}
	return fmt.Sprintf("sum %d%% (needs 100)", sum)
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func percentParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypePercent,
		Value: strconv.Itoa(value),
	}
}
