package dispersal

import (
	"strconv"

	"bomb-abm/internal/core"
	"bomb-abm/internal/raster"
)

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return "dispersal" }

// Size reports the grid dimensions.
func (s *Simulation) Size() core.Size { return s.source.Size() }

// Cells exposes the display buffer: heat indices of the live plume while the
// run is in progress, of the landing density once it is done.
func (s *Simulation) Cells() []uint8 { return s.display }

// Reset releases a fresh particle set. A zero seed keeps the current one.
func (s *Simulation) Reset(seed int64) {
	if seed != 0 {
		s.seed = seed
	}
	s.Initialize()
}

// Seed reports the seed behind the current particle streams.
func (s *Simulation) Seed() int64 { return s.seed }

func (s *Simulation) refreshDisplay() {
	g := s.result
	if g == nil {
		g = s.Snapshot()
	}
	g.Heat(s.display)
}

func init() {
	core.Register("dispersal", func(m map[string]string) (core.Sim, error) {
		cfg := FromMap(m)
		source, err := sourceFromMap(m)
		if err != nil {
			return nil, err
		}
		return New(source, cfg)
	})
}

// sourceFromMap loads the terrain named by "raster", or builds a blank w*h
// grid with a centred source.
func sourceFromMap(m map[string]string) (*core.SourceGrid, error) {
	marker := core.DefaultMarker
	if v, ok := m["marker"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			marker = parsed
		}
	}
	if path := m["raster"]; path != "" {
		return raster.LoadSource(path, marker)
	}
	w, h := 300, 300
	if v, ok := m["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			w = parsed
		}
	}
	if v, ok := m["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			h = parsed
		}
	}
	return core.Blank(w, h)
}
