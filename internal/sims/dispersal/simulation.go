package dispersal

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"bomb-abm/internal/core"
)

// Stats summarises a finished run.
type Stats struct {
	Particles int
	// Landed counts particles whose final position is on the grid.
	Landed int
	// Dropped counts particles that ended off the grid.
	Dropped int
	// Airborne counts particles still above ground when they hit the
	// iteration cap.
	Airborne int
	// MaxIterations is the largest step count any particle needed.
	MaxIterations int
}

func (s *Stats) merge(o Stats) {
	s.Particles += o.Particles
	s.Landed += o.Landed
	s.Dropped += o.Dropped
	s.Airborne += o.Airborne
	if o.MaxIterations > s.MaxIterations {
		s.MaxIterations = o.MaxIterations
	}
}

// Simulation releases particles from the source cell of a terrain grid and
// counts where they land.
type Simulation struct {
	cfg    Config
	source *core.SourceGrid
	wind   *WindModel
	fall   *FallModel
	logger core.Logger

	seed      int64
	particles []*Particle
	ticks     int

	result *core.Grid
	stats  Stats

	draft   Config
	display []uint8
}

// New validates cfg and prepares a simulation over source. Particles are not
// created until Initialize (or the first Run/Step).
func New(source *core.SourceGrid, cfg Config) (*Simulation, error) {
	if source == nil || source.Grid == nil {
		return nil, core.Configf("terrain", "source grid is required")
	}
	if !source.Contains(source.Source) {
		return nil, core.Configf("source", "%s lies outside the terrain", source.Source)
	}
	if err := validateCounts(cfg.Particles, cfg.ReleaseHeight, cfg.MaxIterations); err != nil {
		return nil, err
	}
	wind, fall, err := cfg.Params.Models()
	if err != nil {
		return nil, err
	}
	if cfg.Workers < 0 {
		return nil, core.Configf("workers", "must not be negative, got %d", cfg.Workers)
	}
	return &Simulation{
		cfg:     cfg,
		source:  source,
		wind:    wind,
		fall:    fall,
		logger:  core.OrDiscard(cfg.Logger),
		seed:    cfg.Seed,
		draft:   cfg,
		display: make([]uint8, source.W*source.H),
	}, nil
}

// Config returns the active configuration.
func (s *Simulation) Config() Config { return s.cfg }

// Source returns the terrain and release position.
func (s *Simulation) Source() *core.SourceGrid { return s.source }

// SetLogger replaces the run logger; nil discards.
func (s *Simulation) SetLogger(l core.Logger) {
	s.logger = core.OrDiscard(l)
	s.cfg.Logger = l
}

// Particles exposes the current particle set.
func (s *Simulation) Particles() []*Particle { return s.particles }

// Initialize discards any previous particles and result, then releases a fresh
// set at the source position and release height.
func (s *Simulation) Initialize() {
	n := s.cfg.Particles
	s.particles = make([]*Particle, n)
	for i := range s.particles {
		s.particles[i] = NewParticle(s.wind, s.fall, s.source.Source, s.cfg.ReleaseHeight, core.NewStream(s.seed, uint64(i)))
	}
	s.ticks = 0
	s.result = nil
	s.stats = Stats{}
	s.refreshDisplay()
	s.logger.Printf("released %d particles at %s, height %d", n, s.source.Source, s.cfg.ReleaseHeight)
}

// Run drives every particle to the ground or the iteration cap and returns the
// landing density. Particles are split across workers; each worker folds its
// share into a private grid and the partial grids are summed after the join.
func (s *Simulation) Run() *core.Grid {
	if s.particles == nil {
		s.Initialize()
	}
	workers := s.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	n := len(s.particles)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	type partial struct {
		density *core.Grid
		stats   Stats
	}
	partials := make([]partial, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, n)
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			batch := s.particles[lo:hi]
			for _, p := range batch {
				p.advance(s.cfg.MaxIterations)
			}
			density, stats := s.fold(batch)
			partials[w] = partial{density: density, stats: stats}
			return nil
		})
	}
	// Workers never fail.
	_ = g.Wait()

	density := s.emptyGrid()
	var stats Stats
	for _, p := range partials {
		if p.density == nil {
			continue
		}
		density.Merge(p.density)
		stats.merge(p.stats)
	}
	s.finish(density, stats)
	return density
}

// Step advances every unsettled particle by one move+fall iteration. When the
// last particle settles the landing density is folded as Run does.
func (s *Simulation) Step() {
	if s.particles == nil {
		s.Initialize()
	}
	if s.result != nil {
		return
	}
	active := 0
	for _, p := range s.particles {
		if p.settled(s.cfg.MaxIterations) {
			continue
		}
		p.step()
		if !p.settled(s.cfg.MaxIterations) {
			active++
		}
	}
	s.ticks++
	if active == 0 {
		density, stats := s.fold(s.particles)
		s.finish(density, stats)
		return
	}
	s.refreshDisplay()
}

// Done reports whether a result is available.
func (s *Simulation) Done() bool { return s.result != nil }

// Ticks reports how many Step calls advanced the current particle set.
func (s *Simulation) Ticks() int { return s.ticks }

// Result returns the density from the last completed run, or nil.
func (s *Simulation) Result() *core.Grid { return s.result }

// Stats returns the counters from the last completed run.
func (s *Simulation) Stats() Stats { return s.stats }

// Snapshot counts the current position of every particle, settled or not.
func (s *Simulation) Snapshot() *core.Grid {
	g := s.emptyGrid()
	for _, p := range s.particles {
		g.Add(p.pos, 1)
	}
	return g
}

// UpdateConfiguration swaps in new models and counts in one go. It does not
// recreate particles; call Initialize once the new configuration should take
// effect.
func (s *Simulation) UpdateConfiguration(fall *FallModel, wind *WindModel, particles, releaseHeight, maxIterations int) error {
	if fall == nil {
		return core.Configf("fall", "model is required")
	}
	if wind == nil {
		return core.Configf("wind", "model is required")
	}
	if err := validateCounts(particles, releaseHeight, maxIterations); err != nil {
		return err
	}
	s.fall = fall
	s.wind = wind
	s.cfg.Particles = particles
	s.cfg.ReleaseHeight = releaseHeight
	s.cfg.MaxIterations = maxIterations
	s.cfg.Params = Params{
		North:    wind.Percent(North),
		East:     wind.Percent(East),
		South:    wind.Percent(South),
		West:     wind.Percent(West),
		Up:       fall.Percent(Up),
		Down:     fall.Percent(Down),
		NoChange: fall.Percent(NoChange),
	}
	s.draft = s.cfg
	s.logger.Printf("configuration updated: %d particles, height %d, cap %d", particles, releaseHeight, maxIterations)
	return nil
}

func (s *Simulation) emptyGrid() *core.Grid {
	g, _ := core.NewGrid(s.source.W, s.source.H, 0)
	return g
}

// fold counts the final positions of batch into a fresh grid.
func (s *Simulation) fold(batch []*Particle) (*core.Grid, Stats) {
	density := s.emptyGrid()
	stats := Stats{Particles: len(batch)}
	for _, p := range batch {
		if p.iterations > stats.MaxIterations {
			stats.MaxIterations = p.iterations
		}
		if p.CanFall() {
			stats.Airborne++
		}
		if density.Add(p.pos, 1) {
			stats.Landed++
		} else {
			stats.Dropped++
		}
	}
	return density, stats
}

func (s *Simulation) finish(density *core.Grid, stats Stats) {
	s.result = density
	s.stats = stats
	s.refreshDisplay()
	s.logger.Printf("run complete: %d landed, %d off-grid, max iterations %d", stats.Landed, stats.Dropped, stats.MaxIterations)
	if stats.Airborne > 0 {
		s.logger.Printf("%d particles still airborne after %d iterations", stats.Airborne, s.cfg.MaxIterations)
	}
}
