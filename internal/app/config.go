package app

import (
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/caarlos0/env/v11"

	"bomb-abm/internal/core"
	"bomb-abm/internal/raster"
	"bomb-abm/internal/sims/dispersal"
)

// Config holds the settings shared by the bomb commands. Values come from
// BOMB_* environment variables first and command-line flags second.
type Config struct {
	Raster string `env:"BOMB_RASTER" envDefault:"wind.raster"`
	Marker int    `env:"BOMB_MARKER" envDefault:"255"`
	// GridW and GridH size the blank terrain used when Raster is empty.
	GridW int `env:"BOMB_GRID_W" envDefault:"300"`
	GridH int `env:"BOMB_GRID_H" envDefault:"300"`

	Particles     int   `env:"BOMB_PARTICLES"      envDefault:"5000"`
	ReleaseHeight int   `env:"BOMB_RELEASE_HEIGHT" envDefault:"75"`
	MaxIterations int   `env:"BOMB_MAX_ITERATIONS" envDefault:"10000"`
	Seed          int64 `env:"BOMB_SEED"`
	Workers       int   `env:"BOMB_WORKERS"`

	North    int `env:"BOMB_WIND_NORTH"   envDefault:"5"`
	East     int `env:"BOMB_WIND_EAST"    envDefault:"75"`
	South    int `env:"BOMB_WIND_SOUTH"   envDefault:"10"`
	West     int `env:"BOMB_WIND_WEST"    envDefault:"10"`
	Up       int `env:"BOMB_FALL_UP"      envDefault:"20"`
	Down     int `env:"BOMB_FALL_DOWN"    envDefault:"70"`
	NoChange int `env:"BOMB_FALL_NOCHANGE" envDefault:"10"`

	Out   string `env:"BOMB_OUT"   envDefault:"density.raster"`
	PNG   string `env:"BOMB_PNG"`
	Chart string `env:"BOMB_CHART"`
	Bins  int    `env:"BOMB_BINS"  envDefault:"12"`

	Scale   int  `env:"BOMB_SCALE" envDefault:"3"`
	TPS     int  `env:"BOMB_TPS"   envDefault:"30"`
	Verbose bool `env:"BOMB_VERBOSE"`
}

// ParseConfig reads the environment, binds the flags to fs and parses args.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Raster, "raster", c.Raster, "terrain raster file; empty for a blank grid")
	fs.IntVar(&c.Marker, "marker", c.Marker, "cell value marking the release point")
	fs.IntVar(&c.GridW, "w", c.GridW, "blank grid width")
	fs.IntVar(&c.GridH, "h", c.GridH, "blank grid height")

	fs.IntVar(&c.Particles, "particles", c.Particles, "number of particles released")
	fs.IntVar(&c.ReleaseHeight, "height", c.ReleaseHeight, "release height")
	fs.IntVar(&c.MaxIterations, "max-iterations", c.MaxIterations, "per-particle iteration cap")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed; 0 picks one")
	fs.IntVar(&c.Workers, "workers", c.Workers, "particle workers; 0 uses every CPU")

	fs.IntVar(&c.North, "north", c.North, "wind north %")
	fs.IntVar(&c.East, "east", c.East, "wind east %")
	fs.IntVar(&c.South, "south", c.South, "wind south %")
	fs.IntVar(&c.West, "west", c.West, "wind west %")
	fs.IntVar(&c.Up, "up", c.Up, "fall up %")
	fs.IntVar(&c.Down, "down", c.Down, "fall down %")
	fs.IntVar(&c.NoChange, "nochange", c.NoChange, "fall no-change %")

	fs.StringVar(&c.Out, "out", c.Out, "density raster output; empty to skip")
	fs.StringVar(&c.PNG, "png", c.PNG, "density PNG output")
	fs.StringVar(&c.Chart, "chart", c.Chart, "distance histogram PNG output")
	fs.IntVar(&c.Bins, "bins", c.Bins, "histogram bins")

	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.BoolVar(&c.Verbose, "verbose", c.Verbose, "enable verbose logging")
}

// EnsureSeed replaces a zero seed with a random one.
func (c *Config) EnsureSeed() error {
	if c.Seed != 0 {
		return nil
	}
	seed, err := core.NewSeed()
	if err != nil {
		return err
	}
	c.Seed = seed
	return nil
}

// Logger returns a logger writing to errOut when verbose output is enabled.
func (c Config) Logger(errOut io.Writer) core.Logger {
	if !c.Verbose || errOut == nil {
		return core.DiscardLogger
	}
	return log.New(errOut, "", log.Ltime)
}

// Params returns the wind and fall percentages.
func (c Config) Params() dispersal.Params {
	return dispersal.Params{
		North:    c.North,
		East:     c.East,
		South:    c.South,
		West:     c.West,
		Up:       c.Up,
		Down:     c.Down,
		NoChange: c.NoChange,
	}
}

// SimConfig converts the settings into a dispersal configuration.
func (c Config) SimConfig(logger core.Logger) dispersal.Config {
	return dispersal.Config{
		Particles:     c.Particles,
		ReleaseHeight: c.ReleaseHeight,
		MaxIterations: c.MaxIterations,
		Seed:          c.Seed,
		Workers:       c.Workers,
		Params:        c.Params(),
		Logger:        logger,
	}
}

// Source loads the terrain raster, or builds a blank grid with a centred
// release point when no raster is configured.
func (c Config) Source() (*core.SourceGrid, error) {
	if c.Raster == "" {
		return core.Blank(c.GridW, c.GridH)
	}
	return raster.LoadSource(c.Raster, c.Marker)
}

// ToMap renders the settings as registry keys understood by the dispersal
// factory.
func (c Config) ToMap() map[string]string {
	itoa := strconv.Itoa
	return map[string]string{
		"raster":         c.Raster,
		"marker":         itoa(c.Marker),
		"w":              itoa(c.GridW),
		"h":              itoa(c.GridH),
		"particles":      itoa(c.Particles),
		"height":         itoa(c.ReleaseHeight),
		"max_iterations": itoa(c.MaxIterations),
		"seed":           strconv.FormatInt(c.Seed, 10),
		"workers":        itoa(c.Workers),
		"north":          itoa(c.North),
		"east":           itoa(c.East),
		"south":          itoa(c.South),
		"west":           itoa(c.West),
		"up":             itoa(c.Up),
		"down":           itoa(c.Down),
		"nochange":       itoa(c.NoChange),
	}
}
