//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"bomb-abm/internal/app"
	"bomb-abm/internal/core"
	_ "bomb-abm/internal/sims/dispersal"

	"github.com/hajimehoshi/ebiten/v2"
)

const hudWidth = 260

type loggerSetter interface {
	SetLogger(core.Logger)
}

func main() {
	name := flag.String("sim", "dispersal", "simulation to run")
	cfg, err := app.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.EnsureSeed(); err != nil {
		log.Fatalf("seed: %v", err)
	}

	sim, err := core.Build(*name, cfg.ToMap())
	if err != nil {
		log.Fatal(err)
	}
	logger := cfg.Logger(os.Stderr)
	if ls, ok := sim.(loggerSetter); ok {
		ls.SetLogger(logger)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, app.Options{
		Scale:    cfg.Scale,
		HUDWidth: hudWidth,
		Seed:     cfg.Seed,
		Out:      cfg.Out,
		Logger:   logger,
	})
	size := sim.Size()

	ebiten.SetWindowTitle("bomb-abm: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+hudWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
