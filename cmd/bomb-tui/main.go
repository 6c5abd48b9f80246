package main

import (
	"flag"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"bomb-abm/internal/app"
	"bomb-abm/internal/sims/dispersal"
	"bomb-abm/internal/tui"
)

func main() {
	cfg, err := app.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.EnsureSeed(); err != nil {
		log.Fatalf("seed: %v", err)
	}
	source, err := cfg.Source()
	if err != nil {
		log.Fatal(err)
	}
	// Log lines would tear the terminal display.
	sim, err := dispersal.New(source, cfg.SimConfig(nil))
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}
	err = tui.Run(screen, sim, cfg.TPS)
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
	st := sim.Stats()
	if sim.Done() {
		log.Printf("landed %d, off-grid %d, airborne %d", st.Landed, st.Dropped, st.Airborne)
	}
}
