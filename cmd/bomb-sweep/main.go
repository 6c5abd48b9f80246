package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"bomb-abm/internal/app"
	"bomb-abm/internal/sweep"
)

func main() {
	top := flag.Int("top", 5, "number of ranked results to print")
	pool := flag.Int("pool", runtime.NumCPU(), "configurations evaluated in parallel")
	var winds sweep.WindList
	var falls sweep.FallList
	flag.Var(&winds, "wind", "wind option N/E/S/W (repeatable; default presets)")
	flag.Var(&falls, "fall", "fall option Up/Down/NoChange (repeatable; default presets)")

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
	if len(winds) == 0 {
		winds = sweep.WindPresets()
	}
	if len(falls) == 0 {
		falls = sweep.FallPresets()
	}
	sets := sweep.Combine(winds, falls)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d particles, seed %d)\n", len(sets), *pool, cfg.Particles, cfg.Seed)
	start := time.Now()
	results, err := sweep.Run(ctx, source, cfg.SimConfig(nil), sets, *pool)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("\nTop %d results (elapsed %s):\n", min(*top, len(results)), time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		fmt.Printf("%2d) %s\n", i+1, results[i])
	}
}
