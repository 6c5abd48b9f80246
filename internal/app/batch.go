package app

import (
	"fmt"
	"io"
	"os"

	"bomb-abm/internal/raster"
	"bomb-abm/internal/render"
	"bomb-abm/internal/report"
	"bomb-abm/internal/sims/dispersal"
)

// RunBatch performs one headless dispersal run, prints the counters and
// landing summary to out and writes the configured output files.
func RunBatch(cfg Config, out, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if err := cfg.EnsureSeed(); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	source, err := cfg.Source()
	if err != nil {
		return err
	}
	sim, err := dispersal.New(source, cfg.SimConfig(cfg.Logger(errOut)))
	if err != nil {
		return err
	}
	sim.Initialize()
	density := sim.Run()
	stats := sim.Stats()

	fmt.Fprintf(out, "seed %d\n", cfg.Seed)
	fmt.Fprintf(out, "particles %d  landed %d  off-grid %d  airborne %d  max iterations %d\n",
		stats.Particles, stats.Landed, stats.Dropped, stats.Airborne, stats.MaxIterations)
	fmt.Fprintln(out, report.Summarize(density, source.Source))

	if cfg.Out != "" {
		if err := raster.Save(cfg.Out, density); err != nil {
			return err
		}
	}
	if cfg.PNG != "" {
		src := source.Source
		if err := writeFile(cfg.PNG, func(w io.Writer) error {
			return render.WritePNG(w, density, &src, cfg.Scale)
		}); err != nil {
			return err
		}
	}
	if cfg.Chart != "" && stats.Landed > 0 {
		hist := report.DistanceHistogram(density, source.Source, cfg.Bins)
		if err := writeFile(cfg.Chart, func(w io.Writer) error {
			return report.WriteHistogramPNG(w, hist)
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
