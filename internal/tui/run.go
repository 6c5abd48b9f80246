package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"bomb-abm/internal/core"
	"bomb-abm/internal/sims/dispersal"
)

// Run animates sim on screen until the user quits. Keys: space pauses, n
// steps once, enter finishes the run, r releases again with the same seed,
// s with a fresh seed, q or esc quits. The caller owns screen Init/Fini.
func Run(screen tcell.Screen, sim *dispersal.Simulation, tps int) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	fs := core.NewFixedStep(tps)
	frame := time.NewTicker(time.Second / 60)
	defer frame.Stop()

	if sim.Particles() == nil {
		sim.Initialize()
	}
	paused := false
	for {
		draw(screen, sim, paused)
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					return nil
				case ev.Key() == tcell.KeyEnter:
					if !sim.Done() {
						sim.Run()
					}
				case ev.Key() == tcell.KeyRune:
					switch ev.Rune() {
					case ' ':
						paused = !paused
					case 'n':
						sim.Step()
					case 'r':
						sim.Reset(0)
					case 's':
						seed, err := core.NewSeed()
						if err != nil {
							return err
						}
						sim.Reset(seed)
					}
				}
			}
		case <-frame.C:
			if !paused && !sim.Done() && fs.ShouldStep() {
				sim.Step()
			}
		}
	}
}

func draw(screen tcell.Screen, sim *dispersal.Simulation, paused bool) {
	src := sim.Source().Source
	if sim.Done() {
		st := sim.Stats()
		Draw(screen, sim.Result(), &src, fmt.Sprintf(" done  landed %d  off-grid %d  airborne %d  max iterations %d  seed %d ",
			st.Landed, st.Dropped, st.Airborne, st.MaxIterations, sim.Seed()))
		return
	}
	state := "running"
	if paused {
		state = "paused"
	}
	Draw(screen, sim.Snapshot(), &src, fmt.Sprintf(" %s  tick %d  particles %d  seed %d ", state, sim.Ticks(), len(sim.Particles()), sim.Seed()))
}
