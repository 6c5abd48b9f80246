package tui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"bomb-abm/internal/core"
	"bomb-abm/internal/sims/dispersal"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestDrawPlacesNorthAtTop(t *testing.T) {
	screen := newScreen(t, 20, 10)
	g, _ := core.GridFromRows([][]int{
		{0, 0, 0},
		{0, 0, 4},
	})
	src := core.Position{X: 0, Y: 0}
	Draw(screen, g, &src, "status")

	if r, _, _, _ := screen.GetContent(2, 0); r != '█' {
		t.Fatalf("north-east cell = %q, want full block", r)
	}
	if r, _, _, _ := screen.GetContent(0, 1); r != 'X' {
		t.Fatalf("source cell = %q, want X", r)
	}
	if r, _, _, _ := screen.GetContent(1, 1); r != ' ' {
		t.Fatalf("empty cell = %q", r)
	}
	if r, _, _, _ := screen.GetContent(0, 9); r != 's' {
		t.Fatalf("status line starts with %q", r)
	}
}

func TestBlockSize(t *testing.T) {
	cases := []struct{ w, h, sw, sh, want int }{
		{10, 10, 80, 24, 1},
		{300, 300, 80, 24, 13},
		{81, 5, 80, 24, 2},
	}
	for _, tc := range cases {
		if got := blockSize(tc.w, tc.h, tc.sw, tc.sh); got != tc.want {
			t.Fatalf("blockSize(%d,%d,%d,%d) = %d, want %d", tc.w, tc.h, tc.sw, tc.sh, got, tc.want)
		}
	}
}

func TestRunFinishesOnEnterAndQuits(t *testing.T) {
	screen := newScreen(t, 40, 20)
	src, _ := core.Blank(30, 15)
	cfg := dispersal.DefaultConfig()
	cfg.Particles = 50
	cfg.ReleaseHeight = 5
	sim, err := dispersal.New(src, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- Run(screen, sim, 30) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}
	if !sim.Done() {
		t.Fatal("enter did not finish the run")
	}
}
