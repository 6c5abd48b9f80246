//go:build !ebiten

package app

import (
	"fmt"

	"bomb-abm/internal/core"
)

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// Options mirrors the GUI build's viewer options.
type Options struct {
	Scale    int
	HUDWidth int
	Seed     int64
	Out      string
	Logger   core.Logger
}

// New panics to indicate that the ebiten build tag is required for GUI support.
func New(core.Sim, Options) *Game {
	panic("app.New requires building with the 'ebiten' tag")
}

// Reset is a no-op placeholder.
func (g *Game) Reset(int64) {}

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error {
	return fmt.Errorf("app.Game.Update requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
