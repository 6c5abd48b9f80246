//go:build ebiten

package app

import (
	"image/color"

	"bomb-abm/internal/core"
	"bomb-abm/internal/raster"
	"bomb-abm/internal/render"
	"bomb-abm/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// finisher is implemented by simulations that can complete a run in one call.
type finisher interface {
	Run() *core.Grid
	Done() bool
	Result() *core.Grid
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	palette []color.RGBA
	overlay *ui.Overlay
	hud     *ui.HUD
	logger  core.Logger

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
	out      string
}

// Options tunes the viewer.
type Options struct {
	Scale    int
	HUDWidth int
	Seed     int64
	// Out is where W saves the finished density raster.
	Out    string
	Logger core.Logger
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, opts Options) *Game {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	return &Game{
		sim:      sim,
		painter:  gp,
		palette:  render.HeatPalette(),
		overlay:  ui.NewOverlay(sim, opts.Scale),
		hud:      ui.NewHUD(sim, opts.HUDWidth),
		logger:   core.OrDiscard(opts.Logger),
		scale:    opts.Scale,
		hudWidth: opts.HUDWidth,
		seed:     opts.Seed,
		out:      opts.Out,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		seed, err := core.NewSeed()
		if err != nil {
			return err
		}
		g.Reset(seed)
	}
	if f, ok := g.sim.(finisher); ok {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && !f.Done() {
			f.Run()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyW) {
			g.save(f)
		}
	}

	g.overlay.Update()
	g.hud.Update(g.sim.Size().W * g.scale)

	if (!g.paused) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) save(f finisher) {
	if g.out == "" {
		return
	}
	if !f.Done() {
		g.logger.Printf("run still in progress, nothing saved")
		return
	}
	if err := raster.Save(g.out, f.Result()); err != nil {
		g.logger.Printf("save density: %v", err)
		return
	}
	g.logger.Printf("density written to %s", g.out)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
