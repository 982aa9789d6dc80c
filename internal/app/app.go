//go:build ebiten

package app

import (
	"github.com/geostanley/advent-for-code/internal/core"
	"github.com/geostanley/advent-for-code/internal/render"
	"github.com/geostanley/advent-for-code/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts a replayed run to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	pacer   *core.FixedStep

	scale  int
	paused bool
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale, fps int, changes bool) *Game {
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim, hudWidth),
		pacer:   core.NewFixedStep(fps),
		scale:   scale,
	}
	if changes {
		g.overlay = ui.NewOverlay(sim, scale)
	}
	return g
}

// Update handles per-frame logic and advances the replay.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}

	if !g.paused && g.pacer.ShouldStep() {
		g.sim.Step()
	}
	g.hud.Update(g.paused)
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), render.Magma, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + hudWidth, max(s.H*g.scale, ui.MinHeight)
}
