//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"github.com/geostanley/advent-for-code/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MinHeight is the smallest window height that fits the HUD text.
const MinHeight = 160

const lineHeight = 16

var (
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor = color.RGBA{R: 252, G: 253, B: 191, A: 255}
	textColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
)

// HUD renders the replay state to the right of the simulation view.
type HUD struct {
	sim      core.Sim
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot
	paused   bool
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width}
}

// Update refreshes the cached parameter snapshot from the simulation.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	h.paused = paused
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := max(h.sim.Size().H*scale, MinHeight)
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := lineHeight
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, strings.ToUpper(group.Name), face, 8, y, titleColor)
		y += lineHeight
		for _, p := range group.Params {
			text.Draw(h.panel, p.Label+": "+p.Value, face, 12, y, textColor)
			y += lineHeight
		}
		y += lineHeight / 2
	}
	status := "space pause  q quit"
	if h.paused {
		status = "paused"
	}
	text.Draw(h.panel, status, face, 8, height-8, textColor)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
