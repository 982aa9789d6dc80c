//go:build ebiten

package ui

import (
	"github.com/geostanley/advent-for-code/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

type previousProvider interface {
	PrevCells() []uint8
}

// Overlay tints the cells that changed since the previous generation.
type Overlay struct {
	sim     core.Sim
	scale   int
	maskImg *ebiten.Image
	maskBuf []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	size := sim.Size()
	return &Overlay{
		sim:     sim,
		scale:   scale,
		maskImg: ebiten.NewImage(size.W, size.H),
		maskBuf: make([]byte, 4*size.W*size.H),
	}
}

// Draw paints the change mask over the grid.
func (o *Overlay) Draw(screen *ebiten.Image) {
	provider, ok := o.sim.(previousProvider)
	if !ok {
		return
	}
	prev := provider.PrevCells()
	cur := o.sim.Cells()
	if len(prev) != len(cur) || len(cur)*4 != len(o.maskBuf) {
		return
	}
	for i := range cur {
		base := i * 4
		if prev[i] == cur[i] {
			o.maskBuf[base+0] = 0
			o.maskBuf[base+1] = 0
			o.maskBuf[base+2] = 0
			o.maskBuf[base+3] = 0
			continue
		}
		// Premultiplied translucent orange.
		o.maskBuf[base+0] = 150
		o.maskBuf[base+1] = 80
		o.maskBuf[base+2] = 20
		o.maskBuf[base+3] = 150
	}
	o.maskImg.WritePixels(o.maskBuf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.maskImg, op)
}
