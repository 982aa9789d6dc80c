package render

import (
	"image"
	"image/color"

	"github.com/geostanley/advent-for-code/internal/core"
)

// Magma is a reversed magma ramp: value 0 renders mid purple (floor or
// undiscovered), 1 renders pale yellow (empty seat or white tile) and 2
// renders near black (occupied seat or black tile).
var Magma = []color.RGBA{
	{R: 183, G: 55, B: 121, A: 255},
	{R: 252, G: 253, B: 191, A: 255},
	{R: 0, G: 0, B: 4, A: 255},
}

// FillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black. Values past
// the end of the palette use its last color.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Image rasterizes a frame with every cell drawn as a scale×scale block.
func Image(f core.Frame, palette []color.RGBA, scale int) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	src := make([]byte, 4*len(f.Cells))
	FillPaletteRGBA(src, f.Cells, palette)

	img := image.NewRGBA(image.Rect(0, 0, f.W*scale, f.H*scale))
	for y := 0; y < f.H*scale; y++ {
		for x := 0; x < f.W; x++ {
			from := src[4*(y/scale*f.W+x) : 4*(y/scale*f.W+x)+4]
			row := img.Pix[y*img.Stride+4*x*scale:]
			for k := 0; k < scale; k++ {
				copy(row[4*k:4*k+4], from)
			}
		}
	}
	return img
}
