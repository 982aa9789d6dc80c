package core

// Frame is a rasterized snapshot of one generation in image space. X0 and Y0
// give the image-space position of cell (0, 0), so frames of a growing domain
// can be placed on a common canvas.
type Frame struct {
	X0, Y0 int
	W, H   int
	Cells  []uint8
}

// NewFrame allocates a zeroed frame.
func NewFrame(x0, y0, w, h int) Frame {
	return Frame{X0: x0, Y0: y0, W: w, H: h, Cells: make([]uint8, w*h)}
}

// Clone returns a frame that shares no memory with f.
func (f Frame) Clone() Frame {
	out := f
	out.Cells = append([]uint8(nil), f.Cells...)
	return out
}

// Size returns the frame dimensions.
func (f Frame) Size() Size { return Size{W: f.W, H: f.H} }

// Sink consumes one frame per generation. Generation 0 is the initial lattice.
type Sink interface {
	Frame(gen int, f Frame) error
	Close() error
}

// Bounds returns the image-space rectangle covering every frame.
func Bounds(frames []Frame) (x0, y0, w, h int) {
	if len(frames) == 0 {
		return 0, 0, 0, 0
	}
	x0, y0 = frames[0].X0, frames[0].Y0
	x1, y1 := x0+frames[0].W, y0+frames[0].H
	for _, f := range frames[1:] {
		x0 = min(x0, f.X0)
		y0 = min(y0, f.Y0)
		x1 = max(x1, f.X0+f.W)
		y1 = max(y1, f.Y0+f.H)
	}
	return x0, y0, x1 - x0, y1 - y0
}

// Align re-rasterizes frames onto their common bounds, padding with zero.
func Align(frames []Frame) []Frame {
	x0, y0, w, h := Bounds(frames)
	out := make([]Frame, len(frames))
	for i, f := range frames {
		dst := NewFrame(x0, y0, w, h)
		dx, dy := f.X0-x0, f.Y0-y0
		for row := 0; row < f.H; row++ {
			copy(dst.Cells[(row+dy)*w+dx:], f.Cells[row*f.W:(row+1)*f.W])
		}
		out[i] = dst
	}
	return out
}

// Count returns how many cells of the frame hold value v.
func (f Frame) Count(v uint8) int {
	n := 0
	for _, c := range f.Cells {
		if c == v {
			n++
		}
	}
	return n
}
