package core

import "strconv"

// Replay plays back recorded frames as a Sim. Frames are aligned to common
// bounds so the viewer sees a fixed-size grid while a sparse domain grows.
type Replay struct {
	name   string
	frames []Frame
	pos    int
	on     uint8
}

// NewReplay builds a replay of frames. on is the cell value counted on the HUD.
func NewReplay(name string, frames []Frame, on uint8) *Replay {
	aligned := Align(frames)
	if len(aligned) == 0 {
		aligned = []Frame{NewFrame(0, 0, 1, 1)}
	}
	return &Replay{name: name, frames: aligned, on: on}
}

// Name returns the run identifier.
func (r *Replay) Name() string { return r.name }

// Size returns the common frame dimensions.
func (r *Replay) Size() Size { return r.frames[0].Size() }

// Cells exposes the current frame.
func (r *Replay) Cells() []uint8 { return r.frames[r.pos].Cells }

// PrevCells exposes the frame before the current one, or nil on the first.
func (r *Replay) PrevCells() []uint8 {
	if r.pos == 0 {
		return nil
	}
	return r.frames[r.pos-1].Cells
}

// Step advances to the next recorded generation, holding on the last one.
func (r *Replay) Step() {
	if r.pos < len(r.frames)-1 {
		r.pos++
	}
}

// Rewind returns to the first frame.
func (r *Replay) Rewind() { r.pos = 0 }

// Generation reports the index of the current frame.
func (r *Replay) Generation() int { return r.pos }

// Done reports whether the last frame is showing.
func (r *Replay) Done() bool { return r.pos == len(r.frames)-1 }

// Parameters describes the replay position for the HUD.
func (r *Replay) Parameters() ParameterSnapshot {
	return ParameterSnapshot{Groups: []ParameterGroup{
		{
			Name: "Run",
			Params: []Parameter{
				StringParam("run", "Run", r.name),
				IntParam("generation", "Generation", r.pos),
				StringParam("of", "Recorded", strconv.Itoa(len(r.frames)-1)),
				IntParam("count", "Cells on", r.frames[r.pos].Count(r.on)),
			},
		},
	}}
}
