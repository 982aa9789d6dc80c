package core

import (
	"slices"
	"testing"
)

func TestAlignPadsToCommonBounds(t *testing.T) {
	small := Frame{X0: 0, Y0: 0, W: 2, H: 1, Cells: []uint8{1, 2}}
	large := Frame{X0: -1, Y0: -1, W: 4, H: 3, Cells: []uint8{
		1, 1, 1, 1,
		1, 2, 2, 1,
		1, 1, 1, 1,
	}}

	x0, y0, w, h := Bounds([]Frame{small, large})
	if x0 != -1 || y0 != -1 || w != 4 || h != 3 {
		t.Fatalf("bounds (%d,%d,%d,%d)", x0, y0, w, h)
	}

	aligned := Align([]Frame{small, large})
	want := []uint8{
		0, 0, 0, 0,
		0, 1, 2, 0,
		0, 0, 0, 0,
	}
	if !slices.Equal(aligned[0].Cells, want) {
		t.Fatalf("aligned small frame %v, expected %v", aligned[0].Cells, want)
	}
	if !slices.Equal(aligned[1].Cells, large.Cells) {
		t.Fatalf("large frame should be unchanged, got %v", aligned[1].Cells)
	}
}

func TestFrameCloneAndCount(t *testing.T) {
	f := Frame{W: 3, H: 1, Cells: []uint8{2, 0, 2}}
	c := f.Clone()
	c.Cells[0] = 1
	if f.Cells[0] != 2 {
		t.Fatal("clone shares cells with original")
	}
	if got := f.Count(2); got != 2 {
		t.Fatalf("expected 2 cells of value 2, got %d", got)
	}
	if _, _, w, h := Bounds(nil); w != 0 || h != 0 {
		t.Fatal("empty bounds should be zero")
	}
}
