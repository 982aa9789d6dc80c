package tiles

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/geostanley/advent-for-code/internal/core"
)

// Color is the face a tile shows.
type Color uint8

const (
	White Color = iota
	Black
)

// String returns the color name.
func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// Floor maps every discovered tile to its color. A missing key means the tile
// has not been discovered yet; discovered tiles are never removed.
type Floor map[Coord]Color

// Clone returns an independent copy of f.
func (f Floor) Clone() Floor {
	out := make(Floor, len(f))
	for c, v := range f {
		out[c] = v
	}
	return out
}

// Toggle flips the tile at c. An undiscovered tile turns Black.
func Toggle(f Floor, c Coord) {
	if v, ok := f[c]; ok && v == Black {
		f[c] = White
		return
	}
	f[c] = Black
}

// ReadFloor follows one path per line from the reference tile and toggles the
// tile each path ends on.
func ReadFloor(r io.Reader) (Floor, error) {
	f := Floor{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		dirs, err := SplitPath(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		Toggle(f, ParsePath(dirs))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read paths: %w", err)
	}
	return f, nil
}

// ExpandDomain returns a copy of f where every neighbour of a known tile is
// present, new ones White.
func ExpandDomain(f Floor) Floor {
	out := f.Clone()
	for c := range f {
		for _, n := range c.Neighbors() {
			if _, ok := out[n]; !ok {
				out[n] = White
			}
		}
	}
	return out
}

// Step applies the flipping rule to every known tile at once. Neighbours
// missing from f count as White, so callers expand the domain first.
func Step(f Floor) Floor {
	out := make(Floor, len(f))
	for c, v := range f {
		black := 0
		for _, n := range c.Neighbors() {
			if f[n] == Black {
				black++
			}
		}
		switch {
		case v == Black && (black == 0 || black > 2):
			out[c] = White
		case v == White && black == 2:
			out[c] = Black
		default:
			out[c] = v
		}
	}
	return out
}

// Advance runs one full generation: domain expansion followed by a step.
func Advance(f Floor) Floor {
	return Step(ExpandDomain(f))
}

// CountBlack counts Black tiles.
func CountBlack(f Floor) int {
	n := 0
	for _, v := range f {
		if v == Black {
			n++
		}
	}
	return n
}

// Frame rasterizes the known domain with north up. Cells hold 0 for gaps and
// undiscovered tiles, 1 for White and 2 for Black.
func (f Floor) Frame() core.Frame {
	if len(f) == 0 {
		return core.NewFrame(0, 0, 0, 0)
	}
	minX, minY := math.MaxInt, math.MaxInt
	maxX, maxY := math.MinInt, math.MinInt
	for c := range f {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}
	frame := core.NewFrame(minX, -maxY, maxX-minX+1, maxY-minY+1)
	for c, v := range f {
		frame.Cells[(maxY-c.Y)*frame.W+(c.X-minX)] = uint8(v) + 1
	}
	return frame
}
