package tiles

import (
	"fmt"
	"strings"

	"github.com/geostanley/advent-for-code/internal/core"
)

// Coord addresses a hex tile in doubled coordinates: east/west steps move X by
// two, diagonal steps move both X and Y by one.
type Coord struct {
	X, Y int
}

// Add returns the vector sum of c and o.
func (c Coord) Add(o Coord) Coord { return Coord{X: c.X + o.X, Y: c.Y + o.Y} }

// Neighbors returns the six adjacent tiles in Direction order.
func (c Coord) Neighbors() [6]Coord {
	var out [6]Coord
	for i, off := range offsets {
		out[i] = c.Add(off)
	}
	return out
}

// Direction is one of the six hex step directions.
type Direction uint8

const (
	E Direction = iota
	SE
	SW
	W
	NW
	NE
)

var offsets = [6]Coord{
	E:  {X: 2, Y: 0},
	SE: {X: 1, Y: -1},
	SW: {X: -1, Y: -1},
	W:  {X: -2, Y: 0},
	NW: {X: -1, Y: 1},
	NE: {X: 1, Y: 1},
}

var directionNames = [6]string{"e", "se", "sw", "w", "nw", "ne"}

// Offset returns the step vector of d.
func (d Direction) Offset() Coord { return offsets[d] }

// String returns the path token for d.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// ParseDirection maps a path token to its Direction.
func ParseDirection(tok string) (Direction, bool) {
	for i, name := range directionNames {
		if name == tok {
			return Direction(i), true
		}
	}
	return 0, false
}

// SplitPath tokenizes a path line, cutting after every 'e' or 'w'.
func SplitPath(line string) ([]Direction, error) {
	var dirs []Direction
	start := 0
	for i := 0; i < len(line); i++ {
		if line[i] != 'e' && line[i] != 'w' {
			continue
		}
		tok := line[start : i+1]
		d, ok := ParseDirection(tok)
		if !ok {
			return nil, fmt.Errorf("col %d: unknown direction %q: %w", start+1, tok, core.ErrMalformedInput)
		}
		dirs = append(dirs, d)
		start = i + 1
	}
	if start < len(line) {
		return nil, fmt.Errorf("col %d: unterminated direction %q: %w", start+1, line[start:], core.ErrMalformedInput)
	}
	return dirs, nil
}

// ParsePath folds a path from the reference tile at (0, 0).
func ParsePath(dirs []Direction) Coord {
	var c Coord
	for _, d := range dirs {
		c = c.Add(d.Offset())
	}
	return c
}

// PathString renders dirs back into a path line.
func PathString(dirs []Direction) string {
	var b strings.Builder
	for _, d := range dirs {
		b.WriteString(d.String())
	}
	return b.String()
}
