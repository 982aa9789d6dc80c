package seating

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/geostanley/advent-for-code/internal/core"
)

// Seat enumerates the square-lattice cell states.
type Seat uint8

const (
	Floor Seat = iota
	Empty
	Occupied
)

// String renders a seat with the puzzle's layout characters.
func (s Seat) String() string {
	switch s {
	case Empty:
		return "L"
	case Occupied:
		return "#"
	default:
		return "."
	}
}

func seatFor(ch rune) (Seat, bool) {
	switch ch {
	case '.':
		return Floor, true
	case 'L':
		return Empty, true
	case '#':
		return Occupied, true
	}
	return Floor, false
}

// Lattice is a seating plan padded with one ring of Floor on every side.
// Steps never modify a Lattice; they return a new one.
type Lattice struct {
	grid *core.Grid[Seat]
}

// ParseLayout builds a bordered lattice from layout rows.
func ParseLayout(rows []string) (Lattice, error) {
	if len(rows) == 0 {
		return Lattice{}, fmt.Errorf("empty layout: %w", core.ErrMalformedInput)
	}
	cols := len(rows[0])
	if cols == 0 {
		return Lattice{}, fmt.Errorf("empty first row: %w", core.ErrMalformedInput)
	}

	grid := core.NewGrid[Seat](cols+2, len(rows)+2)
	for r, line := range rows {
		if len(line) != cols {
			return Lattice{}, fmt.Errorf("row %d has %d cells, expected %d: %w", r+1, len(line), cols, core.ErrDimensionMismatch)
		}
		for c, ch := range line {
			seat, ok := seatFor(ch)
			if !ok {
				return Lattice{}, fmt.Errorf("row %d col %d: unexpected %q: %w", r+1, c+1, ch, core.ErrMalformedInput)
			}
			grid.Set(c+1, r+1, seat)
		}
	}
	return Lattice{grid: grid}, nil
}

// ReadLayout reads one row per line, skipping blank lines.
func ReadLayout(r io.Reader) (Lattice, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return Lattice{}, fmt.Errorf("read layout: %w", err)
	}
	return ParseLayout(rows)
}

// Rows returns the lattice height including the border.
func (l Lattice) Rows() int { return l.grid.H }

// Cols returns the lattice width including the border.
func (l Lattice) Cols() int { return l.grid.W }

// At returns the seat at (row, col) in bordered coordinates.
func (l Lattice) At(row, col int) Seat { return l.grid.At(col, row) }

// Equal reports whether both lattices hold the same seats.
func (l Lattice) Equal(o Lattice) bool {
	if l.grid.W != o.grid.W || l.grid.H != o.grid.H {
		return false
	}
	a, b := l.grid.Cells(), o.grid.Cells()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String renders the interior rows, one per line.
func (l Lattice) String() string {
	var b strings.Builder
	for row := 1; row < l.grid.H-1; row++ {
		for col := 1; col < l.grid.W-1; col++ {
			b.WriteString(l.At(row, col).String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Frame rasterizes the whole lattice, border included.
func (l Lattice) Frame() core.Frame {
	f := core.NewFrame(0, 0, l.grid.W, l.grid.H)
	for i, s := range l.grid.Cells() {
		f.Cells[i] = uint8(s)
	}
	return f
}

// CountOccupied counts Occupied seats over the whole lattice.
func CountOccupied(l Lattice) int {
	n := 0
	for _, s := range l.grid.Cells() {
		if s == Occupied {
			n++
		}
	}
	return n
}
