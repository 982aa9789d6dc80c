package seating

import "github.com/geostanley/advent-for-code/internal/core"

// directions lists the eight (row, col) offsets around a seat.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Rule selects how a seat finds its neighbours.
type Rule int

const (
	// Adjacent counts the eight touching cells and evicts at 4.
	Adjacent Rule = iota
	// Visibility counts the first seat seen in each direction and evicts at 5.
	Visibility
)

// String returns the rule name used for answers and exports.
func (r Rule) String() string {
	if r == Visibility {
		return "visibility"
	}
	return "adjacent"
}

// Step returns the step function implementing the rule.
func (r Rule) Step() core.StepFunc[Lattice] {
	if r == Visibility {
		return StepVisibility
	}
	return StepAdjacent
}

// StepAdjacent applies the adjacency rule to every interior seat at once.
func StepAdjacent(l Lattice) core.Generation[Lattice] {
	return step(l, adjacentOccupied, 4)
}

// StepVisibility applies the line-of-sight rule to every interior seat at once.
func StepVisibility(l Lattice) core.Generation[Lattice] {
	return step(l, visibleOccupied, 5)
}

func step(l Lattice, occupied func(Lattice, int, int) int, tolerance int) core.Generation[Lattice] {
	next := l.grid.Clone()
	var changed []core.Pos
	for row := 1; row < l.grid.H-1; row++ {
		for col := 1; col < l.grid.W-1; col++ {
			seat := l.grid.At(col, row)
			if seat == Floor {
				continue
			}
			n := occupied(l, row, col)
			switch {
			case seat == Empty && n == 0:
				next.Set(col, row, Occupied)
			case seat == Occupied && n >= tolerance:
				next.Set(col, row, Empty)
			default:
				continue
			}
			changed = append(changed, core.Pos{Row: row, Col: col})
		}
	}
	return core.Generation[Lattice]{
		Lattice:   Lattice{grid: next},
		Changed:   changed,
		Signature: core.SignatureOf(changed),
	}
}

func adjacentOccupied(l Lattice, row, col int) int {
	n := 0
	for _, d := range directions {
		r, c := row+d[0], col+d[1]
		if l.grid.Contains(c, r) && l.grid.At(c, r) == Occupied {
			n++
		}
	}
	return n
}

func visibleOccupied(l Lattice, row, col int) int {
	n := 0
	for _, d := range directions {
		if firstSeen(l, row, col, d[0], d[1]) == Occupied {
			n++
		}
	}
	return n
}

// firstSeen scans outward from (row, col) and returns the first non-Floor
// seat, or Floor when the scan leaves the lattice first.
func firstSeen(l Lattice, row, col, dr, dc int) Seat {
	r, c := row+dr, col+dc
	for l.grid.Contains(c, r) {
		if s := l.grid.At(c, r); s != Floor {
			return s
		}
		r, c = r+dr, c+dc
	}
	return Floor
}
