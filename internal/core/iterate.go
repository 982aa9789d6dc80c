package core

import "fmt"

// Pos addresses a cell by row and column.
type Pos struct {
	Row, Col int
}

// Generation is the outcome of one synchronous update pass.
type Generation[L any] struct {
	Lattice L
	// Changed lists the cells whose state differs from the previous generation.
	Changed []Pos
	// Signature is the sum of Row+Col over Changed. It is a cheap witness, not a
	// full-state comparison.
	Signature int
}

// StepFunc computes the next generation from a lattice without mutating it.
type StepFunc[L any] func(L) Generation[L]

// Observer receives every generation as it is produced. Returning an error
// aborts the run.
type Observer[L any] func(gen int, lattice L) error

// UntilStable repeatedly applies Step until two consecutive signatures match.
type UntilStable[L any] struct {
	Step StepFunc[L]

	// Strict stops on the first generation with no changed cells instead of
	// comparing signatures.
	Strict bool

	// MaxGenerations bounds the run when positive.
	MaxGenerations int

	Observe Observer[L]
}

// Run drives the lattice to a fixed point and returns it together with the
// ordered per-generation signatures.
func (u UntilStable[L]) Run(initial L) (L, []int, error) {
	current := initial
	var signatures []int

	prev, cur := 0, 1
	for gen := 1; ; gen++ {
		if u.MaxGenerations > 0 && gen > u.MaxGenerations {
			return current, signatures, fmt.Errorf("%w (%d)", ErrNoConvergence, u.MaxGenerations)
		}

		next := u.Step(current)
		current = next.Lattice
		signatures = append(signatures, next.Signature)

		if u.Observe != nil {
			if err := u.Observe(gen, current); err != nil {
				return current, signatures, fmt.Errorf("observe generation %d: %w", gen, err)
			}
		}

		if u.Strict {
			if len(next.Changed) == 0 {
				return current, signatures, nil
			}
			continue
		}

		prev, cur = cur, next.Signature
		if prev == cur {
			return current, signatures, nil
		}
	}
}

// Repeat applies step exactly n times.
func Repeat[L any](initial L, n int, step func(L) L, observe Observer[L]) (L, error) {
	current := initial
	for gen := 1; gen <= n; gen++ {
		current = step(current)
		if observe != nil {
			if err := observe(gen, current); err != nil {
				return current, fmt.Errorf("observe generation %d: %w", gen, err)
			}
		}
	}
	return current, nil
}

// SignatureOf sums Row+Col over the given cells.
func SignatureOf(changed []Pos) int {
	sum := 0
	for _, p := range changed {
		sum += p.Row + p.Col
	}
	return sum
}
