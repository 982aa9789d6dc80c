// Package tiles flips hexagonal floor tiles: first by following paths from a
// reference tile, then as a daily neighbour-counting automaton.
package tiles

import (
	"fmt"
	"io"

	"github.com/geostanley/advent-for-code/internal/core"
)

// Simulate advances f for the given number of generations.
func Simulate(f Floor, generations int, observe core.Observer[Floor]) (Floor, error) {
	return core.Repeat(f, generations, Advance, observe)
}

// Run reads paths and reports the black tile count after toggling and after
// the configured number of generations.
func Run(r io.Reader, cfg map[string]string, open core.SinkFactory) (core.Run, error) {
	c := FromMap(cfg)
	initial, err := ReadFloor(r)
	if err != nil {
		return core.Run{}, err
	}

	var sink core.Sink
	if open != nil {
		if sink, err = open("tiles"); err != nil {
			return core.Run{}, fmt.Errorf("open tiles sink: %w", err)
		}
	}

	var counts []int
	observe := func(gen int, f Floor) error {
		counts = append(counts, CountBlack(f))
		if sink == nil {
			return nil
		}
		return sink.Frame(gen, f.Frame())
	}

	var final Floor
	if err = observe(0, initial); err == nil {
		final, err = Simulate(initial, c.Generations, observe)
	}
	if sink != nil {
		if cerr := sink.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close tiles sink: %w", cerr)
		}
	}
	if err != nil {
		return core.Run{}, err
	}

	return core.Run{
		Answers: []core.Answer{
			{Label: "initial", Value: CountBlack(initial)},
			{Label: "final", Value: CountBlack(final)},
		},
		Series: map[string][]int{"black": counts},
	}, nil
}

func init() {
	core.Register("tiles", Run)
}
