// Package seating simulates a waiting-area seating plan on a bordered square
// lattice until nobody moves.
package seating

import (
	"fmt"
	"io"

	"github.com/geostanley/advent-for-code/internal/core"
)

// Simulate drives l to a fixed point under rule. observe, when non-nil, sees
// every generation after the initial one.
func Simulate(l Lattice, rule Rule, cfg Config, observe core.Observer[Lattice]) (Lattice, []int, error) {
	driver := core.UntilStable[Lattice]{
		Step:           rule.Step(),
		Strict:         cfg.Strict,
		MaxGenerations: cfg.MaxGenerations,
		Observe:        observe,
	}
	final, signatures, err := driver.Run(l)
	if err != nil {
		return final, signatures, fmt.Errorf("%s rule: %w", rule, err)
	}
	return final, signatures, nil
}

// Run reads a layout and reports the occupied count at the fixed point of
// both rules.
func Run(r io.Reader, cfg map[string]string, open core.SinkFactory) (core.Run, error) {
	c := FromMap(cfg)
	initial, err := ReadLayout(r)
	if err != nil {
		return core.Run{}, err
	}

	out := core.Run{Series: map[string][]int{}}
	for _, rule := range []Rule{Adjacent, Visibility} {
		final, signatures, err := simulateInto(initial, rule, c, open)
		if err != nil {
			return out, err
		}
		out.Answers = append(out.Answers,
			core.Answer{Label: rule.String(), Value: CountOccupied(final)},
			core.Answer{Label: rule.String() + "_generations", Value: len(signatures)},
		)
		out.Series[rule.String()+"_signatures"] = signatures
	}
	return out, nil
}

func simulateInto(initial Lattice, rule Rule, c Config, open core.SinkFactory) (Lattice, []int, error) {
	var sink core.Sink
	if open != nil {
		s, err := open(rule.String())
		if err != nil {
			return initial, nil, fmt.Errorf("open %s sink: %w", rule, err)
		}
		sink = s
	}
	if sink == nil {
		return Simulate(initial, rule, c, nil)
	}

	if err := sink.Frame(0, initial.Frame()); err != nil {
		sink.Close()
		return initial, nil, fmt.Errorf("%s frame 0: %w", rule, err)
	}
	final, signatures, err := Simulate(initial, rule, c, func(gen int, l Lattice) error {
		return sink.Frame(gen, l.Frame())
	})
	if cerr := sink.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close %s sink: %w", rule, cerr)
	}
	return final, signatures, err
}

func init() {
	core.Register("seating", Run)
}
