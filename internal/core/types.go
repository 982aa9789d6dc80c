package core

import (
	"io"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the minimal contract the viewer needs to play a simulation.
type Sim interface {
	Name() string
	Size() Size
	Step()
	Cells() []uint8
}

// Answer is one labelled result of a run.
type Answer struct {
	Label string
	Value int
}

// Run carries everything a runner produces besides errors.
type Run struct {
	Answers []Answer
	// Series holds per-generation values worth plotting, keyed by name.
	Series map[string][]int
}

// SinkFactory opens the sink for one named run. It may return a nil Sink when
// the run should not be exported.
type SinkFactory func(run string) (Sink, error)

// Runner reads puzzle input, runs its automata and reports answers. When open
// is non-nil every generation of every run is offered to the sink it returns;
// the runner closes each sink it opened.
type Runner func(r io.Reader, cfg map[string]string, open SinkFactory) (Run, error)

var runners = map[string]Runner{}

// Register adds a runner under the provided name.
func Register(name string, r Runner) {
	if name == "" || r == nil {
		return
	}
	runners[name] = r
}

// Runners exposes the registry of available runners.
func Runners() map[string]Runner {
	return runners
}

// RunnerNames lists registered runners in sorted order.
func RunnerNames() []string {
	names := make([]string, 0, len(runners))
	for name := range runners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
