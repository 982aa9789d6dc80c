package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/geostanley/advent-for-code/internal/core"
	"github.com/geostanley/advent-for-code/internal/render"
)

// OpenInput opens the configured input; "-" or "" reads stdin.
func (c *Config) OpenInput() (io.ReadCloser, error) {
	if c.Input == "" || c.Input == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(c.Input)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

// Exports returns the sink factory for the configured PNG and video outputs,
// or nil when nothing is exported.
func (c *Config) Exports() core.SinkFactory {
	if c.Frames == "" && c.Video == "" {
		return nil
	}
	return func(run string) (core.Sink, error) {
		name := c.Sim + "_" + run
		var frames, video core.Sink
		if c.Frames != "" {
			s, err := render.NewPNGSink(c.Frames, name, render.Magma, c.Scale)
			if err != nil {
				return nil, err
			}
			frames = s
		}
		if c.Video != "" {
			if err := os.MkdirAll(c.Video, 0o755); err != nil {
				return nil, fmt.Errorf("create video dir: %w", err)
			}
			video = render.NewVideoSink(filepath.Join(c.Video, name+".avi"), render.Magma, c.FPS, c.Scale)
		}
		return render.Multi(frames, video), nil
	}
}

// Recordings captures every run in memory for the viewer.
type Recordings struct {
	order []string
	byRun map[string]*render.Recorder
}

// NewRecordings returns an empty set of recordings.
func NewRecordings() *Recordings {
	return &Recordings{byRun: map[string]*render.Recorder{}}
}

// Open implements core.SinkFactory.
func (r *Recordings) Open(run string) (core.Sink, error) {
	rec := render.NewRecorder()
	if _, ok := r.byRun[run]; !ok {
		r.order = append(r.order, run)
	}
	r.byRun[run] = rec
	return rec, nil
}

// Replay builds a replay of the named run, or of the first run when name is
// empty.
func (r *Recordings) Replay(sim, name string) (*core.Replay, error) {
	if name == "" {
		if len(r.order) == 0 {
			return nil, fmt.Errorf("%s recorded no runs", sim)
		}
		name = r.order[0]
	}
	rec, ok := r.byRun[name]
	if !ok {
		return nil, fmt.Errorf("%s has no run %q (have %v)", sim, name, r.order)
	}
	return core.NewReplay(sim+" "+name, rec.Frames(), 2), nil
}
