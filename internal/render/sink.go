package render

import (
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/geostanley/advent-for-code/internal/core"
)

// Recorder keeps a private copy of every frame it receives.
type Recorder struct {
	frames []core.Frame
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Frame stores a copy of f.
func (r *Recorder) Frame(_ int, f core.Frame) error {
	r.frames = append(r.frames, f.Clone())
	return nil
}

// Close is a no-op.
func (r *Recorder) Close() error { return nil }

// Frames returns the recorded frames in arrival order.
func (r *Recorder) Frames() []core.Frame { return r.frames }

// PNGSink writes one PNG file per generation as <dir>/<prefix>_<gen>.png.
type PNGSink struct {
	dir     string
	prefix  string
	palette []color.RGBA
	scale   int
	paths   []string
}

// NewPNGSink creates dir if needed and returns a sink writing into it.
func NewPNGSink(dir, prefix string, palette []color.RGBA, scale int) (*PNGSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create frame dir: %w", err)
	}
	return &PNGSink{dir: dir, prefix: prefix, palette: palette, scale: scale}, nil
}

// Frame encodes f to its own file.
func (s *PNGSink) Frame(gen int, f core.Frame) error {
	path := filepath.Join(s.dir, fmt.Sprintf("%s_%d.png", s.prefix, gen))
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(out, Image(f, s.palette, s.scale)); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return err
	}
	s.paths = append(s.paths, path)
	return nil
}

// Close is a no-op; every frame is flushed as it is written.
func (s *PNGSink) Close() error { return nil }

// Paths lists the files written so far.
func (s *PNGSink) Paths() []string { return s.paths }

// VideoSink records frames and writes them as an MJPEG AVI on Close.
type VideoSink struct {
	Recorder
	path    string
	palette []color.RGBA
	fps     int
	scale   int
}

// NewVideoSink returns a sink that composes a video at path when closed.
func NewVideoSink(path string, palette []color.RGBA, fps, scale int) *VideoSink {
	return &VideoSink{path: path, palette: palette, fps: fps, scale: scale}
}

// Close writes the recorded frames to the video file.
func (s *VideoSink) Close() error {
	return WriteVideo(s.path, s.Frames(), s.palette, s.fps, s.scale)
}

type multiSink []core.Sink

// Multi fans every frame out to all sinks. Nil sinks are dropped; when none
// remain Multi returns nil.
func Multi(sinks ...core.Sink) core.Sink {
	var m multiSink
	for _, s := range sinks {
		if s != nil {
			m = append(m, s)
		}
	}
	switch len(m) {
	case 0:
		return nil
	case 1:
		return m[0]
	}
	return m
}

func (m multiSink) Frame(gen int, f core.Frame) error {
	for _, s := range m {
		if err := s.Frame(gen, f); err != nil {
			return err
		}
	}
	return nil
}

func (m multiSink) Close() error {
	var errs []error
	for _, s := range m {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
