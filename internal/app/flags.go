package app

import (
	"flag"
	"fmt"
	"sort"
	"strings"
)

// Config represents the command-line parameters shared by the commands.
type Config struct {
	Sim    string
	Input  string
	Params Params

	Frames string
	Video  string
	Chart  string

	Scale   int
	FPS     int
	Run     string
	Changes bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "seating", Input: "-", Params: Params{}, Scale: 8, FPS: 7}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "runner to use (seating or tiles)")
	fs.StringVar(&c.Input, "input", c.Input, "puzzle input file, - for stdin")
	fs.Var(c.Params, "param", "runner parameter as key=value (repeatable)")
	fs.StringVar(&c.Frames, "frames", c.Frames, "directory for one PNG per generation")
	fs.StringVar(&c.Video, "video", c.Video, "directory for one MJPEG AVI per run")
	fs.StringVar(&c.Chart, "chart", c.Chart, "PNG file plotting the per-generation series")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell in exported images")
	fs.IntVar(&c.FPS, "fps", c.FPS, "frames per second for video and replay")
	fs.StringVar(&c.Run, "run", c.Run, "run to replay in the viewer (default: first)")
	fs.BoolVar(&c.Changes, "changes", c.Changes, "highlight cells that changed in the viewer")
}

// Params collects repeated key=value flags.
type Params map[string]string

// String renders the params in key order.
func (p Params) String() string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + p[k]
	}
	return strings.Join(parts, ",")
}

// Set parses one key=value pair.
func (p Params) Set(v string) error {
	key, value, ok := strings.Cut(v, "=")
	if !ok || key == "" {
		return fmt.Errorf("param %q is not key=value", v)
	}
	p[strings.TrimSpace(key)] = strings.TrimSpace(value)
	return nil
}
