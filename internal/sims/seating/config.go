package seating

import "strconv"

// Config controls how the seating runs are driven to a fixed point.
type Config struct {
	// Strict stops on the first generation without changes instead of on two
	// equal change signatures.
	Strict bool
	// MaxGenerations bounds each run; zero means unbounded.
	MaxGenerations int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["strict"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Strict = parsed
		}
	}
	if v, ok := cfg["max_generations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MaxGenerations = parsed
		}
	}
	return c
}
