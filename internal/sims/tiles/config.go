package tiles

import "strconv"

// Config controls the flipping simulation.
type Config struct {
	Generations int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Generations: 100}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["generations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Generations = parsed
		}
	}
	return c
}
