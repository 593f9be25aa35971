package life

import "strconv"

// Config holds parameters for the Game of Life simulation.
type Config struct {
	Width  int
	Height int

	// Density is the probability that a cell starts alive.
	Density float64
	// Generations is the number of updates after which the run completes.
	Generations int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 50, Height: 50, Density: 0.2, Generations: 100}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["generations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Generations = parsed
		}
	}
	return c
}
