package rectlives

import (
	"strconv"
	"strings"
)

// Config controls the rectangle-lives simulation.
type Config struct {
	// Width and Height override the pattern's board size when positive.
	Width  int
	Height int
	// Rule overrides the pattern's rule when set.
	Rule   string
	Torus  bool
	Margin int
	// Fade is the death timer length in generations; applied on Reset.
	Fade int
	// Density is the live fraction of the random soup used without a pattern.
	Density     float64
	PatternPath string
	Seed        int64
	// Rate is the number of generations per second the viewer aims for.
	Rate int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Fade:    8,
		Density: 0.25,
		Seed:    42,
		Rate:    15,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unreadable values keep their defaults.
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
	if v, ok := cfg["rule"]; ok {
		c.Rule = strings.TrimSpace(v)
	}
	if v, ok := cfg["torus"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Torus = parsed
		}
	}
	if v, ok := cfg["margin"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Margin = parsed
		}
	}
	if v, ok := cfg["fade"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Fade = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		c.PatternPath = strings.TrimSpace(v)
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["rate"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rate = parsed
		}
	}
	return c
}
