package life

import (
	"strconv"

	"rect-lives/pkg/lives"
)

// Config holds the options of the byte-buffer board.
type Config struct {
	Width  int
	Height int
	Rule   lives.Rule
	Torus  bool
	Seed   int64

	// HasRule is set when the options name a rule, which then overrides the
	// rule of a loaded pattern.
	HasRule     bool
	PatternPath string
}

// DefaultConfig returns a 256x256 Conway torus.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: lives.Conway, Torus: true, Seed: 42}
}

// FromMap populates a Config from a string map, ignoring unreadable values.
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
		c.Rule = lives.ParseRule(v)
		c.HasRule = true
	}
	if v, ok := cfg["pattern"]; ok {
		c.PatternPath = v
	}
	if v, ok := cfg["torus"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Torus = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
