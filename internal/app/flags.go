package app

import (
	"flag"
	"strconv"
	"strings"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim     string
	Pattern string
	Scale   int
	TPS     int
	Seed    int64
	HUD     int
	Sets    KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "lives", Scale: 4, TPS: 60, Seed: 42, HUD: 260}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "RLE pattern file to load")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUD, "hud", c.HUD, "HUD panel width in pixels (0 hides it)")
	fs.Var(&c.Sets, "set", "sim option in key=value form (repeatable)")
}

// Options merges the -set overrides with the dedicated flags into the
// key/value map the sim factories read. Malformed entries are skipped.
func (c *Config) Options() map[string]string {
	opts := c.Sets.Map()
	if c.Pattern != "" {
		opts["pattern"] = c.Pattern
	}
	if _, ok := opts["seed"]; !ok {
		opts["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	return opts
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one key=value entry.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map splits the entries into a map; later keys win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			continue
		}
		out[key] = strings.TrimSpace(value)
	}
	return out
}
