package app

import (
	"flag"
	"testing"
)

func TestBindAndOptions(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("lives", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{
		"-pattern", "glider.rle",
		"-seed", "7",
		"-set", "torus=true",
		"-set", "margin = 4",
		"-set", "broken",
		"-set", "=empty",
		"-set", "margin=5",
	})
	if err != nil {
		t.Fatal(err)
	}
	opts := cfg.Options()
	want := map[string]string{"pattern": "glider.rle", "seed": "7", "torus": "true", "margin": "5"}
	if len(opts) != len(want) {
		t.Fatalf("options = %v, want %v", opts, want)
	}
	for k, v := range want {
		if opts[k] != v {
			t.Fatalf("option %s = %q, want %q", k, opts[k], v)
		}
	}
}

func TestExplicitSeedWins(t *testing.T) {
	cfg := NewConfig()
	cfg.Sets = KVList{"seed=3"}
	if got := cfg.Options()["seed"]; got != "3" {
		t.Fatalf("seed = %q, want 3", got)
	}
}
