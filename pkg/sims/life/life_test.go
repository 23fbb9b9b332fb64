package life

import (
	"path/filepath"
	"testing"

	"rect-lives/pkg/lives"
)

func TestBlinkerOscillation(t *testing.T) {
	life := New(5, 5, lives.Conway, true)
	life.Load(lives.Pattern{Cells: []lives.Point{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}}})

	life.Step()
	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != life.Alive(x, y) {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, life.Alive(x, y), shouldBeAlive)
			}
		}
	}

	life.Step()
	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != life.Alive(x, y) {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, life.Alive(x, y), shouldBeAlive)
			}
		}
	}
}

// The cell-arena grid and the swapped byte buffers must agree generation by
// generation, with and without wraparound.
func TestMatchesCellGrid(t *testing.T) {
	for _, torus := range []bool{false, true} {
		for _, spec := range []string{"B3/S23", "B36/S23", "B1357/S1357"} {
			c := FromMap(map[string]string{"w": "24", "h": "18", "rule": spec})
			ref := New(c.Width, c.Height, c.Rule, torus)
			ref.Reset(9)

			p := lives.Pattern{Width: c.Width, Height: c.Height, Rule: c.Rule}
			for y := 0; y < c.Height; y++ {
				for x := 0; x < c.Width; x++ {
					if ref.Alive(x, y) {
						p.Cells = append(p.Cells, lives.Point{X: x, Y: y})
					}
				}
			}
			grid := lives.NewGrid(p, lives.GridConfig{Torus: torus})

			for gen := 0; gen < 25; gen++ {
				ref.Step()
				grid.Step()
				grid.ClearQueues()
				for y := 0; y < c.Height; y++ {
					for x := 0; x < c.Width; x++ {
						cell, _ := grid.Cell(x, y)
						if cell.Alive() != ref.Alive(x, y) {
							t.Fatalf("%s torus=%v gen %d: (%d,%d) grid=%v buffer=%v",
								spec, torus, gen+1, x, y, cell.Alive(), ref.Alive(x, y))
						}
					}
				}
			}
		}
	}
}

func TestFromMapIgnoresBadValues(t *testing.T) {
	c := FromMap(map[string]string{"w": "-3", "h": "abc", "torus": "maybe", "seed": "7"})
	def := DefaultConfig()
	if c.Width != def.Width || c.Height != def.Height || c.Torus != def.Torus {
		t.Fatalf("bad values should keep defaults, got %+v", c)
	}
	if c.Seed != 7 {
		t.Fatalf("seed = %d, want 7", c.Seed)
	}
}

func TestOpenLoadsPattern(t *testing.T) {
	l := Open(FromMap(map[string]string{"pattern": filepath.Join("testdata", "blinker.rle")}))
	if s := l.Size(); s.W != 5 || s.H != 5 {
		t.Fatalf("board should take the pattern size, got %+v", s)
	}
	for y := 1; y <= 3; y++ {
		if !l.Alive(2, y) {
			t.Fatalf("pattern cell (2,%d) should be alive", y)
		}
	}
	l.Step()
	if !l.Alive(1, 2) || !l.Alive(3, 2) || l.Alive(2, 1) {
		t.Fatal("loaded blinker should turn horizontal")
	}
}

func TestOpenRuleOverridesPattern(t *testing.T) {
	c := FromMap(map[string]string{
		"pattern": filepath.Join("testdata", "blinker.rle"),
		"rule":    "B36/S23",
	})
	if l := Open(c); l.rule != lives.ParseRule("B36/S23") {
		t.Fatalf("rule = %s, want B36/S23", l.rule)
	}
}

func TestOpenMissingPatternFallsBack(t *testing.T) {
	c := FromMap(map[string]string{"pattern": filepath.Join("testdata", "missing.rle"), "w": "16", "h": "12"})
	l := Open(c)
	if s := l.Size(); s.W != 16 || s.H != 12 {
		t.Fatalf("fallback board = %+v, want 16x12", s)
	}
	live := 0
	for _, v := range l.Cells() {
		live += int(v)
	}
	if live == 0 {
		t.Fatal("fallback board should be randomly filled")
	}
}

func TestNarrowTorusExcludesSelf(t *testing.T) {
	l := New(1, 3, lives.ParseRule("B/S2"), true)
	l.Load(lives.Pattern{Cells: []lives.Point{{X: 0, Y: 1}}})
	l.Step()
	for y := 0; y < 3; y++ {
		if l.Alive(0, y) {
			t.Fatalf("a lone cell should not count itself, (0,%d) is alive", y)
		}
	}
}
