package life

import (
	"log"

	"rect-lives/internal/core"
	pcore "rect-lives/pkg/core"
	"rect-lives/pkg/lives"
)

// Life is a byte-buffer rendition of a Life-like automaton. It keeps two full
// boards and swaps them each generation instead of tracking per-cell pending
// state, and carries no fade-out timers.
type Life struct {
	w, h  int
	rule  lives.Rule
	torus bool
	cur   []uint8
	nxt   []uint8
}

// New returns an empty board with the provided dimensions.
func New(w, h int, rule lives.Rule, torus bool) *Life {
	if w <= 0 {
		w = lives.DefaultWidth
	}
	if h <= 0 {
		h = lives.DefaultHeight
	}
	cells := make([]uint8, w*h)
	return &Life{w: w, h: h, rule: rule, torus: torus, cur: cells, nxt: make([]uint8, len(cells))}
}

// FromPattern builds a board sized to the pattern and loads its cells.
func FromPattern(p lives.Pattern, torus bool) *Life {
	l := New(p.Width, p.Height, p.Rule, torus)
	l.Load(p)
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.cur }

// Load clears the board and sets the pattern cells that fall inside it.
func (l *Life) Load(p lives.Pattern) {
	clear(l.cur)
	for _, c := range p.Cells {
		if c.X >= 0 && c.Y >= 0 && c.X < l.w && c.Y < l.h {
			l.cur[c.Y*l.w+c.X] = 1
		}
	}
}

// Alive reports whether (x, y) is live. Out of range cells are dead.
func (l *Life) Alive(x, y int) bool {
	if x < 0 || y < 0 || x >= l.w || y >= l.h {
		return false
	}
	return l.cur[y*l.w+x] == 1
}

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	rng := pcore.NewRNG(seed)
	for i := range l.cur {
		l.cur[i] = 0
		if rng.Chance(0.5) {
			l.cur[i] = 1
		}
	}
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	w, h := l.w, l.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if l.torus {
						nx = (nx + w) % w
						ny = (ny + h) % h
						if nx == x && ny == y {
							continue
						}
					} else if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					neighbors += int(l.cur[ny*w+nx])
				}
			}
			idx := y*w + x
			l.nxt[idx] = 0
			if l.rule.Next(l.cur[idx] == 1, neighbors) {
				l.nxt[idx] = 1
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}

// Open builds the board described by c. A readable pattern file is loaded
// as the starting state; otherwise the board starts from a random fill.
func Open(c Config) *Life {
	if c.PatternPath != "" {
		p, err := lives.LoadRLEFile(c.PatternPath)
		if err == nil {
			if c.HasRule {
				p.Rule = c.Rule
			}
			return FromPattern(p, c.Torus)
		}
		log.Printf("life: %v; starting from a random board", err)
	}
	l := New(c.Width, c.Height, c.Rule, c.Torus)
	l.Reset(c.Seed)
	return l
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		return Open(FromMap(cfg)), nil
	})
}
