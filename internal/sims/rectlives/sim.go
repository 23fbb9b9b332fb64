package rectlives

import (
	"fmt"
	"image/color"
	"log"

	"rect-lives/internal/core"
	"rect-lives/internal/render"
	pcore "rect-lives/pkg/core"
	"rect-lives/pkg/lives"
)

// Display values written into the cell buffer.
const (
	LevelDead  uint8 = 0
	LevelFade  uint8 = 160
	LevelAlive uint8 = 255
)

// defaultSoupSize is the board edge used for a random soup when neither the
// config nor a pattern supplies one.
const defaultSoupSize = 128

// Sim adapts a lives.Grid to core.Sim. It acts as the renderer-side consumer
// of the grid: after every generation it drains the born and dying queues
// into a display buffer and clears them.
type Sim struct {
	cfg Config

	pattern    lives.Pattern
	hasPattern bool

	grid    *lives.Grid
	display *core.ByteGrid
}

var livesPalette = render.FadePalette(
	color.RGBA{R: 240, G: 236, B: 220, A: 255},
	color.RGBA{R: 18, G: 20, B: 28, A: 255},
)

// New builds a sim from cfg, loading cfg.PatternPath when set.
func New(cfg Config) (*Sim, error) {
	if cfg.PatternPath == "" {
		s := &Sim{cfg: cfg}
		s.Reset(cfg.Seed)
		return s, nil
	}
	p, err := lives.LoadRLEFile(cfg.PatternPath)
	if err != nil {
		return nil, fmt.Errorf("rectlives: %w", err)
	}
	return NewWithPattern(cfg, p), nil
}

// Open builds a sim like New, but an unreadable pattern file is logged and
// replaced by a random soup.
func Open(cfg Config) *Sim {
	s, err := New(cfg)
	if err == nil {
		return s
	}
	log.Printf("%v; starting from a random soup", err)
	cfg.PatternPath = ""
	s = &Sim{cfg: cfg}
	s.Reset(cfg.Seed)
	return s
}

// NewWithPattern builds a sim that resets to the given pattern.
func NewWithPattern(cfg Config, p lives.Pattern) *Sim {
	s := &Sim{cfg: cfg, pattern: p, hasPattern: true}
	s.Reset(cfg.Seed)
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "lives" }

// Size returns the board size, margin included.
func (s *Sim) Size() core.Size {
	return core.Size{W: s.grid.Width(), H: s.grid.Height()}
}

// Cells exposes the display buffer.
func (s *Sim) Cells() []uint8 { return s.display.Cells() }

// Grid exposes the underlying automaton.
func (s *Sim) Grid() *lives.Grid { return s.grid }

// Config returns the active configuration.
func (s *Sim) Config() Config { return s.cfg }

// Generation returns the number of generations since the last Reset.
func (s *Sim) Generation() int { return s.grid.Generation() }

// Population returns the number of live cells.
func (s *Sim) Population() int { return s.grid.Population() }

// Palette maps display values to colors: a ramp from background to the
// live color, so fading cells darken as their timer runs out.
func (s *Sim) Palette() []color.RGBA { return livesPalette }

// Rate returns the target generations per second.
func (s *Sim) Rate() int { return s.cfg.Rate }

// Reset builds a fresh grid. With a pattern loaded the seed is ignored;
// otherwise it seeds the random soup, falling back to the configured seed
// when zero.
func (s *Sim) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	p := s.pattern
	if !s.hasPattern {
		p = s.soup(seed)
	}
	if s.cfg.Rule != "" {
		p.Rule = lives.ParseRule(s.cfg.Rule)
	}
	fade := s.cfg.Fade
	if fade <= 0 {
		fade = -1
	}
	s.grid = lives.NewGrid(p, lives.GridConfig{
		Width:      s.cfg.Width,
		Height:     s.cfg.Height,
		Torus:      s.cfg.Torus,
		Margin:     s.cfg.Margin,
		FadeFrames: fade,
	})
	s.display = core.NewByteGrid(s.grid.Width(), s.grid.Height())
	s.drain()
}

func (s *Sim) soup(seed int64) lives.Pattern {
	w, h := s.cfg.Width, s.cfg.Height
	if w <= 0 {
		w = defaultSoupSize
	}
	if h <= 0 {
		h = defaultSoupSize
	}
	p := lives.Pattern{Name: "soup", Width: w, Height: h, Rule: lives.Conway}
	rng := pcore.NewRNG(seed)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rng.Chance(s.cfg.Density) {
				p.Cells = append(p.Cells, lives.Point{X: x, Y: y})
			}
		}
	}
	return p
}

// Step advances one generation and refreshes the display buffer.
func (s *Sim) Step() {
	s.grid.Step()
	s.drain()
}

// Toggle flips the cell under (x, y), wrapping coordinates on a torus.
func (s *Sim) Toggle(x, y int) bool {
	if s.grid.Torus() {
		x, y = s.display.Wrap(x, y)
	}
	c, ok := s.grid.Cell(x, y)
	if !ok {
		return false
	}
	s.grid.SetAlive(x, y, !c.Alive())
	s.drain()
	return true
}

// drain renders the queued cells and clears the queues. A cell can be listed
// as dying and then reborn in the same generation, so live cells win.
func (s *Sim) drain() {
	for _, c := range s.grid.Dying() {
		if c.Alive() {
			continue
		}
		s.display.Set(c.X(), c.Y(), FadeLevel(c.FadeRatio()))
	}
	for _, c := range s.grid.Born() {
		s.display.Set(c.X(), c.Y(), LevelAlive)
	}
	s.grid.ClearQueues()
}

// FadeLevel maps a fade ratio to a display value between LevelFade and LevelDead.
func FadeLevel(ratio float64) uint8 {
	if ratio <= 0 {
		return LevelFade
	}
	if ratio >= 1 {
		return LevelDead
	}
	return uint8(float64(LevelFade) * (1 - ratio))
}

func init() {
	core.Register("lives", func(cfg map[string]string) (core.Sim, error) {
		return Open(FromMap(cfg)), nil
	})
}
