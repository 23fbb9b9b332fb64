package lives

// DefaultFadeFrames is the fade-out length used when GridConfig leaves it unset.
const DefaultFadeFrames = 8

// GridConfig controls how a Grid is laid out.
type GridConfig struct {
	// Width and Height default to the pattern dimensions when zero.
	Width, Height int
	// Torus wraps neighbors around the board edges.
	Torus bool
	// Margin pads every side of the board with extra cells. Pattern
	// coordinates are offset by the margin.
	Margin int
	// FadeFrames is the death timer duration in generations. Negative
	// disables fading.
	FadeFrames int
}

// Grid owns a rectangular arena of cells and runs generations over them.
type Grid struct {
	w, h   int
	margin int
	torus  bool
	rule   Rule

	cells      []Cell
	sentinel   Cell
	q          queues
	generation int
	// ticked is set once the death timers have advanced for the pending
	// generation.
	ticked bool
}

var neighborOffsets = [MaxNeighbors][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// NewGrid allocates a grid for the pattern and brings its cells to life.
// Pattern cells outside the board are ignored.
func NewGrid(p Pattern, cfg GridConfig) *Grid {
	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = p.Width
	}
	if height <= 0 {
		height = p.Height
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	margin := cfg.Margin
	if margin < 0 {
		margin = 0
	}
	fade := cfg.FadeFrames
	switch {
	case fade == 0:
		fade = DefaultFadeFrames
	case fade < 0:
		fade = 0
	}

	g := &Grid{
		w:      width + 2*margin,
		h:      height + 2*margin,
		margin: margin,
		torus:  cfg.Torus,
		rule:   p.Rule,
	}
	g.cells = make([]Cell, g.w*g.h)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			c := &g.cells[y*g.w+x]
			c.x, c.y = x, y
			c.death = NewTimer(fade)
			c.rule = &g.rule
			c.q = &g.q
		}
	}
	for i := range g.cells {
		c := &g.cells[i]
		for k, off := range neighborOffsets {
			nb := g.neighbor(c.x+off[0], c.y+off[1])
			if nb == c {
				// A torus narrower or shorter than three cells wraps back
				// onto the cell itself.
				nb = &g.sentinel
			}
			c.neighbors[k] = nb
		}
	}

	for _, pt := range p.Cells {
		if c, ok := g.Cell(pt.X+margin, pt.Y+margin); ok {
			c.setAlive()
		}
	}
	return g
}

// neighbor resolves a possibly out-of-range coordinate to a cell, wrapping in
// torus mode and falling back to the always-dead sentinel otherwise.
func (g *Grid) neighbor(x, y int) *Cell {
	if g.torus {
		x = (x%g.w + g.w) % g.w
		y = (y%g.h + g.h) % g.h
	}
	if c, ok := g.Cell(x, y); ok {
		return c
	}
	return &g.sentinel
}

// Cell returns the cell at (x, y) in board coordinates, margin included.
func (g *Grid) Cell(x, y int) (*Cell, bool) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return nil, false
	}
	return &g.cells[y*g.w+x], true
}

// Cells exposes the row-major cell arena.
func (g *Grid) Cells() []Cell { return g.cells }

// Width returns the board width including the margin.
func (g *Grid) Width() int { return g.w }

// Height returns the board height including the margin.
func (g *Grid) Height() int { return g.h }

// Margin returns the padding applied on every side.
func (g *Grid) Margin() int { return g.margin }

// Torus reports whether neighbors wrap around the edges.
func (g *Grid) Torus() bool { return g.torus }

// Rule returns the rule the grid runs under.
func (g *Grid) Rule() Rule { return g.rule }

// Generation returns the number of completed Step calls.
func (g *Grid) Generation() int { return g.generation }

// Step advances the board by one generation. Every cell decides its next
// state from the current generation before any cell is committed.
func (g *Grid) Step() {
	g.Determine()
	g.Commit()
}

// Determine runs the first phase of a generation: it advances death timers
// and computes every pending state, filling Changes. Committed states are not
// touched. Calling it again before Commit recomputes the same change set
// without advancing the timers a second time.
func (g *Grid) Determine() {
	if !g.ticked {
		for i := range g.cells {
			g.cells[i].step()
		}
		g.ticked = true
	}
	g.q.changes = g.q.changes[:0]
	for i := range g.cells {
		g.cells[i].determineNextState()
	}
}

// Commit runs the second phase of a generation: it applies every pending
// change and clears the change list.
func (g *Grid) Commit() {
	for _, c := range g.q.changes {
		c.commitNextState()
	}
	g.q.changes = g.q.changes[:0]
	g.ticked = false
	g.generation++
}

// Changes returns the cells whose state flips on the next Commit.
func (g *Grid) Changes() []*Cell { return g.q.changes }

// Born returns the cells that came alive since the last ClearQueues.
func (g *Grid) Born() []*Cell { return g.q.born }

// Dying returns the cells that died or kept fading since the last
// ClearQueues. A fading cell is listed once per generation until its death
// timer runs out.
func (g *Grid) Dying() []*Cell { return g.q.dying }

// ClearQueues empties Born and Dying. Renderers call it after drawing.
func (g *Grid) ClearQueues() {
	g.q.born = g.q.born[:0]
	g.q.dying = g.q.dying[:0]
}

// SetAlive forces the cell at (x, y) into the given state between
// generations. The change is reported through Born or Dying like any other.
func (g *Grid) SetAlive(x, y int, alive bool) bool {
	c, ok := g.Cell(x, y)
	if !ok {
		return false
	}
	if alive {
		c.setAlive()
	} else {
		c.setDead()
	}
	return true
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].alive {
			n++
		}
	}
	return n
}

// AliveCells lists the live cells in row-major order, in board coordinates.
func (g *Grid) AliveCells() []Point {
	var pts []Point
	for i := range g.cells {
		if g.cells[i].alive {
			pts = append(pts, Point{X: g.cells[i].x, Y: g.cells[i].y})
		}
	}
	return pts
}

// Snapshot exports the live cells as a pattern in unpadded coordinates, so
// it can be re-encoded and loaded into a grid with the same margin.
func (g *Grid) Snapshot() Pattern {
	p := Pattern{
		Width:  g.w - 2*g.margin,
		Height: g.h - 2*g.margin,
		Rule:   g.rule,
	}
	for _, pt := range g.AliveCells() {
		p.Cells = append(p.Cells, Point{X: pt.X - g.margin, Y: pt.Y - g.margin})
	}
	return p
}
