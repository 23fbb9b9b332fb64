package lives

// queues collects the cells touched during a generation. A Grid owns one and
// every Cell it allocates reports into it.
type queues struct {
	changes []*Cell
	born    []*Cell
	dying   []*Cell
}

// Cell is a single automaton cell. Its coordinates and neighbor wiring are
// fixed when the owning Grid is built; only the alive state, the pending
// state and the death timer change afterwards.
type Cell struct {
	x, y int

	alive       bool
	willBeAlive bool
	death       Timer

	rule      *Rule
	neighbors [MaxNeighbors]*Cell
	q         *queues
}

// X returns the column index of the cell.
func (c *Cell) X() int { return c.x }

// Y returns the row index of the cell.
func (c *Cell) Y() int { return c.y }

// Alive reports the committed state of the cell.
func (c *Cell) Alive() bool { return c.alive }

// Fading reports whether the cell is dead and its death timer is running.
func (c *Cell) Fading() bool { return !c.alive && c.death.Active() }

// FadeRatio returns how far the fade-out has progressed: 0 for a live cell,
// 1 for a cell that has fully faded or never lived.
func (c *Cell) FadeRatio() float64 {
	if c.alive {
		return 0
	}
	if !c.death.Active() && c.death.count == 0 {
		return 1
	}
	return c.death.Ratio()
}

// LiveNeighbors counts the committed live cells in the Moore neighborhood.
func (c *Cell) LiveNeighbors() int {
	n := 0
	for _, nb := range c.neighbors {
		if nb.alive {
			n++
		}
	}
	return n
}

// step advances the fade-out timer.
func (c *Cell) step() {
	if c.death.Tick() {
		c.q.dying = append(c.q.dying, c)
	}
}

// determineNextState records the state for the next generation without
// touching the committed state.
func (c *Cell) determineNextState() {
	c.willBeAlive = c.rule.Next(c.alive, c.LiveNeighbors())
	if c.willBeAlive != c.alive {
		c.q.changes = append(c.q.changes, c)
	}
}

// commitNextState applies the pending state.
func (c *Cell) commitNextState() {
	if c.willBeAlive {
		c.setAlive()
		return
	}
	c.setDead()
}

func (c *Cell) setAlive() {
	if c.alive {
		return
	}
	c.death.Stop()
	c.alive = true
	c.q.born = append(c.q.born, c)
}

func (c *Cell) setDead() {
	if !c.alive {
		return
	}
	c.death.Start()
	c.alive = false
	c.q.dying = append(c.q.dying, c)
}
