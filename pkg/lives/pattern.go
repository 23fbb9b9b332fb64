package lives

import (
	"image"
	"slices"
)

// Default board dimensions used when a pattern header omits them.
const (
	DefaultWidth  = 100
	DefaultHeight = 100
)

// Point is an integer cell coordinate.
type Point struct {
	X, Y int
}

// Pattern is a decoded initial configuration: the live cells, the board size
// and the rule to run them under.
type Pattern struct {
	Name     string
	Comments []string
	Cells    []Point
	Width    int
	Height   int
	Rule     Rule
}

// NewPattern returns an empty pattern with the default board size and Conway's rule.
func NewPattern() Pattern {
	return Pattern{Width: DefaultWidth, Height: DefaultHeight, Rule: Conway}
}

// Bounds returns the smallest rectangle containing every cell. The rectangle
// is empty when the pattern has no cells.
func (p Pattern) Bounds() image.Rectangle {
	if len(p.Cells) == 0 {
		return image.Rectangle{}
	}
	r := image.Rect(p.Cells[0].X, p.Cells[0].Y, p.Cells[0].X+1, p.Cells[0].Y+1)
	for _, c := range p.Cells[1:] {
		r = r.Union(image.Rect(c.X, c.Y, c.X+1, c.Y+1))
	}
	return r
}

// Normalize returns a copy translated so the bounding box starts at the
// origin, with cells sorted row-major and duplicates removed.
func (p Pattern) Normalize() Pattern {
	b := p.Bounds()
	out := p
	out.Cells = make([]Point, 0, len(p.Cells))
	for _, c := range p.Cells {
		out.Cells = append(out.Cells, Point{X: c.X - b.Min.X, Y: c.Y - b.Min.Y})
	}
	sortPoints(out.Cells)
	out.Cells = slices.Compact(out.Cells)
	return out
}

// Translate returns a copy with every cell shifted by (dx, dy).
func (p Pattern) Translate(dx, dy int) Pattern {
	out := p
	out.Cells = make([]Point, len(p.Cells))
	for i, c := range p.Cells {
		out.Cells[i] = Point{X: c.X + dx, Y: c.Y + dy}
	}
	return out
}

func sortPoints(pts []Point) {
	slices.SortFunc(pts, func(a, b Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
}
