package export

import (
	"fmt"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"rect-lives/pkg/lives"
)

// SVGStyle controls the colors of an SVG snapshot.
type SVGStyle struct {
	CellSize   int
	Background string
	Alive      string
	Fading     string
}

// DefaultSVGStyle returns light cells on a dark board.
func DefaultSVGStyle() SVGStyle {
	return SVGStyle{CellSize: 8, Background: "#12141c", Alive: "#f0ecdc", Fading: "#f0ecdc"}
}

// WriteSVG draws the grid's current generation: one rect per live cell and
// one translucent rect per fading cell, opacity falling with the fade ratio.
func WriteSVG(w io.Writer, g *lives.Grid, style SVGStyle) error {
	if style.CellSize <= 0 {
		style.CellSize = DefaultSVGStyle().CellSize
	}
	cs := style.CellSize
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(g.Width()*cs, g.Height()*cs)
	canvas.Title(fmt.Sprintf("%s generation %d", g.Rule(), g.Generation()))
	canvas.Rect(0, 0, g.Width()*cs, g.Height()*cs, "fill:"+style.Background)

	canvas.Gstyle("fill:" + style.Fading)
	for _, c := range g.Cells() {
		if !c.Fading() {
			continue
		}
		opacity := strconv.FormatFloat(1-c.FadeRatio(), 'f', 2, 64)
		canvas.Rect(c.X()*cs, c.Y()*cs, cs, cs, "fill-opacity:"+opacity)
	}
	canvas.Gend()

	canvas.Gstyle("fill:" + style.Alive)
	for _, c := range g.Cells() {
		if c.Alive() {
			canvas.Rect(c.X()*cs, c.Y()*cs, cs, cs)
		}
	}
	canvas.Gend()
	canvas.End()
	return ew.err
}

// errWriter remembers the first write error; svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
