package export

import (
	"bytes"
	"errors"
	"image/png"
	"strings"
	"testing"

	"rect-lives/pkg/lives"
)

func TestWriteSVG(t *testing.T) {
	p := lives.Pattern{
		Width: 5, Height: 5, Rule: lives.Conway,
		Cells: []lives.Point{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}},
	}
	g := lives.NewGrid(p, lives.GridConfig{FadeFrames: 4})
	g.Step()

	var buf bytes.Buffer
	style := DefaultSVGStyle()
	style.CellSize = 10
	if err := WriteSVG(&buf, g, style); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("not an svg document:\n%s", out)
	}
	// Background, three live cells and two fading cells.
	if n := strings.Count(out, "<rect"); n != 6 {
		t.Fatalf("found %d rects, want 6:\n%s", n, out)
	}
	if !strings.Contains(out, "fill-opacity:1.00") {
		t.Fatalf("freshly dead cells should be fully opaque:\n%s", out)
	}
	if !strings.Contains(out, "generation 1") {
		t.Fatal("title should carry the generation")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteSVGReportsWriteErrors(t *testing.T) {
	g := lives.NewGrid(lives.Pattern{Width: 2, Height: 2}, lives.GridConfig{})
	if err := WriteSVG(failingWriter{}, g, DefaultSVGStyle()); err == nil {
		t.Fatal("expected the write error to surface")
	}
}

func TestPopulationChart(t *testing.T) {
	var buf bytes.Buffer
	series := []Series{
		{Name: "gun", Values: []int{36, 38, 41, 40, 46}},
		{Name: "block", Values: []int{4, 4, 4, 4, 4}},
	}
	if err := PopulationChart(&buf, 640, 320, series); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("chart is not a png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 640 || b.Dy() != 320 {
		t.Fatalf("chart size = %v", b)
	}
}

func TestPopulationChartNeedsData(t *testing.T) {
	err := PopulationChart(&bytes.Buffer{}, 100, 100, []Series{{Name: "one", Values: []int{1}}})
	if !errors.Is(err, ErrNotEnoughData) {
		t.Fatalf("expected ErrNotEnoughData, got %v", err)
	}
}
