package export

import (
	"errors"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNotEnoughData is returned when no series has at least two samples.
var ErrNotEnoughData = errors.New("export: population chart needs at least two generations")

// Series is a named population count per generation.
type Series struct {
	Name   string
	Values []int
}

var seriesColors = []drawing.Color{
	chart.ColorBlue,
	chart.ColorRed,
	chart.ColorGreen,
	chart.ColorOrange,
	{R: 140, G: 80, B: 200, A: 255},
	{R: 40, G: 160, B: 160, A: 255},
}

// PopulationChart renders the series as a PNG line chart of population over
// generations.
func PopulationChart(w io.Writer, width, height int, series []Series) error {
	var (
		lines  []chart.Series
		maxGen = 1.0
		maxPop = 1.0
	)
	for i, s := range series {
		if len(s.Values) < 2 {
			continue
		}
		xs := make([]float64, len(s.Values))
		ys := make([]float64, len(s.Values))
		for gen, pop := range s.Values {
			xs[gen] = float64(gen)
			ys[gen] = float64(pop)
			maxPop = max(maxPop, float64(pop))
		}
		maxGen = max(maxGen, float64(len(s.Values)-1))
		lines = append(lines, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: seriesColors[i%len(seriesColors)], StrokeWidth: 2.0},
		})
	}
	if len(lines) == 0 {
		return ErrNotEnoughData
	}

	graph := chart.Chart{
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name:  "generation",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: maxGen},
		},
		YAxis: chart.YAxis{
			Name:  "population",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: maxPop * 1.1},
		},
		Series: lines,
	}
	if len(lines) > 1 {
		graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	}
	return graph.Render(chart.PNG, w)
}
