package render

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var seriesColors = []drawing.Color{
	{R: 183, G: 55, B: 121, A: 255},
	{R: 251, G: 135, B: 97, A: 255},
	{R: 81, G: 18, B: 124, A: 255},
	{R: 0, G: 0, B: 4, A: 255},
}

// WriteChart plots per-generation series as a PNG line chart. Series with
// fewer than two points are skipped.
func WriteChart(path, title string, series map[string][]int) error {
	names := make([]string, 0, len(series))
	for name, values := range series {
		if len(values) >= 2 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return errors.New("no series with at least two points")
	}
	sort.Strings(names)

	lo, hi := series[names[0]][0], series[names[0]][0]
	var plotted []chart.Series
	for i, name := range names {
		values := series[name]
		xs := make([]float64, len(values))
		ys := make([]float64, len(values))
		for gen, v := range values {
			xs[gen] = float64(gen + 1)
			ys[gen] = float64(v)
			lo, hi = min(lo, v), max(hi, v)
		}
		plotted = append(plotted, chart.ContinuousSeries{
			Name:    name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: seriesColors[i%len(seriesColors)],
				StrokeWidth: 3,
			},
		})
	}

	graph := chart.Chart{
		Title:  title,
		Width:  1024,
		Height: 512,
		XAxis:  chart.XAxis{Name: "generation"},
		YAxis:  chart.YAxis{},
		Series: plotted,
	}
	if lo == hi {
		// go-chart refuses a zero-height range.
		graph.YAxis.Range = &chart.ContinuousRange{Min: float64(lo - 1), Max: float64(hi + 1)}
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := graph.Render(chart.PNG, out); err != nil {
		out.Close()
		return fmt.Errorf("render chart: %w", err)
	}
	return out.Close()
}
