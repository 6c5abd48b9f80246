package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
)

// WriteHistogramPNG renders hist as a bar chart.
func WriteHistogramPNG(w io.Writer, hist []Bin) error {
	if len(hist) == 0 {
		return errors.New("histogram is empty")
	}
	bars := make([]chart.Value, len(hist))
	total := 0
	for i, b := range hist {
		bars[i] = chart.Value{Value: float64(b.Count), Label: b.Label()}
		total += b.Count
	}
	if total == 0 {
		return errors.New("no particles landed on the grid")
	}
	graph := chart.BarChart{
		Title: "Landings by distance from source",
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Height:     480,
		Width:      max(640, 48*len(bars)),
		BarWidth:   32,
		BarSpacing: 12,
		Bars:       bars,
		XAxis:      chart.Style{FontSize: 8.0},
		YAxis: chart.YAxis{
			Style: chart.Style{FontSize: 10.0},
		},
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render histogram: %w", err)
	}
	return nil
}
