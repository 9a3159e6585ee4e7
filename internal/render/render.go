// Package render draws finished anomaly series as PNG charts using
// gonum/plot: multi-region line charts, colored bar charts, warming
// stripes, and the threshold-approach chart.
package render

import (
	"fmt"
	"image/color"
	"log/slog"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/couchcryptid/hadcrut5-charts/internal/domain"
	"github.com/couchcryptid/hadcrut5-charts/internal/pipeline"
)

// ChartRenderer implements pipeline.Renderer on top of gonum/plot.
type ChartRenderer struct {
	logger *slog.Logger
}

// New creates a ChartRenderer.
func New(logger *slog.Logger) *ChartRenderer {
	return &ChartRenderer{logger: logger}
}

// Render dispatches on the job's chart kind and writes one PNG.
func (r *ChartRenderer) Render(job pipeline.Job, data []pipeline.RegionData) error {
	if len(data) == 0 {
		return fmt.Errorf("nothing to draw")
	}

	switch job.Kind {
	case pipeline.ChartLine:
		return r.line(job, data)
	case pipeline.ChartBars:
		return r.bars(job, data[0])
	case pipeline.ChartStripe:
		return r.stripe(job, data[0])
	case pipeline.ChartClose:
		return r.closeup(job, data[0])
	default:
		return fmt.Errorf("unknown chart kind %q", job.Kind)
	}
}

// seriesXYs converts a series to gonum plotter points.
func seriesXYs(s domain.AnomalySeries) plotter.XYs {
	xys := make(plotter.XYs, len(s.Points))
	for i, p := range s.Points {
		xys[i].X = p.Year
		xys[i].Y = p.Anomaly
	}
	return xys
}

// hline builds a dotted horizontal rule across [x0, x1].
func hline(y, x0, x1 float64, clr color.Color) (*plotter.Line, error) {
	l, err := plotter.NewLine(plotter.XYs{{X: x0, Y: y}, {X: x1, Y: y}})
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = clr
	l.LineStyle.Width = vg.Points(1)
	l.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(3)}
	return l, nil
}

// darkStyle flips a plot to the dark theme shared by the bar, stripe,
// and close charts.
func darkStyle(p *plot.Plot) {
	p.BackgroundColor = color.Black
	p.Title.TextStyle.Color = color.White
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.LineStyle.Color = color.White
		ax.Label.TextStyle.Color = color.White
		ax.Tick.LineStyle.Color = color.White
		ax.Tick.Label.Color = color.White
	}
}

// yearTicks returns a ticker producing n evenly spaced integer year
// ticks across the axis range.
func yearTicks(n int) plot.TickerFunc {
	return func(min, max float64) []plot.Tick {
		if n < 2 || max <= min {
			return nil
		}
		ticks := make([]plot.Tick, 0, n)
		for i := 0; i < n; i++ {
			v := min + (max-min)*float64(i)/float64(n-1)
			ticks = append(ticks, plot.Tick{Value: v, Label: fmt.Sprintf("%d", int(v+0.5))})
		}
		return ticks
	}
}
