package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/couchcryptid/hadcrut5-charts/internal/domain"
	"github.com/couchcryptid/hadcrut5-charts/internal/pipeline"
)

// bars draws the series as one colored bar per year on a dark
// background, with the headline text block in the top-left corner.
func (r *ChartRenderer) bars(job pipeline.Job, rd pipeline.RegionData) error {
	s := rd.Series

	p := plot.New()
	darkStyle(p)
	p.X.Tick.Marker = yearTicks(6)

	// Color scale pinned at -1°C on the cold end, matching the
	// published warming-bars rendering.
	cm := divergingMap(-1, s.Max())
	p.Add(&anomalyBars{series: s, colors: cm, width: 0.7})

	first, last := int(s.Points[0].Year), int(s.Last().Year)
	headline := fmt.Sprintf("%s average temperature difference *\n%d-%d", s.Region.DisplayName(), first, last)
	subline := fmt.Sprintf("(*) Compared to %s pre-industrial levels\nData source - HadCRUT5", job.Period)
	if err := addHeadline(p, s, headline, subline); err != nil {
		return err
	}

	return p.Save(10*vg.Inch, 8*vg.Inch, job.Outfile)
}

// addHeadline writes the large title block inside the plotting area.
func addHeadline(p *plot.Plot, s domain.AnomalySeries, headline, subline string) error {
	x := s.Points[0].Year
	ymax := s.Max()

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: plotter.XYs{
			{X: x, Y: ymax * 1.35},
			{X: x, Y: ymax * 1.1},
		},
		Labels: []string{headline, subline},
	})
	if err != nil {
		return err
	}
	labels.TextStyle[0].Color = color.White
	labels.TextStyle[0].Font.Size = vg.Points(20)
	labels.TextStyle[1].Color = color.White
	labels.TextStyle[1].Font.Size = vg.Points(12)
	p.Add(labels)
	return nil
}

// anomalyBars renders one vertical bar per data point, colored by a
// diverging map over the anomaly value.
type anomalyBars struct {
	series domain.AnomalySeries
	colors palette.ColorMap
	// width is the bar width in x-axis units.
	width float64
}

func (b *anomalyBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for _, pt := range b.series.Points {
		x0 := trX(pt.Year - b.width/2)
		x1 := trX(pt.Year + b.width/2)
		y0 := trY(0)
		y1 := trY(pt.Anomaly)
		if y1 < y0 {
			y0, y1 = y1, y0
		}

		poly := []vg.Point{
			{X: x0, Y: y0},
			{X: x1, Y: y0},
			{X: x1, Y: y1},
			{X: x0, Y: y1},
		}
		c.FillPolygon(colorAt(b.colors, pt.Anomaly), poly)
	}
}

// DataRange implements plot.DataRanger so the axes cover every bar plus
// headroom for the headline text.
func (b *anomalyBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	s := b.series
	xmin = s.Points[0].Year - b.width
	xmax = s.Last().Year + b.width
	ymin = s.Min()
	ymax = s.Max() * 1.45
	return xmin, xmax, ymin, ymax
}
