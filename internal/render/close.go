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

// closeup draws how closely the series approaches a temperature
// threshold: a cold-to-warm gradient fills the space above the curve up
// to the gradient ceiling, with a dotted rule at the threshold.
func (r *ChartRenderer) closeup(job pipeline.Job, rd pipeline.RegionData) error {
	s := rd.Series
	top := job.Threshold + 0.5

	p := plot.New()
	darkStyle(p)
	p.Title.Text = fmt.Sprintf("HadCRUT5: Closing in to %.1f°C", job.Threshold)
	p.X.Label.Text = "year"
	p.Y.Label.Text = fmt.Sprintf("Temperature Anomalies relative to %s", job.Period)

	cm := divergingMap(s.Min(), top)
	p.Add(&gradientField{series: s, colors: cm, top: top})

	rule, err := hline(job.Threshold, s.Points[0].Year, s.Last().Year, color.White)
	if err != nil {
		return err
	}
	p.Add(rule)

	l, err := plotter.NewLine(seriesXYs(s))
	if err != nil {
		return err
	}
	l.LineStyle.Width = vg.Points(2)
	l.LineStyle.Color = color.RGBA{0x46, 0x82, 0xb4, 0xff} // steel blue
	p.Add(l)

	return p.Save(10*vg.Inch, 6*vg.Inch, job.Outfile)
}

// gradientField fills the region between the curve and the gradient
// ceiling with vertical color bands keyed on absolute temperature.
type gradientField struct {
	series domain.AnomalySeries
	colors palette.ColorMap
	top    float64
}

// gradientSteps is the vertical resolution of the fill.
const gradientSteps = 64

func (g *gradientField) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	points := g.series.Points

	for i := 0; i < len(points)-1; i++ {
		x0 := trX(points[i].Year)
		x1 := trX(points[i+1].Year)
		base := points[i].Anomaly
		if base >= g.top {
			continue
		}

		step := (g.top - base) / gradientSteps
		for k := 0; k < gradientSteps; k++ {
			y0 := base + float64(k)*step
			y1 := y0 + step

			poly := []vg.Point{
				{X: x0, Y: trY(y0)},
				{X: x1, Y: trY(y0)},
				{X: x1, Y: trY(y1)},
				{X: x0, Y: trY(y1)},
			}
			c.FillPolygon(colorAt(g.colors, (y0+y1)/2), poly)
		}
	}
}

// DataRange implements plot.DataRanger.
func (g *gradientField) DataRange() (xmin, xmax, ymin, ymax float64) {
	s := g.series
	return s.Points[0].Year, s.Last().Year, s.Min(), g.top
}
