package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/couchcryptid/hadcrut5-charts/internal/domain"
	"github.com/couchcryptid/hadcrut5-charts/internal/pipeline"
)

// stripe draws the warming-stripes image: one full-height colored
// rectangle per year, bluest for the coldest year and reddest for the
// warmest.
func (r *ChartRenderer) stripe(job pipeline.Job, rd pipeline.RegionData) error {
	s := rd.Series

	p := plot.New()
	darkStyle(p)
	p.HideY()

	if job.Labels {
		first, last := int(s.Points[0].Year), int(s.Last().Year)
		p.Title.Text = fmt.Sprintf("%s Temperature Change (%d-%d)", s.Region.DisplayName(), first, last)
		p.Title.TextStyle.Font.Size = vg.Points(16)
		p.X.Tick.Marker = yearTicks(6)
		p.X.LineStyle.Width = 0
	} else {
		p.HideX()
	}

	p.Add(&stripes{series: s})

	return p.Save(10*vg.Inch, 4*vg.Inch, job.Outfile)
}

// stripes renders the series as a single row of year-wide color bands.
type stripes struct {
	series domain.AnomalySeries
}

func (st *stripes) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, _ := plt.Transforms(&c)
	min, max := st.series.Min(), st.series.Max()

	for _, pt := range st.series.Points {
		x0 := trX(pt.Year - 0.5)
		x1 := trX(pt.Year + 0.5)

		poly := []vg.Point{
			{X: x0, Y: c.Min.Y},
			{X: x1, Y: c.Min.Y},
			{X: x1, Y: c.Max.Y},
			{X: x0, Y: c.Max.Y},
		}
		c.FillPolygon(stripeColor(pt.Anomaly, min, max), poly)
	}
}

// DataRange implements plot.DataRanger.
func (st *stripes) DataRange() (xmin, xmax, ymin, ymax float64) {
	s := st.series
	return s.Points[0].Year - 0.5, s.Last().Year + 0.5, 0, 1
}
