package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/couchcryptid/hadcrut5-charts/internal/domain"
	"github.com/couchcryptid/hadcrut5-charts/internal/pipeline"
)

// line draws one line per region with the confidence band behind
// unsmoothed series, a dotted zero rule, and optional annotations.
func (r *ChartRenderer) line(job pipeline.Job, data []pipeline.RegionData) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("HadCRUT5: land and sea temperature anomalies relative to %s", job.Period)
	p.X.Label.Text = "year"
	p.Y.Label.Text = yAxisLabel(job)
	p.Legend.Top = true
	p.Legend.Left = true

	xmin, xmax := data[0].Series.Points[0].Year, data[0].Series.Last().Year

	for i, rd := range data {
		if len(rd.Band.Lower) == len(rd.Series.Points) && len(rd.Band.Lower) > 0 {
			band, err := bandPolygon(rd.Series, rd.Band)
			if err != nil {
				return err
			}
			p.Add(band)
		}

		l, err := plotter.NewLine(seriesXYs(rd.Series))
		if err != nil {
			return err
		}
		l.LineStyle.Width = vg.Points(2)
		if rd.Series.Cadence == domain.CadenceMonthly && job.Smoother < 2 {
			l.LineStyle.Width = vg.Points(1)
		}
		l.LineStyle.Color = plotutil.Color(i)
		p.Add(l)
		p.Legend.Add(rd.Series.Region.DisplayName(), l)

		if job.Annotate > 1 {
			if err := addLatestLabel(p, rd.Series); err != nil {
				return err
			}
		}
	}

	zero, err := hline(0, xmin, xmax, color.Gray{Y: 0x80})
	if err != nil {
		return err
	}
	p.Add(zero)

	if job.Annotate > 0 && job.Smoother < 2 {
		if err := addFooter(p, data, xmax); err != nil {
			return err
		}
	}

	if history := data[0].Series.History; history != "" {
		if err := addHistoryNote(p, data, history, xmin); err != nil {
			return err
		}
	}

	return p.Save(10*vg.Inch, 6*vg.Inch, job.Outfile)
}

func yAxisLabel(job pipeline.Job) string {
	label := "Annual Temperature Anomalies in °C"
	if job.Cadence == domain.CadenceMonthly {
		label = "Monthly Temperature Anomalies in °C"
	}
	if job.Smoother > 1 {
		label += fmt.Sprintf(" (%d-year averages)", job.Smoother)
	}
	return label
}

// bandPolygon shades the area between the lower and upper confidence
// bounds.
func bandPolygon(s domain.AnomalySeries, band domain.Band) (*plotter.Polygon, error) {
	n := len(s.Points)
	xys := make(plotter.XYs, 0, 2*n)
	for i, pt := range s.Points {
		xys = append(xys, plotter.XY{X: pt.Year, Y: band.Upper[i]})
	}
	for i := n - 1; i >= 0; i-- {
		xys = append(xys, plotter.XY{X: s.Points[i].Year, Y: band.Lower[i]})
	}

	poly, err := plotter.NewPolygon(xys)
	if err != nil {
		return nil, err
	}
	poly.Color = color.RGBA{0xd3, 0xd3, 0xd3, 0xff}
	poly.LineStyle.Color = color.Transparent
	return poly, nil
}

// addLatestLabel tags the last point of a series with its value.
func addLatestLabel(p *plot.Plot, s domain.AnomalySeries) error {
	last := s.Last()
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: last.Year, Y: last.Anomaly}},
		Labels: []string{fmt.Sprintf("%.2f°C", last.Anomaly)},
	})
	if err != nil {
		return err
	}
	p.Add(labels)
	return nil
}

// addFooter writes the current and maximum global anomaly in the
// bottom-right corner.
func addFooter(p *plot.Plot, data []pipeline.RegionData, xmax float64) error {
	var global *domain.AnomalySeries
	ymin := data[0].Series.Min()
	for i := range data {
		if data[i].Series.Region == domain.RegionGlobal {
			global = &data[i].Series
		}
		if m := data[i].Series.Min(); m < ymin {
			ymin = m
		}
	}
	if global == nil {
		return nil
	}

	text := fmt.Sprintf("current global anomaly (%d): %+.2f°C, max: %+.2f°C",
		int(global.Last().Year), global.Last().Anomaly, global.Max())

	// Anchored by its left edge, so start it well inside the right half.
	xmin := global.Points[0].Year
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: xmin + 0.55*(xmax-xmin), Y: ymin}},
		Labels: []string{text},
	})
	if err != nil {
		return err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Size = vg.Points(9)
	}
	p.Add(labels)
	return nil
}

// addHistoryNote places the dataset provenance attribute near the
// top-left of the data area.
func addHistoryNote(p *plot.Plot, data []pipeline.RegionData, history string, xmin float64) error {
	ymax := data[0].Series.Max()
	for i := range data {
		if m := data[i].Series.Max(); m > ymax {
			ymax = m
		}
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: xmin, Y: ymax}},
		Labels: []string{history},
	})
	if err != nil {
		return err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Size = vg.Points(8)
		labels.TextStyle[i].Color = color.Gray{Y: 0x60}
	}
	p.Add(labels)
	return nil
}
