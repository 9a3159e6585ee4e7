// Package pipeline wires one chart invocation together: load the
// requested series, rebase and smooth them, and hand the results to a
// renderer.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/hadcrut5-charts/internal/domain"
	"github.com/couchcryptid/hadcrut5-charts/internal/observability"
)

// ChartKind selects the renderer output.
type ChartKind string

const (
	ChartLine   ChartKind = "line"
	ChartBars   ChartKind = "bars"
	ChartStripe ChartKind = "stripe"
	ChartClose  ChartKind = "close"
)

// Job describes one chart invocation, assembled from CLI flags.
type Job struct {
	Kind    ChartKind
	Regions []domain.Region
	Cadence domain.Cadence
	Period  domain.ReferencePeriod
	// Smoother is the N-year block mean window; 1 leaves the series as
	// published.
	Smoother int
	// Annotate is the annotation verbosity: 0 none, 1 footer, 2 all.
	Annotate int
	// Labels toggles the stripe chart's title and year ticks.
	Labels bool
	// Threshold is the temperature rule drawn by the close chart.
	Threshold float64
	Outfile   string
}

// RegionData is one loaded, transformed series ready to draw. Band is
// only populated when the series was not smoothed.
type RegionData struct {
	Series domain.AnomalySeries
	Band   domain.Band
}

// Loader obtains a published anomaly series and its confidence band.
type Loader interface {
	Load(ctx context.Context, region domain.Region, cadence domain.Cadence) (domain.AnomalySeries, domain.Band, error)
}

// Renderer draws a finished chart to the job's output file.
type Renderer interface {
	Render(job Job, data []RegionData) error
}

// Pipeline orchestrates the load-transform-render sequence.
type Pipeline struct {
	loader   Loader
	renderer Renderer
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// New creates a Pipeline with the given stages and observability.
func New(loader Loader, renderer Renderer, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		loader:   loader,
		renderer: renderer,
		logger:   logger,
		metrics:  metrics,
	}
}

// Run executes one chart job. Any failure aborts the run and is
// returned to the CLI.
func (p *Pipeline) Run(ctx context.Context, job Job) error {
	if len(job.Regions) == 0 {
		return fmt.Errorf("no regions selected")
	}
	if job.Outfile == "" {
		return fmt.Errorf("no output file given")
	}

	data := make([]RegionData, 0, len(job.Regions))
	for _, region := range job.Regions {
		rd, err := p.loadRegion(ctx, region, job)
		if err != nil {
			return err
		}
		data = append(data, rd)
	}

	start := time.Now()
	if err := p.renderer.Render(job, data); err != nil {
		return fmt.Errorf("render %s chart: %w", job.Kind, err)
	}
	p.metrics.RenderDuration.Observe(time.Since(start).Seconds())

	p.logger.Info("chart written",
		"kind", job.Kind,
		"outfile", job.Outfile,
		"regions", len(data),
		"period", job.Period,
	)
	p.metrics.LogSummary(p.logger)
	return nil
}

// loadRegion loads one series and applies the job's rebase and
// smoothing transforms.
func (p *Pipeline) loadRegion(ctx context.Context, region domain.Region, job Job) (RegionData, error) {
	series, band, err := p.loader.Load(ctx, region, job.Cadence)
	if err != nil {
		return RegionData{}, err
	}

	if job.Period != series.Reference {
		offset, err := domain.RebaseOffset(series, job.Period)
		if err != nil {
			return RegionData{}, err
		}
		series, err = domain.Rebase(series, job.Period)
		if err != nil {
			return RegionData{}, err
		}
		band = band.Shift(offset)
		p.logger.Debug("series rebased", "region", region, "period", job.Period, "offset", offset)
	}

	if job.Smoother != 1 {
		series, err = domain.Smooth(series, job.Smoother)
		if err != nil {
			return RegionData{}, err
		}
		// The published band no longer matches the aggregated points.
		band = domain.Band{}
		p.logger.Debug("series smoothed", "region", region, "window_years", job.Smoother, "points", len(series.Points))
	}

	return RegionData{Series: series, Band: band}, nil
}
