// Command hadcrut5-plot draws the HadCRUT5 temperature anomaly series
// as a line chart, one line per selected region, optionally rebased to
// an alternate reference period and smoothed with N-year means.
//
// Usage:
//
//	hadcrut5-plot
//	hadcrut5-plot -global -annotate 2
//	hadcrut5-plot -period 1850-1900 -smoother 5
//	hadcrut5-plot -period 1880-1920 -outfile HadCRUT5-1880-1920.png
//	hadcrut5-plot -period 1880-1920 -time-series monthly -global
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/hadcrut5-charts/internal/adapter/hadcrut"
	"github.com/couchcryptid/hadcrut5-charts/internal/config"
	"github.com/couchcryptid/hadcrut5-charts/internal/domain"
	"github.com/couchcryptid/hadcrut5-charts/internal/observability"
	"github.com/couchcryptid/hadcrut5-charts/internal/pipeline"
	"github.com/couchcryptid/hadcrut5-charts/internal/render"
)

func main() {
	outfile := flag.String("outfile", "HadCRUT5.png", "name of the output PNG file")
	period := flag.String("period", "1961-1990", "reference period: 1961-1990 (default), 1850-1900, or 1880-1920")
	smoother := flag.Int("smoother", 1, "make the lines smoother by using N-year means")
	annotate := flag.Int("annotate", 1, "temperature annotations (0: none, 1: bottom only, 2: all)")
	plotGlobal := flag.Bool("global", false, "plot the Global temperatures")
	plotNorthern := flag.Bool("northern", false, "plot the Northern Hemisphere temperatures")
	plotSouthern := flag.Bool("southern", false, "plot the Southern Hemisphere temperatures")
	timeSeries := flag.String("time-series", "annual", "plot the annual (default) or monthly time series")
	verbose := flag.Bool("v", false, "make the operation more talkative")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := observability.NewLogger(cfg, *verbose)

	p, err := domain.ParseReferencePeriod(*period)
	if err != nil {
		logger.Error("invalid period", "error", err)
		os.Exit(1)
	}
	cadence, err := domain.ParseCadence(*timeSeries)
	if err != nil {
		logger.Error("invalid time series", "error", err)
		os.Exit(1)
	}

	// No region flag means all of them.
	var regions []domain.Region
	if !*plotGlobal && !*plotNorthern && !*plotSouthern {
		regions = domain.Regions
	} else {
		if *plotGlobal {
			regions = append(regions, domain.RegionGlobal)
		}
		if *plotNorthern {
			regions = append(regions, domain.RegionNorthern)
		}
		if *plotSouthern {
			regions = append(regions, domain.RegionSouthern)
		}
	}

	job := pipeline.Job{
		Kind:     pipeline.ChartLine,
		Regions:  regions,
		Cadence:  cadence,
		Period:   p,
		Smoother: *smoother,
		Annotate: *annotate,
		Outfile:  *outfile,
	}

	if err := runJob(cfg, logger, job); err != nil {
		logger.Error("plot failed", "error", err)
		os.Exit(1)
	}
}

func runJob(cfg *config.Config, logger *slog.Logger, job pipeline.Job) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := observability.NewMetrics()
	loader := hadcrut.NewClient(cfg, logger, metrics)
	renderer := render.New(logger)

	return pipeline.New(loader, renderer, logger, metrics).Run(ctx, job)
}
