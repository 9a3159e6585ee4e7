// Command hadcrut5-bars draws the global HadCRUT5 annual series as a
// bar chart, one bar per year colored by anomaly, in the style of the
// widely shared warming-bars graphic.
//
// Usage:
//
//	hadcrut5-bars
//	hadcrut5-bars -period 1850-1900
//	hadcrut5-bars -outfile HadCRUT5-global.png
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
	outfile := flag.String("outfile", "HadCRUT5-bars.png", "name of the output PNG file")
	period := flag.String("period", "1961-1990", "reference period: 1961-1990 (default), 1850-1900, or 1880-1920")
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

	job := pipeline.Job{
		Kind:     pipeline.ChartBars,
		Regions:  []domain.Region{domain.RegionGlobal},
		Cadence:  domain.CadenceAnnual,
		Period:   p,
		Smoother: 1,
		Outfile:  *outfile,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := observability.NewMetrics()
	loader := hadcrut.NewClient(cfg, logger, metrics)
	renderer := render.New(logger)

	if err := pipeline.New(loader, renderer, logger, metrics).Run(ctx, job); err != nil {
		logger.Error("bars failed", "error", err)
		os.Exit(1)
	}
}
