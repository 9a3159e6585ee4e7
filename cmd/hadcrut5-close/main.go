// Command hadcrut5-close plots how closely a HadCRUT5 series is
// approaching a threshold temperature (1.5°C by default), with a
// cold-to-warm gradient above the anomaly curve.
//
// Usage:
//
//	hadcrut5-close
//	hadcrut5-close -period 1850-1900 -region global
//	hadcrut5-close -period 1880-1920 -outfile HadCRUT5-1880-1920-threshold.png
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
	outfile := flag.String("outfile", "HadCRUT5-close.png", "name of the output PNG file")
	period := flag.String("period", "1961-1990", "reference period: 1961-1990 (default), 1850-1900, or 1880-1920")
	region := flag.String("region", "global", "select global (default), northern, or southern temperatures")
	threshold := flag.Float64("threshold", 1.5, "threshold temperature in °C")
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
	reg, err := domain.ParseRegion(*region)
	if err != nil {
		logger.Error("invalid region", "error", err)
		os.Exit(1)
	}

	job := pipeline.Job{
		Kind:      pipeline.ChartClose,
		Regions:   []domain.Region{reg},
		Cadence:   domain.CadenceAnnual,
		Period:    p,
		Smoother:  1,
		Threshold: *threshold,
		Outfile:   *outfile,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := observability.NewMetrics()
	loader := hadcrut.NewClient(cfg, logger, metrics)
	renderer := render.New(logger)

	if err := pipeline.New(loader, renderer, logger, metrics).Run(ctx, job); err != nil {
		logger.Error("close failed", "error", err)
		os.Exit(1)
	}
}
