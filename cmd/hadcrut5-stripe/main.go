// Command hadcrut5-stripe draws a warming-stripes image of a HadCRUT5
// annual series: one color-coded vertical band per year.
//
// Usage:
//
//	hadcrut5-stripe
//	hadcrut5-stripe -no-labels -region northern
//	hadcrut5-stripe -region global -outfile HadCRUT5-stripe-global.png
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
	outfile := flag.String("outfile", "HadCRUT5-stripe.png", "name of the output PNG file")
	region := flag.String("region", "global", "select global (default), northern, or southern temperatures")
	noLabels := flag.Bool("no-labels", false, "do not display the header and footer labels")
	verbose := flag.Bool("v", false, "make the operation more talkative")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := observability.NewLogger(cfg, *verbose)

	reg, err := domain.ParseRegion(*region)
	if err != nil {
		logger.Error("invalid region", "error", err)
		os.Exit(1)
	}

	job := pipeline.Job{
		Kind:     pipeline.ChartStripe,
		Regions:  []domain.Region{reg},
		Cadence:  domain.CadenceAnnual,
		Period:   domain.PeriodDefault,
		Smoother: 1,
		Labels:   !*noLabels,
		Outfile:  *outfile,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := observability.NewMetrics()
	loader := hadcrut.NewClient(cfg, logger, metrics)
	renderer := render.New(logger)

	if err := pipeline.New(loader, renderer, logger, metrics).Run(ctx, job); err != nil {
		logger.Error("stripe failed", "error", err)
		os.Exit(1)
	}
}
