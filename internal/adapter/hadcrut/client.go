// Package hadcrut obtains HadCRUT5 summary series: it downloads the
// published NetCDF diagnostics files from the Met Office (with a local
// file cache) and decodes them into domain series.
package hadcrut

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/couchcryptid/hadcrut5-charts/internal/config"
	"github.com/couchcryptid/hadcrut5-charts/internal/domain"
	"github.com/couchcryptid/hadcrut5-charts/internal/observability"
)

// datasetVersion pins the HadCRUT analysis release the tools consume.
const datasetVersion = "5.0.1.0"

// Client loads HadCRUT5 series, downloading dataset files on demand.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cacheDir   string
	maxAge     time.Duration
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewClient creates a HadCRUT5 dataset client.
func NewClient(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		baseURL:    cfg.BaseURL,
		cacheDir:   cfg.CacheDir,
		maxAge:     cfg.CacheMaxAge,
		logger:     logger,
		metrics:    metrics,
	}
}

// Filename returns the published dataset file name for a region and cadence,
// e.g. "HadCRUT.5.0.1.0.analysis.summary_series.northern_hemisphere.annual.nc".
func Filename(region domain.Region, cadence domain.Cadence) string {
	return fmt.Sprintf("HadCRUT.%s.analysis.summary_series.%s.%s.nc",
		datasetVersion, regionPath(region), cadence)
}

func regionPath(region domain.Region) string {
	switch region {
	case domain.RegionNorthern:
		return "northern_hemisphere"
	case domain.RegionSouthern:
		return "southern_hemisphere"
	default:
		return "global"
	}
}

// Load returns the anomaly series and confidence band for a region and
// cadence, relative to the published 1961-1990 baseline. Fetch and
// decode failures wrap domain.ErrDataUnavailable.
func (c *Client) Load(ctx context.Context, region domain.Region, cadence domain.Cadence) (domain.AnomalySeries, domain.Band, error) {
	path, err := c.fetch(ctx, Filename(region, cadence))
	if err != nil {
		return domain.AnomalySeries{}, domain.Band{}, err
	}

	series, band, err := decodeDataset(path, region, cadence)
	if err != nil {
		c.metrics.DecodeErrors.Inc()
		return domain.AnomalySeries{}, domain.Band{}, err
	}
	series.FetchedAt = clock.Now()

	if err := series.Validate(); err != nil {
		return domain.AnomalySeries{}, domain.Band{}, err
	}

	c.metrics.PointsLoaded.Add(float64(len(series.Points)))
	c.logger.Debug("dataset loaded",
		"region", region,
		"cadence", cadence,
		"points", len(series.Points),
		"first", series.Points[0].Year,
		"last", series.Last().Year,
	)
	return series, band, nil
}

// fetch returns the local path of the dataset file, downloading it when
// missing or older than the configured max age.
func (c *Client) fetch(ctx context.Context, filename string) (string, error) {
	path := filepath.Join(c.cacheDir, filename)

	if info, err := os.Stat(path); err == nil {
		if c.maxAge == 0 || clock.Since(info.ModTime()) <= c.maxAge {
			c.metrics.CacheHits.Inc()
			c.logger.Debug("using cached dataset file", "path", path)
			return path, nil
		}
		c.logger.Debug("cached dataset file is stale", "path", path, "mod_time", info.ModTime())
	}
	c.metrics.CacheMisses.Inc()

	if err := c.download(ctx, filename, path); err != nil {
		return "", err
	}
	return path, nil
}

func (c *Client) download(ctx context.Context, filename, path string) error {
	url := c.baseURL + "/" + filename
	c.logger.Info("downloading dataset", "url", url)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("download %s: %w: %v", filename, domain.ErrDataUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("download %s: %w: %v", filename, domain.ErrDataUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download %s: %w: status %d", filename, domain.ErrDataUnavailable, resp.StatusCode)
	}

	// Write through a temp file so a failed download never leaves a
	// truncated dataset in the cache.
	tmp, err := os.CreateTemp(c.cacheDir, filename+".tmp-*")
	if err != nil {
		return fmt.Errorf("download %s: %w: %v", filename, domain.ErrDataUnavailable, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("download %s: %w: %v", filename, domain.ErrDataUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("download %s: %w: %v", filename, domain.ErrDataUnavailable, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("download %s: %w: %v", filename, domain.ErrDataUnavailable, err)
	}

	c.metrics.DatasetsFetched.Inc()
	c.metrics.FetchDuration.Observe(time.Since(start).Seconds())
	c.logger.Info("dataset downloaded", "path", path)
	return nil
}
