package config

import (
	"fmt"
	"os"
	"time"
)

const defaultBaseURL = "https://www.metoffice.gov.uk/hadobs/hadcrut5/data/current/analysis/diagnostics"

// Config holds the operational settings shared by all chart tools,
// populated from environment variables. Per-invocation options (chart
// kind, period, regions, output file) come from CLI flags instead.
type Config struct {
	// CacheDir is where downloaded NetCDF files are kept.
	CacheDir string
	// BaseURL is the HadCRUT5 diagnostics download location.
	BaseURL string
	// HTTPTimeout bounds a single dataset download.
	HTTPTimeout time.Duration
	// CacheMaxAge is how long a cached dataset file stays fresh.
	// Zero means a cached file is never refetched.
	CacheMaxAge time.Duration

	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	httpTimeout, err := parseDuration("HADCRUT_HTTP_TIMEOUT", "60s")
	if err != nil {
		return nil, err
	}
	if httpTimeout <= 0 {
		return nil, fmt.Errorf("invalid HADCRUT_HTTP_TIMEOUT: must be positive")
	}

	cacheMaxAge, err := parseDuration("HADCRUT_CACHE_MAX_AGE", "0s")
	if err != nil {
		return nil, err
	}
	if cacheMaxAge < 0 {
		return nil, fmt.Errorf("invalid HADCRUT_CACHE_MAX_AGE: must not be negative")
	}

	cfg := &Config{
		CacheDir:    envOrDefault("HADCRUT_CACHE_DIR", "."),
		BaseURL:     envOrDefault("HADCRUT_BASE_URL", defaultBaseURL),
		HTTPTimeout: httpTimeout,
		CacheMaxAge: cacheMaxAge,
		LogLevel:    envOrDefault("LOG_LEVEL", "info"),
		LogFormat:   envOrDefault("LOG_FORMAT", "text"),
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("HADCRUT_BASE_URL must not be empty")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
