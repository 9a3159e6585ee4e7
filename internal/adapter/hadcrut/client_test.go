package hadcrut

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/hadcrut5-charts/internal/config"
	"github.com/couchcryptid/hadcrut5-charts/internal/domain"
	"github.com/couchcryptid/hadcrut5-charts/internal/observability"
)

func testClient(t *testing.T, baseURL string, maxAge time.Duration) *Client {
	t.Helper()
	cfg := &config.Config{
		CacheDir:    t.TempDir(),
		BaseURL:     baseURL,
		HTTPTimeout: 5 * time.Second,
		CacheMaxAge: maxAge,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(cfg, logger, observability.NewMetrics())
}

func TestFilename(t *testing.T) {
	tests := []struct {
		region  domain.Region
		cadence domain.Cadence
		want    string
	}{
		{domain.RegionGlobal, domain.CadenceAnnual, "HadCRUT.5.0.1.0.analysis.summary_series.global.annual.nc"},
		{domain.RegionGlobal, domain.CadenceMonthly, "HadCRUT.5.0.1.0.analysis.summary_series.global.monthly.nc"},
		{domain.RegionNorthern, domain.CadenceAnnual, "HadCRUT.5.0.1.0.analysis.summary_series.northern_hemisphere.annual.nc"},
		{domain.RegionSouthern, domain.CadenceAnnual, "HadCRUT.5.0.1.0.analysis.summary_series.southern_hemisphere.annual.nc"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Filename(tt.region, tt.cadence))
	}
}

func TestFetch_DownloadsAndCaches(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/"+Filename(domain.RegionGlobal, domain.CadenceAnnual), r.URL.Path)
		_, _ = w.Write([]byte("netcdf-bytes"))
	}))
	defer srv.Close()

	c := testClient(t, srv.URL, 0)
	filename := Filename(domain.RegionGlobal, domain.CadenceAnnual)

	path, err := c.fetch(context.Background(), filename)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(c.cacheDir, filename), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("netcdf-bytes"), data)

	// Second fetch is served from the cache.
	_, err = c.fetch(context.Background(), filename)
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestFetch_StaleCacheRefetches(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("fresh"))
	}))
	defer srv.Close()

	fake := clockwork.NewFakeClock()
	SetClock(fake)
	t.Cleanup(func() { SetClock(nil) })

	c := testClient(t, srv.URL, time.Hour)
	filename := Filename(domain.RegionGlobal, domain.CadenceAnnual)

	// Seed the cache with a file whose mod time is the fake present.
	path := filepath.Join(c.cacheDir, filename)
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))
	require.NoError(t, os.Chtimes(path, fake.Now(), fake.Now()))

	// Within max age: no download.
	_, err := c.fetch(context.Background(), filename)
	require.NoError(t, err)
	assert.Equal(t, int32(0), hits.Load())

	// Past max age: refetched.
	fake.Advance(2 * time.Hour)
	_, err = c.fetch(context.Background(), filename)
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("fresh"), data)
}

func TestFetch_ServerErrorIsDataUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	c := testClient(t, srv.URL, 0)

	_, err := c.fetch(context.Background(), Filename(domain.RegionGlobal, domain.CadenceAnnual))

	require.ErrorIs(t, err, domain.ErrDataUnavailable)
	assert.Contains(t, err.Error(), "status 404")
}

func TestFetch_UnreachableServerIsDataUnavailable(t *testing.T) {
	c := testClient(t, "http://127.0.0.1:1", 0)

	_, err := c.fetch(context.Background(), Filename(domain.RegionGlobal, domain.CadenceAnnual))

	require.ErrorIs(t, err, domain.ErrDataUnavailable)
}

func TestLoad_DecodeFailureIsDataUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("definitely not a netcdf file"))
	}))
	defer srv.Close()

	c := testClient(t, srv.URL, 0)

	_, _, err := c.Load(context.Background(), domain.RegionGlobal, domain.CadenceAnnual)

	require.ErrorIs(t, err, domain.ErrDataUnavailable)
}
