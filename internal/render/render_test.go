package render

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/hadcrut5-charts/internal/domain"
	"github.com/couchcryptid/hadcrut5-charts/internal/pipeline"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func testRenderer() *ChartRenderer {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testData(region domain.Region, withBand bool) pipeline.RegionData {
	anomalies := []float64{-0.4, -0.3, -0.1, 0.0, 0.2, 0.5, 0.8, 1.1, 1.3, 1.5}
	points := make([]domain.Point, len(anomalies))
	lower := make([]float64, len(anomalies))
	upper := make([]float64, len(anomalies))
	for i, a := range anomalies {
		points[i] = domain.Point{Year: float64(1850 + i), Anomaly: a}
		lower[i] = a - 0.1
		upper[i] = a + 0.1
	}

	rd := pipeline.RegionData{
		Series: domain.AnomalySeries{
			Region:    region,
			Cadence:   domain.CadenceAnnual,
			Reference: domain.PeriodDefault,
			Points:    points,
			History:   "blended and infilled analysis",
		},
	}
	if withBand {
		rd.Band = domain.Band{Lower: lower, Upper: upper}
	}
	return rd
}

func assertPNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), len(pngMagic))
	assert.Equal(t, pngMagic, data[:len(pngMagic)])
}

func TestRender_Line(t *testing.T) {
	tests := []struct {
		name     string
		annotate int
		smoother int
		withBand bool
	}{
		{"no annotations", 0, 1, true},
		{"footer annotation", 1, 1, true},
		{"all annotations", 2, 1, true},
		{"smoothed without band", 1, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outfile := filepath.Join(t.TempDir(), "line.png")
			job := pipeline.Job{
				Kind:     pipeline.ChartLine,
				Cadence:  domain.CadenceAnnual,
				Period:   domain.PeriodDefault,
				Smoother: tt.smoother,
				Annotate: tt.annotate,
				Outfile:  outfile,
			}

			err := testRenderer().Render(job, []pipeline.RegionData{
				testData(domain.RegionGlobal, tt.withBand),
				testData(domain.RegionNorthern, tt.withBand),
			})

			require.NoError(t, err)
			assertPNG(t, outfile)
		})
	}
}

func TestRender_Bars(t *testing.T) {
	outfile := filepath.Join(t.TempDir(), "bars.png")
	job := pipeline.Job{
		Kind:    pipeline.ChartBars,
		Period:  domain.Period1850To1900,
		Outfile: outfile,
	}

	err := testRenderer().Render(job, []pipeline.RegionData{testData(domain.RegionGlobal, false)})

	require.NoError(t, err)
	assertPNG(t, outfile)
}

func TestRender_Stripe(t *testing.T) {
	for _, labels := range []bool{true, false} {
		name := "with labels"
		if !labels {
			name = "without labels"
		}
		t.Run(name, func(t *testing.T) {
			outfile := filepath.Join(t.TempDir(), "stripe.png")
			job := pipeline.Job{
				Kind:    pipeline.ChartStripe,
				Labels:  labels,
				Outfile: outfile,
			}

			err := testRenderer().Render(job, []pipeline.RegionData{testData(domain.RegionSouthern, false)})

			require.NoError(t, err)
			assertPNG(t, outfile)
		})
	}
}

func TestRender_Close(t *testing.T) {
	outfile := filepath.Join(t.TempDir(), "close.png")
	job := pipeline.Job{
		Kind:      pipeline.ChartClose,
		Period:    domain.Period1880To1920,
		Threshold: 1.5,
		Outfile:   outfile,
	}

	err := testRenderer().Render(job, []pipeline.RegionData{testData(domain.RegionGlobal, false)})

	require.NoError(t, err)
	assertPNG(t, outfile)
}

func TestRender_UnknownKind(t *testing.T) {
	err := testRenderer().Render(pipeline.Job{Kind: "pie"}, []pipeline.RegionData{testData(domain.RegionGlobal, false)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown chart kind")
}

func TestRender_NoData(t *testing.T) {
	err := testRenderer().Render(pipeline.Job{Kind: pipeline.ChartLine}, nil)
	require.Error(t, err)
}

func TestStripeColor(t *testing.T) {
	// Extremes map to the outermost blues and reds.
	assert.Equal(t, stripeColors[0], stripeColor(-0.5, -0.5, 1.5))
	assert.Equal(t, stripeColors[len(stripeColors)-1], stripeColor(1.5, -0.5, 1.5))

	// Degenerate range falls back to the middle of the map.
	assert.Equal(t, stripeColors[len(stripeColors)/2], stripeColor(0, 1, 1))
}

func TestColorAt_ClampsOutOfRange(t *testing.T) {
	cm := divergingMap(-1, 1)

	low := colorAt(cm, -100)
	high := colorAt(cm, 100)

	lr, _, lb, _ := low.RGBA()
	hr, _, hb, _ := high.RGBA()

	// The cold end is blue-dominant, the warm end red-dominant.
	assert.Greater(t, lb, lr)
	assert.Greater(t, hr, hb)
}
