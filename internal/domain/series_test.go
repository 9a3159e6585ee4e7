package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegion(t *testing.T) {
	tests := []struct {
		input   string
		want    Region
		wantErr bool
	}{
		{"global", RegionGlobal, false},
		{"northern", RegionNorthern, false},
		{"southern", RegionSouthern, false},
		{"Global", "", true},
		{"tropics", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRegion(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegionDisplayName(t *testing.T) {
	assert.Equal(t, "Global", RegionGlobal.DisplayName())
	assert.Equal(t, "Northern Hemisphere", RegionNorthern.DisplayName())
	assert.Equal(t, "Southern Hemisphere", RegionSouthern.DisplayName())
}

func TestParseCadence(t *testing.T) {
	c, err := ParseCadence("annual")
	require.NoError(t, err)
	assert.Equal(t, CadenceAnnual, c)
	assert.Equal(t, 1, c.PointsPerYear())

	c, err = ParseCadence("monthly")
	require.NoError(t, err)
	assert.Equal(t, CadenceMonthly, c)
	assert.Equal(t, 12, c.PointsPerYear())

	_, err = ParseCadence("daily")
	require.Error(t, err)
}

func TestParseReferencePeriod(t *testing.T) {
	tests := []struct {
		input   string
		want    ReferencePeriod
		wantErr bool
	}{
		{"1961-1990", PeriodDefault, false},
		{"1850-1900", Period1850To1900, false},
		{"1880-1920", Period1880To1920, false},
		{"1900-1950", ReferencePeriod{}, true},
		{"garbage", ReferencePeriod{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseReferencePeriod(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReferencePeriodContains(t *testing.T) {
	p := ReferencePeriod{1850, 1900}

	assert.True(t, p.Contains(1850))
	assert.True(t, p.Contains(1850.0417)) // January 1850
	assert.True(t, p.Contains(1900.9583)) // December 1900
	assert.False(t, p.Contains(1901))
	assert.False(t, p.Contains(1849.9583))
}

func TestSeriesValidate(t *testing.T) {
	t.Run("valid series", func(t *testing.T) {
		s := annualSeries(1850, 0.1, 0.2, 0.3)
		assert.NoError(t, s.Validate())
	})

	t.Run("empty series", func(t *testing.T) {
		s := AnomalySeries{Region: RegionGlobal, Cadence: CadenceAnnual}
		require.ErrorIs(t, s.Validate(), ErrDataUnavailable)
	})

	t.Run("duplicate timestamp", func(t *testing.T) {
		s := annualSeries(1850, 0.1, 0.2)
		s.Points[1].Year = s.Points[0].Year
		require.ErrorIs(t, s.Validate(), ErrDataUnavailable)
	})

	t.Run("out of order timestamps", func(t *testing.T) {
		s := annualSeries(1850, 0.1, 0.2, 0.3)
		s.Points[2].Year = 1849
		require.ErrorIs(t, s.Validate(), ErrDataUnavailable)
	})
}

func TestSeriesAccessors(t *testing.T) {
	s := annualSeries(1850, -0.3, 0.5, 0.1)

	assert.Equal(t, []float64{1850, 1851, 1852}, s.Years())
	assert.Equal(t, []float64{-0.3, 0.5, 0.1}, s.Values())
	assert.Equal(t, Point{Year: 1852, Anomaly: 0.1}, s.Last())
	assert.Equal(t, 0.5, s.Max())
	assert.Equal(t, -0.3, s.Min())
}
