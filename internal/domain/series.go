package domain

import (
	"fmt"
	"math"
	"time"
)

// Region selects one of the three HadCRUT5 summary series.
type Region string

const (
	RegionGlobal   Region = "global"
	RegionNorthern Region = "northern"
	RegionSouthern Region = "southern"
)

// Regions lists all regions in presentation order.
var Regions = []Region{RegionGlobal, RegionNorthern, RegionSouthern}

// ParseRegion validates a region name from the CLI.
func ParseRegion(s string) (Region, error) {
	switch Region(s) {
	case RegionGlobal, RegionNorthern, RegionSouthern:
		return Region(s), nil
	}
	return "", fmt.Errorf("unsupported region %q (want global, northern, or southern)", s)
}

// DisplayName returns the label used in chart titles and legends.
func (r Region) DisplayName() string {
	switch r {
	case RegionNorthern:
		return "Northern Hemisphere"
	case RegionSouthern:
		return "Southern Hemisphere"
	default:
		return "Global"
	}
}

// Cadence is the temporal resolution of a series.
type Cadence string

const (
	CadenceAnnual  Cadence = "annual"
	CadenceMonthly Cadence = "monthly"
)

// ParseCadence validates a cadence name from the CLI.
func ParseCadence(s string) (Cadence, error) {
	switch Cadence(s) {
	case CadenceAnnual, CadenceMonthly:
		return Cadence(s), nil
	}
	return "", fmt.Errorf("unsupported time series type %q (want annual or monthly)", s)
}

// PointsPerYear returns how many data points one calendar year contributes.
func (c Cadence) PointsPerYear() int {
	if c == CadenceMonthly {
		return 12
	}
	return 1
}

// ReferencePeriod is a closed year interval [Start, End] defined as
// zero-anomaly.
type ReferencePeriod struct {
	Start int
	End   int
}

// The reference periods the HadCRUT5 tooling recognizes. The dataset is
// published relative to PeriodDefault; the other two are the windows
// commonly quoted as pre-industrial baselines.
var (
	PeriodDefault    = ReferencePeriod{1961, 1990}
	Period1850To1900 = ReferencePeriod{1850, 1900}
	Period1880To1920 = ReferencePeriod{1880, 1920}
	supportedPeriods = []ReferencePeriod{PeriodDefault, Period1850To1900, Period1880To1920}
)

// ParseReferencePeriod accepts one of the supported "start-end" strings.
func ParseReferencePeriod(s string) (ReferencePeriod, error) {
	for _, p := range supportedPeriods {
		if p.String() == s {
			return p, nil
		}
	}
	return ReferencePeriod{}, fmt.Errorf("unsupported reference period %q (want 1961-1990, 1850-1900, or 1880-1920)", s)
}

func (p ReferencePeriod) String() string {
	return fmt.Sprintf("%d-%d", p.Start, p.End)
}

// Contains reports whether the calendar year of the decimal year t falls
// inside the closed interval.
func (p ReferencePeriod) Contains(t float64) bool {
	year := int(math.Floor(t))
	return year >= p.Start && year <= p.End
}

// Point is a single published anomaly.
type Point struct {
	// Year is a decimal year: annual points sit on the calendar year,
	// monthly points on the month midpoint.
	Year float64
	// Anomaly is degrees Celsius relative to the series reference period.
	Anomaly float64
}

// AnomalySeries is an ordered anomaly time series relative to a stated
// reference period. Treated as immutable once constructed; transforms
// return new values.
type AnomalySeries struct {
	Region    Region
	Cadence   Cadence
	Reference ReferencePeriod
	Points    []Point

	// History carries the NetCDF global "history" attribute, rendered as
	// a provenance note on line charts.
	History string
	// FetchedAt records when the backing dataset file was obtained.
	FetchedAt time.Time
}

// Validate checks the series invariants: at least one point and strictly
// increasing timestamps.
func (s AnomalySeries) Validate() error {
	if len(s.Points) == 0 {
		return fmt.Errorf("%s %s series: %w: no data points", s.Region, s.Cadence, ErrDataUnavailable)
	}
	for i := 1; i < len(s.Points); i++ {
		if s.Points[i].Year <= s.Points[i-1].Year {
			return fmt.Errorf("%s %s series: %w: timestamps not strictly increasing at index %d",
				s.Region, s.Cadence, ErrDataUnavailable, i)
		}
	}
	return nil
}

// Years returns the timestamps as a new slice.
func (s AnomalySeries) Years() []float64 {
	years := make([]float64, len(s.Points))
	for i, p := range s.Points {
		years[i] = p.Year
	}
	return years
}

// Values returns the anomalies as a new slice.
func (s AnomalySeries) Values() []float64 {
	values := make([]float64, len(s.Points))
	for i, p := range s.Points {
		values[i] = p.Anomaly
	}
	return values
}

// Last returns the most recent point.
func (s AnomalySeries) Last() Point {
	return s.Points[len(s.Points)-1]
}

// Max returns the largest anomaly in the series.
func (s AnomalySeries) Max() float64 {
	max := math.Inf(-1)
	for _, p := range s.Points {
		if p.Anomaly > max {
			max = p.Anomaly
		}
	}
	return max
}

// Min returns the smallest anomaly in the series.
func (s AnomalySeries) Min() float64 {
	min := math.Inf(1)
	for _, p := range s.Points {
		if p.Anomaly < min {
			min = p.Anomaly
		}
	}
	return min
}

// Band holds the per-point confidence bounds published alongside the
// anomaly median (tas_lower / tas_upper).
type Band struct {
	Lower []float64
	Upper []float64
}

// Shift returns a copy of the band moved by -offset, matching a rebased
// series. An empty band shifts to an empty band.
func (b Band) Shift(offset float64) Band {
	shifted := Band{
		Lower: make([]float64, len(b.Lower)),
		Upper: make([]float64, len(b.Upper)),
	}
	for i, v := range b.Lower {
		shifted.Lower[i] = v - offset
	}
	for i, v := range b.Upper {
		shifted.Upper[i] = v - offset
	}
	return shifted
}
