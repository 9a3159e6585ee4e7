package hadcrut

import (
	"fmt"
	"math"
	"time"

	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/batchatco/go-native-netcdf/netcdf/api"

	"github.com/couchcryptid/hadcrut5-charts/internal/domain"
)

// The summary series files key every variable on a single "time"
// dimension expressed as days since this epoch.
var timeEpoch = time.Date(1850, time.January, 1, 0, 0, 0, 0, time.UTC)

// decodeDataset reads one summary series NetCDF file into a domain
// series plus its confidence band.
func decodeDataset(path string, region domain.Region, cadence domain.Cadence) (domain.AnomalySeries, domain.Band, error) {
	nc, err := netcdf.Open(path)
	if err != nil {
		return domain.AnomalySeries{}, domain.Band{}, fmt.Errorf("decode %s: %w: %v", path, domain.ErrDataUnavailable, err)
	}
	defer nc.Close()

	days, err := varValues(nc, "time")
	if err != nil {
		return domain.AnomalySeries{}, domain.Band{}, decodeErr(path, err)
	}
	mean, err := varValues(nc, "tas_mean")
	if err != nil {
		return domain.AnomalySeries{}, domain.Band{}, decodeErr(path, err)
	}
	lower, err := varValues(nc, "tas_lower")
	if err != nil {
		return domain.AnomalySeries{}, domain.Band{}, decodeErr(path, err)
	}
	upper, err := varValues(nc, "tas_upper")
	if err != nil {
		return domain.AnomalySeries{}, domain.Band{}, decodeErr(path, err)
	}

	if len(mean) != len(days) || len(lower) != len(days) || len(upper) != len(days) {
		return domain.AnomalySeries{}, domain.Band{}, fmt.Errorf("decode %s: %w: variable lengths disagree (time=%d tas_mean=%d tas_lower=%d tas_upper=%d)",
			path, domain.ErrDataUnavailable, len(days), len(mean), len(lower), len(upper))
	}

	points := make([]domain.Point, len(days))
	for i, d := range days {
		year := decimalYear(d)
		if cadence == domain.CadenceAnnual {
			// Annual points are published mid-year; key them on the
			// calendar year.
			year = math.Floor(year)
		}
		points[i] = domain.Point{Year: year, Anomaly: mean[i]}
	}

	series := domain.AnomalySeries{
		Region:    region,
		Cadence:   cadence,
		Reference: domain.PeriodDefault,
		Points:    points,
		History:   historyAttribute(nc),
	}
	return series, domain.Band{Lower: lower, Upper: upper}, nil
}

func decodeErr(path string, err error) error {
	return fmt.Errorf("decode %s: %w: %v", path, domain.ErrDataUnavailable, err)
}

// varValues reads a 1-D variable as float64 regardless of its on-disk
// numeric type.
func varValues(nc api.Group, name string) ([]float64, error) {
	vg, err := nc.GetVarGetter(name)
	if err != nil {
		return nil, fmt.Errorf("variable %s: %v", name, err)
	}
	v, err := vg.Values()
	if err != nil {
		return nil, fmt.Errorf("variable %s: %v", name, err)
	}
	return asFloat64s(name, v)
}

func asFloat64s(name string, v any) ([]float64, error) {
	switch vals := v.(type) {
	case []float64:
		return vals, nil
	case []float32:
		out := make([]float64, len(vals))
		for i, f := range vals {
			out[i] = float64(f)
		}
		return out, nil
	case []int32:
		out := make([]float64, len(vals))
		for i, n := range vals {
			out[i] = float64(n)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("variable %s: unexpected type %T", name, v)
	}
}

// historyAttribute returns the global "history" attribute when present;
// line charts annotate it as a provenance note.
func historyAttribute(nc api.Group) string {
	attrs := nc.Attributes()
	if attrs == nil {
		return ""
	}
	v, has := attrs.Get("history")
	if !has {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// decimalYear converts days since 1850-01-01 to a decimal year.
func decimalYear(days float64) float64 {
	t := timeEpoch.Add(time.Duration(days * 24 * float64(time.Hour)))
	yearStart := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)
	fraction := t.Sub(yearStart).Seconds() / yearEnd.Sub(yearStart).Seconds()
	return float64(t.Year()) + fraction
}
