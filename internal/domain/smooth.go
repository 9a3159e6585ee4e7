package domain

import "fmt"

// Smooth replaces the series with non-overlapping block means of
// windowYears years each. A window of 1 is the identity. Each output
// point carries the timestamp of the first point in its window and the
// arithmetic mean of the window's anomalies; a trailing window with
// fewer points than a full window is dropped. Fails with
// ErrInvalidWindow when windowYears < 1 or no full window fits in the
// series. Pure; the input is not modified.
func Smooth(s AnomalySeries, windowYears int) (AnomalySeries, error) {
	if windowYears < 1 {
		return AnomalySeries{}, fmt.Errorf("smooth with %d-year window: %w: window must be at least 1", windowYears, ErrInvalidWindow)
	}
	if windowYears == 1 {
		return s, nil
	}

	// Monthly series contribute 12 points per smoothed year.
	size := windowYears * s.Cadence.PointsPerYear()
	groups := len(s.Points) / size
	if groups == 0 {
		return AnomalySeries{}, fmt.Errorf("smooth with %d-year window: %w: series has only %d points",
			windowYears, ErrInvalidWindow, len(s.Points))
	}

	smoothed := s
	smoothed.Points = make([]Point, groups)
	for g := 0; g < groups; g++ {
		window := s.Points[g*size : (g+1)*size]
		var sum float64
		for _, p := range window {
			sum += p.Anomaly
		}
		smoothed.Points[g] = Point{
			Year:    window[0].Year,
			Anomaly: sum / float64(size),
		}
	}
	return smoothed, nil
}
