package domain

import "fmt"

// RebaseOffset estimates the mean anomaly of the series inside the
// target reference period. Subtracting it from every point re-expresses
// the series relative to that period. Fails with ErrInsufficientCoverage
// when no point falls inside the window.
func RebaseOffset(s AnomalySeries, target ReferencePeriod) (float64, error) {
	if target == s.Reference {
		return 0, nil
	}

	var sum float64
	var n int
	for _, p := range s.Points {
		if target.Contains(p.Year) {
			sum += p.Anomaly
			n++
		}
	}
	if n == 0 {
		return 0, fmt.Errorf("rebase to %s: %w: no data points inside the period", target, ErrInsufficientCoverage)
	}
	return sum / float64(n), nil
}

// Rebase re-expresses the series relative to the target reference
// period: every anomaly is shifted by a single scalar offset, every
// timestamp is preserved. Rebasing to the series' own reference period
// returns it unchanged. Pure; the input is not modified.
func Rebase(s AnomalySeries, target ReferencePeriod) (AnomalySeries, error) {
	offset, err := RebaseOffset(s, target)
	if err != nil {
		return AnomalySeries{}, err
	}
	if target == s.Reference {
		return s, nil
	}

	rebased := s
	rebased.Reference = target
	rebased.Points = make([]Point, len(s.Points))
	for i, p := range s.Points {
		rebased.Points[i] = Point{Year: p.Year, Anomaly: p.Anomaly - offset}
	}
	return rebased, nil
}
