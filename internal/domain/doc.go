// Package domain models the HadCRUT5 summary temperature anomaly series
// and the two transforms applied to them before rendering.
//
// # Data Source
//
// HadCRUT5 is the Met Office Hadley Centre / Climatic Research Unit
// gridded analysis of global historical surface temperatures. This
// project consumes only the analysis summary series: one NetCDF file per
// region (global, northern hemisphere, southern hemisphere) and cadence
// (annual, monthly), available at
// https://www.metoffice.gov.uk/hadobs/hadcrut5/. Each file carries the
// variables tas_mean (the ensemble median anomaly), tas_lower and
// tas_upper (the 2.5% and 97.5% confidence bounds), all in degrees
// Celsius relative to the 1961-1990 reference period.
//
// # Timestamps
//
// Points are keyed by decimal year. Annual points sit on the calendar
// year (1850, 1851, ...); monthly points sit at the month midpoint
// (January 1850 = 1850.0417). A point belongs to a reference period
// [start, end] when the integer part of its decimal year falls inside
// the closed interval.
//
// # Rebasing
//
// The published series is zeroed on 1961-1990. Rebasing to an alternate
// period (1850-1900 or 1880-1920, the spans commonly quoted as
// "pre-industrial") estimates the offset between the two baselines as
// the arithmetic mean of the anomalies inside the target window and
// subtracts that single scalar from every point. No point is added,
// dropped, or interpolated; a window with no overlapping points is an
// error. See [Rebase].
//
// # Smoothing
//
// Block smoothing partitions the series into consecutive non-overlapping
// windows of N years, emitting one point per full window: the window's
// first year paired with the mean anomaly. A trailing window with fewer
// than N years of data is dropped rather than averaged over a short
// count, so every output point represents exactly one full window. See
// [Smooth].
package domain
