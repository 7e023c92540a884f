// Package models defines data structures for QuantLens
package models

import "time"

// Timeframe identifies the sampling interval of a price series
type Timeframe string

const (
	TimeframeDaily   Timeframe = "daily"
	TimeframeWeekly  Timeframe = "weekly"
	TimeframeMonthly Timeframe = "monthly"
)

// Label returns the display form used in signal reasons
func (t Timeframe) Label() string {
	switch t {
	case TimeframeDaily:
		return "Daily"
	case TimeframeWeekly:
		return "Weekly"
	case TimeframeMonthly:
		return "Monthly"
	default:
		return string(t)
	}
}

// PricePoint is a single observation in a daily close series.
// Timestamps are epoch milliseconds and strictly increasing within a series.
type PricePoint struct {
	Timestamp int64   `json:"timestamp"`
	Price     float64 `json:"price"`
}

// VolumePoint is a single observation in a daily volume series,
// paired with a PricePoint by timestamp.
type VolumePoint struct {
	Timestamp int64   `json:"timestamp"`
	Volume    float64 `json:"volume"`
}

// SeriesPoint is one aggregated bar of a resampled series
type SeriesPoint struct {
	Timestamp int64   `json:"timestamp"`
	Price     float64 `json:"price"`
	Volume    float64 `json:"volume"`
}

// Series is an ordered sequence of bars for one timeframe
type Series struct {
	Timeframe Timeframe     `json:"timeframe"`
	Points    []SeriesPoint `json:"points"`
}

// Prices returns the flat price array for indicator computation
func (s Series) Prices() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Price
	}
	return out
}

// Volumes returns the flat volume array for indicator computation
func (s Series) Volumes() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Volume
	}
	return out
}

// Len returns the number of bars in the series
func (s Series) Len() int {
	return len(s.Points)
}

// Time converts a point's epoch-millis timestamp to a time.Time in UTC
func (p SeriesPoint) Time() time.Time {
	return time.UnixMilli(p.Timestamp).UTC()
}
