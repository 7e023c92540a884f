// Package resample converts a daily price/volume series into weekly and
// monthly series with calendar-aligned bucket boundaries.
package resample

import (
	"math"
	"time"

	"github.com/quantlens/quantlens/internal/models"
)

// Daily pairs a price series with its volume series into a daily Series.
// Volumes are matched by timestamp; a price point with no matching volume
// carries NaN volume, which the strict volume indicators treat as an
// invalid point rather than a quiet zero. Mismatched input lengths or
// empty input yield an empty series.
func Daily(prices []models.PricePoint, volumes []models.VolumePoint) models.Series {
	s := models.Series{Timeframe: models.TimeframeDaily}
	if len(prices) == 0 || len(prices) != len(volumes) {
		return s
	}

	volByTS := make(map[int64]float64, len(volumes))
	for _, v := range volumes {
		volByTS[v.Timestamp] = v.Volume
	}

	s.Points = make([]models.SeriesPoint, 0, len(prices))
	for _, p := range prices {
		vol, ok := volByTS[p.Timestamp]
		if !ok {
			vol = math.NaN()
		}
		s.Points = append(s.Points, models.SeriesPoint{
			Timestamp: p.Timestamp,
			Price:     p.Price,
			Volume:    vol,
		})
	}
	return s
}

// ToWeekly buckets a daily series into calendar weeks starting Monday.
// Each bucket emits the Monday-midnight timestamp, the last price seen in
// the bucket, and the summed volume. Input is assumed chronological.
func ToWeekly(daily models.Series) models.Series {
	out := models.Series{Timeframe: models.TimeframeWeekly}
	if len(daily.Points) == 0 {
		return out
	}

	var bucketStart int64
	var price, volume float64
	open := false

	for _, p := range daily.Points {
		monday := weekStart(p.Time())
		if open && monday != bucketStart {
			out.Points = append(out.Points, models.SeriesPoint{Timestamp: bucketStart, Price: price, Volume: volume})
			open = false
		}
		if !open {
			bucketStart = monday
			volume = 0
			open = true
		}
		price = p.Price
		volume += p.Volume
	}
	out.Points = append(out.Points, models.SeriesPoint{Timestamp: bucketStart, Price: price, Volume: volume})
	return out
}

// ToMonthly buckets a daily series by calendar month. Each bucket emits
// the first-of-month timestamp, the last price in the bucket, and the
// summed volume.
func ToMonthly(daily models.Series) models.Series {
	out := models.Series{Timeframe: models.TimeframeMonthly}
	if len(daily.Points) == 0 {
		return out
	}

	var bucketStart int64
	var price, volume float64
	open := false

	for _, p := range daily.Points {
		first := monthStart(p.Time())
		if open && first != bucketStart {
			out.Points = append(out.Points, models.SeriesPoint{Timestamp: bucketStart, Price: price, Volume: volume})
			open = false
		}
		if !open {
			bucketStart = first
			volume = 0
			open = true
		}
		price = p.Price
		volume += p.Volume
	}
	out.Points = append(out.Points, models.SeriesPoint{Timestamp: bucketStart, Price: price, Volume: volume})
	return out
}

// weekStart returns the epoch-millis midnight of the Monday of t's week.
// Sundays shift back six days, every other day shifts back to Monday.
func weekStart(t time.Time) int64 {
	t = t.UTC()
	shift := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		shift = 6
	}
	monday := time.Date(t.Year(), t.Month(), t.Day()-shift, 0, 0, 0, 0, time.UTC)
	return monday.UnixMilli()
}

// monthStart returns the epoch-millis midnight of the first day of t's month.
func monthStart(t time.Time) int64 {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).UnixMilli()
}
