package resample

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantlens/quantlens/internal/models"
)

func ts(year int, month time.Month, day int) int64 {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).UnixMilli()
}

func makeDaily(points ...[3]float64) models.Series {
	s := models.Series{Timeframe: models.TimeframeDaily}
	for _, p := range points {
		s.Points = append(s.Points, models.SeriesPoint{
			Timestamp: int64(p[0]),
			Price:     p[1],
			Volume:    p[2],
		})
	}
	return s
}

func TestDailyPairing(t *testing.T) {
	prices := []models.PricePoint{
		{Timestamp: ts(2024, time.March, 4), Price: 100},
		{Timestamp: ts(2024, time.March, 5), Price: 101},
	}
	volumes := []models.VolumePoint{
		{Timestamp: ts(2024, time.March, 4), Volume: 1000},
		{Timestamp: ts(2024, time.March, 5), Volume: 2000},
	}

	daily := Daily(prices, volumes)
	require.Equal(t, 2, daily.Len())
	assert.Equal(t, 100.0, daily.Points[0].Price)
	assert.Equal(t, 1000.0, daily.Points[0].Volume)
	assert.Equal(t, 2000.0, daily.Points[1].Volume)
}

func TestDailyUnmatchedTimestampIsInvalid(t *testing.T) {
	prices := []models.PricePoint{
		{Timestamp: ts(2024, time.March, 4), Price: 100},
		{Timestamp: ts(2024, time.March, 5), Price: 101},
	}
	volumes := []models.VolumePoint{
		{Timestamp: ts(2024, time.March, 4), Volume: 1000},
		{Timestamp: ts(2024, time.March, 6), Volume: 2000}, // no price that day
	}

	daily := Daily(prices, volumes)
	require.Equal(t, 2, daily.Len())
	assert.Equal(t, 1000.0, daily.Points[0].Volume)
	assert.True(t, math.IsNaN(daily.Points[1].Volume),
		"a day with no reported volume must not read as zero volume")
}

func TestDailyMismatchedLengthsEmpty(t *testing.T) {
	prices := []models.PricePoint{{Timestamp: ts(2024, time.March, 4), Price: 100}}

	daily := Daily(prices, nil)
	assert.Equal(t, 0, daily.Len())
}

func TestToWeeklyBuckets(t *testing.T) {
	// 2024-03-04 is a Monday.
	daily := makeDaily(
		[3]float64{float64(ts(2024, time.March, 4)), 100, 10},
		[3]float64{float64(ts(2024, time.March, 5)), 102, 20},
		[3]float64{float64(ts(2024, time.March, 8)), 105, 30}, // Friday
		[3]float64{float64(ts(2024, time.March, 11)), 99, 40}, // next Monday
		[3]float64{float64(ts(2024, time.March, 12)), 98, 50},
	)

	weekly := ToWeekly(daily)
	require.Equal(t, 2, weekly.Len())

	first := weekly.Points[0]
	assert.Equal(t, ts(2024, time.March, 4), first.Timestamp)
	assert.Equal(t, 105.0, first.Price, "close-of-bucket price")
	assert.Equal(t, 60.0, first.Volume, "summed volume")

	second := weekly.Points[1]
	assert.Equal(t, ts(2024, time.March, 11), second.Timestamp)
	assert.Equal(t, 98.0, second.Price)
	assert.Equal(t, 90.0, second.Volume)
}

func TestToWeeklySundayBelongsToPriorMonday(t *testing.T) {
	// 2024-03-10 is a Sunday; its week starts Monday 2024-03-04.
	daily := makeDaily(
		[3]float64{float64(ts(2024, time.March, 8)), 100, 10},
		[3]float64{float64(ts(2024, time.March, 10)), 101, 20},
		[3]float64{float64(ts(2024, time.March, 11)), 102, 30},
	)

	weekly := ToWeekly(daily)
	require.Equal(t, 2, weekly.Len())
	assert.Equal(t, ts(2024, time.March, 4), weekly.Points[0].Timestamp)
	assert.Equal(t, 101.0, weekly.Points[0].Price)
	assert.Equal(t, ts(2024, time.March, 11), weekly.Points[1].Timestamp)
}

func TestToMonthlyBuckets(t *testing.T) {
	daily := makeDaily(
		[3]float64{float64(ts(2024, time.January, 30)), 100, 10},
		[3]float64{float64(ts(2024, time.January, 31)), 103, 20},
		[3]float64{float64(ts(2024, time.February, 2)), 107, 30},
		[3]float64{float64(ts(2024, time.April, 1)), 110, 40},
	)

	monthly := ToMonthly(daily)
	require.Equal(t, 3, monthly.Len())

	assert.Equal(t, ts(2024, time.January, 1), monthly.Points[0].Timestamp)
	assert.Equal(t, 103.0, monthly.Points[0].Price)
	assert.Equal(t, 30.0, monthly.Points[0].Volume)

	assert.Equal(t, ts(2024, time.February, 1), monthly.Points[1].Timestamp)
	assert.Equal(t, ts(2024, time.April, 1), monthly.Points[2].Timestamp)
}

func TestVolumeConservation(t *testing.T) {
	var daily models.Series
	daily.Timeframe = models.TimeframeDaily

	total := 0.0
	day := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 90; i++ {
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			vol := float64(100 + i*7%50)
			total += vol
			daily.Points = append(daily.Points, models.SeriesPoint{
				Timestamp: day.UnixMilli(),
				Price:     100 + float64(i%9),
				Volume:    vol,
			})
		}
		day = day.AddDate(0, 0, 1)
	}

	weeklySum, monthlySum := 0.0, 0.0
	for _, p := range ToWeekly(daily).Points {
		weeklySum += p.Volume
	}
	for _, p := range ToMonthly(daily).Points {
		monthlySum += p.Volume
	}

	assert.InDelta(t, total, weeklySum, 1e-9)
	assert.InDelta(t, total, monthlySum, 1e-9)
}

func TestEmptyInput(t *testing.T) {
	empty := models.Series{Timeframe: models.TimeframeDaily}
	assert.Equal(t, 0, ToWeekly(empty).Len())
	assert.Equal(t, 0, ToMonthly(empty).Len())
}
