package analyzer

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantlens/quantlens/internal/common"
	"github.com/quantlens/quantlens/internal/models"
)

// risingSeries builds n daily bars with a steadily rising price and
// constant volume
func risingSeries(n int) models.Series {
	s := models.Series{Timeframe: models.TimeframeDaily}
	day := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		s.Points = append(s.Points, models.SeriesPoint{
			Timestamp: day.UnixMilli(),
			Price:     100 + float64(i),
			Volume:    1000,
		})
		day = day.AddDate(0, 0, 1)
	}
	return s
}

func TestAnalyzeTimeframeShortSeriesLeavesSlotsNil(t *testing.T) {
	a := NewAnalyzer(common.DefaultAnalyzerConfig())

	series := risingSeries(10)
	ref := series.Points[series.Len()-1].Price
	bundle := a.AnalyzeTimeframe(series, ref, true)

	assert.Equal(t, 10, bundle.BarCount)
	assert.Empty(t, bundle.SMAs, "no SMA window fits 10 bars")
	assert.Empty(t, bundle.EMAs)
	assert.Nil(t, bundle.RSI, "RSI(14) needs 15 points")
	assert.Nil(t, bundle.Bollinger)
	assert.Nil(t, bundle.MACD)
	assert.Nil(t, bundle.VWAP)
	assert.NotNil(t, bundle.OBV, "OBV has no minimum window")
}

func TestAnalyzeTimeframeMediumSeries(t *testing.T) {
	a := NewAnalyzer(common.DefaultAnalyzerConfig())

	series := risingSeries(30)
	ref := series.Points[series.Len()-1].Price
	bundle := a.AnalyzeTimeframe(series, ref, true)

	require.Contains(t, bundle.SMAs, 20)
	assert.NotContains(t, bundle.SMAs, 50)
	assert.NotContains(t, bundle.SMAs, 200)
	assert.True(t, bundle.SMAs[20].AboveCurrent, "rising price sits above its trailing average")

	require.NotNil(t, bundle.RSI)
	assert.Equal(t, models.RSIOverbought, bundle.RSI.Zone)
	assert.InDelta(t, 100.0, bundle.RSI.Value, 1e-9)

	require.NotNil(t, bundle.Bollinger)
	assert.True(t, bundle.Bollinger.PriceAboveMiddle)
	assert.Greater(t, bundle.Bollinger.Upper, bundle.Bollinger.Middle)
	assert.Less(t, bundle.Bollinger.Lower, bundle.Bollinger.Middle)

	assert.Nil(t, bundle.MACD, "MACD(12,26,9) needs 34 points")

	require.NotNil(t, bundle.VWAP)
	require.NotNil(t, bundle.VolumeSMA)
	assert.InDelta(t, 1000.0, *bundle.VolumeSMA, 1e-9)
	require.NotNil(t, bundle.OBV)
	assert.Len(t, bundle.OBVSeries, 30)
}

func TestAnalyzeTimeframeLongSeriesHasMACD(t *testing.T) {
	a := NewAnalyzer(common.DefaultAnalyzerConfig())

	// Geometric growth keeps the fast EMA pulling away from the slow one,
	// so the MACD line is still rising and the histogram stays positive. A
	// linear ramp would converge both EMAs to constant lags and leave the
	// histogram at floating-point noise.
	series := models.Series{Timeframe: models.TimeframeDaily}
	day := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		series.Points = append(series.Points, models.SeriesPoint{
			Timestamp: day.UnixMilli(),
			Price:     100 * math.Pow(1.01, float64(i)),
			Volume:    1000,
		})
		day = day.AddDate(0, 0, 1)
	}

	ref := series.Points[series.Len()-1].Price
	bundle := a.AnalyzeTimeframe(series, ref, true)

	require.NotNil(t, bundle.MACD)
	assert.Greater(t, bundle.MACD.MACD, bundle.MACD.Signal)
	assert.Greater(t, bundle.MACD.Histogram, 1e-6)
}

func TestAnalyzeTimeframeWithoutVolume(t *testing.T) {
	a := NewAnalyzer(common.DefaultAnalyzerConfig())

	series := risingSeries(30)
	ref := series.Points[series.Len()-1].Price
	bundle := a.AnalyzeTimeframe(series, ref, false)

	assert.Nil(t, bundle.VWAP)
	assert.Nil(t, bundle.VolumeSMA)
	assert.Nil(t, bundle.OBV)
	assert.Empty(t, bundle.OBVSeries)
	assert.NotNil(t, bundle.RSI, "price indicators still computed")
}

func TestAnalyzeTimeframeEmptySeries(t *testing.T) {
	a := NewAnalyzer(common.DefaultAnalyzerConfig())

	bundle := a.AnalyzeTimeframe(models.Series{Timeframe: models.TimeframeWeekly}, 0, true)
	assert.Equal(t, 0, bundle.BarCount)
	assert.Empty(t, bundle.SMAs)
	assert.Nil(t, bundle.RSI)
}
