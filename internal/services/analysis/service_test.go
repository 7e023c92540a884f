package analysis

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantlens/quantlens/internal/common"
	"github.com/quantlens/quantlens/internal/models"
)

func newTestService() *Service {
	return NewService(common.NewSilentLogger(), common.DefaultAnalyzerConfig(), common.DefaultScorerConfig())
}

// weekdayInput builds n consecutive weekday bars of steadily rising
// price with constant volume.
func weekdayInput(n int) ([]models.PricePoint, []models.VolumePoint) {
	day := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC) // a Monday
	prices := make([]models.PricePoint, 0, n)
	volumes := make([]models.VolumePoint, 0, n)
	for len(prices) < n {
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			ts := day.UnixMilli()
			prices = append(prices, models.PricePoint{Timestamp: ts, Price: 100 + float64(len(prices))*0.5})
			volumes = append(volumes, models.VolumePoint{Timestamp: ts, Volume: 10_000})
		}
		day = day.AddDate(0, 0, 1)
	}
	return prices, volumes
}

func TestAnalyzeRisingSeries(t *testing.T) {
	prices, volumes := weekdayInput(260)

	a := newTestService().Analyze("ACME", prices, volumes)
	require.NotNil(t, a)

	assert.Equal(t, "ACME", a.Symbol)
	assert.NotEmpty(t, a.RunID)
	assert.InDelta(t, prices[len(prices)-1].Price, a.CurrentPrice, 1e-9)
	assert.False(t, a.ComputedAt.IsZero())

	require.NotNil(t, a.Daily)
	require.NotNil(t, a.Weekly)
	require.NotNil(t, a.Monthly)
	assert.Equal(t, 260, a.Daily.BarCount)
	assert.Greater(t, a.Weekly.BarCount, 40)
	assert.GreaterOrEqual(t, a.Monthly.BarCount, 11)

	require.NotNil(t, a.Signal)
	assert.Equal(t, models.SignalBullish, a.Signal.Classification)
	assert.Greater(t, a.Signal.BullishScore, a.Signal.BearishScore)
	assert.NotEmpty(t, a.Signal.Reasons)
}

func TestAnalyzeEmptyInput(t *testing.T) {
	a := newTestService().Analyze("EMPTY", nil, nil)
	require.NotNil(t, a)
	require.NotNil(t, a.Signal)

	assert.Equal(t, models.SignalInsufficientData, a.Signal.Classification)
	assert.Zero(t, a.CurrentPrice)
	assert.Equal(t, 0, a.Daily.BarCount)
}

func TestAnalyzeMismatchedVolumesDegradesToNoData(t *testing.T) {
	prices, volumes := weekdayInput(260)

	// Non-empty but misaligned volume data cannot be paired, so the whole
	// call reads as no data rather than an arbitrary alignment guess.
	a := newTestService().Analyze("ACME", prices, volumes[:100])
	require.NotNil(t, a.Signal)
	assert.Equal(t, models.SignalInsufficientData, a.Signal.Classification)
	assert.Equal(t, 0, a.Daily.BarCount)
}

func TestAnalyzeWithoutVolumes(t *testing.T) {
	prices, _ := weekdayInput(260)

	a := newTestService().Analyze("ACME", prices, nil)
	require.NotNil(t, a.Signal)

	// Price indicators still run; volume indicators stay unset.
	assert.Equal(t, 260, a.Daily.BarCount)
	assert.Nil(t, a.Daily.VWAP)
	assert.Nil(t, a.Daily.VolumeSMA)
	assert.Nil(t, a.Daily.OBV)
	assert.NotEmpty(t, a.Daily.SMAs)
	assert.NotEqual(t, models.SignalInsufficientData, a.Signal.Classification)
}

func TestAnalyzeCachesByContent(t *testing.T) {
	svc := newTestService()
	prices, volumes := weekdayInput(60)

	first := svc.Analyze("ACME", prices, volumes)
	second := svc.Analyze("ACME", prices, volumes)
	assert.Same(t, first, second, "identical input must hit the cache")

	// Same symbol, different content: a fresh computation.
	bumped := make([]models.PricePoint, len(prices))
	copy(bumped, prices)
	bumped[len(bumped)-1].Price += 1
	third := svc.Analyze("ACME", bumped, volumes)
	assert.NotSame(t, first, third)
	assert.NotEqual(t, first.RunID, third.RunID)
}

func TestAnalyzeCacheKeyIncludesSymbol(t *testing.T) {
	svc := newTestService()
	prices, volumes := weekdayInput(60)

	a := svc.Analyze("ACME", prices, volumes)
	b := svc.Analyze("OTHER", prices, volumes)
	assert.NotSame(t, a, b)
	assert.Equal(t, "OTHER", b.Symbol)
}

func TestAnalyzeConcurrent(t *testing.T) {
	svc := newTestService()
	prices, volumes := weekdayInput(120)

	const callers = 16
	results := make([]*models.Analysis, callers)
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer wg.Done()
			results[i] = svc.Analyze("ACME", prices, volumes)
		}(i)
	}
	wg.Wait()

	runID := results[0].RunID
	for _, r := range results {
		require.NotNil(t, r)
		assert.Equal(t, runID, r.RunID, "concurrent callers share one computation")
	}
}

func TestFingerprintStability(t *testing.T) {
	prices, volumes := weekdayInput(10)

	assert.Equal(t, fingerprint("A", prices, volumes), fingerprint("A", prices, volumes))
	assert.NotEqual(t, fingerprint("A", prices, volumes), fingerprint("B", prices, volumes))
	assert.NotEqual(t, fingerprint("A", prices, volumes), fingerprint("A", prices, nil))
}

func TestFingerprintSeriesBoundary(t *testing.T) {
	prices, _ := weekdayInput(3)

	// The last price point recast as a volume point carries the same
	// (timestamp, value) bytes; only the section boundary distinguishes
	// the two inputs.
	shifted := []models.VolumePoint{{Timestamp: prices[2].Timestamp, Volume: prices[2].Price}}
	assert.NotEqual(t,
		fingerprint("S", prices, nil),
		fingerprint("S", prices[:2], shifted))
}

func TestAnalyzeDistinguishesSeriesBoundary(t *testing.T) {
	svc := newTestService()
	prices, _ := weekdayInput(3)

	first := svc.Analyze("S", prices, nil)
	assert.Equal(t, 3, first.Daily.BarCount)

	// Same bytes split differently: two prices with one volume point is a
	// mismatched pairing and must degrade to no data, not hit the cache.
	shifted := []models.VolumePoint{{Timestamp: prices[2].Timestamp, Volume: prices[2].Price}}
	second := svc.Analyze("S", prices[:2], shifted)
	assert.NotSame(t, first, second)
	assert.Equal(t, 0, second.Daily.BarCount)
	assert.Equal(t, models.SignalInsufficientData, second.Signal.Classification)
}
