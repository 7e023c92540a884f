// Package analysis provides the top-level technical-analysis entry point:
// resample, analyze each timeframe, score, with caching and panic recovery.
package analysis

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/quantlens/quantlens/internal/analyzer"
	"github.com/quantlens/quantlens/internal/common"
	"github.com/quantlens/quantlens/internal/models"
	"github.com/quantlens/quantlens/internal/resample"
)

// Service runs the full multi-timeframe analysis pipeline. Results are
// cached by a content fingerprint of the input series; the single-flight
// group guarantees at most one computation in flight per fingerprint so
// rapid repeated requests do not duplicate work.
type Service struct {
	logger   *common.Logger
	analyzer *analyzer.Analyzer
	scorer   *analyzer.Scorer

	group singleflight.Group
	mu    sync.RWMutex
	cache map[string]*models.Analysis
}

// NewService creates the analysis service
func NewService(logger *common.Logger, analyzerCfg common.AnalyzerConfig, scorerCfg common.ScorerConfig) *Service {
	return &Service{
		logger:   logger,
		analyzer: analyzer.NewAnalyzer(analyzerCfg),
		scorer:   analyzer.NewScorer(scorerCfg),
		cache:    make(map[string]*models.Analysis),
	}
}

// Analyze computes the three timeframe bundles and the scored signal for
// one instrument. It never returns an error to the caller: malformed
// input degrades to the InsufficientData or Error classification so
// presentation code can render a uniform state.
func (s *Service) Analyze(symbol string, prices []models.PricePoint, volumes []models.VolumePoint) *models.Analysis {
	key := fingerprint(symbol, prices, volumes)

	s.mu.RLock()
	cached, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		s.logger.Debug().Str("symbol", symbol).Str("fingerprint", key).Msg("Analysis cache hit")
		return cached
	}

	result, _, _ := s.group.Do(key, func() (any, error) {
		a := s.compute(symbol, prices, volumes)
		s.mu.Lock()
		s.cache[key] = a
		s.mu.Unlock()
		return a, nil
	})
	return result.(*models.Analysis)
}

// compute runs one uncached analysis. A panic anywhere in the indicator
// pipeline is converted into the Error classification with the panic
// message as the single reason.
func (s *Service) compute(symbol string, prices []models.PricePoint, volumes []models.VolumePoint) (a *models.Analysis) {
	runID := uuid.NewString()
	started := time.Now()

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Str("symbol", symbol).Str("run_id", runID).
				Interface("panic", r).Msg("Analysis computation failed")
			a = &models.Analysis{
				RunID:      runID,
				Symbol:     symbol,
				ComputedAt: time.Now().UTC(),
				Signal: &models.Signal{
					Classification: models.SignalError,
					Reasons:        []string{fmt.Sprint(r)},
				},
			}
		}
	}()

	hasVolume := len(volumes) > 0 && len(volumes) == len(prices)

	var daily models.Series
	if hasVolume {
		daily = resample.Daily(prices, volumes)
	} else if len(volumes) == 0 {
		daily = priceOnlySeries(prices)
	}
	// A non-empty volume series of the wrong length leaves daily empty:
	// pairing is structurally required, so the whole call degrades to the
	// no-data state rather than guessing an alignment.

	weekly := resample.ToWeekly(daily)
	monthly := resample.ToMonthly(daily)

	var currentPrice float64
	if daily.Len() > 0 {
		currentPrice = daily.Points[daily.Len()-1].Price
	}

	dailyBundle := s.analyzer.AnalyzeTimeframe(daily, currentPrice, hasVolume)
	weeklyBundle := s.analyzer.AnalyzeTimeframe(weekly, currentPrice, hasVolume)
	monthlyBundle := s.analyzer.AnalyzeTimeframe(monthly, currentPrice, hasVolume)

	signal := s.scorer.Score(dailyBundle, weeklyBundle, monthlyBundle, currentPrice)

	s.logger.Info().
		Str("symbol", symbol).
		Str("run_id", runID).
		Int("daily_bars", daily.Len()).
		Int("weekly_bars", weekly.Len()).
		Int("monthly_bars", monthly.Len()).
		Str("classification", string(signal.Classification)).
		Float64("bullish", signal.BullishScore).
		Float64("bearish", signal.BearishScore).
		Dur("elapsed", time.Since(started)).
		Msg("Analysis complete")

	return &models.Analysis{
		RunID:        runID,
		Symbol:       symbol,
		CurrentPrice: currentPrice,
		Daily:        dailyBundle,
		Weekly:       weeklyBundle,
		Monthly:      monthlyBundle,
		Signal:       signal,
		ComputedAt:   time.Now().UTC(),
	}
}

// priceOnlySeries builds a daily series with zero volumes for callers
// that supply no volume data at all
func priceOnlySeries(prices []models.PricePoint) models.Series {
	s := models.Series{Timeframe: models.TimeframeDaily}
	s.Points = make([]models.SeriesPoint, 0, len(prices))
	for _, p := range prices {
		s.Points = append(s.Points, models.SeriesPoint{Timestamp: p.Timestamp, Price: p.Price})
	}
	return s
}

// fingerprint hashes the input content so identical series map to the
// same cache entry regardless of when they are submitted. Each section
// is prefixed with its length so the boundary between the price and
// volume series is part of the identity: a point moving from one series
// to the other changes the hash.
func fingerprint(symbol string, prices []models.PricePoint, volumes []models.VolumePoint) string {
	h := fnv.New64a()

	var buf [8]byte
	writeF := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		h.Write(buf[:])
	}
	writeI := func(i int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(i))
		h.Write(buf[:])
	}

	writeI(int64(len(symbol)))
	h.Write([]byte(symbol))

	writeI(int64(len(prices)))
	for _, p := range prices {
		writeI(p.Timestamp)
		writeF(p.Price)
	}
	writeI(int64(len(volumes)))
	for _, v := range volumes {
		writeI(v.Timestamp)
		writeF(v.Volume)
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
