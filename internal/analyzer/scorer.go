package analyzer

import (
	"fmt"
	"sort"

	"github.com/quantlens/quantlens/internal/common"
	"github.com/quantlens/quantlens/internal/indicators"
	"github.com/quantlens/quantlens/internal/models"
)

// Scorer converts three timeframe bundles into one weighted signal
type Scorer struct {
	cfg common.ScorerConfig
}

// NewScorer creates a scorer with the given vote weights
func NewScorer(cfg common.ScorerConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// tally accumulates weighted votes and their reasons
type tally struct {
	bullish    float64
	bearish    float64
	reasons    []string
	maxReasons int
	votes      int
}

func (t *tally) vote(bullish bool, weight float64, reason string) {
	if bullish {
		t.bullish += weight
	} else {
		t.bearish += weight
	}
	t.votes++
	if len(t.reasons) < t.maxReasons {
		t.reasons = append(t.reasons, reason)
	}
}

// Score evaluates the three timeframe bundles against the daily reference
// price. Timeframes are scored in daily, weekly, monthly order; within a
// timeframe the vote order is moving averages, MACD, RSI, VWAP, OBV.
// A nil bundle, or a nil indicator slot within a bundle, casts no vote.
func (s *Scorer) Score(daily, weekly, monthly *models.IndicatorBundle, currentPrice float64) *models.Signal {
	t := &tally{maxReasons: s.cfg.MaxReasons}

	frames := []struct {
		bundle *models.IndicatorBundle
		weight float64
	}{
		{daily, s.cfg.DailyWeight},
		{weekly, s.cfg.WeeklyWeight},
		{monthly, s.cfg.MonthlyWeight},
	}
	for _, f := range frames {
		if f.bundle != nil {
			s.scoreTimeframe(t, f.bundle, f.weight, currentPrice)
		}
	}

	if t.votes == 0 {
		return &models.Signal{
			Classification: models.SignalInsufficientData,
			Reasons:        []string{},
		}
	}

	return &models.Signal{
		Classification: s.classify(t.bullish, t.bearish),
		BullishScore:   t.bullish,
		BearishScore:   t.bearish,
		Reasons:        t.reasons,
	}
}

func (s *Scorer) scoreTimeframe(t *tally, b *models.IndicatorBundle, w float64, price float64) {
	label := b.Timeframe.Label()

	for _, period := range sortedPeriods(b.SMAs) {
		ma := b.SMAs[period]
		t.vote(ma.AboveCurrent, s.cfg.MAVote*w,
			fmt.Sprintf("%s: Price %s SMA%d", label, aboveBelow(ma.AboveCurrent), period))
	}
	for _, period := range sortedPeriods(b.EMAs) {
		ma := b.EMAs[period]
		t.vote(ma.AboveCurrent, s.cfg.MAVote*w,
			fmt.Sprintf("%s: Price %s EMA%d", label, aboveBelow(ma.AboveCurrent), period))
	}

	if b.MACD != nil {
		// Crossover and histogram sign vote independently; both can fire.
		if b.MACD.MACD > b.MACD.Signal {
			t.vote(true, s.cfg.MACDCrossVote*w, fmt.Sprintf("%s: MACD above signal line", label))
		} else if b.MACD.MACD < b.MACD.Signal {
			t.vote(false, s.cfg.MACDCrossVote*w, fmt.Sprintf("%s: MACD below signal line", label))
		}
		if b.MACD.Histogram > 0 {
			t.vote(true, s.cfg.MACDHistVote*w, fmt.Sprintf("%s: MACD histogram positive", label))
		} else if b.MACD.Histogram < 0 {
			t.vote(false, s.cfg.MACDHistVote*w, fmt.Sprintf("%s: MACD histogram negative", label))
		}
	}

	if b.RSI != nil {
		switch b.RSI.Zone {
		case models.RSIOversold:
			t.vote(true, s.cfg.RSIVote*w,
				fmt.Sprintf("%s: RSI oversold at %.1f, reversal up expected", label, b.RSI.Value))
		case models.RSIOverbought:
			t.vote(false, s.cfg.RSIVote*w,
				fmt.Sprintf("%s: RSI overbought at %.1f", label, b.RSI.Value))
		}
	}

	if b.VWAP != nil {
		if price > *b.VWAP {
			t.vote(true, s.cfg.VWAPVote*w, fmt.Sprintf("%s: Price above VWAP", label))
		} else if price < *b.VWAP {
			t.vote(false, s.cfg.VWAPVote*w, fmt.Sprintf("%s: Price below VWAP", label))
		}
	}

	if b.OBV != nil && len(b.OBVSeries) > 0 {
		if trend, ok := indicators.Last(indicators.SMA(b.OBVSeries, s.cfg.OBVTrendPeriod)); ok {
			if *b.OBV > trend {
				t.vote(true, s.cfg.OBVVote*w, fmt.Sprintf("%s: OBV above its average, accumulation", label))
			} else if *b.OBV < trend {
				t.vote(false, s.cfg.OBVVote*w, fmt.Sprintf("%s: OBV below its average, distribution", label))
			}
		}
	}
}

// classify maps the two scores to a direction. One side must clear the
// other by the neutral band before the signal leaves neutral.
func (s *Scorer) classify(bullish, bearish float64) models.SignalClassification {
	switch {
	case bullish > bearish*s.cfg.NeutralBand:
		return models.SignalBullish
	case bearish > bullish*s.cfg.NeutralBand:
		return models.SignalBearish
	default:
		return models.SignalNeutral
	}
}

func sortedPeriods(m map[int]models.MovingAverage) []int {
	periods := make([]int, 0, len(m))
	for p := range m {
		periods = append(periods, p)
	}
	sort.Ints(periods)
	return periods
}

func aboveBelow(above bool) string {
	if above {
		return "above"
	}
	return "below"
}
