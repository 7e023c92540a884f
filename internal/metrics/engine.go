package metrics

import (
	"github.com/quantlens/quantlens/internal/common"
	"github.com/quantlens/quantlens/internal/models"
)

// Engine derives the categorized metric report for one company from its
// yearly statement records and peer list. Stateless across calls: every
// Report call recomputes from the inputs it was constructed with.
type Engine struct {
	logger  *common.Logger
	symbol  string
	records []models.FinancialYearRecord
	primary *models.PeerRecord
	peers   []models.PeerRecord
}

// NewEngine creates a metrics engine. peerList includes the subject
// company's own row; it is split out here so peer averages exclude it.
func NewEngine(logger *common.Logger, symbol string, records []models.FinancialYearRecord, peerList []models.PeerRecord) *Engine {
	primary, actual := SplitPeers(peerList, symbol)
	return &Engine{
		logger:  logger,
		symbol:  symbol,
		records: records,
		primary: primary,
		peers:   actual,
	}
}

// Report derives every metric category
func (e *Engine) Report() *models.FinancialReport {
	categories := []models.MetricCategory{
		e.Profitability(),
		e.Valuation(),
		e.CashFlowHealth(),
		e.AdvancedCashFlow(),
		e.FinancialHealthAndDebt(),
		e.AssetQuality(),
		e.ShareholderReturns(),
		e.ShareCapital(),
		e.EfficiencyRatios(),
		e.OperationalEfficiency(),
		e.GrowthTrends(),
		e.HistoricalPerformance(),
		e.Liquidity(),
		e.KeyTechnicalIndicators(),
		e.OverallSentiment(),
	}

	available := 0
	for _, c := range categories {
		for _, m := range c.Metrics {
			if m.Value.Valid() {
				available++
			}
		}
	}
	e.logger.Debug().
		Str("symbol", e.symbol).
		Int("categories", len(categories)).
		Int("available_metrics", available).
		Msg("Financial report derived")

	return &models.FinancialReport{Symbol: e.symbol, Categories: categories}
}

// value extracts one line item for a year index (0 = current year)
func (e *Engine) value(yearIndex int, st models.StatementType, key string) models.Value {
	return StatementValue(e.records, yearIndex, st, key)
}

func (e *Engine) curr(st models.StatementType, key string) models.Value {
	return e.value(0, st, key)
}

func (e *Engine) prev(st models.StatementType, key string) models.Value {
	return e.value(1, st, key)
}

// metric assembles a display metric from a formatted value
func metric(label string, f Formatted, tone models.Tone, explanation string) models.Metric {
	return models.Metric{
		Label:       label,
		Formatted:   f.Text,
		Unit:        f.Unit,
		Value:       f.Raw,
		Tone:        tone,
		Explanation: explanation,
	}
}

// toneBySign colours positive values green and negative red
func toneBySign(v models.Value) models.Tone {
	f, ok := v.Float()
	if !ok {
		return models.ToneNeutral
	}
	switch {
	case f > 0:
		return models.TonePositive
	case f < 0:
		return models.ToneNegative
	default:
		return models.ToneNeutral
	}
}

// toneByThreshold colours values at or above the threshold green,
// below red
func toneByThreshold(v models.Value, threshold float64) models.Tone {
	f, ok := v.Float()
	if !ok {
		return models.ToneNeutral
	}
	if f >= threshold {
		return models.TonePositive
	}
	return models.ToneNegative
}

// withYoY annotates a metric with the year-over-year change of its
// underlying line item. No annotation when the prior year is unusable.
func withYoY(m models.Metric, curr, prev models.Value) models.Metric {
	growth := YoYGrowth(curr, prev)
	if g, ok := growth.Float(); ok {
		m.YoY = &models.YoYChange{Value: g, Unit: "%", Tone: toneBySign(growth)}
	}
	return m
}

// withPeerAverage annotates a metric with the peer mean and a verdict
func withPeerAverage(m models.Metric, avg Formatted, verdict models.PeerVerdict) models.Metric {
	if avg.Raw.Valid() {
		peer := metric("Peer Average", avg, models.ToneNeutral, "")
		m.PeerAverage = &peer
		m.PeerVerdict = verdict
	}
	return m
}
