package metrics

import (
	"fmt"

	"github.com/quantlens/quantlens/internal/models"
)

// GrowthTrends derives year-over-year growth for the headline line items
func (e *Engine) GrowthTrends() models.MetricCategory {
	items := []struct {
		label string
		st    models.StatementType
		key   string
	}{
		{"Revenue Growth", models.StatementIncome, KeyRevenue},
		{"Net Income Growth", models.StatementIncome, KeyNetIncome},
		{"Operating Income Growth", models.StatementIncome, KeyOperatingIncome},
		{"EPS Growth", models.StatementIncome, KeyDilutedEPS},
		{"Operating Cash Flow Growth", models.StatementCashFlow, KeyCashFromOps},
	}

	metrics := make([]models.Metric, 0, len(items))
	for _, item := range items {
		growth := YoYGrowth(e.curr(item.st, item.key), e.prev(item.st, item.key))
		metrics = append(metrics, metric(item.label, ToPercentage(growth), toneBySign(growth),
			"Year-over-year change against the prior fiscal year"))
	}

	return models.MetricCategory{Name: "Growth Trends", Metrics: metrics}
}

// HistoricalPerformance derives compound annual growth rates across the
// full record span. Non-positive endpoints read as Not Meaningful rather
// than a fractional root over a negative base.
func (e *Engine) HistoricalPerformance() models.MetricCategory {
	years := len(e.records) - 1
	if years < 1 {
		return models.MetricCategory{Name: "Historical Performance", Metrics: []models.Metric{}}
	}

	items := []struct {
		label string
		st    models.StatementType
		key   string
	}{
		{"Revenue CAGR", models.StatementIncome, KeyRevenue},
		{"Net Income CAGR", models.StatementIncome, KeyNetIncome},
		{"EPS CAGR", models.StatementIncome, KeyDilutedEPS},
	}

	metrics := make([]models.Metric, 0, len(items))
	for _, item := range items {
		cagr := CAGR(e.curr(item.st, item.key), e.value(years, item.st, item.key), years)
		metrics = append(metrics, metric(
			fmt.Sprintf("%s (%dY)", item.label, years),
			ToPercentage(cagr), toneBySign(cagr),
			"Compound annual growth over the recorded span"))
	}

	return models.MetricCategory{Name: "Historical Performance", Metrics: metrics}
}
