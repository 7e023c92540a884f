package metrics

import "github.com/quantlens/quantlens/internal/models"

// EfficiencyRatios derives working-capital turnover metrics
func (e *Engine) EfficiencyRatios() models.MetricCategory {
	revenue := e.curr(models.StatementIncome, KeyRevenue)
	costOfRevenue := e.curr(models.StatementIncome, KeyCostOfRevenue)
	inventory := e.curr(models.StatementBalance, KeyInventory)
	receivables := e.curr(models.StatementBalance, KeyReceivables)
	currentAssets := e.curr(models.StatementBalance, KeyCurrentAssets)
	currentLiabilities := e.curr(models.StatementBalance, KeyCurrentLiabilities)

	inventoryTurnover := Div(costOfRevenue, inventory)
	receivablesTurnover := Div(revenue, receivables)
	workingCapital := Sub(currentAssets, currentLiabilities)

	return models.MetricCategory{
		Name: "Efficiency Ratios",
		Metrics: []models.Metric{
			metric("Inventory Turnover", ToRatio(inventoryTurnover), models.ToneNeutral,
				"How often inventory cycles through cost of revenue in a year"),
			metric("Receivables Turnover", ToRatio(receivablesTurnover), models.ToneNeutral,
				"How often receivables are collected in a year"),
			metric("Working Capital", ToCrores(workingCapital), toneBySign(workingCapital),
				"Current assets minus current liabilities"),
		},
	}
}

// OperationalEfficiency derives cost-structure metrics
func (e *Engine) OperationalEfficiency() models.MetricCategory {
	revenue := e.curr(models.StatementIncome, KeyRevenue)
	operatingExpenses := e.curr(models.StatementIncome, KeyOperatingExp)
	depreciation := e.curr(models.StatementIncome, KeyDepreciation)

	opexRatio := Percent(operatingExpenses, revenue)
	depreciationShare := Percent(depreciation, revenue)

	// Lower operating cost share reads positive.
	opexTone := models.ToneNeutral
	if r, ok := opexRatio.Float(); ok {
		if r <= 70 {
			opexTone = models.TonePositive
		} else if r > 90 {
			opexTone = models.ToneNegative
		}
	}

	return models.MetricCategory{
		Name: "Operational Efficiency",
		Metrics: []models.Metric{
			metric("Operating Expense Ratio", ToPercentage(opexRatio), opexTone,
				"Operating expenses as a share of revenue"),
			metric("Depreciation to Revenue", ToPercentage(depreciationShare), models.ToneNeutral,
				"Depreciation and amortization as a share of revenue"),
		},
	}
}
