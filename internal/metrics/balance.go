package metrics

import "github.com/quantlens/quantlens/internal/models"

// FinancialHealthAndDebt derives leverage and coverage metrics
func (e *Engine) FinancialHealthAndDebt() models.MetricCategory {
	totalDebt := e.curr(models.StatementBalance, KeyTotalDebt)
	totalEquity := e.curr(models.StatementBalance, KeyTotalEquity)
	totalAssets := e.curr(models.StatementBalance, KeyTotalAssets)
	operatingIncome := e.curr(models.StatementIncome, KeyOperatingIncome)
	interest := e.curr(models.StatementIncome, KeyInterestExpense)

	debtToEquity := Div(totalDebt, totalEquity)
	debtToAssets := Div(totalDebt, totalAssets)
	coverage := Div(operatingIncome, interest)

	// Lower leverage reads positive; above 2x equity reads negative.
	deTone := models.ToneNeutral
	if de, ok := debtToEquity.Float(); ok {
		if de <= 1 {
			deTone = models.TonePositive
		} else if de > 2 {
			deTone = models.ToneNegative
		}
	}

	return models.MetricCategory{
		Name: "Financial Health & Debt",
		Metrics: []models.Metric{
			metric("Debt to Equity", ToRatio(debtToEquity), deTone,
				"Total debt per unit of shareholder equity"),
			metric("Debt to Assets", ToRatio(debtToAssets), models.ToneNeutral,
				"Share of the asset base funded by debt"),
			metric("Interest Coverage", ToRatio(coverage), toneByThreshold(coverage, 2),
				"Operating income available per unit of interest owed"),
			metric("Total Debt", ToCrores(totalDebt), models.ToneNeutral,
				"Total interest-bearing borrowings"),
		},
	}
}

// AssetQuality derives asset base and utilisation metrics
func (e *Engine) AssetQuality() models.MetricCategory {
	totalAssets := e.curr(models.StatementBalance, KeyTotalAssets)
	prevAssets := e.prev(models.StatementBalance, KeyTotalAssets)
	revenue := e.curr(models.StatementIncome, KeyRevenue)
	cash := e.curr(models.StatementBalance, KeyCash)

	assetTurnover := Div(revenue, totalAssets)
	cashShare := Percent(cash, totalAssets)

	return models.MetricCategory{
		Name: "Asset Quality",
		Metrics: []models.Metric{
			withYoY(metric("Total Assets", ToCrores(totalAssets), models.ToneNeutral,
				"Total asset base"), totalAssets, prevAssets),
			metric("Asset Turnover", ToRatio(assetTurnover), toneByThreshold(assetTurnover, 0.5),
				"Revenue generated per unit of assets"),
			metric("Cash to Assets", ToPercentage(cashShare), models.ToneNeutral,
				"Share of assets held as cash and equivalents"),
		},
	}
}

// Liquidity derives short-term solvency metrics
func (e *Engine) Liquidity() models.MetricCategory {
	currentAssets := e.curr(models.StatementBalance, KeyCurrentAssets)
	currentLiabilities := e.curr(models.StatementBalance, KeyCurrentLiabilities)
	inventory := e.curr(models.StatementBalance, KeyInventory)
	cash := e.curr(models.StatementBalance, KeyCash)

	currentRatio := Div(currentAssets, currentLiabilities)
	quickRatio := Div(Sub(currentAssets, OrZero(inventory)), currentLiabilities)
	cashRatio := Div(cash, currentLiabilities)

	return models.MetricCategory{
		Name: "Liquidity",
		Metrics: []models.Metric{
			metric("Current Ratio", ToRatio(currentRatio), toneByThreshold(currentRatio, 1),
				"Current assets available per unit of current liabilities"),
			metric("Quick Ratio", ToRatio(quickRatio), toneByThreshold(quickRatio, 1),
				"Current ratio excluding inventory"),
			metric("Cash Ratio", ToRatio(cashRatio), models.ToneNeutral,
				"Immediate cash cover of current liabilities"),
		},
	}
}
