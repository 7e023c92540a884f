package metrics

import "github.com/quantlens/quantlens/internal/models"

// ShareholderReturns derives dividend metrics
func (e *Engine) ShareholderReturns() models.MetricCategory {
	dps := e.curr(models.StatementCashFlow, KeyDividendPerShare)
	prevDPS := e.prev(models.StatementCashFlow, KeyDividendPerShare)
	dilutedEPS := e.curr(models.StatementIncome, KeyDilutedEPS)
	dividendsPaid := e.curr(models.StatementCashFlow, KeyDividendsPaid)

	payoutRatio := Percent(dps, dilutedEPS)

	// A payout inside the sustainable band reads positive; paying out
	// more than earnings reads negative.
	payoutTone := models.ToneNeutral
	if p, ok := payoutRatio.Float(); ok {
		if p > 0 && p <= 60 {
			payoutTone = models.TonePositive
		} else if p > 100 {
			payoutTone = models.ToneNegative
		}
	}

	return models.MetricCategory{
		Name: "Shareholder Returns",
		Metrics: []models.Metric{
			withYoY(metric("Dividend per Share", ToCurrency(dps), toneBySign(dps),
				"Cash dividend declared per share"), dps, prevDPS),
			metric("Payout Ratio", ToPercentage(payoutRatio), payoutTone,
				"Share of diluted earnings paid out as dividends"),
			metric("Dividends Paid", ToCrores(Scale(dividendsPaid, -1)), models.ToneNeutral,
				"Total cash returned to shareholders in the year"),
		},
	}
}

// ShareCapital derives per-share capital structure metrics
func (e *Engine) ShareCapital() models.MetricCategory {
	shares := e.curr(models.StatementBalance, KeySharesOutstanding)
	prevShares := e.prev(models.StatementBalance, KeySharesOutstanding)
	dilutedEPS := e.curr(models.StatementIncome, KeyDilutedEPS)
	prevEPS := e.prev(models.StatementIncome, KeyDilutedEPS)
	totalEquity := e.curr(models.StatementBalance, KeyTotalEquity)

	bookValuePerShare := Div(totalEquity, shares)

	return models.MetricCategory{
		Name: "Share Capital",
		Metrics: []models.Metric{
			withYoY(metric("Shares Outstanding", ToCrores(shares), models.ToneNeutral,
				"Issued share count in crores"), shares, prevShares),
			withYoY(metric("Diluted EPS", ToCurrency(dilutedEPS), toneBySign(dilutedEPS),
				"Earnings per share after potential dilution"), dilutedEPS, prevEPS),
			metric("Book Value per Share", ToCurrency(bookValuePerShare), models.ToneNeutral,
				"Shareholder equity per share"),
		},
	}
}
