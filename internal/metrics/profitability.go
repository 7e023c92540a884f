package metrics

import "github.com/quantlens/quantlens/internal/models"

// Profitability derives margin and return metrics from the current year,
// each annotated with its year-over-year change where the prior year
// allows it.
func (e *Engine) Profitability() models.MetricCategory {
	revenue := e.curr(models.StatementIncome, KeyRevenue)
	prevRevenue := e.prev(models.StatementIncome, KeyRevenue)
	netIncome := e.curr(models.StatementIncome, KeyNetIncome)
	prevNetIncome := e.prev(models.StatementIncome, KeyNetIncome)
	operatingIncome := e.curr(models.StatementIncome, KeyOperatingIncome)
	grossProfit := e.curr(models.StatementIncome, KeyGrossProfit)
	totalAssets := e.curr(models.StatementBalance, KeyTotalAssets)
	totalEquity := e.curr(models.StatementBalance, KeyTotalEquity)

	netMargin := Percent(netIncome, revenue)
	operatingMargin := Percent(operatingIncome, revenue)
	grossMargin := Percent(grossProfit, revenue)
	roe := Percent(netIncome, totalEquity)
	roa := Percent(netIncome, totalAssets)

	// Missing D&A reads as zero here: a present operating income with no
	// reported depreciation still has a meaningful EBITDA.
	ebitda := models.NA()
	if operatingIncome.Valid() {
		ebitda = Add(operatingIncome, OrZero(e.curr(models.StatementIncome, KeyDepreciation)))
	}

	roeMetric := metric("Return on Equity", ToPercentage(roe), toneBySign(roe),
		"Net income earned per unit of shareholder equity")
	roeMetric = withPeerAverage(roeMetric,
		ToPercentage(PeerAverage(e.peers, func(p models.PeerRecord) float64 { return p.ReturnOnEquity })),
		CompareSigned(roe, PeerAverage(e.peers, func(p models.PeerRecord) float64 { return p.ReturnOnEquity })))

	return models.MetricCategory{
		Name: "Profitability",
		Metrics: []models.Metric{
			withYoY(metric("Net Profit Margin", ToPercentage(netMargin), toneBySign(netMargin),
				"Net income as a share of revenue"), netIncome, prevNetIncome),
			withYoY(metric("Operating Margin", ToPercentage(operatingMargin), toneBySign(operatingMargin),
				"Operating income as a share of revenue"), operatingIncome, e.prev(models.StatementIncome, KeyOperatingIncome)),
			metric("Gross Margin", ToPercentage(grossMargin), toneBySign(grossMargin),
				"Gross profit as a share of revenue"),
			roeMetric,
			metric("Return on Assets", ToPercentage(roa), toneBySign(roa),
				"Net income relative to the total asset base"),
			withYoY(metric("EBITDA", ToCrores(ebitda), toneBySign(ebitda),
				"Operating income before depreciation and amortization"), revenue, prevRevenue),
		},
	}
}

// Valuation derives market-pricing metrics from the subject company's own
// peer-list row, each compared against the peer average.
func (e *Engine) Valuation() models.MetricCategory {
	pe, pb, marketCap, divYield := models.NA(), models.NA(), models.NA(), models.NA()
	if e.primary != nil {
		pe = models.Num(e.primary.PriceToEarnings)
		pb = models.Num(e.primary.PriceToBook)
		marketCap = models.Num(e.primary.MarketCap)
		divYield = models.Num(e.primary.DividendYield)
	}

	avgPE := PeerAverage(e.peers, func(p models.PeerRecord) float64 { return p.PriceToEarnings })
	avgPB := PeerAverage(e.peers, func(p models.PeerRecord) float64 { return p.PriceToBook })
	avgCap := PeerAverage(e.peers, func(p models.PeerRecord) float64 { return p.MarketCap })
	avgYield := PeerAverage(e.peers, func(p models.PeerRecord) float64 { return p.DividendYield })

	return models.MetricCategory{
		Name: "Valuation",
		Metrics: []models.Metric{
			withPeerAverage(metric("Price to Earnings", ToRatio(pe), models.ToneNeutral,
				"Price paid per unit of earnings; lower is conventionally cheaper"),
				ToRatio(avgPE), CompareLowerBetter(pe, avgPE)),
			withPeerAverage(metric("Price to Book", ToRatio(pb), models.ToneNeutral,
				"Price relative to book value; lower is conventionally cheaper"),
				ToRatio(avgPB), CompareLowerBetter(pb, avgPB)),
			withPeerAverage(metric("Market Cap", ToCrores(marketCap), models.ToneNeutral,
				"Total market value of the company"),
				ToCrores(avgCap), CompareSize(marketCap, avgCap)),
			withPeerAverage(metric("Dividend Yield", ToPercentage(divYield), toneBySign(divYield),
				"Annual dividend as a share of the current price"),
				ToPercentage(avgYield), CompareSigned(divYield, avgYield)),
		},
	}
}
