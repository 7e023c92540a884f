package metrics

import "github.com/quantlens/quantlens/internal/models"

// CashFlowHealth derives the primary operating cash metrics
func (e *Engine) CashFlowHealth() models.MetricCategory {
	cashOps := e.curr(models.StatementCashFlow, KeyCashFromOps)
	prevCashOps := e.prev(models.StatementCashFlow, KeyCashFromOps)
	netIncome := e.curr(models.StatementIncome, KeyNetIncome)

	// Capital expenditures are stored as a negative outflow, so free cash
	// flow is an addition.
	fcf := Add(cashOps, e.curr(models.StatementCashFlow, KeyCapEx))
	conversion := Div(cashOps, netIncome)

	return models.MetricCategory{
		Name: "Cash Flow Health",
		Metrics: []models.Metric{
			withYoY(metric("Cash from Operations", ToCrores(cashOps), toneBySign(cashOps),
				"Cash generated by the core business"), cashOps, prevCashOps),
			metric("Free Cash Flow", ToCrores(fcf), toneBySign(fcf),
				"Operating cash remaining after capital expenditure"),
			metric("Cash Conversion", ToRatio(conversion), toneByThreshold(conversion, 1),
				"Operating cash flow per unit of reported net income"),
		},
	}
}

// AdvancedCashFlow derives secondary cash flow quality metrics
func (e *Engine) AdvancedCashFlow() models.MetricCategory {
	revenue := e.curr(models.StatementIncome, KeyRevenue)
	cashOps := e.curr(models.StatementCashFlow, KeyCashFromOps)
	capex := e.curr(models.StatementCashFlow, KeyCapEx)
	investing := e.curr(models.StatementCashFlow, KeyCashFromInvesting)
	financing := e.curr(models.StatementCashFlow, KeyCashFromFinancing)

	fcf := Add(cashOps, capex)
	fcfMargin := Percent(fcf, revenue)
	// CapEx is negative; negate for an intensity share of revenue.
	capexIntensity := Percent(Scale(capex, -1), revenue)

	return models.MetricCategory{
		Name: "Advanced Cash Flow",
		Metrics: []models.Metric{
			metric("FCF Margin", ToPercentage(fcfMargin), toneBySign(fcfMargin),
				"Free cash flow as a share of revenue"),
			metric("CapEx Intensity", ToPercentage(capexIntensity), models.ToneNeutral,
				"Capital expenditure as a share of revenue"),
			metric("Cash from Investing", ToCrores(investing), toneBySign(investing),
				"Net cash used in or released by investing activity"),
			metric("Cash from Financing", ToCrores(financing), toneBySign(financing),
				"Net cash raised from or returned to capital providers"),
		},
	}
}
