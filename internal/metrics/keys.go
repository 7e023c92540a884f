package metrics

// Statement line-item vocabulary. Records arrive keyed by these strings;
// unknown keys are not interpreted.
const (
	// Income statement
	KeyRevenue         = "revenue"
	KeyCostOfRevenue   = "cost_of_revenue"
	KeyGrossProfit     = "gross_profit"
	KeyOperatingIncome = "operating_income"
	KeyOperatingExp    = "operating_expenses"
	KeyNetIncome       = "net_income"
	KeyDepreciation    = "depreciation_amortization"
	KeyInterestExpense = "interest_expense"
	KeyDilutedEPS      = "diluted_eps"

	// Balance sheet
	KeyTotalAssets        = "total_assets"
	KeyTotalEquity        = "total_equity"
	KeyTotalDebt          = "total_debt"
	KeyCurrentAssets      = "total_current_assets"
	KeyCurrentLiabilities = "total_current_liabilities"
	KeyCash               = "cash_and_equivalents"
	KeyInventory          = "inventory"
	KeyReceivables        = "receivables"
	KeySharesOutstanding  = "shares_outstanding"

	// Cash flow statement
	KeyCashFromOps       = "cash_from_operations"
	KeyCapEx             = "capital_expenditures"
	KeyCashFromInvesting = "cash_from_investing"
	KeyCashFromFinancing = "cash_from_financing"
	KeyDividendsPaid     = "dividends_paid"
	KeyDividendPerShare  = "dividend_per_share"
)
