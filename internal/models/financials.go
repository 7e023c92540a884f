package models

import (
	"encoding/json"
	"math"
)

// StatementType selects one of the three statement maps in a year record
type StatementType string

const (
	StatementIncome   StatementType = "income"
	StatementBalance  StatementType = "balance"
	StatementCashFlow StatementType = "cashflow"
)

// FinancialYearRecord holds one fiscal year's normalized statement line
// items, keyed by the fixed line-item vocabulary. Records arrive ordered
// most-recent-first: index 0 is the current year, index 1 the prior year.
type FinancialYearRecord struct {
	Year              string         `json:"year"`
	IncomeStatement   map[string]any `json:"income_statement"`
	BalanceSheet      map[string]any `json:"balance_sheet"`
	CashFlowStatement map[string]any `json:"cash_flow_statement"`
}

// Statement returns the map for the requested statement type
func (r *FinancialYearRecord) Statement(st StatementType) map[string]any {
	switch st {
	case StatementIncome:
		return r.IncomeStatement
	case StatementBalance:
		return r.BalanceSheet
	case StatementCashFlow:
		return r.CashFlowStatement
	default:
		return nil
	}
}

// PeerRecord is one row of a peer-company comparison list. The subject
// company's own row is present in the list and must be excluded from
// peer averages.
type PeerRecord struct {
	CompanyID       string  `json:"company_id"`
	MarketCap       float64 `json:"market_cap"`
	PriceToEarnings float64 `json:"price_to_earnings"`
	PriceToBook     float64 `json:"price_to_book"`
	DividendYield   float64 `json:"dividend_yield"`
	ReturnOnEquity  float64 `json:"return_on_equity"`
	Price           float64 `json:"price"`
	PercentChange   float64 `json:"percent_change"`
	OverallRating   string  `json:"overall_rating,omitempty"`
}

// ValueState tags a Value as a real number or one of the two sentinels
type ValueState int

const (
	ValueNumber ValueState = iota
	ValueNotAvailable
	ValueNotMeaningful
)

// Value is a three-state numeric: a valid number, the NotAvailable
// sentinel for missing or unparseable data, or the NotMeaningful sentinel
// for well-formed inputs with no sensible answer (CAGR over a negative
// base). Arithmetic over Values short-circuits on sentinels instead of
// propagating NaN.
type Value struct {
	state ValueState
	num   float64
}

// NotAvailable is the display form of the missing-value sentinel
const NotAvailable = "N/A"

// NotMeaningful is the display form of the not-meaningful sentinel
const NotMeaningful = "Not Meaningful"

// Num wraps a float as a valid Value; NaN and Inf collapse to NotAvailable
func Num(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return NA()
	}
	return Value{state: ValueNumber, num: f}
}

// NA returns the NotAvailable sentinel
func NA() Value {
	return Value{state: ValueNotAvailable}
}

// NM returns the NotMeaningful sentinel
func NM() Value {
	return Value{state: ValueNotMeaningful}
}

// State returns the tag of the value
func (v Value) State() ValueState { return v.state }

// Valid reports whether the value holds a real number
func (v Value) Valid() bool { return v.state == ValueNumber }

// Float returns the numeric content and whether it is valid
func (v Value) Float() (float64, bool) {
	return v.num, v.state == ValueNumber
}

// String renders the value for display fallbacks
func (v Value) String() string {
	switch v.state {
	case ValueNotAvailable:
		return NotAvailable
	case ValueNotMeaningful:
		return NotMeaningful
	default:
		return ""
	}
}

// MarshalJSON emits the number, or null for either sentinel
func (v Value) MarshalJSON() ([]byte, error) {
	if v.state != ValueNumber {
		return []byte("null"), nil
	}
	return json.Marshal(v.num)
}

// UnmarshalJSON reads a number back into a valid Value. Null reads as
// NotAvailable; the NotMeaningful distinction does not survive a JSON
// round trip since both sentinels serialize to null.
func (v *Value) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = NA()
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*v = Num(f)
	return nil
}

// Tone is the display colouring of a metric
type Tone string

const (
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
	ToneNeutral  Tone = "neutral"
)

// PeerVerdict compares a company metric against its peer average
type PeerVerdict string

const (
	VerdictBetter  PeerVerdict = "better"
	VerdictWorse   PeerVerdict = "worse"
	VerdictHigher  PeerVerdict = "higher"
	VerdictLower   PeerVerdict = "lower"
	VerdictNeutral PeerVerdict = "neutral"
)

// YoYChange annotates a metric with its year-over-year growth
type YoYChange struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
	Tone  Tone    `json:"tone"`
}

// Metric is one derived, display-ready financial figure
type Metric struct {
	Label       string      `json:"label"`
	Formatted   string      `json:"formatted"`
	Unit        string      `json:"unit,omitempty"`
	Value       Value       `json:"value"`
	Tone        Tone        `json:"tone"`
	PeerAverage *Metric     `json:"peer_average,omitempty"`
	PeerVerdict PeerVerdict `json:"peer_verdict,omitempty"`
	YoY         *YoYChange  `json:"yoy,omitempty"`
	Explanation string      `json:"explanation,omitempty"`
}

// MetricCategory groups related metrics for presentation
type MetricCategory struct {
	Name    string   `json:"name"`
	Metrics []Metric `json:"metrics"`
}

// FinancialReport is the full categorized output of the metrics engine
type FinancialReport struct {
	Symbol     string           `json:"symbol,omitempty"`
	Categories []MetricCategory `json:"categories"`
}
