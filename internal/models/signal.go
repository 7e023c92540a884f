package models

import "time"

// SignalClassification is the overall directional read of an analysis
type SignalClassification string

const (
	SignalStronglyBullish  SignalClassification = "strongly_bullish"
	SignalBullish          SignalClassification = "bullish"
	SignalNeutral          SignalClassification = "neutral"
	SignalBearish          SignalClassification = "bearish"
	SignalStronglyBearish  SignalClassification = "strongly_bearish"
	SignalInsufficientData SignalClassification = "insufficient_data"
	SignalError            SignalClassification = "error"
)

// Signal is the scored multi-timeframe verdict for one instrument.
// Reasons are ordered by collection: daily, weekly, monthly, with
// indicator votes in evaluation order within each timeframe.
type Signal struct {
	Classification SignalClassification `json:"classification"`
	BullishScore   float64              `json:"bullish_score"`
	BearishScore   float64              `json:"bearish_score"`
	Reasons        []string             `json:"reasons"`
}

// Analysis is the full output of one technical-analysis run
type Analysis struct {
	RunID        string           `json:"run_id"`
	Symbol       string           `json:"symbol,omitempty"`
	CurrentPrice float64          `json:"current_price"`
	Daily        *IndicatorBundle `json:"daily,omitempty"`
	Weekly       *IndicatorBundle `json:"weekly,omitempty"`
	Monthly      *IndicatorBundle `json:"monthly,omitempty"`
	Signal       *Signal          `json:"signal"`
	ComputedAt   time.Time        `json:"computed_at"`
}
