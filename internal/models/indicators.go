package models

// MovingAverage is one SMA or EMA reading for a single period
type MovingAverage struct {
	Value        float64 `json:"value"`
	AboveCurrent bool    `json:"price_above"` // reference price above this average
}

// RSIZone classifies an RSI reading
type RSIZone string

const (
	RSIOversold   RSIZone = "oversold"
	RSIOverbought RSIZone = "overbought"
	RSINeutral    RSIZone = "neutral"
)

// RSIReading is the latest RSI value and its zone
type RSIReading struct {
	Value float64 `json:"value"`
	Zone  RSIZone `json:"zone"`
}

// BollingerReading holds the latest band values
type BollingerReading struct {
	Upper            float64 `json:"upper"`
	Middle           float64 `json:"middle"`
	Lower            float64 `json:"lower"`
	PriceAboveMiddle bool    `json:"price_above_middle"`
}

// MACDReading holds the latest MACD line, signal line and histogram values
type MACDReading struct {
	MACD      float64 `json:"macd"`
	Signal    float64 `json:"signal"`
	Histogram float64 `json:"histogram"`
}

// IndicatorBundle holds every indicator computed for one timeframe.
// A nil slot means the series was too short for that indicator; the
// scorer skips nil slots, it never treats them as neutral votes.
type IndicatorBundle struct {
	Timeframe Timeframe             `json:"timeframe"`
	BarCount  int                   `json:"bar_count"`
	SMAs      map[int]MovingAverage `json:"smas"`
	EMAs      map[int]MovingAverage `json:"emas"`
	RSI       *RSIReading           `json:"rsi,omitempty"`
	Bollinger *BollingerReading     `json:"bollinger,omitempty"`
	MACD      *MACDReading          `json:"macd,omitempty"`
	VWAP      *float64              `json:"vwap,omitempty"`
	VolumeSMA *float64              `json:"volume_sma,omitempty"`
	OBV       *float64              `json:"obv,omitempty"`
	OBVSeries []float64             `json:"obv_series,omitempty"`
}
