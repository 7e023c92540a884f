// Package analyzer computes per-timeframe indicator bundles and scores
// them into a directional signal.
package analyzer

import (
	"math"

	"github.com/quantlens/quantlens/internal/common"
	"github.com/quantlens/quantlens/internal/indicators"
	"github.com/quantlens/quantlens/internal/models"
)

// Analyzer runs the indicator library over one timeframe's series
type Analyzer struct {
	cfg common.AnalyzerConfig
}

// NewAnalyzer creates an analyzer with the given indicator parameters
func NewAnalyzer(cfg common.AnalyzerConfig) *Analyzer {
	return &Analyzer{cfg: cfg}
}

// AnalyzeTimeframe computes the full indicator bundle for one series.
// refPrice is the daily reference price used for above/below comparisons
// on every timeframe. hasVolume gates the volume indicators; a timeframe
// without aligned volume data leaves those slots nil. Any indicator whose
// minimum window exceeds the series length is left nil, never zeroed.
func (a *Analyzer) AnalyzeTimeframe(series models.Series, refPrice float64, hasVolume bool) *models.IndicatorBundle {
	bundle := &models.IndicatorBundle{
		Timeframe: series.Timeframe,
		BarCount:  series.Len(),
		SMAs:      make(map[int]models.MovingAverage),
		EMAs:      make(map[int]models.MovingAverage),
	}
	if series.Len() == 0 {
		return bundle
	}

	prices := series.Prices()

	for _, period := range a.cfg.SMAPeriods {
		if v, ok := indicators.Last(indicators.SMA(prices, period)); ok {
			bundle.SMAs[period] = models.MovingAverage{Value: v, AboveCurrent: refPrice > v}
		}
	}
	for _, period := range a.cfg.EMAPeriods {
		if v, ok := indicators.Last(indicators.EMA(prices, period)); ok {
			bundle.EMAs[period] = models.MovingAverage{Value: v, AboveCurrent: refPrice > v}
		}
	}

	if v, ok := indicators.Last(indicators.RSI(prices, a.cfg.RSIPeriod)); ok {
		bundle.RSI = &models.RSIReading{Value: v, Zone: a.rsiZone(v)}
	}

	bands := indicators.BollingerBands(prices, a.cfg.BollingerPeriod, a.cfg.BollingerK)
	if len(bands.Middle) > 0 {
		last := len(bands.Middle) - 1
		bundle.Bollinger = &models.BollingerReading{
			Upper:            bands.Upper[last],
			Middle:           bands.Middle[last],
			Lower:            bands.Lower[last],
			PriceAboveMiddle: refPrice > bands.Middle[last],
		}
	}

	macd := indicators.MACD(prices, a.cfg.MACDFast, a.cfg.MACDSlow, a.cfg.MACDSignal)
	if len(macd.MACD) > 0 {
		last := len(macd.MACD) - 1
		if !math.IsNaN(macd.Signal[last]) {
			bundle.MACD = &models.MACDReading{
				MACD:      macd.MACD[last],
				Signal:    macd.Signal[last],
				Histogram: macd.Histogram[last],
			}
		}
	}

	if hasVolume {
		a.analyzeVolume(bundle, prices, series.Volumes())
	}

	return bundle
}

// analyzeVolume fills the volume-dependent slots of the bundle
func (a *Analyzer) analyzeVolume(bundle *models.IndicatorBundle, prices, volumes []float64) {
	if v, ok := indicators.Last(indicators.RollingVWAP(prices, volumes, a.cfg.VWAPPeriod)); ok {
		bundle.VWAP = &v
	}
	if v, ok := indicators.Last(indicators.VolumeSMA(volumes, a.cfg.VolumeSMAPeriod)); ok {
		bundle.VolumeSMA = &v
	}

	obv := indicators.OBV(prices, volumes)
	if len(obv) > 0 {
		bundle.OBVSeries = obv
		last := obv[len(obv)-1]
		bundle.OBV = &last
	}
}

func (a *Analyzer) rsiZone(v float64) models.RSIZone {
	switch {
	case v < a.cfg.RSIOversold:
		return models.RSIOversold
	case v > a.cfg.RSIOverbought:
		return models.RSIOverbought
	default:
		return models.RSINeutral
	}
}
