// Package common provides shared utilities for QuantLens
package common

import (
	"fmt"
	"os"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for QuantLens
type Config struct {
	Environment string         `toml:"environment"`
	Analyzer    AnalyzerConfig `toml:"analyzer"`
	Scorer      ScorerConfig   `toml:"scorer"`
	Logging     LoggingConfig  `toml:"logging"`
}

// AnalyzerConfig holds the indicator parameters used per timeframe.
// Keeping these as configuration rather than package-level literals lets
// tests run the analyzer with alternate windows.
type AnalyzerConfig struct {
	SMAPeriods      []int   `toml:"sma_periods"`
	EMAPeriods      []int   `toml:"ema_periods"`
	RSIPeriod       int     `toml:"rsi_period"`
	RSIOversold     float64 `toml:"rsi_oversold"`
	RSIOverbought   float64 `toml:"rsi_overbought"`
	BollingerPeriod int     `toml:"bollinger_period"`
	BollingerK      float64 `toml:"bollinger_k"`
	MACDFast        int     `toml:"macd_fast"`
	MACDSlow        int     `toml:"macd_slow"`
	MACDSignal      int     `toml:"macd_signal"`
	VWAPPeriod      int     `toml:"vwap_period"`
	VolumeSMAPeriod int     `toml:"volume_sma_period"`
	OBVTrendPeriod  int     `toml:"obv_trend_period"`
}

// ScorerConfig holds the vote weights and thresholds of the signal scorer
type ScorerConfig struct {
	DailyWeight   float64 `toml:"daily_weight"`
	WeeklyWeight  float64 `toml:"weekly_weight"`
	MonthlyWeight float64 `toml:"monthly_weight"`

	MAVote        float64 `toml:"ma_vote"`
	MACDCrossVote float64 `toml:"macd_cross_vote"`
	MACDHistVote  float64 `toml:"macd_hist_vote"`
	RSIVote       float64 `toml:"rsi_vote"`
	VWAPVote      float64 `toml:"vwap_vote"`
	OBVVote       float64 `toml:"obv_vote"`

	// OBVTrendPeriod is the SMA window applied to the OBV series when
	// deciding the accumulation/distribution vote.
	OBVTrendPeriod int `toml:"obv_trend_period"`

	// NeutralBand is the multiplicative margin one side must clear over
	// the other before the signal leaves neutral.
	NeutralBand float64 `toml:"neutral_band"`
	// MaxReasons caps the collected reason strings.
	MaxReasons int `toml:"max_reasons"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// DefaultAnalyzerConfig returns the standard indicator parameters
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		SMAPeriods:      []int{20, 50, 200},
		EMAPeriods:      []int{20, 50, 200},
		RSIPeriod:       14,
		RSIOversold:     30,
		RSIOverbought:   70,
		BollingerPeriod: 20,
		BollingerK:      2,
		MACDFast:        12,
		MACDSlow:        26,
		MACDSignal:      9,
		VWAPPeriod:      20,
		VolumeSMAPeriod: 20,
		OBVTrendPeriod:  20,
	}
}

// DefaultScorerConfig returns the standard vote weights.
// Longer timeframes count more.
func DefaultScorerConfig() ScorerConfig {
	return ScorerConfig{
		DailyWeight:    1.0,
		WeeklyWeight:   1.5,
		MonthlyWeight:  2.0,
		MAVote:         1.0,
		MACDCrossVote:  2.0,
		MACDHistVote:   0.5,
		RSIVote:        1.5,
		VWAPVote:       1.0,
		OBVVote:        1.0,
		OBVTrendPeriod: 20,
		NeutralBand:    1.1,
		MaxReasons:     15,
	}
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Analyzer:    DefaultAnalyzerConfig(),
		Scorer:      DefaultScorerConfig(),
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Later files override earlier ones; missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("QUANTLENS_ENV"); env != "" {
		config.Environment = env
	}

	if level := os.Getenv("QUANTLENS_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if period := os.Getenv("QUANTLENS_RSI_PERIOD"); period != "" {
		if p, err := strconv.Atoi(period); err == nil && p > 0 {
			config.Analyzer.RSIPeriod = p
		}
	}
}

// Validate rejects parameter combinations the engine cannot run with
func (c *Config) Validate() error {
	a := &c.Analyzer
	if a.RSIPeriod < 1 {
		return fmt.Errorf("analyzer.rsi_period must be >= 1, got %d", a.RSIPeriod)
	}
	if a.BollingerPeriod < 1 {
		return fmt.Errorf("analyzer.bollinger_period must be >= 1, got %d", a.BollingerPeriod)
	}
	if a.MACDFast >= a.MACDSlow {
		return fmt.Errorf("analyzer.macd_fast (%d) must be < macd_slow (%d)", a.MACDFast, a.MACDSlow)
	}
	if a.MACDSignal < 1 {
		return fmt.Errorf("analyzer.macd_signal must be >= 1, got %d", a.MACDSignal)
	}
	for _, p := range a.SMAPeriods {
		if p < 1 {
			return fmt.Errorf("analyzer.sma_periods entries must be >= 1, got %d", p)
		}
	}
	for _, p := range a.EMAPeriods {
		if p < 1 {
			return fmt.Errorf("analyzer.ema_periods entries must be >= 1, got %d", p)
		}
	}
	if c.Scorer.NeutralBand < 1 {
		return fmt.Errorf("scorer.neutral_band must be >= 1, got %g", c.Scorer.NeutralBand)
	}
	if c.Scorer.MaxReasons < 1 {
		return fmt.Errorf("scorer.max_reasons must be >= 1, got %d", c.Scorer.MaxReasons)
	}
	return nil
}
