package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, "info", config.Logging.Level)

	assert.Equal(t, []int{20, 50, 200}, config.Analyzer.SMAPeriods)
	assert.Equal(t, []int{20, 50, 200}, config.Analyzer.EMAPeriods)
	assert.Equal(t, 14, config.Analyzer.RSIPeriod)
	assert.Equal(t, 30.0, config.Analyzer.RSIOversold)
	assert.Equal(t, 70.0, config.Analyzer.RSIOverbought)
	assert.Equal(t, 12, config.Analyzer.MACDFast)
	assert.Equal(t, 26, config.Analyzer.MACDSlow)
	assert.Equal(t, 9, config.Analyzer.MACDSignal)

	assert.Equal(t, 1.0, config.Scorer.DailyWeight)
	assert.Equal(t, 1.5, config.Scorer.WeeklyWeight)
	assert.Equal(t, 2.0, config.Scorer.MonthlyWeight)
	assert.Equal(t, 1.1, config.Scorer.NeutralBand)
	assert.Equal(t, 15, config.Scorer.MaxReasons)
}

func TestLoadConfigMissingFilesKeepDefaults(t *testing.T) {
	config, err := LoadConfig("does-not-exist.toml", "")
	require.NoError(t, err)
	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, 14, config.Analyzer.RSIPeriod)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quantlens.toml")
	content := `
environment = "production"

[analyzer]
rsi_period = 21
macd_fast = 8
macd_slow = 17
macd_signal = 5

[scorer]
monthly_weight = 3.0

[logging]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "production", config.Environment)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, 21, config.Analyzer.RSIPeriod)
	assert.Equal(t, 8, config.Analyzer.MACDFast)
	assert.Equal(t, 3.0, config.Scorer.MonthlyWeight)

	// Unspecified keys keep their defaults.
	assert.Equal(t, 1.5, config.Scorer.WeeklyWeight)
	assert.Equal(t, []int{20, 50, 200}, config.Analyzer.SMAPeriods)
}

func TestLoadConfigLaterFileWins(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.toml")
	override := filepath.Join(dir, "override.toml")

	require.NoError(t, os.WriteFile(base, []byte("[logging]\nlevel = \"warn\"\n"), 0644))
	require.NoError(t, os.WriteFile(override, []byte("[logging]\nlevel = \"trace\"\n"), 0644))

	config, err := LoadConfig(base, override)
	require.NoError(t, err)
	assert.Equal(t, "trace", config.Logging.Level)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("QUANTLENS_ENV", "staging")
	t.Setenv("QUANTLENS_LOG_LEVEL", "debug")
	t.Setenv("QUANTLENS_RSI_PERIOD", "9")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "staging", config.Environment)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, 9, config.Analyzer.RSIPeriod)
}

func TestEnvOverrideRejectsBadRSIPeriod(t *testing.T) {
	t.Setenv("QUANTLENS_RSI_PERIOD", "zero")

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 14, config.Analyzer.RSIPeriod)
}

func TestValidateRejectsBadMACDOrder(t *testing.T) {
	config := NewDefaultConfig()
	config.Analyzer.MACDFast = 30

	err := config.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "macd_fast")
}

func TestValidateRejectsBadNeutralBand(t *testing.T) {
	config := NewDefaultConfig()
	config.Scorer.NeutralBand = 0.9

	err := config.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neutral_band")
}

func TestLoadConfigRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("environment = "), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}
