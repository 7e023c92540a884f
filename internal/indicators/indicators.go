// Package indicators provides technical indicator calculations over flat
// numeric series. All functions are pure: identical inputs yield identical
// outputs, and inputs are never mutated.
//
// Series are ordered oldest-first. Where an output value cannot be computed
// for an index (short window, invalid input point), the slot holds NaN;
// callers test with math.IsNaN rather than receiving a shortened slice,
// except where the documented alignment drops leading indices entirely.
package indicators

import "math"

// SMA calculates the simple moving average over each trailing window.
// Output index i corresponds to input index i+period-1; the result is
// empty when the series is shorter than the period.
func SMA(data []float64, period int) []float64 {
	n := len(data)
	if period < 1 || n < period {
		return nil
	}

	out := make([]float64, 0, n-period+1)
	sum := 0.0
	for i, v := range data {
		sum += v
		if i >= period {
			sum -= data[i-period]
		}
		if i >= period-1 {
			out = append(out, sum/float64(period))
		}
	}
	return out
}

// EMA calculates the exponential moving average, seeded with the SMA of
// the first period values. The seed choice matters: early EMA values
// differ materially from a first-value seed. Output is aligned like SMA.
func EMA(data []float64, period int) []float64 {
	n := len(data)
	if period < 1 || n < period {
		return nil
	}

	seed := 0.0
	for i := 0; i < period; i++ {
		seed += data[i]
	}
	seed /= float64(period)

	k := 2.0 / float64(period+1)
	out := make([]float64, 0, n-period+1)
	out = append(out, seed)

	prev := seed
	for i := period; i < n; i++ {
		prev = data[i]*k + prev*(1-k)
		out = append(out, prev)
	}
	return out
}

// StdDev calculates the population standard deviation (divide by period,
// not period-1) over each trailing window, aligned like SMA.
func StdDev(data []float64, period int) []float64 {
	n := len(data)
	if period < 1 || n < period {
		return nil
	}

	out := make([]float64, 0, n-period+1)
	for i := period - 1; i < n; i++ {
		window := data[i-period+1 : i+1]
		mean := 0.0
		for _, v := range window {
			mean += v
		}
		mean /= float64(period)

		variance := 0.0
		for _, v := range window {
			d := v - mean
			variance += d * d
		}
		out = append(out, math.Sqrt(variance/float64(period)))
	}
	return out
}

// Bands holds aligned Bollinger Band series
type Bands struct {
	Upper  []float64
	Middle []float64
	Lower  []float64
}

// BollingerBands calculates SMA +/- k standard deviations. All three
// series are empty when the input is shorter than the period.
func BollingerBands(data []float64, period int, k float64) Bands {
	middle := SMA(data, period)
	if middle == nil {
		return Bands{}
	}
	dev := StdDev(data, period)

	upper := make([]float64, len(middle))
	lower := make([]float64, len(middle))
	for i := range middle {
		upper[i] = middle[i] + k*dev[i]
		lower[i] = middle[i] - k*dev[i]
	}
	return Bands{Upper: upper, Middle: middle, Lower: lower}
}

// RSI calculates the Relative Strength Index with Wilder smoothing.
// The first average gain/loss is a simple mean over the first period
// deltas; each subsequent point smooths with (period-1)/period. A zero
// average loss reads as RSI 100. Needs at least period+1 points; output
// length is len(data)-period.
func RSI(data []float64, period int) []float64 {
	n := len(data)
	if period < 1 || n < period+1 {
		return nil
	}

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := data[i] - data[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	out := make([]float64, 0, n-period)
	out = append(out, rsiValue(avgGain, avgLoss))

	for i := period + 1; i < n; i++ {
		change := data[i] - data[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		out = append(out, rsiValue(avgGain, avgLoss))
	}
	return out
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}

// MACDResult holds the MACD line with its signal line and histogram,
// all aligned to the slow EMA's first valid index. Signal and Histogram
// are NaN for the leading indices where the signal EMA is not yet defined.
type MACDResult struct {
	MACD      []float64
	Signal    []float64
	Histogram []float64
}

// MACD calculates the fast EMA minus slow EMA line, the signal EMA over
// the MACD line, and their difference. Requires at least
// slow+signalPeriod-1 points; otherwise all three series are empty.
func MACD(data []float64, fast, slow, signalPeriod int) MACDResult {
	n := len(data)
	if fast < 1 || slow <= fast || signalPeriod < 1 || n < slow+signalPeriod-1 {
		return MACDResult{}
	}

	fastEMA := EMA(data, fast)
	slowEMA := EMA(data, slow)

	// The slow EMA starts later; align by its first valid input index.
	offset := slow - fast
	macd := make([]float64, len(slowEMA))
	for i := range slowEMA {
		macd[i] = fastEMA[i+offset] - slowEMA[i]
	}

	signalEMA := EMA(macd, signalPeriod)
	signal := make([]float64, len(macd))
	histogram := make([]float64, len(macd))
	pad := signalPeriod - 1
	for i := range macd {
		if i < pad {
			signal[i] = math.NaN()
			histogram[i] = math.NaN()
			continue
		}
		signal[i] = signalEMA[i-pad]
		histogram[i] = macd[i] - signal[i]
	}

	return MACDResult{MACD: macd, Signal: signal, Histogram: histogram}
}
