package indicators

import "math"

// RollingVWAP calculates the volume-weighted average price over each
// trailing window. Output length equals the input length, NaN-padded on
// the left; a window containing an invalid point, or summing to zero
// volume, yields NaN at that index. Mismatched input lengths yield nil.
func RollingVWAP(prices, volumes []float64, period int) []float64 {
	n := len(prices)
	if period < 1 || n == 0 || len(volumes) != n {
		return nil
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}

	for i := period - 1; i < n; i++ {
		pv, vol := 0.0, 0.0
		valid := true
		for j := i - period + 1; j <= i; j++ {
			if math.IsNaN(prices[j]) || math.IsNaN(volumes[j]) {
				valid = false
				break
			}
			pv += prices[j] * volumes[j]
			vol += volumes[j]
		}
		if valid && vol > 0 {
			out[i] = pv / vol
		}
	}
	return out
}

// VolumeSMA calculates the simple moving average of volume, aligned like
// SMA, but stricter: a single invalid point anywhere in a window yields
// NaN at that output index rather than a partial mean.
func VolumeSMA(volumes []float64, period int) []float64 {
	n := len(volumes)
	if period < 1 || n < period {
		return nil
	}

	out := make([]float64, 0, n-period+1)
	for i := period - 1; i < n; i++ {
		sum := 0.0
		valid := true
		for j := i - period + 1; j <= i; j++ {
			if math.IsNaN(volumes[j]) {
				valid = false
				break
			}
			sum += volumes[j]
		}
		if valid {
			out = append(out, sum/float64(period))
		} else {
			out = append(out, math.NaN())
		}
	}
	return out
}

// OBV calculates On-Balance Volume: cumulative volume signed by the
// direction of each price change. An invalid point carries the running
// total forward unchanged so one bad observation does not poison the
// rest of the cumulative series. Output length equals the input length;
// mismatched inputs yield nil.
func OBV(prices, volumes []float64) []float64 {
	n := len(prices)
	if n == 0 || len(volumes) != n {
		return nil
	}

	out := make([]float64, n)
	out[0] = 0
	for i := 1; i < n; i++ {
		if math.IsNaN(prices[i]) || math.IsNaN(prices[i-1]) || math.IsNaN(volumes[i]) {
			out[i] = out[i-1]
			continue
		}
		switch {
		case prices[i] > prices[i-1]:
			out[i] = out[i-1] + volumes[i]
		case prices[i] < prices[i-1]:
			out[i] = out[i-1] - volumes[i]
		default:
			out[i] = out[i-1]
		}
	}
	return out
}

// Last returns the final value of a series and whether it exists and is
// a real number.
func Last(series []float64) (float64, bool) {
	if len(series) == 0 {
		return 0, false
	}
	v := series[len(series)-1]
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
