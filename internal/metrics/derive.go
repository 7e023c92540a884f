package metrics

import (
	"math"

	"github.com/quantlens/quantlens/internal/models"
)

// Arithmetic over Values short-circuits on sentinels: any NotAvailable or
// NotMeaningful operand makes the result NotAvailable rather than letting
// NaN propagate through downstream formatting.

// Add returns a+b
func Add(a, b models.Value) models.Value {
	x, ok := a.Float()
	if !ok {
		return models.NA()
	}
	y, ok := b.Float()
	if !ok {
		return models.NA()
	}
	return models.Num(x + y)
}

// Sub returns a-b
func Sub(a, b models.Value) models.Value {
	x, ok := a.Float()
	if !ok {
		return models.NA()
	}
	y, ok := b.Float()
	if !ok {
		return models.NA()
	}
	return models.Num(x - y)
}

// Mul returns a*b
func Mul(a, b models.Value) models.Value {
	x, ok := a.Float()
	if !ok {
		return models.NA()
	}
	y, ok := b.Float()
	if !ok {
		return models.NA()
	}
	return models.Num(x * y)
}

// Div returns a/b; division by zero is NotAvailable, not Inf
func Div(a, b models.Value) models.Value {
	x, ok := a.Float()
	if !ok {
		return models.NA()
	}
	y, ok := b.Float()
	if !ok || y == 0 {
		return models.NA()
	}
	return models.Num(x / y)
}

// Scale returns v*f
func Scale(v models.Value, f float64) models.Value {
	x, ok := v.Float()
	if !ok {
		return models.NA()
	}
	return models.Num(x * f)
}

// Percent returns a/b*100
func Percent(a, b models.Value) models.Value {
	return Scale(Div(a, b), 100)
}

// OrZero substitutes zero for a missing value. Used where an absent line
// item means "none reported" rather than "unknown", e.g. depreciation in
// the EBITDA derivation.
func OrZero(v models.Value) models.Value {
	if v.Valid() {
		return v
	}
	return models.Num(0)
}

// YoYGrowth returns the year-over-year percentage change from prev to
// curr. A zero or missing prior year is NotAvailable.
func YoYGrowth(curr, prev models.Value) models.Value {
	c, ok := curr.Float()
	if !ok {
		return models.NA()
	}
	p, ok := prev.Float()
	if !ok || p == 0 {
		return models.NA()
	}
	return models.Num((c - p) / math.Abs(p) * 100)
}

// CAGR returns the compound annual growth rate from start to end over
// the given number of years. Non-positive endpoints make a fractional
// root misleading, so they read as NotMeaningful rather than a number.
func CAGR(end, start models.Value, years int) models.Value {
	e, ok := end.Float()
	if !ok {
		return models.NA()
	}
	s, ok := start.Float()
	if !ok {
		return models.NA()
	}
	if years < 1 {
		return models.NA()
	}
	if s <= 0 || e <= 0 {
		return models.NM()
	}
	return models.Num((math.Pow(e/s, 1/float64(years)) - 1) * 100)
}
