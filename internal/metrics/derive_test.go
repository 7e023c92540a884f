package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantlens/quantlens/internal/models"
)

func TestArithmeticShortCircuits(t *testing.T) {
	assert.False(t, Add(models.NA(), models.Num(1)).Valid())
	assert.False(t, Sub(models.Num(1), models.NA()).Valid())
	assert.False(t, Mul(models.NM(), models.Num(2)).Valid())
	assert.False(t, Div(models.Num(1), models.NA()).Valid())

	f, ok := Add(models.Num(2), models.Num(3)).Float()
	require.True(t, ok)
	assert.Equal(t, 5.0, f)
}

func TestDivByZero(t *testing.T) {
	v := Div(models.Num(10), models.Num(0))
	assert.False(t, v.Valid())
	assert.Equal(t, models.ValueNotAvailable, v.State())
}

func TestPercent(t *testing.T) {
	f, ok := Percent(models.Num(750), models.Num(5000)).Float()
	require.True(t, ok)
	assert.InDelta(t, 15.0, f, 1e-9)
}

func TestOrZero(t *testing.T) {
	f, ok := OrZero(models.NA()).Float()
	require.True(t, ok)
	assert.Equal(t, 0.0, f)

	f, _ = OrZero(models.Num(7)).Float()
	assert.Equal(t, 7.0, f)
}

func TestYoYGrowth(t *testing.T) {
	f, ok := YoYGrowth(models.Num(120), models.Num(100)).Float()
	require.True(t, ok)
	assert.InDelta(t, 20.0, f, 1e-9)

	// Negative prior year: change measured against its magnitude.
	f, ok = YoYGrowth(models.Num(-50), models.Num(-100)).Float()
	require.True(t, ok)
	assert.InDelta(t, 50.0, f, 1e-9)

	assert.False(t, YoYGrowth(models.Num(120), models.Num(0)).Valid())
	assert.False(t, YoYGrowth(models.NA(), models.Num(100)).Valid())
	assert.False(t, YoYGrowth(models.Num(120), models.NA()).Valid())
}

func TestCAGR(t *testing.T) {
	f, ok := CAGR(models.Num(200), models.Num(100), 2).Float()
	require.True(t, ok)
	assert.InDelta(t, 41.421356, f, 1e-5) // sqrt(2)-1

	f, ok = CAGR(models.Num(100), models.Num(100), 5).Float()
	require.True(t, ok)
	assert.InDelta(t, 0.0, f, 1e-9)
}

func TestCAGRSignGuard(t *testing.T) {
	v := CAGR(models.Num(-5), models.Num(10), 2)
	assert.Equal(t, models.ValueNotMeaningful, v.State())

	v = CAGR(models.Num(5), models.Num(-10), 2)
	assert.Equal(t, models.ValueNotMeaningful, v.State())

	v = CAGR(models.Num(5), models.Num(0), 2)
	assert.Equal(t, models.ValueNotMeaningful, v.State())

	// Missing endpoints are NotAvailable, not NotMeaningful.
	assert.Equal(t, models.ValueNotAvailable, CAGR(models.NA(), models.Num(10), 2).State())
	assert.Equal(t, models.ValueNotAvailable, CAGR(models.Num(10), models.Num(5), 0).State())
}
