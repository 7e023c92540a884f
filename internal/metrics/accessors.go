// Package metrics derives categorized, display-ready financial metrics
// from yearly statement records and a peer-company list.
package metrics

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quantlens/quantlens/internal/models"
)

// SafeGet evaluates a lazy accessor, recovering any panic and coercing
// the result to a numeric Value. Missing, nil, empty or dash-placeholder
// results read as NotAvailable. Never panics.
func SafeGet(fn func() any) (v models.Value) {
	defer func() {
		if r := recover(); r != nil {
			v = models.NA()
		}
	}()
	return Coerce(fn())
}

// Coerce converts a loosely-typed statement value to a numeric Value.
// Strings are parsed after stripping comma separators; nil, empty string
// and the "-" placeholder are NotAvailable.
func Coerce(raw any) models.Value {
	switch x := raw.(type) {
	case nil:
		return models.NA()
	case float64:
		return models.Num(x)
	case float32:
		return models.Num(float64(x))
	case int:
		return models.Num(float64(x))
	case int64:
		return models.Num(float64(x))
	case string:
		s := strings.TrimSpace(x)
		if s == "" || s == "-" {
			return models.NA()
		}
		f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
		if err != nil {
			return models.NA()
		}
		return models.Num(f)
	case models.Value:
		return x
	default:
		return models.NA()
	}
}

// StatementValue extracts one line item from the records. Out-of-range
// year indexes and absent keys read as NotAvailable.
func StatementValue(records []models.FinancialYearRecord, yearIndex int, st models.StatementType, key string) models.Value {
	if yearIndex < 0 || yearIndex >= len(records) {
		return models.NA()
	}
	stmt := records[yearIndex].Statement(st)
	if stmt == nil {
		return models.NA()
	}
	raw, ok := stmt[key]
	if !ok {
		return models.NA()
	}
	return Coerce(raw)
}

// Formatted is a display-ready rendering of a Value. Callers test
// Text against the NotAvailable/NotMeaningful literals, not Raw.
type Formatted struct {
	Text string
	Unit string
	Raw  models.Value
}

func formatValue(v models.Value, unit, pattern string, scale float64) Formatted {
	f, ok := v.Float()
	if !ok {
		return Formatted{Text: v.String(), Raw: v}
	}
	return Formatted{
		Text: fmt.Sprintf(pattern, f/scale),
		Unit: unit,
		Raw:  models.Num(f / scale),
	}
}

// ToCrores renders an absolute rupee amount in crores
func ToCrores(v models.Value) Formatted {
	return formatValue(v, "Cr", "%.2f", 1e7)
}

// ToPercentage renders a percentage value
func ToPercentage(v models.Value) Formatted {
	return formatValue(v, "%", "%.2f", 1)
}

// ToRatio renders a unitless ratio
func ToRatio(v models.Value) Formatted {
	return formatValue(v, "x", "%.2f", 1)
}

// ToCurrency renders a per-share or per-unit rupee amount
func ToCurrency(v models.Value) Formatted {
	return formatValue(v, "₹", "%.2f", 1)
}
