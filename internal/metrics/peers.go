package metrics

import (
	"math"
	"strings"

	"github.com/quantlens/quantlens/internal/models"
)

// SplitPeers separates the subject company's own row from the actual
// peers, matched case-insensitively on company id. Peer averages must be
// computed over the actual peers only.
func SplitPeers(peers []models.PeerRecord, companyID string) (primary *models.PeerRecord, actual []models.PeerRecord) {
	for i := range peers {
		if primary == nil && strings.EqualFold(peers[i].CompanyID, companyID) {
			primary = &peers[i]
			continue
		}
		actual = append(actual, peers[i])
	}
	return primary, actual
}

// PeerAverage computes the mean of one field across the actual peers,
// skipping non-finite entries. Zero valid entries reads as NotAvailable.
func PeerAverage(peers []models.PeerRecord, field func(models.PeerRecord) float64) models.Value {
	sum, count := 0.0, 0
	for _, p := range peers {
		v := field(p)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		sum += v
		count++
	}
	if count == 0 {
		return models.NA()
	}
	return models.Num(sum / float64(count))
}

// CompareHigherBetter returns the verdict for metrics where a larger
// value is conventionally better. Non-positive values on either side are
// treated as erroneous and give no verdict.
func CompareHigherBetter(value, avg models.Value) models.PeerVerdict {
	v, a, ok := comparable2(value, avg)
	if !ok || v <= 0 || a <= 0 {
		return models.VerdictNeutral
	}
	switch {
	case v > a:
		return models.VerdictBetter
	case v < a:
		return models.VerdictWorse
	default:
		return models.VerdictNeutral
	}
}

// CompareLowerBetter inverts the polarity for ratio metrics where lower
// is conventionally better: P/E, P/B, debt-to-equity.
func CompareLowerBetter(value, avg models.Value) models.PeerVerdict {
	v, a, ok := comparable2(value, avg)
	if !ok || v <= 0 || a <= 0 {
		return models.VerdictNeutral
	}
	switch {
	case v < a:
		return models.VerdictBetter
	case v > a:
		return models.VerdictWorse
	default:
		return models.VerdictNeutral
	}
}

// CompareSize uses the higher/lower vocabulary for magnitude metrics
// like market cap, where neither direction is better.
func CompareSize(value, avg models.Value) models.PeerVerdict {
	v, a, ok := comparable2(value, avg)
	if !ok {
		return models.VerdictNeutral
	}
	switch {
	case v > a:
		return models.VerdictHigher
	case v < a:
		return models.VerdictLower
	default:
		return models.VerdictNeutral
	}
}

// CompareSigned resolves via plain higher/lower even at zero or negative
// values. Return on equity and dividend yield use this: zero or negative
// is meaningful there, not erroneous.
func CompareSigned(value, avg models.Value) models.PeerVerdict {
	return CompareSize(value, avg)
}

func comparable2(value, avg models.Value) (float64, float64, bool) {
	v, ok := value.Float()
	if !ok {
		return 0, 0, false
	}
	a, ok := avg.Float()
	if !ok {
		return 0, 0, false
	}
	return v, a, true
}
