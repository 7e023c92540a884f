package metrics

import (
	"fmt"

	"github.com/quantlens/quantlens/internal/models"
)

// KeyTechnicalIndicators surfaces the market snapshot carried on the
// subject company's peer-list row
func (e *Engine) KeyTechnicalIndicators() models.MetricCategory {
	price, change := models.NA(), models.NA()
	if e.primary != nil {
		price = models.Num(e.primary.Price)
		change = models.Num(e.primary.PercentChange)
	}

	avgChange := PeerAverage(e.peers, func(p models.PeerRecord) float64 { return p.PercentChange })

	return models.MetricCategory{
		Name: "Key Technical Indicators",
		Metrics: []models.Metric{
			metric("Last Price", ToCurrency(price), models.ToneNeutral,
				"Most recent traded price"),
			withPeerAverage(metric("Day Change", ToPercentage(change), toneBySign(change),
				"Percentage move over the last session"),
				ToPercentage(avgChange), CompareSize(change, avgChange)),
		},
	}
}

// OverallSentiment summarises the company's standing within its peer set
func (e *Engine) OverallSentiment() models.MetricCategory {
	metrics := []models.Metric{}

	if e.primary != nil && e.primary.OverallRating != "" {
		metrics = append(metrics, models.Metric{
			Label:       "Overall Rating",
			Formatted:   e.primary.OverallRating,
			Value:       models.NA(),
			Tone:        ratingTone(e.primary.OverallRating),
			Explanation: "Aggregate analyst rating carried on the peer listing",
		})
	}

	peerCount := models.Num(float64(len(e.peers)))
	metrics = append(metrics, models.Metric{
		Label:       "Peer Group Size",
		Formatted:   fmt.Sprintf("%d", len(e.peers)),
		Value:       peerCount,
		Tone:        models.ToneNeutral,
		Explanation: "Number of comparable companies, excluding this one",
	})

	return models.MetricCategory{Name: "Overall Sentiment", Metrics: metrics}
}

func ratingTone(rating string) models.Tone {
	switch rating {
	case "Buy", "Strong Buy", "Outperform":
		return models.TonePositive
	case "Sell", "Strong Sell", "Underperform":
		return models.ToneNegative
	default:
		return models.ToneNeutral
	}
}
