// Package chart renders analysis output to PNG for report attachments.
package chart

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/quantlens/quantlens/internal/indicators"
	"github.com/quantlens/quantlens/internal/models"
)

// RenderPriceChart renders a PNG line chart of the daily close series
// with its 20-period SMA and Bollinger Band envelope overlaid. Returns
// raw PNG bytes.
func RenderPriceChart(symbol string, daily models.Series, smaPeriod int, bollingerK float64) ([]byte, error) {
	if daily.Len() < 2 {
		return nil, fmt.Errorf("need at least 2 data points, got %d", daily.Len())
	}

	xValues := make([]time.Time, daily.Len())
	closeY := make([]float64, daily.Len())
	for i, p := range daily.Points {
		xValues[i] = p.Time()
		closeY[i] = p.Price
	}

	series := []chart.Series{
		chart.TimeSeries{
			Name: "Close",
			Style: chart.Style{
				StrokeColor: drawing.ColorFromHex("2563eb"), // blue-600
				StrokeWidth: 2.0,
			},
			XValues: xValues,
			YValues: closeY,
		},
	}

	bands := indicators.BollingerBands(closeY, smaPeriod, bollingerK)
	if len(bands.Middle) > 0 {
		// Band series start where the first full window closes.
		bandX := xValues[daily.Len()-len(bands.Middle):]
		series = append(series,
			bandSeries("SMA", bandX, bands.Middle, amber, nil),
			bandSeries("Upper Band", bandX, bands.Upper, gray, dashed),
			bandSeries("Lower Band", bandX, bands.Lower, gray, dashed),
		)
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s — Daily Close", symbol),
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 06")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.1f", f)
				}
				return ""
			},
		},
		Series: series,
	}

	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}

const (
	amber = "f59e0b"
	gray  = "9ca3af"
)

var dashed = []float64{5.0, 3.0}

func bandSeries(name string, x []time.Time, y []float64, hex string, dash []float64) chart.TimeSeries {
	return chart.TimeSeries{
		Name: name,
		Style: chart.Style{
			StrokeColor:     drawing.ColorFromHex(hex),
			StrokeWidth:     1.5,
			StrokeDashArray: dash,
		},
		XValues: x,
		YValues: y,
	}
}
