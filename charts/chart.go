// Package charts renders the aggregate sentiment bar chart as an inline
// embeddable image.
package charts

import (
	"bytes"
	"encoding/base64"

	chart "github.com/wcharczuk/go-chart/v2"
)

// SentimentBar renders a three-bar chart of label counts to PNG and returns
// it base64-encoded for use in a data: URI.
func SentimentBar(positive, negative, neutral int) (string, error) {
	// The Y range must not be degenerate even when some counts are zero.
	max := positive
	if negative > max {
		max = negative
	}
	if neutral > max {
		max = neutral
	}
	if max < 1 {
		max = 1
	}

	graph := chart.BarChart{
		Title:    "Sentiment Distribution",
		Width:    400,
		Height:   300,
		BarWidth: 60,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(max)},
		},
		Bars: []chart.Value{
			{Value: float64(positive), Label: "Positive"},
			{Value: float64(negative), Label: "Negative"},
			{Value: float64(neutral), Label: "Neutral"},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
