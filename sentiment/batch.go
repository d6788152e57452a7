package sentiment

import (
	"errors"
	"math"
)

// ErrEmptyBatch is returned by Summarize when there are no lines to classify.
var ErrEmptyBatch = errors.New("sentiment: empty batch")

// LineResult is the classification of a single line in a batch.
type LineResult struct {
	Text  string  `json:"text"`
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Summary aggregates a classified batch. Percentages are each label's share
// of Total rounded to one decimal place.
type Summary struct {
	Total      int     `json:"total"`
	Positive   int     `json:"positive"`
	Negative   int     `json:"negative"`
	Neutral    int     `json:"neutral"`
	PosPercent float64 `json:"pos_percent"`
	NegPercent float64 `json:"neg_percent"`
	NeuPercent float64 `json:"neu_percent"`
}

// Summarize classifies every line in order and tallies the results.
// It returns ErrEmptyBatch for an empty slice; callers must reject empty
// input before any percentage is computed.
func Summarize(lines []string) ([]LineResult, Summary, error) {
	if len(lines) == 0 {
		return nil, Summary{}, ErrEmptyBatch
	}

	results := make([]LineResult, 0, len(lines))
	var summary Summary

	for _, line := range lines {
		label, score := Classify(line)
		switch label {
		case LabelPositive:
			summary.Positive++
		case LabelNegative:
			summary.Negative++
		default:
			summary.Neutral++
		}
		results = append(results, LineResult{Text: line, Label: label, Score: score})
	}

	summary.Total = len(lines)
	summary.PosPercent = percent(summary.Positive, summary.Total)
	summary.NegPercent = percent(summary.Negative, summary.Total)
	summary.NeuPercent = percent(summary.Neutral, summary.Total)

	return results, summary, nil
}

// percent returns count/total*100 rounded to one decimal place.
func percent(count, total int) float64 {
	return math.Round(float64(count)/float64(total)*1000) / 10
}
