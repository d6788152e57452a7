// Package sentiment classifies customer-feedback text with a static
// bilingual (Arabic/English) phrase lexicon.
//
// Classification is a substring scan: each positive phrase contained in the
// normalized text adds one to the score, each negative phrase subtracts one,
// and the sign of the score decides the label. Every function is total over
// all string inputs and safe for concurrent use.
package sentiment

import "strings"

// Sentiment labels. These exact strings are persisted and rendered.
const (
	LabelPositive = "Positive"
	LabelNegative = "Negative"
	LabelNeutral  = "Neutral"
)

// Classify scores one feedback text and returns its label.
//
// The text is trimmed and lower-cased (Latin folding only; Arabic is
// unaffected), the lexicon pair is chosen by language detection, and each
// phrase counts at most once regardless of how often it occurs. Score sign
// determines the label; the empty string is Neutral with score 0.
func Classify(text string) (label string, score float64) {
	normalized := strings.ToLower(strings.TrimSpace(text))

	positive, negative := lexiconFor(normalized)

	n := 0
	for _, phrase := range positive {
		if strings.Contains(normalized, phrase) {
			n++
		}
	}
	for _, phrase := range negative {
		if strings.Contains(normalized, phrase) {
			n--
		}
	}

	switch {
	case n > 0:
		label = LabelPositive
	case n < 0:
		label = LabelNegative
	default:
		label = LabelNeutral
	}

	return label, float64(n)
}
