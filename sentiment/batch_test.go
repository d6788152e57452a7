package sentiment

import (
	"errors"
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	lines := []string{
		"good service",
		"nice and fast",
		"the package arrived on tuesday",
	}

	results, summary, err := Summarize(lines)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if len(results) != len(lines) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(lines))
	}
	for i, r := range results {
		if r.Text != lines[i] {
			t.Errorf("results[%d].Text = %q, want %q (order must be preserved)", i, r.Text, lines[i])
		}
	}

	want := Summary{
		Total: 3, Positive: 2, Negative: 0, Neutral: 1,
		PosPercent: 66.7, NegPercent: 0.0, NeuPercent: 33.3,
	}
	if summary != want {
		t.Errorf("summary = %+v, want %+v", summary, want)
	}
}

func TestSummarizeCountIdentity(t *testing.T) {
	batches := [][]string{
		{"good"},
		{"bad", "good", "whatever"},
		{"ممتاز", "سيئ", "عادي", "good but slow"},
		{"a", "b", "c", "d", "e", "f", "g"},
	}

	for _, lines := range batches {
		_, s, err := Summarize(lines)
		if err != nil {
			t.Fatalf("Summarize(%v) error = %v", lines, err)
		}
		if s.Positive+s.Negative+s.Neutral != s.Total {
			t.Errorf("Summarize(%v): %d+%d+%d != total %d", lines, s.Positive, s.Negative, s.Neutral, s.Total)
		}
		// Independent single-decimal rounding of three shares.
		sum := s.PosPercent + s.NegPercent + s.NeuPercent
		if math.Abs(sum-100.0) > 0.3 {
			t.Errorf("Summarize(%v): percentages sum to %v, want 100.0 ± 0.3", lines, sum)
		}
	}
}

func TestSummarizeEmptyBatch(t *testing.T) {
	_, _, err := Summarize(nil)
	if !errors.Is(err, ErrEmptyBatch) {
		t.Fatalf("Summarize(nil) error = %v, want ErrEmptyBatch", err)
	}

	_, _, err = Summarize([]string{})
	if !errors.Is(err, ErrEmptyBatch) {
		t.Fatalf("Summarize([]) error = %v, want ErrEmptyBatch", err)
	}
}

func TestPercentRounding(t *testing.T) {
	tests := []struct {
		count, total int
		want         float64
	}{
		{2, 3, 66.7},
		{1, 3, 33.3},
		{0, 3, 0.0},
		{1, 1, 100.0},
		{1, 8, 12.5},
		{1, 16, 6.3}, // 6.25 rounds half away from zero
	}

	for _, tt := range tests {
		if got := percent(tt.count, tt.total); got != tt.want {
			t.Errorf("percent(%d, %d) = %v, want %v", tt.count, tt.total, got, tt.want)
		}
	}
}
