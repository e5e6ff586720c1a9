package services

import (
	"math"

	"github.com/ielts-prep/reading-test-service/internal/models"
)

// ScoreSummary holds the aggregate outcome of a graded attempt.
type ScoreSummary struct {
	Score      int     `json:"score"`
	TotalMarks int     `json:"total"`
	Percentage float64 `json:"percentage"` // rounded to one decimal place
	Band       float64 `json:"band_score"`
}

// bandTable maps percentage thresholds to IELTS band scores. The table is
// policy data carried over verbatim; entries are evaluated top-down and the
// first threshold at or below the percentage wins.
var bandTable = []struct {
	Threshold float64
	Band      float64
}{
	{90, 9.0},
	{85, 8.5},
	{80, 8.0},
	{75, 7.5},
	{70, 7.0},
	{65, 6.5},
	{60, 6.0},
	{55, 5.5},
	{50, 5.0},
	{45, 4.5},
	{40, 4.0},
}

// BandScore maps a raw percentage to a band. Anything below the lowest
// threshold lands on the 3.5 floor.
func BandScore(percentage float64) float64 {
	for _, step := range bandTable {
		if percentage >= step.Threshold {
			return step.Band
		}
	}
	return 3.5
}

// AggregateScore sums mark weights over the full question set. Every question
// contributes to the denominator whether answered or not; only questions whose
// answer graded correct contribute to the score. The band is derived from the
// unrounded percentage, rounding applies to presentation only.
func AggregateScore(questions []*models.Question, correct map[uint]bool) ScoreSummary {
	score := 0
	total := 0
	for _, q := range questions {
		total += q.Marks
		if correct[q.ID] {
			score += q.Marks
		}
	}

	percentage := 0.0
	if total > 0 {
		percentage = float64(score) / float64(total) * 100
	}

	return ScoreSummary{
		Score:      score,
		TotalMarks: total,
		Percentage: math.Round(percentage*10) / 10,
		Band:       BandScore(percentage),
	}
}
