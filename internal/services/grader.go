package services

import (
	"strings"

	"github.com/ielts-prep/reading-test-service/internal/models"
)

// Grade reports whether a submitted answer matches the question's answer key.
// Both sides are compared after trimming surrounding whitespace and case
// folding. FILL_BLANK keys may list several acceptable values separated by
// commas; every other type is an exact match on the normalized strings.
//
// Grading is pure and total: an empty or malformed submission grades as
// incorrect, never as an error.
func Grade(question *models.Question, submitted string) bool {
	answer := normalizeAnswer(submitted)
	key := normalizeAnswer(question.CorrectAnswer)

	if question.Type == models.FillBlank {
		for _, alt := range strings.Split(key, ",") {
			if answer == strings.TrimSpace(alt) {
				return true
			}
		}
		return false
	}

	return answer == key
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
