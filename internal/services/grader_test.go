package services

import (
	"testing"

	"github.com/ielts-prep/reading-test-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestGrade_NormalizesCaseAndWhitespace(t *testing.T) {
	question := &models.Question{Type: models.MultipleChoice, CorrectAnswer: "B"}

	assert.True(t, Grade(question, "B"))
	assert.True(t, Grade(question, "b"))
	assert.True(t, Grade(question, " B "))
	assert.True(t, Grade(question, "\tb\n"))
	assert.False(t, Grade(question, "A"))
	assert.False(t, Grade(question, ""))
}

func TestGrade_FillBlankAlternatives(t *testing.T) {
	question := &models.Question{Type: models.FillBlank, CorrectAnswer: "blue, navy"}

	tests := []struct {
		name      string
		submitted string
		want      bool
	}{
		{"first alternative", "Blue", true},
		{"second alternative padded", " navy ", true},
		{"uppercase alternative", "NAVY", true},
		{"wrong answer", "red", false},
		{"empty submission", "", false},
		{"combined alternatives", "blue, navy", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Grade(question, tc.submitted))
		})
	}
}

func TestGrade_ExactMatchTypes(t *testing.T) {
	tests := []struct {
		name      string
		qtype     models.QuestionType
		key       string
		submitted string
		want      bool
	}{
		{"true/false exact", models.TrueFalseNotGiven, "not given", "Not Given", true},
		{"true/false wrong", models.TrueFalseNotGiven, "true", "false", false},
		{"matching exact", models.Matching, "von frisch", "Von Frisch", true},
		{"written answer exact", models.WrittenAnswer, "1940s", " 1940s ", true},
		{"written answer wrong", models.WrittenAnswer, "1940s", "1950s", false},
		{"text key is not split on commas", models.WrittenAnswer, "salt, pepper", "salt", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			question := &models.Question{Type: tc.qtype, CorrectAnswer: tc.key}
			assert.Equal(t, tc.want, Grade(question, tc.submitted))
		})
	}
}
