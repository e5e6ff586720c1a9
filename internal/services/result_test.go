package services

import (
	"testing"
	"time"

	"github.com/ielts-prep/reading-test-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleResult(t *testing.T) {
	completedAt := time.Now()
	session := &models.TestSession{
		ID:          7,
		SessionID:   "4f9c6f1e-9a3b-47d2-8a86-0f2f8b7f2a11",
		Score:       1,
		TimeTaken:   125,
		CompletedAt: &completedAt,
	}

	questions := []*models.Question{
		{ID: 1, Number: 1, Type: models.MultipleChoice, Text: "First?", CorrectAnswer: "B", Marks: 1},
		{ID: 2, Number: 2, Type: models.FillBlank, Text: "Second?", CorrectAnswer: "blue, navy", Marks: 1},
	}
	submitted := map[uint]string{1: "b", 2: "red"}
	correct := map[uint]bool{1: true, 2: false}
	summary := AggregateScore(questions, correct)

	result := AssembleResult(session, questions, submitted, correct, summary)

	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 50.0, result.Percentage)
	assert.Equal(t, 5.0, result.BandScore)
	assert.Equal(t, 125, result.TimeTaken)
	assert.Equal(t, session.SessionID, result.SessionID)

	assert.Equal(t, map[string]string{"1": "b", "2": "red"}, result.Answers)
	assert.Equal(t, map[string]string{"1": "B", "2": "blue, navy"}, result.CorrectAnswers)

	require.Len(t, result.QuestionDetails, 2)
	first := result.QuestionDetails[0]
	assert.Equal(t, uint(1), first.QuestionID)
	assert.Equal(t, 1, first.QuestionNumber)
	assert.Equal(t, models.MultipleChoice, first.QuestionType)
	assert.Equal(t, "b", first.UserAnswer)
	assert.Equal(t, "B", first.CorrectAnswer)
	assert.True(t, first.IsCorrect)

	second := result.QuestionDetails[1]
	assert.Equal(t, uint(2), second.QuestionID)
	assert.False(t, second.IsCorrect)
}

func TestAssembleResult_PreservesQuestionOrder(t *testing.T) {
	session := &models.TestSession{SessionID: "s"}
	questions := []*models.Question{
		{ID: 9, Number: 1, Marks: 1},
		{ID: 3, Number: 2, Marks: 1},
		{ID: 5, Number: 3, Marks: 1},
	}

	result := AssembleResult(session, questions, map[uint]string{}, map[uint]bool{}, AggregateScore(questions, nil))

	require.Len(t, result.QuestionDetails, 3)
	assert.Equal(t, []uint{9, 3, 5}, []uint{
		result.QuestionDetails[0].QuestionID,
		result.QuestionDetails[1].QuestionID,
		result.QuestionDetails[2].QuestionID,
	})
}
