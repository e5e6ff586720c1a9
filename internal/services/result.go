package services

import (
	"strconv"

	"github.com/ielts-prep/reading-test-service/internal/models"
)

// QuestionDetail is one row of the per-question result breakdown.
type QuestionDetail struct {
	QuestionID     uint                `json:"question_id"`
	QuestionNumber int                 `json:"question_number"`
	QuestionType   models.QuestionType `json:"question_type"`
	QuestionText   string              `json:"question_text"`
	UserAnswer     string              `json:"user_answer"`
	CorrectAnswer  string              `json:"correct_answer"`
	IsCorrect      bool                `json:"is_correct"`
	Marks          int                 `json:"marks"`
}

// TestResult is the full report returned after a successful submission.
type TestResult struct {
	Score           int               `json:"score"`
	Total           int               `json:"total"`
	Percentage      float64           `json:"percentage"`
	BandScore       float64           `json:"band_score"`
	TimeTaken       int               `json:"time_taken"`
	Answers         map[string]string `json:"answers"`
	CorrectAnswers  map[string]string `json:"correct_answers"`
	QuestionDetails []QuestionDetail  `json:"question_details"`
	SessionID       string            `json:"session_id"`
}

// AssembleResult shapes already-computed grading data into the report
// structure. Questions must arrive in passage order; no grading happens here.
func AssembleResult(
	session *models.TestSession,
	questions []*models.Question,
	submitted map[uint]string,
	correct map[uint]bool,
	summary ScoreSummary,
) *TestResult {
	answers := make(map[string]string, len(questions))
	correctAnswers := make(map[string]string, len(questions))
	details := make([]QuestionDetail, 0, len(questions))

	for _, q := range questions {
		key := strconv.FormatUint(uint64(q.ID), 10)
		answers[key] = submitted[q.ID]
		correctAnswers[key] = q.CorrectAnswer

		details = append(details, QuestionDetail{
			QuestionID:     q.ID,
			QuestionNumber: q.Number,
			QuestionType:   q.Type,
			QuestionText:   q.Text,
			UserAnswer:     submitted[q.ID],
			CorrectAnswer:  q.CorrectAnswer,
			IsCorrect:      correct[q.ID],
			Marks:          q.Marks,
		})
	}

	return &TestResult{
		Score:           summary.Score,
		Total:           summary.TotalMarks,
		Percentage:      summary.Percentage,
		BandScore:       summary.Band,
		TimeTaken:       session.TimeTaken,
		Answers:         answers,
		CorrectAnswers:  correctAnswers,
		QuestionDetails: details,
		SessionID:       session.SessionID,
	}
}
