package models

import "time"

// MaxAttemptSeconds is the fixed attempt window for a reading test.
// Submissions past this point are rejected without grading.
const MaxAttemptSeconds = 3600

// TestSession is one attempt at a passage. CompletedAt transitions from unset
// to set exactly once; the conditional update in the session repository
// enforces that under concurrent Submit/End calls.
type TestSession struct {
	ID             uint       `json:"-" gorm:"primaryKey"`
	SessionID      string     `json:"session_id" gorm:"type:uuid;uniqueIndex;not null"`
	PassageID      uint       `json:"passage_id" gorm:"not null;index"`
	Score          int        `json:"score" gorm:"default:0"`
	TotalQuestions int        `json:"total_questions" gorm:"default:0"`
	TimeTaken      int        `json:"time_taken" gorm:"default:0"` // seconds, set at completion
	StartedAt      time.Time  `json:"started_at"`
	CompletedAt    *time.Time `json:"completed_at"`

	// Relations
	Passage ReadingPassage `json:"-" gorm:"foreignKey:PassageID"`
	Answers []UserAnswer   `json:"-" gorm:"foreignKey:TestSessionID"`
}

func (TestSession) TableName() string {
	return "test_sessions"
}

// Completed reports whether the session reached its terminal state.
func (s *TestSession) Completed() bool {
	return s.CompletedAt != nil
}

// ElapsedSeconds is the wall time since the session started, truncated to
// whole seconds.
func (s *TestSession) ElapsedSeconds(now time.Time) int {
	return int(now.Sub(s.StartedAt).Seconds())
}

// UserAnswer records one submitted answer. At most one row exists per
// (session, question) pair; correctness is computed by the grader before the
// row is written, never inside the storage path.
type UserAnswer struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	TestSessionID uint      `json:"test_session_id" gorm:"not null;uniqueIndex:idx_session_question"`
	QuestionID    uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_session_question"`
	Answer        string    `json:"answer" gorm:"size:500"`
	IsCorrect     bool      `json:"is_correct" gorm:"default:false"`
	AnsweredAt    time.Time `json:"answered_at"`

	// Relations
	Question Question `json:"-" gorm:"foreignKey:QuestionID"`
}

func (UserAnswer) TableName() string {
	return "user_answers"
}
