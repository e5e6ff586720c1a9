package repositories

import (
	"context"
	"time"

	"github.com/ielts-prep/reading-test-service/internal/models"
)

// SessionRepository persists test sessions. Completion is a conditional
// update so the InProgress -> Completed transition happens at most once.
type SessionRepository interface {
	Create(ctx context.Context, session *models.TestSession) error
	GetBySessionID(ctx context.Context, sessionID string) (*models.TestSession, error)
	GetBySessionIDWithDetails(ctx context.Context, sessionID string) (*models.TestSession, error) // preloads passage, questions and answers

	// Complete transitions the session to its terminal state only if it is
	// still in progress. Returns false when another call won the transition.
	Complete(ctx context.Context, id uint, completedAt time.Time, timeTaken, score int) (bool, error)

	// UpdateScore sets the score without completing, used by the legacy
	// sessionless scoring path.
	UpdateScore(ctx context.Context, id uint, score int) error
}

// AnswerRepository persists graded answer records. One row per
// (session, question) pair; the unique index backs that invariant.
type AnswerRepository interface {
	Create(ctx context.Context, answer *models.UserAnswer) error
	CreateBatch(ctx context.Context, answers []*models.UserAnswer) error
}
