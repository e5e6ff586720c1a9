package postgres

import (
	"context"
	"time"

	"github.com/ielts-prep/reading-test-service/internal/models"
	"github.com/ielts-prep/reading-test-service/internal/repositories"
	"gorm.io/gorm"
)

type SessionPostgreSQL struct {
	db *gorm.DB
}

func NewSessionPostgreSQL(db *gorm.DB) repositories.SessionRepository {
	return &SessionPostgreSQL{db: db}
}

func (s *SessionPostgreSQL) Create(ctx context.Context, session *models.TestSession) error {
	return s.db.WithContext(ctx).Create(session).Error
}

func (s *SessionPostgreSQL) GetBySessionID(ctx context.Context, sessionID string) (*models.TestSession, error) {
	var session models.TestSession
	if err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *SessionPostgreSQL) GetBySessionIDWithDetails(ctx context.Context, sessionID string) (*models.TestSession, error) {
	var session models.TestSession
	if err := s.db.WithContext(ctx).
		Preload("Passage.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_number ASC")
		}).
		Preload("Answers").
		Where("session_id = ?", sessionID).
		First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// Complete is the atomic InProgress -> Completed transition. The completed_at
// guard in the WHERE clause makes concurrent completions race safely: only
// one call updates the row, the loser sees zero rows affected.
func (s *SessionPostgreSQL) Complete(ctx context.Context, id uint, completedAt time.Time, timeTaken, score int) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&models.TestSession{}).
		Where("id = ? AND completed_at IS NULL", id).
		Updates(map[string]interface{}{
			"completed_at": completedAt,
			"time_taken":   timeTaken,
			"score":        score,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (s *SessionPostgreSQL) UpdateScore(ctx context.Context, id uint, score int) error {
	return s.db.WithContext(ctx).
		Model(&models.TestSession{}).
		Where("id = ?", id).
		Update("score", score).Error
}
