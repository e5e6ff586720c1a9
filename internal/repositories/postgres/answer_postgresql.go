package postgres

import (
	"context"

	"github.com/ielts-prep/reading-test-service/internal/models"
	"github.com/ielts-prep/reading-test-service/internal/repositories"
	"gorm.io/gorm"
)

type AnswerPostgreSQL struct {
	db *gorm.DB
}

func NewAnswerPostgreSQL(db *gorm.DB) repositories.AnswerRepository {
	return &AnswerPostgreSQL{db: db}
}

func (a *AnswerPostgreSQL) Create(ctx context.Context, answer *models.UserAnswer) error {
	return a.db.WithContext(ctx).Create(answer).Error
}

func (a *AnswerPostgreSQL) CreateBatch(ctx context.Context, answers []*models.UserAnswer) error {
	if len(answers) == 0 {
		return nil
	}
	return a.db.WithContext(ctx).Create(&answers).Error
}
