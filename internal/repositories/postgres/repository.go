package postgres

import (
	"context"

	"github.com/ielts-prep/reading-test-service/internal/repositories"
	"gorm.io/gorm"
)

type gormRepository struct {
	db      *gorm.DB
	passage repositories.PassageRepository
	session repositories.SessionRepository
	answer  repositories.AnswerRepository
}

func NewRepository(db *gorm.DB) repositories.Repository {
	return &gormRepository{
		db:      db,
		passage: NewPassagePostgreSQL(db),
		session: NewSessionPostgreSQL(db),
		answer:  NewAnswerPostgreSQL(db),
	}
}

func (r *gormRepository) Passage() repositories.PassageRepository {
	return r.passage
}

func (r *gormRepository) Session() repositories.SessionRepository {
	return r.session
}

func (r *gormRepository) Answer() repositories.AnswerRepository {
	return r.answer
}

func (r *gormRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
