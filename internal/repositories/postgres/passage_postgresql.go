package postgres

import (
	"context"

	"github.com/ielts-prep/reading-test-service/internal/models"
	"github.com/ielts-prep/reading-test-service/internal/repositories"
	"gorm.io/gorm"
)

type PassagePostgreSQL struct {
	db *gorm.DB
}

func NewPassagePostgreSQL(db *gorm.DB) repositories.PassageRepository {
	return &PassagePostgreSQL{db: db}
}

func (p *PassagePostgreSQL) Create(ctx context.Context, passage *models.ReadingPassage) error {
	return p.db.WithContext(ctx).Create(passage).Error
}

func (p *PassagePostgreSQL) GetFirst(ctx context.Context) (*models.ReadingPassage, error) {
	var passage models.ReadingPassage
	if err := p.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_number ASC")
		}).
		Order("passage_number ASC").
		First(&passage).Error; err != nil {
		return nil, err
	}
	return &passage, nil
}

func (p *PassagePostgreSQL) Count(ctx context.Context) (int64, error) {
	var total int64
	err := p.db.WithContext(ctx).Model(&models.ReadingPassage{}).Count(&total).Error
	return total, err
}

func (p *PassagePostgreSQL) GetQuestions(ctx context.Context, passageID uint) ([]*models.Question, error) {
	var questions []*models.Question
	if err := p.db.WithContext(ctx).
		Where("passage_id = ?", passageID).
		Order("question_number ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (p *PassagePostgreSQL) GetQuestion(ctx context.Context, id uint) (*models.Question, error) {
	var question models.Question
	if err := p.db.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (p *PassagePostgreSQL) ListQuestions(ctx context.Context) ([]*models.Question, error) {
	var questions []*models.Question
	if err := p.db.WithContext(ctx).
		Order("passage_id ASC, question_number ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
