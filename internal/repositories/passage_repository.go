package repositories

import (
	"context"

	"github.com/ielts-prep/reading-test-service/internal/models"
)

// PassageRepository is the read side of the answer key store. Passages are
// seeded outside the request path, so Create only exists for seeding.
type PassageRepository interface {
	Create(ctx context.Context, passage *models.ReadingPassage) error
	GetFirst(ctx context.Context) (*models.ReadingPassage, error)
	Count(ctx context.Context) (int64, error)

	// Question access
	GetQuestions(ctx context.Context, passageID uint) ([]*models.Question, error)
	GetQuestion(ctx context.Context, id uint) (*models.Question, error)
	ListQuestions(ctx context.Context) ([]*models.Question, error)
}
