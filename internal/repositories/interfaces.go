package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository bundles the per-entity repositories behind one handle so
// services depend on a single collaborator.
type Repository interface {
	Passage() PassageRepository
	Session() SessionRepository
	Answer() AnswerRepository

	// WithTransaction runs fn against a repository bound to a single
	// transaction. fn returning an error rolls everything back.
	WithTransaction(ctx context.Context, fn func(Repository) error) error
}

// IsNotFoundError reports whether a repository error means the record does
// not exist, as opposed to a persistence failure.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
