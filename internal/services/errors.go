package services

import (
	"errors"

	apperrors "github.com/ielts-prep/reading-test-service/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInternalError    = errors.New("internal server error")

	// Passage specific errors
	ErrPassageNotFound      = errors.New("no reading passage available")
	ErrQuestionNotFound     = errors.New("question not found")
	ErrInvalidQuestionCount = errors.New("passage must have 13 or 14 questions")

	// Session specific errors
	ErrSessionNotFound         = errors.New("session not found")
	ErrSessionAlreadyCompleted = errors.New("session already completed")
	ErrSessionNotCompleted     = errors.New("session not completed")
	ErrSessionExpired          = errors.New("test time exceeded")
)

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// ===== ERROR HELPERS =====

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPassageNotFound) ||
		errors.Is(err, ErrQuestionNotFound) ||
		errors.Is(err, ErrSessionNotFound)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) ||
		errors.Is(err, ErrInvalidQuestionCount) {
		return true
	}
	var ve ValidationErrors
	return errors.As(err, &ve)
}

// IsConflict checks if error represents a conflicting terminal transition
func IsConflict(err error) bool {
	return errors.Is(err, ErrSessionAlreadyCompleted)
}

// IsNotCompleted checks if error means a result was requested for a session
// that has not reached its terminal state
func IsNotCompleted(err error) bool {
	return errors.Is(err, ErrSessionNotCompleted)
}

// IsExpired checks if error represents a submission past the attempt window
func IsExpired(err error) bool {
	return errors.Is(err, ErrSessionExpired)
}
