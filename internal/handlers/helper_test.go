package handlers

import (
	"errors"
	"net/http"
	"testing"

	apperrors "github.com/ielts-prep/reading-test-service/internal/errors"
	"github.com/ielts-prep/reading-test-service/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation errors", apperrors.ValidationErrors{{Field: "session_id", Message: "session_id is required"}}, http.StatusBadRequest, "validation_error"},
		{"invalid question count", services.ErrInvalidQuestionCount, http.StatusBadRequest, "validation_error"},
		{"passage not found", services.ErrPassageNotFound, http.StatusNotFound, "not_found"},
		{"session not found", services.ErrSessionNotFound, http.StatusNotFound, "not_found"},
		{"already completed", services.ErrSessionAlreadyCompleted, http.StatusConflict, "already_completed"},
		{"not completed", services.ErrSessionNotCompleted, http.StatusConflict, "not_completed"},
		{"expired", services.ErrSessionExpired, http.StatusBadRequest, "expired"},
		{"wrapped sentinel", errors.Join(errors.New("context"), services.ErrSessionExpired), http.StatusBadRequest, "expired"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := mapServiceError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestClientMessage_HidesInternalFailures(t *testing.T) {
	assert.Equal(t, "internal server error", clientMessage(errors.New("pq: connection refused"), http.StatusInternalServerError))
	assert.Equal(t, "test time exceeded", clientMessage(services.ErrSessionExpired, http.StatusBadRequest))
}

func TestErrorDetails(t *testing.T) {
	ve := apperrors.ValidationErrors{{Field: "answers", Message: "answers is required"}}
	assert.Equal(t, ve, errorDetails(ve))
	assert.Nil(t, errorDetails(errors.New("boom")))
}
