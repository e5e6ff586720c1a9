package handlers

import (
	"errors"
	"net/http"

	"github.com/ielts-prep/reading-test-service/internal/services"
)

// mapServiceError translates a service error into an HTTP status and stable
// error code. The four domain errors each keep a distinct surface; anything
// unrecognized is a server-side failure.
func mapServiceError(err error) (int, string) {
	switch {
	case services.IsValidation(err):
		return http.StatusBadRequest, "validation_error"
	case services.IsNotFound(err):
		return http.StatusNotFound, "not_found"
	case services.IsConflict(err):
		return http.StatusConflict, "already_completed"
	case services.IsNotCompleted(err):
		return http.StatusConflict, "not_completed"
	case services.IsExpired(err):
		return http.StatusBadRequest, "expired"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// errorDetails exposes per-field validation details when present.
func errorDetails(err error) interface{} {
	var ve services.ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

// clientMessage is the user-visible message for an error; internal failures
// are not leaked.
func clientMessage(err error, status int) string {
	if status == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}
