package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ielts-prep/reading-test-service/internal/utils"
)

// ===== COMMON RESPONSE STRUCTURES =====

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Code    string      `json:"code,omitempty"`
}

// ===== BASE HANDLER STRUCT =====

// BaseHandler provides common logging functionality for all handlers
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{
		logger: logger,
	}
}

// LogError logs error details with request context
func (h *BaseHandler) LogError(c *gin.Context, err error, message string, additionalFields ...interface{}) {
	fields := []interface{}{
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	}
	fields = append(fields, additionalFields...)

	h.logger.LogError(err, message, fields...)
}

// RespondWithError sends a consistent error response and logs it
func (h *BaseHandler) RespondWithError(c *gin.Context, statusCode int, code, message string, err error, details ...interface{}) {
	errorResp := ErrorResponse{
		Message: message,
		Code:    code,
	}
	if len(details) > 0 {
		errorResp.Details = details[0]
	}

	if statusCode >= 500 && err != nil {
		h.LogError(c, err, message, "status_code", statusCode)
	} else {
		h.logger.Warn(message,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status_code", statusCode)
	}

	c.JSON(statusCode, errorResp)
}
