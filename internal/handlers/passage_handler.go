package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ielts-prep/reading-test-service/internal/services"
	"github.com/ielts-prep/reading-test-service/internal/utils"
)

type PassageHandler struct {
	BaseHandler
	service services.PassageService
}

func NewPassageHandler(service services.PassageService, logger utils.Logger) *PassageHandler {
	return &PassageHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// GetReadingTest returns the active passage with questions, answer keys
// stripped. An optional session_id query parameter is echoed back.
// GET /api/v1/reading-test
func (h *PassageHandler) GetReadingTest(c *gin.Context) {
	sessionID := c.Query("session_id")

	response, err := h.service.GetReadingTest(c.Request.Context(), sessionID)
	if err != nil {
		status, code := mapServiceError(err)
		h.RespondWithError(c, status, code, clientMessage(err, status), err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListQuestions is the legacy flat question listing
// GET /api/v1/questions
func (h *PassageHandler) ListQuestions(c *gin.Context) {
	questions, err := h.service.ListQuestions(c.Request.Context())
	if err != nil {
		status, code := mapServiceError(err)
		h.RespondWithError(c, status, code, clientMessage(err, status), err)
		return
	}

	c.JSON(http.StatusOK, questions)
}
