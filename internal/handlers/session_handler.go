package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ielts-prep/reading-test-service/internal/services"
	"github.com/ielts-prep/reading-test-service/internal/utils"
)

type SessionHandler struct {
	BaseHandler
	service services.SessionService
}

func NewSessionHandler(service services.SessionService, logger utils.Logger) *SessionHandler {
	return &SessionHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// StartSession creates a new timed test session against the active passage
// POST /api/v1/sessions/start
func (h *SessionHandler) StartSession(c *gin.Context) {
	response, err := h.service.Start(c.Request.Context())
	if err != nil {
		status, code := mapServiceError(err)
		h.RespondWithError(c, status, code, clientMessage(err, status), err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// SubmitTest grades the submitted answers and completes the session
// POST /api/v1/sessions/submit
func (h *SessionHandler) SubmitTest(c *gin.Context) {
	var req services.SubmitTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "validation_error", "invalid request body", err)
		return
	}

	result, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		status, code := mapServiceError(err)
		h.RespondWithError(c, status, code, clientMessage(err, status), err, errorDetails(err))
		return
	}

	c.JSON(http.StatusOK, result)
}

// EndSession terminates a session without grading
// POST /api/v1/sessions/end
func (h *SessionHandler) EndSession(c *gin.Context) {
	var req services.EndSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "validation_error", "invalid request body", err)
		return
	}

	response, err := h.service.End(c.Request.Context(), &req)
	if err != nil {
		status, code := mapServiceError(err)
		h.RespondWithError(c, status, code, clientMessage(err, status), err, errorDetails(err))
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetResult returns the stored report of a completed session
// GET /api/v1/sessions/:session_id/result
func (h *SessionHandler) GetResult(c *gin.Context) {
	result, err := h.service.Result(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		status, code := mapServiceError(err)
		h.RespondWithError(c, status, code, clientMessage(err, status), err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// QuickSubmit is the legacy sessionless scoring endpoint
// POST /api/v1/submit
func (h *SessionHandler) QuickSubmit(c *gin.Context) {
	var req services.QuickScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "validation_error", "invalid request body", err)
		return
	}

	response, err := h.service.QuickSubmit(c.Request.Context(), &req)
	if err != nil {
		status, code := mapServiceError(err)
		h.RespondWithError(c, status, code, clientMessage(err, status), err, errorDetails(err))
		return
	}

	c.JSON(http.StatusOK, response)
}
