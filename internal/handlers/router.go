package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ielts-prep/reading-test-service/internal/services"
	"github.com/ielts-prep/reading-test-service/internal/utils"
)

type HandlerManager struct {
	sessionHandler *SessionHandler
	passageHandler *PassageHandler
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		sessionHandler: NewSessionHandler(serviceManager.Session(), logger),
		passageHandler: NewPassageHandler(serviceManager.Passage(), logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "reading-test-service",
		})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/reading-test", hm.passageHandler.GetReadingTest)

		sessions := v1.Group("/sessions")
		{
			sessions.POST("/start", hm.sessionHandler.StartSession)
			sessions.POST("/submit", hm.sessionHandler.SubmitTest)
			sessions.POST("/end", hm.sessionHandler.EndSession)
			sessions.GET("/:session_id/result", hm.sessionHandler.GetResult)
		}

		// Legacy endpoints kept for frontend compatibility
		v1.GET("/questions", hm.passageHandler.ListQuestions)
		v1.POST("/submit", hm.sessionHandler.QuickSubmit)
	}
}
