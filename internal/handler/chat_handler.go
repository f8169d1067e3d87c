package handler

import (
	"time"

	app_errors "lingo-gate/internal/errors"
	"lingo-gate/internal/models"
	"lingo-gate/internal/response"
	"lingo-gate/internal/types"

	"github.com/gin-gonic/gin"
)

// Chat handles POST /api/chat. Each call is a stateless single turn: no
// conversation history is kept between requests.
func (s *Server) Chat(c *gin.Context) {
	start := time.Now()

	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewValidationError(err.Error()))
		return
	}

	reply, model, err := s.translationService.Chat(c.Request.Context(), req.Message)

	s.recordRequest(c, &models.RequestLog{ItemCount: 1}, start, err)

	if err != nil {
		s.HandleServiceError(c, err)
		return
	}

	response.SuccessI18n(c, "chat.success", types.ChatResponse{
		Response:  reply,
		Model:     model,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
