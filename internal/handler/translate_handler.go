package handler

import (
	"time"

	app_errors "lingo-gate/internal/errors"
	"lingo-gate/internal/models"
	"lingo-gate/internal/response"
	"lingo-gate/internal/types"

	"github.com/gin-gonic/gin"
)

// maxBatchSize bounds the number of texts accepted in one batch request.
const maxBatchSize = 100

// Translate handles POST /api/translate.
func (s *Server) Translate(c *gin.Context) {
	start := time.Now()

	var req types.TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewValidationError(err.Error()))
		return
	}

	mode := req.Mode
	if mode == "" {
		mode = types.ModeSimple
	}

	result, err := s.translationService.Translate(c.Request.Context(), &req)

	s.recordRequest(c, &models.RequestLog{
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
		Mode:       mode,
		ItemCount:  1,
	}, start, err)

	if err != nil {
		s.HandleServiceError(c, err)
		return
	}

	response.SuccessI18n(c, "translate.success", result)
}

// TranslateBatch handles POST /api/translate/batch.
func (s *Server) TranslateBatch(c *gin.Context) {
	start := time.Now()

	var req types.BatchTranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewValidationError(err.Error()))
		return
	}
	if len(req.Texts) == 0 {
		response.Error(c, app_errors.NewValidationError("texts list cannot be empty"))
		return
	}
	if len(req.Texts) > maxBatchSize {
		response.Error(c, app_errors.NewValidationError("texts list exceeds maximum batch size"))
		return
	}

	result, err := s.translationService.TranslateBatch(c.Request.Context(), &req)

	logEntry := &models.RequestLog{
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
		Mode:       req.Mode,
		ItemCount:  len(req.Texts),
	}
	if result != nil {
		failed := 0
		for _, item := range result.Translations {
			if item.Error != "" {
				failed++
			}
		}
		if failed > 0 {
			logEntry.Detail = detailJSON(map[string]any{"failed_items": failed})
		}
	}
	s.recordRequest(c, logEntry, start, err)

	if err != nil {
		s.HandleServiceError(c, err)
		return
	}

	response.SuccessI18n(c, "translate.batch_success", result)
}
