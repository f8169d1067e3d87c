// Package handler contains the HTTP handlers of the gateway.
package handler

import (
	"encoding/json"
	"time"

	app_errors "lingo-gate/internal/errors"
	"lingo-gate/internal/middleware"
	"lingo-gate/internal/models"
	"lingo-gate/internal/response"
	"lingo-gate/internal/services"
	"lingo-gate/internal/types"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// Server contains all HTTP handlers and their dependencies.
type Server struct {
	configManager      types.ConfigManager
	translationService *services.TranslationService
	requestLogService  *services.RequestLogService
	startTime          time.Time
}

// NewServer creates a new Server instance.
func NewServer(
	configManager types.ConfigManager,
	translationService *services.TranslationService,
	requestLogService *services.RequestLogService,
) *Server {
	return &Server{
		configManager:      configManager,
		translationService: translationService,
		requestLogService:  requestLogService,
		startTime:          time.Now(),
	}
}

// HandleServiceError maps service-layer errors to the external error shape and
// writes the response.
func (s *Server) HandleServiceError(c *gin.Context, err error) {
	apiErr := toAPIError(err)
	if apiErr.HTTPStatus >= 500 {
		logrus.WithError(err).Error("Request failed")
	}
	response.Error(c, apiErr)
}

// toAPIError resolves any error to an APIError.
func toAPIError(err error) *app_errors.APIError {
	if chainErr, ok := err.(*app_errors.ChainStageError); ok {
		return chainErr.ToAPIError()
	}
	if apiErr, ok := err.(*app_errors.APIError); ok {
		return apiErr
	}
	if dbErr := app_errors.ParseDBError(err); dbErr != nil {
		return dbErr
	}
	return app_errors.NewAPIError(app_errors.ErrInternalServer, err.Error())
}

// recordRequest queues one request log record for asynchronous persistence.
func (s *Server) recordRequest(c *gin.Context, log *models.RequestLog, start time.Time, err error) {
	if s.requestLogService == nil {
		return
	}

	log.Identity = c.GetString(middleware.IdentityKey)
	log.DurationMs = time.Since(start).Milliseconds()
	log.Endpoint = c.FullPath()
	if log.Endpoint == "" {
		log.Endpoint = c.Request.URL.Path
	}

	if err != nil {
		apiErr := toAPIError(err)
		log.StatusCode = apiErr.HTTPStatus
		log.ErrorCode = apiErr.Code
	} else {
		log.StatusCode = 200
	}

	s.requestLogService.Record(log)
}

// detailJSON marshals auxiliary request facts into the log detail column.
// A nil column is stored when the map is empty.
func detailJSON(fields map[string]any) datatypes.JSON {
	if len(fields) == 0 {
		return nil
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return nil
	}
	return datatypes.JSON(data)
}
