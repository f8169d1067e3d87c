// Package errors defines the typed error taxonomy used across the gateway.
package errors

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

// APIError represents a standardized API error
type APIError struct {
	HTTPStatus int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// Predefined API errors
var (
	ErrBadRequest         = &APIError{HTTPStatus: http.StatusBadRequest, Code: "BAD_REQUEST", Message: "Invalid request parameters"}
	ErrInvalidJSON        = &APIError{HTTPStatus: http.StatusBadRequest, Code: "INVALID_JSON", Message: "Invalid JSON format"}
	ErrValidation         = &APIError{HTTPStatus: http.StatusBadRequest, Code: "VALIDATION_FAILED", Message: "Request validation failed"}
	ErrUnauthorized       = &APIError{HTTPStatus: http.StatusUnauthorized, Code: "UNAUTHORIZED", Message: "Invalid or missing credential"}
	ErrForbidden          = &APIError{HTTPStatus: http.StatusForbidden, Code: "FORBIDDEN", Message: "Access denied"}
	ErrResourceNotFound   = &APIError{HTTPStatus: http.StatusNotFound, Code: "NOT_FOUND", Message: "Resource not found"}
	ErrInternalServer     = &APIError{HTTPStatus: http.StatusInternalServerError, Code: "INTERNAL_SERVER_ERROR", Message: "Internal server error"}
	ErrDatabase           = &APIError{HTTPStatus: http.StatusInternalServerError, Code: "DATABASE_ERROR", Message: "Database operation failed"}
	ErrBackendUnavailable = &APIError{HTTPStatus: http.StatusServiceUnavailable, Code: "BACKEND_UNAVAILABLE", Message: "Translation backend is unavailable"}
	ErrBackendRejected    = &APIError{HTTPStatus: http.StatusUnprocessableEntity, Code: "BACKEND_REJECTED", Message: "Translation backend rejected the input"}
	ErrChainStageFailed   = &APIError{HTTPStatus: http.StatusBadGateway, Code: "CHAIN_STAGE_FAILED", Message: "Prompt chain stage failed"}
)

// NewAPIError creates a new APIError based on a predefined error with a custom message.
func NewAPIError(base *APIError, message string) *APIError {
	return &APIError{
		HTTPStatus: base.HTTPStatus,
		Code:       base.Code,
		Message:    message,
	}
}

// NewAPIErrorWithUpstream creates an APIError that mirrors an upstream response.
func NewAPIErrorWithUpstream(httpStatus int, code string, message string) *APIError {
	return &APIError{
		HTTPStatus: httpStatus,
		Code:       code,
		Message:    message,
	}
}

// NewValidationError creates a validation error with a custom message.
func NewValidationError(message string) *APIError {
	return NewAPIError(ErrValidation, message)
}

// NewAuthenticationError creates an authentication error with a custom message.
func NewAuthenticationError(message string) *APIError {
	return NewAPIError(ErrUnauthorized, message)
}

// NewNotFoundError creates a not found error with a custom message.
func NewNotFoundError(message string) *APIError {
	return NewAPIError(ErrResourceNotFound, message)
}

// ChainStageError reports the failure of one stage of the four-stage prompt
// chain. The whole chain result is discarded when any stage fails; Stage is
// 1-based for diagnostics.
type ChainStageError struct {
	Stage     int
	StageName string
	Err       error
}

// Error implements the error interface
func (e *ChainStageError) Error() string {
	return fmt.Sprintf("prompt chain failed at stage %d (%s): %v", e.Stage, e.StageName, e.Err)
}

// Unwrap exposes the underlying stage error for errors.Is/As chains.
func (e *ChainStageError) Unwrap() error {
	return e.Err
}

// NewChainStageError wraps a stage failure with its position in the chain.
func NewChainStageError(stage int, stageName string, err error) *ChainStageError {
	return &ChainStageError{Stage: stage, StageName: stageName, Err: err}
}

// ToAPIError maps a chain stage failure to the externally visible error shape.
func (e *ChainStageError) ToAPIError() *APIError {
	return NewAPIError(ErrChainStageFailed, e.Error())
}

// ParseDBError converts database errors to an APIError, or returns nil if the
// error is not database related.
func ParseDBError(err error) *APIError {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrResourceNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &APIError{HTTPStatus: http.StatusConflict, Code: "DUPLICATE_RESOURCE", Message: "Resource already exists"}
	}
	if errors.Is(err, gorm.ErrInvalidTransaction) || errors.Is(err, gorm.ErrInvalidDB) {
		return ErrDatabase
	}
	return nil
}
