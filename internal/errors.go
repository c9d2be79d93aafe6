package internal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type ErrorType string

const (
	ErrorTypeValidation ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound   ErrorType = "NOT_FOUND"
	ErrorTypeInternal   ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidRequest   ErrorCode = "INVALID_REQUEST"
	ErrCodeInvalidRange     ErrorCode = "INVALID_RANGE"

	ErrCodeOrgUnitNotFound  ErrorCode = "ORG_UNIT_NOT_FOUND"
	ErrCodeWorkerNotFound   ErrorCode = "WORKER_NOT_FOUND"
	ErrCodePositionNotFound ErrorCode = "JOB_POSITION_NOT_FOUND"
	ErrCodeBandNotFound     ErrorCode = "COMPENSATION_BAND_NOT_FOUND"
)

// StatusClientClosedRequest is written when the caller went away before the
// request finished.
const StatusClientClosedRequest = 499

type AppError struct {
	Type       ErrorType   `json:"type"`
	Code       ErrorCode   `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	StatusCode int         `json:"-"`
	Cause      error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Messages lists every human-readable problem carried by the error, one per
// field for validation failures.
func (e *AppError) Messages() []string {
	if details, ok := e.Details.(ValidationErrors); ok && len(details.Errors) > 0 {
		messages := make([]string, len(details.Errors))
		for i, fe := range details.Errors {
			messages[i] = fe.Message
		}
		return messages
	}
	return []string{e.Message}
}

func (e *AppError) GetDetailedMessage() string {
	return strings.Join(e.Messages(), "; ")
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewValidationFieldError(field, message string, code ErrorCode) *AppError {
	return NewValidationError("Validation failed", ErrCodeValidationFailed).
		WithDetails(ValidationErrors{
			Errors: []ValidationError{{Field: field, Message: message, Code: string(code)}},
		})
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

var (
	ErrOrgUnitNotFound  = NewNotFoundError("Organizational Unit Not Found.", ErrCodeOrgUnitNotFound)
	ErrWorkerNotFound   = NewNotFoundError("Worker Not Found.", ErrCodeWorkerNotFound)
	ErrPositionNotFound = NewNotFoundError("Job Position Not Found.", ErrCodePositionNotFound)
	ErrBandNotFound     = NewNotFoundError("Compensation Band Not Found.", ErrCodeBandNotFound)
)

func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func IsNotFound(err error) bool {
	appErr, ok := IsAppError(err)
	return ok && appErr.Type == ErrorTypeNotFound
}

// IsCanceled reports whether err is the caller abandoning the request rather
// than a failure of ours.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType   `json:"type"`
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}
