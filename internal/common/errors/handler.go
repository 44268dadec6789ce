// internal/common/errors/handler.go
package errors

import (
	"time"
)

// ErrorHandler normalizes and logs failures before they reach the user.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle logs err with its classification and returns the normalized error.
func (h *ErrorHandler) Handle(operation string, err error) *StandardError {
	stdErr := h.normalizeError(err)
	h.logError(operation, stdErr)
	return stdErr
}

// normalizeError ensures we always have a StandardError
func (h *ErrorHandler) normalizeError(err error) *StandardError {
	if stdErr, ok := AsStandardError(err); ok {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeFailed,
		Message:   DefaultUserMessage,
		Details:   errDetails(err),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func (h *ErrorHandler) logError(operation string, stdErr *StandardError) {
	if h.logger == nil {
		return
	}
	h.logger.Error("operation failed", map[string]interface{}{
		"operation":     operation,
		"errorCode":     string(stdErr.Code),
		"message":       stdErr.Message,
		"details":       stdErr.Details,
		"statusCode":    stdErr.StatusCode,
		"retryable":     stdErr.Retryable,
		"errorCategory": GetErrorCategory(stdErr.Code),
	})
}
