// Package errors provides standardized error handling for the goal planner.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

// Goal-planning service errors
const (
	ErrCodeNotConfigured ErrorCode = "GOAL_PLANNER_NOT_CONFIGURED"
	ErrCodeUnreachable   ErrorCode = "GOAL_PLANNER_UNREACHABLE"
	ErrCodeTimeout       ErrorCode = "GOAL_PLANNER_TIMEOUT"
	ErrCodeInvalidInput  ErrorCode = "GOAL_PLANNER_INVALID_INPUT"
	ErrCodeUnauthorized  ErrorCode = "GOAL_PLANNER_UNAUTHORIZED"
	ErrCodeServerError   ErrorCode = "GOAL_PLANNER_SERVER_ERROR"
	ErrCodeRequestFailed ErrorCode = "GOAL_PLANNER_REQUEST_FAILED"
	ErrCodeFailed        ErrorCode = "GOAL_PLANNER_FAILED"
)

// Wizard errors
const (
	ErrCodeProfileValidationFailed ErrorCode = "PROFILE_VALIDATION_FAILED"
	ErrCodeConfigInvalid           ErrorCode = "CONFIG_INVALID"
)

// DefaultUserMessage is shown when nothing more specific is known.
const DefaultUserMessage = "An error occurred while processing your goal planning. Please try again."

// StandardError represents a structured application error. Message is
// always safe to show to the user.
type StandardError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    string                 `json:"details,omitempty"`
	Retryable  bool                   `json:"retryable"`
	StatusCode int                    `json:"statusCode,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	Timestamp  time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewNotConfiguredError is returned when no service URL is set.
func NewNotConfiguredError() *StandardError {
	return &StandardError{
		Code:      ErrCodeNotConfigured,
		Message:   "Goal planning service is not configured. Please contact support.",
		Details:   "API URL not configured",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnreachableError covers refused connections and unknown hosts.
func NewUnreachableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnreachable,
		Message:   "Unable to connect to the goal planning service. Please ensure the API server is running.",
		Details:   errDetails(err),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewTimeoutError creates a retryable timeout error.
func NewTimeoutError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeTimeout,
		Message:   "Request timed out. Please check your internet connection and try again.",
		Details:   errDetails(err),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewHTTPStatusError maps a non-2xx response status to its error.
func NewHTTPStatusError(status int, body string) *StandardError {
	e := &StandardError{
		StatusCode: status,
		Details:    body,
		Timestamp:  time.Now().UTC(),
	}
	switch status {
	case 400:
		e.Code = ErrCodeInvalidInput
		e.Message = "Invalid data provided. Please check your inputs and try again."
	case 401:
		e.Code = ErrCodeUnauthorized
		e.Message = "Authentication failed. Please check your API credentials."
	case 500:
		e.Code = ErrCodeServerError
		e.Message = "Server error occurred. Please try again later."
		e.Retryable = true
	default:
		e.Code = ErrCodeRequestFailed
		e.Message = fmt.Sprintf("API request failed with status %d. Please try again.", status)
		e.Retryable = status >= 500
	}
	return e
}

// NewSubmissionFailedError is the catch-all for submission failures.
func NewSubmissionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeFailed,
		Message:   DefaultUserMessage,
		Details:   errDetails(err),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewProfileValidationError(issues []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeProfileValidationFailed,
		Message:   "Please fix the following issues before proceeding",
		Details:   strings.Join(issues, "; "),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewConfigInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfigInvalid,
		Message:   "Invalid configuration",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func errDetails(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// ==========================
// 3. Utility Functions
// ==========================

// IsRetryableErrorCode checks if an error code is worth retrying as is.
func IsRetryableErrorCode(code ErrorCode) bool {
	switch code {
	case ErrCodeUnreachable, ErrCodeTimeout, ErrCodeServerError:
		return true
	default:
		return false
	}
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "NOT_CONFIGURED") || strings.Contains(codeStr, "CONFIG"):
		return "CONFIGURATION"
	case strings.Contains(codeStr, "UNREACHABLE") || strings.Contains(codeStr, "TIMEOUT"):
		return "NETWORK"
	case strings.Contains(codeStr, "UNAUTHORIZED"):
		return "AUTH"
	case strings.Contains(codeStr, "INVALID") || strings.Contains(codeStr, "VALIDATION"):
		return "VALIDATION"
	case strings.Contains(codeStr, "SERVER_ERROR") || strings.Contains(codeStr, "REQUEST_FAILED"):
		return "SERVICE"
	default:
		return "OTHER"
	}
}

// AsStandardError unwraps err to a *StandardError if it holds one.
func AsStandardError(err error) (*StandardError, bool) {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr, true
	}
	return nil, false
}

// UserMessage returns the text to show for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if stdErr, ok := AsStandardError(err); ok && stdErr.Message != "" {
		return stdErr.Message
	}
	return DefaultUserMessage
}

// CodeOf returns the code carried by err, or ErrCodeFailed.
func CodeOf(err error) ErrorCode {
	if stdErr, ok := AsStandardError(err); ok {
		return stdErr.Code
	}
	return ErrCodeFailed
}
