package errors

import (
	"fmt"
	"net/http"
	"runtime/debug"
)

// Error codes shared between the service and HTTP layers. They double as
// message keys for the i18n catalog.
const (
	CodeCharacterNotFound      = "CHARACTER_NOT_FOUND"
	CodeDefenseTooLow          = "DEFENSE_TOO_LOW"
	CodeIntelligenceTooHigh    = "INTELLIGENCE_TOO_HIGH"
	CodeMageIntelligenceTooLow = "MAGE_INTELLIGENCE_TOO_LOW"
	CodeInvalidRequest         = "INVALID_REQUEST"
	CodeRateLimitExceeded      = "RATE_LIMIT_EXCEEDED"
	CodeRouteNotFound          = "ROUTE_NOT_FOUND"
	CodeInternal               = "INTERNAL_ERROR"
)

// AppError represents an application error with HTTP status code and error code
type AppError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    any    `json:"details,omitempty"`
	// Params are substituted into the localized message for Code
	Params []any  `json:"-"`
	Stack  string `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// WithDetails adds details to the error
func (e *AppError) WithDetails(details any) *AppError {
	e.Details = details
	return e
}

// WithParams sets the message parameters
func (e *AppError) WithParams(params ...any) *AppError {
	e.Params = params
	return e
}

// NewError creates a new application error
func NewError(statusCode int, code string, message string) *AppError {
	return &AppError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
		Stack:      string(debug.Stack()),
	}
}

// NewBadRequestError creates a 400 Bad Request error
func NewBadRequestError(code string, message string) *AppError {
	return NewError(http.StatusBadRequest, code, message)
}

// NewNotFoundError creates a 404 Not Found error
func NewNotFoundError(code string, message string) *AppError {
	return NewError(http.StatusNotFound, code, message)
}

// NewTooManyRequestsError creates a 429 Too Many Requests error
func NewTooManyRequestsError(code string, message string) *AppError {
	return NewError(http.StatusTooManyRequests, code, message)
}

// NewInternalServerError creates a 500 Internal Server Error
func NewInternalServerError(code string, message string) *AppError {
	return NewError(http.StatusInternalServerError, code, message)
}

// Is checks if the target error is of type AppError
func Is(err error, target *AppError) bool {
	appErr, ok := err.(*AppError)
	if !ok {
		return false
	}
	return appErr.Code == target.Code
}
