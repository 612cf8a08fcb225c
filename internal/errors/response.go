package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse is the standardized API error body:
// { "success": false, "error": "...", "message": "..." }
// Error carries the generic client-facing text; Message carries the detailed
// cause and is only populated in non-production configurations. The error
// code never serializes - it drives status mapping and metrics internally.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`

	Code    ErrorCode `json:"-"`
	TraceID string    `json:"-"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithMessage attaches a detail message to the error response.
// Handlers only set this when the server runs in development mode.
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Message = message
	}
}

// WithError overrides the default client-facing text for the error code
func WithError(text string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error = text
	}
}

// NewErrorResponse creates a standardized error response for the given code
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Success: false,
		Error:   GetErrorMessage(code),
		Code:    code,
		TraceID: traceID,
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// WrapSystemError wraps an internal error with a generic system error body.
// This prevents exposure of internal implementation details to clients; the
// internal error is returned separately for server-side logging.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	response := &ErrorResponse{
		Success: false,
		Error:   GetErrorMessage(SystemInternalError),
		Code:    SystemInternalError,
		TraceID: traceID,
	}
	return response, err
}

// WrapDatabaseError wraps a storage-engine error with a generic message
func WrapDatabaseError(err error, traceID string) (*ErrorResponse, error) {
	response := &ErrorResponse{
		Success: false,
		Error:   GetErrorMessage(SystemDatabaseError),
		Code:    SystemDatabaseError,
		TraceID: traceID,
	}
	return response, err
}

// ToJSON serializes the error response to JSON bytes
func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

// GetHTTPStatus returns the appropriate HTTP status code for the error code
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	// 400 Bad Request - malformed filter or request input
	case FilterInvalidNumber, FilterInvalidDate, FilterInvalidPage,
		FilterInvalidLimit, ValidationGeneral, ValidationInvalidFormat:
		return http.StatusBadRequest

	// 401 Unauthorized - admin authentication failures
	case AuthMissingToken, AuthInvalidToken:
		return http.StatusUnauthorized

	// 404 Not Found - missing import input
	case ImportFileNotFound:
		return http.StatusNotFound

	// 422 Unprocessable Entity - unusable import input
	case ImportMalformedHeader:
		return http.StatusUnprocessableEntity

	// 429 Too Many Requests - rate limiting
	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests

	// 500 Internal Server Error - system errors (default)
	case SystemInternalError, SystemDatabaseError:
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetHTTPStatus returns the HTTP status code for the error response
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(er.Code)
}

// IsClientError returns true if the error is a 4xx client error
func (er *ErrorResponse) IsClientError() bool {
	status := er.GetHTTPStatus()
	return status >= 400 && status < 500
}

// IsServerError returns true if the error is a 5xx server error
func (er *ErrorResponse) IsServerError() bool {
	return er.GetHTTPStatus() >= 500
}

// String returns a string representation of the error response
func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Code, er.Error, er.TraceID)
}
