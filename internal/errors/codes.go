package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Filter error codes (FILTER_*) - malformed filter input on the read path
const (
	FilterInvalidNumber ErrorCode = "FILTER_001"
	FilterInvalidDate   ErrorCode = "FILTER_002"
	FilterInvalidPage   ErrorCode = "FILTER_003"
	FilterInvalidLimit  ErrorCode = "FILTER_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationInvalidFormat ErrorCode = "VALIDATION_002"
)

// Authentication error codes (AUTH_*) - administrative endpoints only
const (
	AuthMissingToken ErrorCode = "AUTH_001"
	AuthInvalidToken ErrorCode = "AUTH_002"
)

// Import error codes (IMPORT_*)
const (
	ImportFileNotFound    ErrorCode = "IMPORT_001"
	ImportMalformedHeader ErrorCode = "IMPORT_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError     ErrorCode = "SYSTEM_001"
	SystemDatabaseError     ErrorCode = "SYSTEM_002"
	SystemRateLimitExceeded ErrorCode = "SYSTEM_003"
)

// errorMessages maps error codes to their default human-readable messages.
// These are the client-facing texts; internal causes stay in the logs.
var errorMessages = map[ErrorCode]string{
	FilterInvalidNumber: "Invalid numeric filter value",
	FilterInvalidDate:   "Invalid date filter value",
	FilterInvalidPage:   "Invalid page number",
	FilterInvalidLimit:  "Invalid page size",

	ValidationGeneral:       "Validation failed",
	ValidationInvalidFormat: "Invalid field format",

	AuthMissingToken: "Authorization token is required",
	AuthInvalidToken: "Authorization token is invalid or expired",

	ImportFileNotFound:    "Import file not found",
	ImportMalformedHeader: "Import file header does not match any known column set",

	SystemInternalError:     "An unexpected error occurred",
	SystemDatabaseError:     "Failed to query sales data",
	SystemRateLimitExceeded: "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
