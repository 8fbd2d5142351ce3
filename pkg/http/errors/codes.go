package errors

// Error codes for standardized error responses
const (
	// Validation errors
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeInvalidRequest   = "invalid_request"

	// Resource errors
	ErrCodeNotFound = "not_found"

	// Mutation errors (validation passed, store refused)
	ErrCodeUnprocessable = "unprocessable"

	// Dispatch errors
	ErrCodeMethodNotAllowed = "method_not_allowed"

	// Server errors
	ErrCodeInternalError      = "internal_error"
	ErrCodeServiceUnavailable = "service_unavailable"
)
