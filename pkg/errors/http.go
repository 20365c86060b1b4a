package errors

import (
	"errors"
)

// HTTPStatusCode is the status an error kind would map to on an API that exposes
// error categories. The waitlist relay keeps a two-valued contract and only uses
// this for logs and health output.
func HTTPStatusCode(err error) int {
	if err == nil {
		return StatusInternalServerError
	}

	switch GetErrorType(err) {
	case ErrorTypeInvalidRequest:
		return StatusBadRequest
	case ErrorTypeUpstreamUnavailable:
		return StatusServiceUnavailable
	case ErrorTypeConfiguration, ErrorTypeUpstreamRejected, ErrorTypeEmptyResponse, ErrorTypeInternalServerError:
		return StatusInternalServerError
	default:
		return StatusInternalServerError
	}
}

func GetHumanReadableMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}

	// SECURITY: avoid leaking internal error strings (tokens in URLs, upstream payloads, etc.)
	return "An unexpected error occurred"
}
