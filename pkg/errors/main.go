package errors

import (
	"errors"
	"fmt"
)

const (
	StatusOK                  = 200
	StatusNoContent           = 204
	StatusBadRequest          = 400
	StatusNotFound            = 404
	StatusMethodNotAllowed    = 405
	StatusRequestTimeout      = 408
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusServiceUnavailable  = 503
)

const (
	ErrorTypeInvalidRequest      = "INVALID_REQUEST"
	ErrorTypeConfiguration       = "CONFIGURATION_ERROR"
	ErrorTypeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	ErrorTypeUpstreamRejected    = "UPSTREAM_REJECTED"
	ErrorTypeEmptyResponse       = "EMPTY_UPSTREAM_RESPONSE"
	ErrorTypeInternalServerError = "INTERNAL_SERVER_ERROR"
	ErrorTypeUnknown             = "UNKNOWN_ERROR"
)

type AppError struct {
	Type    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(errType, message string, err error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

func NewInvalidRequestError(message string, err error) *AppError {
	return NewAppError(ErrorTypeInvalidRequest, message, err)
}

func NewConfigurationError(message string, err error) *AppError {
	return NewAppError(ErrorTypeConfiguration, message, err)
}

func NewUpstreamUnavailableError(message string, err error) *AppError {
	return NewAppError(ErrorTypeUpstreamUnavailable, message, err)
}

func NewUpstreamRejectedError(message string, err error) *AppError {
	return NewAppError(ErrorTypeUpstreamRejected, message, err)
}

func NewEmptyResponseError(message string, err error) *AppError {
	return NewAppError(ErrorTypeEmptyResponse, message, err)
}

func NewInternalServerError(message string, err error) *AppError {
	return NewAppError(ErrorTypeInternalServerError, message, err)
}

func GetErrorType(err error) string {
	if err == nil {
		return ""
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}

	return ErrorTypeUnknown
}
