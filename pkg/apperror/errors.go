package apperror

import (
	"errors"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	Remote  bool         `json:"-"` // true when the upstream backend produced the error
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound            = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrUnauthorized        = &AppError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrForbidden           = &AppError{Code: http.StatusForbidden, Message: "Forbidden"}
	ErrBadRequest          = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer      = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrInvalidToken        = &AppError{Code: http.StatusUnauthorized, Message: "Invalid token"}
	ErrUpstreamUnavailable = &AppError{Code: http.StatusBadGateway, Message: "The sales backend is unreachable. Please try again.", Remote: true}
	ErrCheckoutInFlight    = &AppError{Code: http.StatusConflict, Message: "A checkout is already in progress for this cart"}
	ErrEmptyCart           = &AppError{Code: http.StatusUnprocessableEntity, Message: "Cart is empty"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewRemoteError wraps a rejection from the upstream backend. The backend's
// message is relayed verbatim when it sent one.
func NewRemoteError(statusCode int, message string) *AppError {
	if message == "" {
		message = "The request was rejected by the sales backend"
	}
	return &AppError{
		Code:    statusCode,
		Message: message,
		Remote:  true,
	}
}

// IsRemote reports whether err originated from the upstream backend.
func IsRemote(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Remote
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
