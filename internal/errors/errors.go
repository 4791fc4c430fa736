// Package errors provides custom error types for the CRM API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid username or password", StatusCode: http.StatusUnauthorized}
	ErrAccountInactive    = &AppError{Code: "ACCOUNT_INACTIVE", Message: "Account is inactive", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
	ErrBackendUnavailable = &AppError{Code: "BACKEND_UNAVAILABLE", Message: "Authentication service is unavailable", StatusCode: http.StatusBadGateway}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Permission errors.
var (
	ErrUnknownRole       = &AppError{Code: "UNKNOWN_ROLE", Message: "Unknown role", StatusCode: http.StatusBadRequest}
	ErrUnknownPermission = &AppError{Code: "UNKNOWN_PERMISSION", Message: "Unknown permission key", StatusCode: http.StatusBadRequest}
)

// User errors.
var (
	ErrUserNotFound      = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateUsername = &AppError{Code: "DUPLICATE_USERNAME", Message: "A user with this username already exists", StatusCode: http.StatusConflict}
)

// Contact errors.
var (
	ErrContactNotFound    = &AppError{Code: "CONTACT_NOT_FOUND", Message: "Contact not found", StatusCode: http.StatusNotFound}
	ErrCategoryNotAllowed = &AppError{Code: "CATEGORY_NOT_ALLOWED", Message: "You are not allowed to use this category", StatusCode: http.StatusForbidden}
	ErrFieldNotEditable   = &AppError{Code: "FIELD_NOT_EDITABLE", Message: "You are not allowed to edit this field", StatusCode: http.StatusForbidden}
)
