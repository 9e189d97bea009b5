package domain

import (
	"errors"
	"net/http"
)

// Error codes for business logic errors.
const (
	CodeNotFound = 1
	// CodeAlreadyInactive marks a lifecycle target that is absent or already
	// in the terminal state for the requested transition (a stale-UI double
	// submit surfaces as this, not as silent success).
	CodeAlreadyInactive = 2
	CodeAlreadyExists   = 3
	CodeValidation      = 4
	// CodePersistence wraps repository-layer failures (connectivity,
	// constraint violations) that propagate unchanged to the caller.
	CodePersistence  = 5
	CodeUnauthorized = 6
	CodeInternal     = 7
)

// AppError represents a business logic error with a code, message, and optional wrapped error.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the wrapped error for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined business errors.
//
// To check whether an error matches one of these categories, use the
// corresponding helper function (IsNotFound, IsAlreadyInactive, etc.)
// instead of errors.Is. The helpers use errors.As with error-code
// comparison, so they correctly match any *AppError that carries the
// same code, including freshly constructed instances from NewAppError
// and wrapped errors, whereas errors.Is only matches by pointer
// identity with the specific sentinel below.
var (
	ErrNotFound        = &AppError{Code: CodeNotFound, Message: "not found"}
	ErrAlreadyInactive = &AppError{Code: CodeAlreadyInactive, Message: "not found or already inactive"}
	ErrAlreadyExists   = &AppError{Code: CodeAlreadyExists, Message: "already exists"}
	ErrValidation      = &AppError{Code: CodeValidation, Message: "validation error"}
	ErrPersistence     = &AppError{Code: CodePersistence, Message: "persistence error"}
	ErrUnauthorized    = &AppError{Code: CodeUnauthorized, Message: "invalid credentials"}
)

// NewAppError creates a new AppError with the given code, message, and wrapped error.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsNotFound reports whether err is or wraps an AppError with CodeNotFound.
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsAlreadyInactive reports whether err is or wraps an AppError with CodeAlreadyInactive.
func IsAlreadyInactive(err error) bool {
	return hasCode(err, CodeAlreadyInactive)
}

// IsAlreadyExists reports whether err is or wraps an AppError with CodeAlreadyExists.
func IsAlreadyExists(err error) bool {
	return hasCode(err, CodeAlreadyExists)
}

// IsValidation reports whether err is or wraps an AppError with CodeValidation.
func IsValidation(err error) bool {
	return hasCode(err, CodeValidation)
}

// IsPersistence reports whether err is or wraps an AppError with CodePersistence.
func IsPersistence(err error) bool {
	return hasCode(err, CodePersistence)
}

// IsUnauthorized reports whether err is or wraps an AppError with CodeUnauthorized.
func IsUnauthorized(err error) bool {
	return hasCode(err, CodeUnauthorized)
}

// hasCode checks whether err is or wraps an *AppError with the given code.
func hasCode(err error, code int) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// HTTPStatusCode maps an error to an HTTP status code.
// If the error is an *AppError, the code is mapped; otherwise http.StatusInternalServerError is returned.
func HTTPStatusCode(err error) int {
	var appErr *AppError
	if err != nil && errors.As(err, &appErr) {
		switch appErr.Code {
		case CodeNotFound:
			return http.StatusNotFound
		case CodeAlreadyInactive:
			return http.StatusConflict
		case CodeAlreadyExists:
			return http.StatusConflict
		case CodeValidation:
			return http.StatusBadRequest
		case CodePersistence:
			return http.StatusInternalServerError
		case CodeUnauthorized:
			return http.StatusUnauthorized
		case CodeInternal:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}
