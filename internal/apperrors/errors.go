package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the requested state transition is not allowed from the current state.
var ErrConflict = errors.New("conflicting state")

// ErrForbidden indicates that the caller is authenticated but not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrRefreshTokenExpired indicates the stored refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// ErrMaintenance indicates the system is in maintenance mode.
var ErrMaintenance = errors.New("service under maintenance")

// ErrMisconfigured indicates missing system configuration (e.g. no bonus grades).
var ErrMisconfigured = errors.New("system misconfiguration")

// AppError carries a client-facing message alongside one of the sentinel kinds above.
type AppError struct {
	Kind    error
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Is reports whether target is the error kind or matches the wrapped cause.
func (e *AppError) Is(target error) bool {
	return e.Kind == target
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New builds an AppError of the given kind with a human-readable message.
func New(kind error, message string) error {
	return &AppError{Kind: kind, Message: message}
}

// Newf is New with fmt formatting.
func Newf(kind error, format string, args ...any) error {
	return &AppError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying cause.
func Wrap(kind error, message string, err error) error {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// Message returns the client-facing message of err if it carries one.
func Message(err error) (string, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message, true
	}
	return "", false
}
