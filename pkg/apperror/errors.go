package apperror

import (
	"fmt"
	"net/http"
)

// Kind is a stable error classification usable for client-side branching.
type Kind string

const (
	KindNotFound           Kind = "NOT_FOUND"
	KindInvalidArgument    Kind = "INVALID_ARGUMENT"
	KindPreconditionFailed Kind = "PRECONDITION_FAILED"
	KindServiceFailure     Kind = "SERVICE_FAILURE"
	KindConflict           Kind = "CONFLICT"
	KindInternal           Kind = "INTERNAL"
)

// AppError is a structured error with a stable kind that maps to HTTP responses.
type AppError struct {
	Kind       Kind   `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(kind Kind, message string, httpStatus int) *AppError {
	return &AppError{
		Kind:       kind,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(kind Kind, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Kind:       kind,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// NotFound reports a missing user, account, linked edge or tip.
func NotFound(entity string) *AppError {
	return New(KindNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// InvalidArgument reports malformed or missing call parameters.
func InvalidArgument(message string) *AppError {
	return New(KindInvalidArgument, message, http.StatusBadRequest)
}

// Unauthenticated reports a call made without a valid identity.
func Unauthenticated() *AppError {
	return New(KindPreconditionFailed, "the call must be made while authenticated", http.StatusUnauthorized)
}

// NoPrimaryAccount reports a user with no primary linked account assigned.
func NoPrimaryAccount() *AppError {
	return New(KindPreconditionFailed, "user does not have a primary linked account", http.StatusPreconditionFailed)
}

// ServiceFailure reports an operation rejected by the external ledger.
// The message is the ledger's own human-readable error.
func ServiceFailure(message string, err error) *AppError {
	return Wrap(KindServiceFailure, message, http.StatusBadGateway, err)
}

// AlreadyLinked reports an account id already linked to a different user.
func AlreadyLinked(accountID string) *AppError {
	return New(KindConflict, fmt.Sprintf("account %s is already linked to a user", accountID), http.StatusConflict)
}

// Internal wraps an unexpected internal error.
func Internal(err error) *AppError {
	return Wrap(KindInternal, "internal server error", http.StatusInternalServerError, err)
}
