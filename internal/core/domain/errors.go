package domain

import "errors"

// Error kinds. Every error returned by the core unwraps to exactly one of
// these, which is what the transport layers switch on.
var (
	ErrValidation      = errors.New("validation error")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrAccessDenied    = errors.New("access denied")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrPersistence     = errors.New("persistence failure")
)

// Error is a user-facing error with a stable message and a kind.
type Error struct {
	kind error
	msg  string
}

// NewError builds an Error of the given kind.
func NewError(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// Invalid is shorthand for a validation error with a custom message.
func Invalid(msg string) *Error {
	return NewError(ErrValidation, msg)
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

var (
	ErrInvalidStatus      = NewError(ErrValidation, "invalid status")
	ErrInvalidAmount      = NewError(ErrValidation, "amount must be greater than zero")
	ErrInvalidRole        = NewError(ErrValidation, "invalid user type, use: cliente, gerente or mecanico")
	ErrInvalidMechanic    = NewError(ErrValidation, "assigned user must be a mechanic")
	ErrInvalidCredentials = NewError(ErrUnauthenticated, "invalid email or password")
	ErrNotAuthenticated   = NewError(ErrUnauthenticated, "authentication required")
	ErrInvalidToken       = NewError(ErrUnauthenticated, "invalid or expired token")
	ErrForbidden          = NewError(ErrAccessDenied, "access denied")

	ErrUserNotFound    = NewError(ErrNotFound, "user not found")
	ErrVehicleNotFound = NewError(ErrNotFound, "vehicle not found")
	ErrServiceNotFound = NewError(ErrNotFound, "service not found")
	ErrQuoteNotFound   = NewError(ErrNotFound, "quote not found")

	ErrEmailTaken         = NewError(ErrConflict, "email already registered")
	ErrPlateTaken         = NewError(ErrConflict, "plate already registered")
	ErrVehicleHasServices = NewError(ErrConflict, "vehicle has services and cannot be deleted")
	ErrInvalidTransition  = NewError(ErrConflict, "invalid status transition")
)

// PersistenceError wraps an unexpected storage failure. The transaction that
// produced it has already been rolled back.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *PersistenceError) Unwrap() []error { return []error{ErrPersistence, e.Err} }

// Persistence wraps err unless it is nil or already a domain error.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		return err
	}
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}
