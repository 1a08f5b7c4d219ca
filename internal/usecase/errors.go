package usecase

import (
	"errors"

	"gigboard/internal/database"
)

var (
	ErrInternal        = errors.New("internal error")
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")
	ErrUnauthorized    = errors.New("unauthorized")
)

// StoreError is a rejection reported by the data store. It matches Kind with
// errors.Is and keeps the store's own message for display.
type StoreError struct {
	Kind    error
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	return e.Kind.Error() + ": " + e.Message
}

func (e *StoreError) Is(target error) bool {
	return target == e.Kind
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// storeError classifies err by constraint code. Unknown failures map to ErrInternal.
func storeError(err error) error {
	kind := ErrInternal
	switch {
	case database.IsUniqueViolation(err):
		kind = ErrConflict
	case database.IsForeignKeyViolation(err):
		kind = ErrNotFound
	case database.IsCheckViolation(err):
		kind = ErrInvalidInput
	}
	return &StoreError{Kind: kind, Message: database.StoreMessage(err), Err: err}
}

// StoreMessage returns the store's message when err came from the store, or
// err's text otherwise.
func StoreMessage(err error) string {
	if err == nil {
		return ""
	}
	var se *StoreError
	if errors.As(err, &se) {
		return se.Message
	}
	return err.Error()
}
