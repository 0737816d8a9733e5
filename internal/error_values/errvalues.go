package errorvalues

import (
	"errors"
	"fmt"
)

var (
	ErrHabitNotFound = errors.New("habit doesn't exist")
	ErrLogNotFound   = errors.New("habit log doesn't exist")

	ErrValidation           = errors.New("validation error")
	ErrUnsupportedFrequency = fmt.Errorf("%w: unsupported frequency", ErrValidation)
	ErrInvalidTimestamp     = fmt.Errorf("%w: malformed timestamp", ErrValidation)
	ErrHabitNotStarted      = fmt.Errorf("%w: habit is not active for this period", ErrValidation)
	ErrPeriodTaken          = fmt.Errorf("%w: habit already has a log for this period", ErrValidation)

	// Duplicate (habit_id, period_start) on insert. Resolved inside the
	// service, never returned to callers of the API.
	ErrLogConflict = errors.New("log for this period already exists")

	ErrStorageUnavailable = errors.New("storage unavailable")

	ErrInvalidToken      = errors.New("invalid token")
	ErrWrongCredentials  = errors.New("wrong name or password")
	ErrAuthNotConfigured = errors.New("authentication is not configured")
)

// StorageError is a failed round trip to the database. It matches both
// ErrStorageUnavailable and the driver error it wraps.
type StorageError struct {
	Op  string
	Err error
}

func Storage(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() []error {
	return []error{ErrStorageUnavailable, e.Err}
}
