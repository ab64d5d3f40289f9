package creator

import (
	"errors"
	"fmt"
)

var (
	ErrMissingFields     = errors.New("missing required fields")
	ErrInvalidFollowers  = errors.New("followers must not be negative")
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating creator ID")
)

type CreatorError struct {
	Err     error
	Code    string
	Details string
}

func (e *CreatorError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CreatorError) Unwrap() error {
	return e.Err
}

func NewCreatorError(err error, code string, details string) *CreatorError {
	return &CreatorError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
