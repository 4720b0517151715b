package model

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrDuplicateKey = errors.New("duplicate key")
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// DuplicateKeyError reports a unique index violation on Field.
type DuplicateKeyError struct {
	Field string
	Value string
}

func (e *DuplicateKeyError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s already exists", e.Field)
	}
	return fmt.Sprintf("%s %q already exists", e.Field, e.Value)
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

func NotFound(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrNotFound)
}

func Invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
