package usecase

import (
	"errors"
	"fmt"
)

// Error taxonomy surfaced to the transport layer. Handlers translate these
// into the numeric wire contract; anything else is a 500.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPin         = errors.New("invalid or expired pin")
)

// ValidationError marks a structurally invalid field (wire code 604).
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %s", e.Field)
}

// DuplicateError marks a uniqueness conflict (wire code 602).
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate %s", e.Field)
}

// NotFoundError marks a missing entity (wire code 607).
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}
