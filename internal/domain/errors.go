package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// Storefront errors. Each wraps one of the categories above so inbound
// adapters can map them to a status code without knowing about carts.
var (
	// ErrInvalidQuery reports a search name that is empty or too short.
	ErrInvalidQuery = fmt.Errorf("invalid query: %w", ErrValidation)

	// ErrDuplicateItem reports an add for a (name, suffix) pair already in the cart.
	ErrDuplicateItem = fmt.Errorf("duplicate cart item: %w", ErrConflict)

	// ErrNotAvailable reports an add for a candidate whose status is Taken.
	ErrNotAvailable = fmt.Errorf("domain not available: %w", ErrConflict)

	// ErrIndexOutOfRange reports a removal at a position the cart does not have.
	ErrIndexOutOfRange = fmt.Errorf("cart index out of range: %w", ErrNotFound)

	// ErrProviderFailure reports an availability lookup that did not complete.
	ErrProviderFailure = fmt.Errorf("availability provider failure: %w", ErrUnavailable)

	// ErrStaleResponse reports a lookup that was superseded by a newer query
	// before it returned. Its result has been discarded.
	ErrStaleResponse = fmt.Errorf("stale availability response: %w", ErrConflict)

	// ErrPersistenceWrite reports a cart mutation that could not be saved.
	// The in-memory cart is left at its pre-mutation value.
	ErrPersistenceWrite = errors.New("cart persistence write failed")
)

// MsgRequired is the ValidationError field message for a missing value.
const MsgRequired = "is required"

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
