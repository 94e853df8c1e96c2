package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrInvalidBooking     = errors.New("invalid booking")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrPricingUnavailable = errors.New("pricing service unavailable")
)

// ValidationError collects per-field messages for a rejected booking form.
// It matches ErrInvalidBooking with errors.Is.
type ValidationError struct {
	fields map[string][]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{fields: make(map[string][]string)}
}

func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

func (e *ValidationError) Add(field, msg string) {
	e.fields[field] = append(e.fields[field], msg)
}

func (e *ValidationError) Empty() bool {
	return len(e.fields) == 0
}

func (e *ValidationError) Fields() map[string][]string {
	out := make(map[string][]string, len(e.fields))
	for k, v := range e.fields {
		out[k] = append([]string(nil), v...)
	}
	return out
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.fields[k], "; ")))
	}

	return fmt.Sprintf("%s: %s", ErrInvalidBooking, strings.Join(parts, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidBooking
}
