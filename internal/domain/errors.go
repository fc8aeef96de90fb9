package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidInput indicates the caller supplied bad parameters.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDecode indicates a response body could not be decoded.
	ErrDecode = errors.New("decode failure")
	// ErrInternal indicates an unexpected server-side failure.
	ErrInternal = errors.New("internal error")
)

// DomainError carries a machine-readable code alongside a human message and
// the wrapped sentinel, so callers can branch with errors.Is while logs keep
// the full chain.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// UserMessage returns the message without internal detail.
func (e *DomainError) UserMessage() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a not-found error for a named resource.
func NewNotFoundError(resourceType, name string) error {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s '%s' not found", resourceType, name),
		Err:     ErrNotFound,
	}
}

// NewInvalidInputError creates an invalid-input error.
func NewInvalidInputError(message string) error {
	return &DomainError{
		Code:    "INVALID_INPUT",
		Message: message,
		Err:     ErrInvalidInput,
	}
}

// NewDecodeError wraps a JSON decode failure for a named payload.
func NewDecodeError(payload string, err error) error {
	return &DomainError{
		Code:    "DECODE_ERROR",
		Message: fmt.Sprintf("failed to decode %s response", payload),
		Err:     fmt.Errorf("%w: %v", ErrDecode, err),
	}
}

// NewInternalError wraps an unexpected failure without exposing detail.
func NewInternalError(err error) error {
	return &DomainError{
		Code:    "INTERNAL_ERROR",
		Message: "an internal error occurred",
		Err:     fmt.Errorf("%w: %v", ErrInternal, err),
	}
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidInput reports whether err is an invalid-input error.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsDecode reports whether err is a decode error.
func IsDecode(err error) bool {
	return errors.Is(err, ErrDecode)
}
