package betbrew

import (
	"errors"
	"fmt"
)

// Validation failure kinds
var (
	// ErrInvalidType indicates an argument has the wrong shape (not a finite number, not an
	// array, not a non-empty string)
	ErrInvalidType = errors.New("invalid type")

	// ErrOutOfRange indicates a numeric argument violates a range precondition
	ErrOutOfRange = errors.New("out of range")

	// ErrUnknownOperation indicates Call was given a name it does not publish
	ErrUnknownOperation = errors.New("unknown operation")
)

// ValidationError reports the first invalid argument of an operation.
type ValidationError struct {
	Field   string
	Message string
	Kind    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap exposes the failure kind to errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// NewInvalidTypeError creates an InvalidType validation error
func NewInvalidTypeError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message, Kind: ErrInvalidType}
}

// NewOutOfRangeError creates an OutOfRange validation error
func NewOutOfRangeError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message, Kind: ErrOutOfRange}
}

// KindOf returns "invalid_type", "out_of_range", "unknown_operation" or "" for err.
func KindOf(err error) string {
	switch {
	case errors.Is(err, ErrInvalidType):
		return "invalid_type"
	case errors.Is(err, ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, ErrUnknownOperation):
		return "unknown_operation"
	default:
		return ""
	}
}

// FieldOf returns the offending argument name when err is a ValidationError.
func FieldOf(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Field
	}
	return ""
}
