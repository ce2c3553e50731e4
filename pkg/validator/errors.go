package validator

import "errors"

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidMessages is returned when the embedded message table cannot be parsed.
	ErrInvalidMessages = errors.New("invalid validation message table")
)
