package extension

import "errors"

var (
	// ErrInvalidConfig is returned for empty or colliding tag names.
	ErrInvalidConfig = errors.New("invalid extension config")

	// ErrNilValidator is returned when New is called without a validator instance.
	ErrNilValidator = errors.New("nil validator")

	// ErrRegisterTag is returned when the underlying validator rejects a tag.
	ErrRegisterTag = errors.New("failed to register validation tag")
)
