package odm

import "errors"

var (
	// ErrModelNotFound is returned when no model is registered under the given name.
	ErrModelNotFound = errors.New("model not found")

	// ErrDuplicateModel is returned when a model name or Go type is registered twice.
	ErrDuplicateModel = errors.New("model already registered")

	// ErrEmptyModelName is returned when registering a model without a name.
	ErrEmptyModelName = errors.New("model name is empty")

	// ErrNilDocument is returned when a nil prototype is used to register a model.
	ErrNilDocument = errors.New("nil document prototype")
)
