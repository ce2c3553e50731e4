package mongotypes

import "errors"

// Per-value failures. Adapters turn these into validation errors.
var (
	// ErrNoIdentifier is returned when a value carries no extractable identifier.
	ErrNoIdentifier = errors.New("value has no identifier")

	// ErrInvalidObjectID is returned when an identifier is not in 24 character hex form.
	ErrInvalidObjectID = errors.New("identifier is not a valid ObjectID")

	// ErrIdentifierMismatch is returned when the identifier matches none of the targets.
	ErrIdentifierMismatch = errors.New("identifier does not match any target")

	// ErrNotDocument is returned when a value is not a mapped document.
	ErrNotDocument = errors.New("value is not a document")

	// ErrModelMismatch is returned when a document belongs to none of the expected models.
	ErrModelMismatch = errors.New("document does not belong to any expected model")
)

// Configuration faults. These are raised when a rule is set up and are not recoverable.
var (
	// ErrModelResolution is returned when a model reference cannot be resolved.
	ErrModelResolution = errors.New("cannot resolve model reference")

	// ErrInvalidModelRef is returned for values that cannot be used as model references.
	ErrInvalidModelRef = errors.New("invalid model reference")

	// ErrNoModelRefs is returned when a model rule is configured without references.
	ErrNoModelRefs = errors.New("no model references")
)
