package validator

import (
	"errors"

	"github.com/dmitrymomot/mongotypes/pkg/mongotypes"
)

// ValidObjectID validates that value carries an identifier in 24 character hex form.
// Strings, ObjectIDs and documents are all accepted; unset ObjectIDs are not.
func ValidObjectID(field string, value any) Rule {
	_, err := mongotypes.ObjectIDOf(value)
	if errors.Is(err, mongotypes.ErrNoIdentifier) {
		return missingObjectID(field, value)
	}
	return Rule{
		Check: func() bool { return err == nil },
		Error: invalidObjectID(field, value),
	}
}

// SameObjectID validates that value has the same identifier as targets, or as
// any element when targets is a slice. The subject must itself be a valid
// ObjectID, so unset or malformed values never match each other.
func SameObjectID(field string, value, targets any) Rule {
	return sameObjectID(field, value, func() error {
		return mongotypes.CompareID(value, targets)
	})
}

// SameObjectIDIn is like SameObjectID for a target set prepared in advance.
func SameObjectIDIn(field string, value any, set *mongotypes.IDSet) Rule {
	return sameObjectID(field, value, func() error {
		if set == nil {
			return mongotypes.ErrIdentifierMismatch
		}
		return set.Contains(value)
	})
}

func sameObjectID(field string, value any, compare func() error) Rule {
	switch _, err := mongotypes.ObjectIDOf(value); {
	case errors.Is(err, mongotypes.ErrNoIdentifier):
		return missingObjectID(field, value)
	case err != nil:
		return Rule{
			Check: func() bool { return false },
			Error: invalidObjectID(field, value),
		}
	}
	return Rule{
		Check: func() bool {
			return compare() == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "ObjectID does not match",
			TranslationKey: "validation.objectid_same",
			TranslationValues: map[string]any{
				"field": field,
				"value": value,
			},
		},
	}
}

func invalidObjectID(field string, value any) ValidationError {
	return ValidationError{
		Field:          field,
		Message:        "must be a valid ObjectID",
		TranslationKey: "validation.objectid",
		TranslationValues: map[string]any{
			"field": field,
			"value": value,
		},
	}
}

func missingObjectID(field string, value any) Rule {
	return Rule{
		Check: func() bool { return false },
		Error: ValidationError{
			Field:          field,
			Message:        "must carry an ObjectID",
			TranslationKey: "validation.objectid_missing",
			TranslationValues: map[string]any{
				"field": field,
				"value": value,
			},
		},
	}
}
