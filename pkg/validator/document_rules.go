package validator

import (
	"strings"

	"github.com/dmitrymomot/mongotypes/pkg/mongotypes"
)

// DocumentOf validates that value is a document of one of the models held by m.
func DocumentOf(field string, value any, m *mongotypes.ModelMatcher) Rule {
	if mongotypes.Classify(value) != mongotypes.KindDocument {
		return Rule{
			Check: func() bool { return false },
			Error: ValidationError{
				Field:          field,
				Message:        "must be a document",
				TranslationKey: "validation.document",
				TranslationValues: map[string]any{
					"field": field,
					"value": value,
				},
			},
		}
	}

	var names []string
	if m != nil {
		names = m.Names()
	}
	return Rule{
		Check: func() bool {
			return m != nil && m.Match(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a document of model " + strings.Join(names, " or "),
			TranslationKey: "validation.document_model",
			TranslationValues: map[string]any{
				"field":  field,
				"value":  value,
				"models": strings.Join(names, ", "),
			},
		},
	}
}
