package extension

import (
	"errors"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/mongotypes/pkg/mongotypes"
	"github.com/dmitrymomot/mongotypes/pkg/validator"
)

// ToValidationErrors converts go-playground field errors into
// validator.ValidationErrors with translation keys matching the rules in
// package validator. It returns nil for errors of any other type.
func (e *Extension) ToValidationErrors(err error) validator.ValidationErrors {
	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil
	}

	out := make(validator.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, e.convert(fe))
	}
	return validator.Translate(out, validator.DefaultLanguage)
}

func (e *Extension) convert(fe playground.FieldError) validator.ValidationError {
	values := map[string]any{
		"field": fe.Field(),
		"value": fe.Value(),
	}
	if p := fe.Param(); p != "" {
		values["param"] = p
	}

	key := "validation." + fe.Tag()
	if info, ok := e.lookupTag(fe.Tag()); ok {
		key = translationKey(info.kind, fe.Value())
		switch {
		case info.models != "":
			values["models"] = info.models
		case info.kind == ruleDocument && fe.Param() != "":
			values["models"] = strings.Join(strings.Fields(fe.Param()), ", ")
		}
	}

	return validator.ValidationError{
		Field:             fe.Field(),
		Message:           fe.Error(),
		TranslationKey:    key,
		TranslationValues: values,
	}
}

func translationKey(kind ruleKind, value any) string {
	switch kind {
	case ruleObjectID, ruleSame:
		_, err := mongotypes.ObjectIDOf(value)
		switch {
		case errors.Is(err, mongotypes.ErrNoIdentifier):
			return "validation.objectid_missing"
		case err != nil || kind == ruleObjectID:
			return "validation.objectid"
		}
		return "validation.objectid_same"
	case ruleDocument:
		if mongotypes.Classify(value) != mongotypes.KindDocument {
			return "validation.document"
		}
		return "validation.document_model"
	}
	return "validation.invalid"
}
